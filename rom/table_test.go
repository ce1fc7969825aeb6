package rom

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/internal"
	"github.com/ezrec/ucrom/isa"
	"github.com/ezrec/ucrom/microcode"
)

func catalogOf(insns ...isa.Instruction) iter.Seq[isa.Instruction] {
	return slices.Values(insns)
}

func TestAssemble_Coverage(t *testing.T) {
	assert := assert.New(t)

	tbl, err := Assemble(isa.Catalog(), Options{})
	assert.NoError(err)

	for n := range isa.OPCODES {
		op := isa.Opcode(n)
		defined := op.Logical() < isa.OPCODE_LIMIT
		assert.Equal(defined, tbl.Defined(op), "0x%02x", n)
		if !defined {
			assert.True(tbl.Sequence(op).Empty(), "0x%02x", n)
			assert.Equal(0, tbl.Length(op))
			assert.Equal(op.String(), tbl.Mnemonic(op))
		}
	}

	var opcodes []isa.Opcode
	for op := range tbl.Opcodes() {
		opcodes = append(opcodes, op)
	}
	assert.Equal(2*int(isa.OPCODE_LIMIT), len(opcodes))
	assert.True(slices.IsSorted(opcodes))
}

func TestAssemble_Sequences(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{})

	for op := range tbl.Opcodes() {
		seq := tbl.Sequence(op)
		name := tbl.Mnemonic(op)

		// Every opcode fetches on its first cycle.
		assert.Equal(control.FETCH, seq[0].Signals(), name)
		assert.Equal(control.PC_OUT|control.LSU_READ, seq[0].Signals()&control.BUS_OUTPUTS, name)

		// Nothing is asserted after the terminal cycle.
		terminal := seq.Terminal()
		assert.True(terminal >= 1, name)
		for cycle := terminal + 1; cycle < microcode.CYCLES; cycle++ {
			assert.Equal(control.IDLE, seq[cycle], "%v cycle %d", name, cycle)
		}

		// The terminal cycle advances to the next instruction.
		assert.True(seq[terminal].Has(control.PC_NEXT), name)

		// Halt appears only on the terminal cycle, and only for traps.
		for cycle := range terminal {
			assert.False(seq[cycle].Has(control.HALT), "%v cycle %d", name, cycle)
		}
		halts := op.Trap() || op == isa.BRK
		assert.Equal(halts, seq[terminal].Has(control.HALT), name)
	}
}

func TestAssemble_TrapPairing(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{})

	for n := range isa.LOGICAL {
		op := isa.Opcode(n)
		trap := op | isa.TRAP

		assert.Equal(tbl.Defined(op), tbl.Defined(trap))
		assert.Equal(tbl.Sequence(op).Trap(), tbl.Sequence(trap), tbl.Mnemonic(op))
		assert.Equal(tbl.Length(op), tbl.Length(trap))
		if tbl.Defined(op) {
			assert.Equal(tbl.Mnemonic(op)+isa.TRAP_SUFFIX, tbl.Mnemonic(trap))
		}
	}
}

func TestAssemble_LengthTag(t *testing.T) {
	assert := assert.New(t)

	plain := MustAssemble(isa.Catalog(), Options{})
	tagged := MustAssemble(isa.Catalog(), Options{LengthTag: true})

	for op := range plain.Opcodes() {
		seq := tagged.Sequence(op)
		assert.Equal(plain.Length(op), seq[0].Length(), plain.Mnemonic(op))
		assert.Equal(0, plain.Sequence(op)[0].Length())
		assert.Equal(control.FETCH, seq[0].Signals())

		for cycle := 1; cycle < microcode.CYCLES; cycle++ {
			assert.Equal(plain.Sequence(op)[cycle], seq[cycle])
		}
	}

	jmp := tagged.Sequence(isa.JMP)
	assert.Equal(3, jmp[0].Length())
}

func TestAssemble_Collision(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(catalogOf(
		isa.Instruction{Opcode: 0x10, Mnemonic: "FIRST", Length: 1, Build: microcode.Nop},
		isa.Instruction{Opcode: 0x11, Mnemonic: "OTHER", Length: 1, Build: microcode.Nop},
		isa.Instruction{Opcode: 0x10, Mnemonic: "SECOND", Length: 1, Build: microcode.Nop},
	), Options{})

	var collision ErrOpcodeCollision
	assert.True(errors.As(err, &collision))
	assert.Equal(isa.Opcode(0x10), collision.Opcode)
	assert.Equal("SECOND", collision.Mnemonic)
	assert.Equal("FIRST", collision.Previous)

	assert.Panics(func() {
		MustAssemble(internal.Concat(isa.Catalog(), isa.Catalog()), Options{})
	})
}

func TestAssemble_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(catalogOf(
		isa.Instruction{Opcode: 0x85, Mnemonic: "HIGH", Length: 1, Build: microcode.Nop},
	), Options{})
	assert.ErrorIs(err, ErrOpcodeRange)

	for _, length := range []int{0, 4} {
		_, err = Assemble(catalogOf(
			isa.Instruction{Opcode: 0x05, Mnemonic: "LONG", Length: length, Build: microcode.Nop},
		), Options{})
		var invalid control.ErrLengthInvalid
		assert.True(errors.As(err, &invalid), "length %d", length)
		assert.Equal(control.ErrLengthInvalid(length), invalid)

		var insn ErrInstruction
		assert.True(errors.As(err, &insn))
		assert.Equal("LONG", insn.Mnemonic)
	}
}

func TestTable_Words(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{})

	next := 0
	for addr, word := range tbl.Words() {
		assert.Equal(next, addr)
		op := isa.Opcode(addr >> 3)
		assert.Equal(tbl.Sequence(op)[addr&7], word)
		next++
	}
	assert.Equal(isa.OPCODES*microcode.CYCLES, next)

	assert.Equal(0x0d*8+2, Address(isa.MoveOpcode(control.REG_A, control.REG_B), 2))
	assert.Equal(0x7ff, Address(0xff, 7))
}
