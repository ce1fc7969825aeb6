// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/internal"
	"github.com/ezrec/ucrom/isa"
	"github.com/ezrec/ucrom/microcode"
)

// Options controls how the table is assembled.
type Options struct {
	LengthTag bool // Tag the fetch cycle of each sequence with the instruction length.
	Verbose   bool // Log each slot as it is populated.
}

// Table is the microcode of all 256 opcode slots.
type Table struct {
	sequence [isa.OPCODES]microcode.Sequence
	mnemonic [isa.OPCODES]string
	length   [isa.OPCODES]int
	defined  [isa.OPCODES]bool
}

// Assemble builds the table from an instruction catalog. Every instruction
// populates its own slot with the normal sequence, and the slot with the
// trap bit set with the trap sequence.
func Assemble(catalog iter.Seq[isa.Instruction], opts Options) (table *Table, err error) {
	tbl := &Table{}

	for insn := range catalog {
		err = tbl.define(insn, opts)
		if err != nil {
			return
		}
	}

	if opts.Verbose {
		log.Printf("rom: %d of %d opcodes defined", internal.Count(tbl.Opcodes()), isa.OPCODES)
	}

	table = tbl
	return
}

// MustAssemble is Assemble, panicking on a malformed catalog.
func MustAssemble(catalog iter.Seq[isa.Instruction], opts Options) *Table {
	table, err := Assemble(catalog, opts)
	if err != nil {
		panic(err)
	}
	return table
}

// define places the normal and trap variants of an instruction.
func (tbl *Table) define(insn isa.Instruction, opts Options) (err error) {
	op := insn.Opcode

	if op.Trap() {
		err = ErrInstruction{Opcode: op, Mnemonic: insn.Mnemonic, Err: ErrOpcodeRange}
		return
	}

	if tbl.defined[op] {
		err = ErrOpcodeCollision{Opcode: op, Mnemonic: insn.Mnemonic, Previous: tbl.mnemonic[op]}
		return
	}

	if insn.Length < 1 || insn.Length > control.LENGTH_MAX {
		err = ErrInstruction{Opcode: op, Mnemonic: insn.Mnemonic, Err: control.ErrLengthInvalid(insn.Length)}
		return
	}

	for _, trap := range []bool{false, true} {
		slot, name := op, insn.Mnemonic
		if trap {
			slot |= isa.TRAP
			name += isa.TRAP_SUFFIX
		}

		seq := insn.Build(trap)
		if opts.LengthTag {
			seq[0], err = seq[0].WithLength(insn.Length)
			if err != nil {
				return
			}
		}

		tbl.sequence[slot] = seq
		tbl.mnemonic[slot] = name
		tbl.length[slot] = insn.Length
		tbl.defined[slot] = true

		if opts.Verbose {
			log.Printf("rom: 0x%02x %v: %d cycles", uint8(slot), name, seq.Active())
		}
	}

	return
}

// Sequence returns the microcode of an opcode slot. Undefined slots are idle.
func (tbl *Table) Sequence(op isa.Opcode) microcode.Sequence {
	return tbl.sequence[op]
}

// Mnemonic returns the name of the instruction in an opcode slot, or its
// hex value if undefined.
func (tbl *Table) Mnemonic(op isa.Opcode) string {
	if !tbl.defined[op] {
		return fmt.Sprintf("0x%02x", uint8(op))
	}
	return tbl.mnemonic[op]
}

// Length returns the byte length of the instruction in an opcode slot, or 0
// if undefined.
func (tbl *Table) Length(op isa.Opcode) int {
	return tbl.length[op]
}

// Defined returns true if an instruction occupies the opcode slot.
func (tbl *Table) Defined(op isa.Opcode) bool {
	return tbl.defined[op]
}

// Opcodes returns an iterator over the defined opcode slots, in ascending
// order.
func (tbl *Table) Opcodes() iter.Seq[isa.Opcode] {
	return func(yield func(isa.Opcode) bool) {
		for n := range isa.OPCODES {
			op := isa.Opcode(n)
			if !tbl.defined[op] {
				continue
			}
			if !yield(op) {
				return
			}
		}
	}
}

// Words returns an iterator over every control store address and its word,
// in address order.
func (tbl *Table) Words() iter.Seq2[int, control.Word] {
	return func(yield func(int, control.Word) bool) {
		for n, seq := range tbl.sequence {
			for cycle, word := range seq {
				if !yield(Address(isa.Opcode(n), cycle), word) {
					return
				}
			}
		}
	}
}

// Address returns the control store address of an opcode cycle.
func Address(op isa.Opcode, cycle int) int {
	return int(op)*microcode.CYCLES + cycle
}
