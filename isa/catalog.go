package isa

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/internal"
	"github.com/ezrec/ucrom/microcode"
)

// TRAP_SUFFIX is appended to the mnemonic of a trap variant.
const TRAP_SUFFIX = "_TRAP"

// Instruction binds a logical opcode to its microcode.
type Instruction struct {
	Opcode   Opcode                             // Logical opcode.
	Mnemonic string                             // Assembler name.
	Length   int                                // Bytes occupied, opcode included.
	Build    func(trap bool) microcode.Sequence // Microcode builder.
}

// upper returns the mnemonic form of a selector name.
func upper(sel fmt.Stringer) string {
	return strings.ToUpper(sel.String())
}

// The ALU operations in opcode order.
var (
	binaryOps = [BINARY_OPS]control.AluOp{control.ALU_OP_ADD, control.ALU_OP_SUB, control.ALU_OP_AND, control.ALU_OP_OR}
	immOps    = [IMM_OPS]control.AluOp{control.ALU_OP_ADD, control.ALU_OP_SUB, control.ALU_OP_AND, control.ALU_OP_OR, control.ALU_OP_SHL, control.ALU_OP_SHR}
)

// Pairs returns every ordered pair of distinct general registers, in
// opcode order.
func Pairs() iter.Seq2[control.Register, control.Register] {
	return func(yield func(dst, src control.Register) bool) {
		for _, dst := range control.GENERAL_REGISTERS {
			for _, src := range control.GENERAL_REGISTERS {
				if dst == src {
					continue
				}
				if !yield(dst, src) {
					return
				}
			}
		}
	}
}

// generals yields one instruction per general register.
func generals(insn func(reg control.Register) Instruction) iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, reg := range control.GENERAL_REGISTERS {
			if !yield(insn(reg)) {
				return
			}
		}
	}
}

// singles are the individually assigned opcodes.
func singles() iter.Seq[Instruction] {
	a, b, c, d, fl := control.REG_A, control.REG_B, control.REG_C, control.REG_D, control.REG_F

	list := []Instruction{
		{NOP, "NOP", 1, microcode.Nop},
		{BRK, "BRK", 1, func(bool) microcode.Sequence { return microcode.Brk() }},
		{PUSH_IP, "PUSH_IP", 1, microcode.PushPC},
		{POP_IP, "POP_IP", 1, microcode.PopPC},
		{DEREF_AB_A, "DEREF_AB_A", 1, func(trap bool) microcode.Sequence { return microcode.Deref(a, a, b, trap) }},
		{DEREF_CD_C, "DEREF_CD_C", 1, func(trap bool) microcode.Sequence { return microcode.Deref(c, c, d, trap) }},
		{MVB_A_F, "MVB_A_F", 1, func(trap bool) microcode.Sequence { return microcode.Move(a, fl, trap) }},
		{MVB_F_A, "MVB_F_A", 1, func(trap bool) microcode.Sequence { return microcode.Move(fl, a, trap) }},
		{PUSH_F, "PUSH_F", 1, func(trap bool) microcode.Sequence { return microcode.Push(fl, trap) }},
		{POP_F, "POP_F", 1, func(trap bool) microcode.Sequence { return microcode.Pop(fl, trap) }},
		{POP_DISCARD, "POP_DISCARD", 1, microcode.PopDiscard},
		{PUSH_IMM, "PUSH_IMM", 2, microcode.PushImm},
		{MVB_B_F, "MVB_B_F", 1, func(trap bool) microcode.Sequence { return microcode.Move(b, fl, trap) }},
	}

	return func(yield func(Instruction) bool) {
		for _, insn := range list {
			if !yield(insn) {
				return
			}
		}
	}
}

// jumps are the absolute jumps, one per condition.
func jumps() iter.Seq[Instruction] {
	names := map[control.Condition]string{
		control.COND_ALWAYS: "JMP",
		control.COND_ZERO:   "JEZ",
		control.COND_CARRY:  "JCS",
	}

	return func(yield func(Instruction) bool) {
		for _, cond := range []control.Condition{control.COND_ALWAYS, control.COND_ZERO, control.COND_CARRY} {
			insn := Instruction{
				Opcode:   JumpOpcode(cond),
				Mnemonic: names[cond],
				Length:   3,
				Build: func(trap bool) microcode.Sequence {
					return microcode.Jump(cond, trap)
				},
			}
			if !yield(insn) {
				return
			}
		}
	}
}

// moves are the register to register moves.
func moves() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for dst, src := range Pairs() {
			insn := Instruction{
				Opcode:   MoveOpcode(dst, src),
				Mnemonic: fmt.Sprintf("MVB_%v_%v", upper(dst), upper(src)),
				Length:   1,
				Build: func(trap bool) microcode.Sequence {
					return microcode.Move(dst, src, trap)
				},
			}
			if !yield(insn) {
				return
			}
		}
	}
}

// aluRegs are the two register ALU operations.
func aluRegs() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range binaryOps {
			for dst, src := range Pairs() {
				insn := Instruction{
					Opcode:   AluRegOpcode(op, dst, src),
					Mnemonic: fmt.Sprintf("%v_%v_%v", upper(op), upper(dst), upper(src)),
					Length:   1,
					Build: func(trap bool) microcode.Sequence {
						return microcode.AluReg(op, dst, src, trap)
					},
				}
				if !yield(insn) {
					return
				}
			}
		}
	}
}

// nots are the register complements.
func nots() iter.Seq[Instruction] {
	return generals(func(reg control.Register) Instruction {
		return Instruction{
			Opcode:   NotOpcode(reg),
			Mnemonic: "NOT_" + upper(reg),
			Length:   1,
			Build: func(trap bool) microcode.Sequence {
				return microcode.Not(reg, trap)
			},
		}
	})
}

// aluImms are the register and immediate ALU operations.
func aluImms() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range immOps {
			for _, reg := range control.GENERAL_REGISTERS {
				insn := Instruction{
					Opcode:   AluImmOpcode(op, reg),
					Mnemonic: fmt.Sprintf("%v_%v_IMM", upper(op), upper(reg)),
					Length:   2,
					Build: func(trap bool) microcode.Sequence {
						return microcode.AluImm(op, reg, trap)
					},
				}
				if !yield(insn) {
					return
				}
			}
		}
	}
}

// aluMems are the accumulator and memory ALU operations.
func aluMems() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range binaryOps {
			insn := Instruction{
				Opcode:   AluMemOpcode(op),
				Mnemonic: fmt.Sprintf("%v_A_MEM", upper(op)),
				Length:   3,
				Build: func(trap bool) microcode.Sequence {
					return microcode.AluMem(op, control.REG_A, trap)
				},
			}
			if !yield(insn) {
				return
			}
		}
	}
}

// memory are the loads and stores.
func memory() iter.Seq[Instruction] {
	return internal.Concat(
		generals(func(reg control.Register) Instruction {
			return Instruction{
				Opcode:   LoadImmOpcode(reg),
				Mnemonic: fmt.Sprintf("LDB_%v_IMM", upper(reg)),
				Length:   2,
				Build: func(trap bool) microcode.Sequence {
					return microcode.LoadImm(reg, trap)
				},
			}
		}),
		generals(func(reg control.Register) Instruction {
			return Instruction{
				Opcode:   LoadMemOpcode(reg),
				Mnemonic: fmt.Sprintf("LDB_%v_MEM", upper(reg)),
				Length:   3,
				Build: func(trap bool) microcode.Sequence {
					return microcode.LoadMem(reg, trap)
				},
			}
		}),
		generals(func(reg control.Register) Instruction {
			return Instruction{
				Opcode:   StoreMemOpcode(reg),
				Mnemonic: fmt.Sprintf("STB_MEM_%v", upper(reg)),
				Length:   3,
				Build: func(trap bool) microcode.Sequence {
					return microcode.StoreMem(reg, trap)
				},
			}
		}),
	)
}

// stack are the single register pushes and pops.
func stack() iter.Seq[Instruction] {
	return internal.Concat(
		generals(func(reg control.Register) Instruction {
			return Instruction{
				Opcode:   PushOpcode(reg),
				Mnemonic: "PUSH_" + upper(reg),
				Length:   1,
				Build: func(trap bool) microcode.Sequence {
					return microcode.Push(reg, trap)
				},
			}
		}),
		generals(func(reg control.Register) Instruction {
			return Instruction{
				Opcode:   PopOpcode(reg),
				Mnemonic: "POP_" + upper(reg),
				Length:   1,
				Build: func(trap bool) microcode.Sequence {
					return microcode.Pop(reg, trap)
				},
			}
		}),
	)
}

// Catalog returns every instruction of the processor.
func Catalog() iter.Seq[Instruction] {
	return internal.Concat(
		singles(),
		jumps(),
		moves(),
		aluRegs(),
		nots(),
		aluImms(),
		aluMems(),
		memory(),
		stack(),
	)
}

var mnemonic, opcode = func() (mnemonic map[Opcode]string, opcode map[string]Opcode) {
	mnemonic = map[Opcode]string{}
	opcode = map[string]Opcode{}
	for insn := range Catalog() {
		mnemonic[insn.Opcode] = insn.Mnemonic
		opcode[insn.Mnemonic] = insn.Opcode
		opcode[insn.Mnemonic+TRAP_SUFFIX] = insn.Opcode | TRAP
	}
	return
}()

// Lookup returns the opcode of a mnemonic. Trap variants are named with
// TRAP_SUFFIX.
func Lookup(name string) (op Opcode, ok bool) {
	op, ok = opcode[strings.ToUpper(name)]
	return
}

// Defines returns an iterator over every mnemonic and its opcode.
func Defines() iter.Seq2[string, uint64] {
	return func(yield func(string, uint64) bool) {
		for name, op := range opcode {
			if !yield(name, uint64(op)) {
				return
			}
		}
	}
}
