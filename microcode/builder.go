// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	"github.com/ezrec/ucrom/control"
)

const (
	fetch   = control.FETCH
	advance = control.ADVANCE
	step    = control.STEP
)

// latchA loads ALU operand A from a register, along with the current flags.
func latchA(reg control.Register) control.Signal {
	return reg.Out() | control.ALU_A_IN | control.RF_F_OUT | control.ALU_F_IN
}

// result drives an ALU operation into a register and the flags.
func result(op control.AluOp, reg control.Register) control.Signal {
	return op.Signal() | control.ALU_OUT | reg.In() | control.RF_F_IN
}

// Address bytes following the opcode, low byte first.
const (
	addressLo = control.IMMEDIATE_0 | control.EAU_LO_IN | step
	addressHi = control.IMMEDIATE_1 | control.EAU_HI_IN | step
)

// Move copies src into dst. Moves to or from the flags register are routed
// over the flags-connect line.
func Move(dst, src control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		src.Out()|dst.In()|src.Bus()|dst.Bus(),
		advance,
	)
}

// AluReg applies op to dst and src, storing into dst.
func AluReg(op control.AluOp, dst, src control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		latchA(dst),
		src.Out()|control.ALU_B_IN,
		result(op, dst),
		advance,
	)
}

// AluImm applies op to dst and the immediate byte, storing into dst.
func AluImm(op control.AluOp, dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		latchA(dst),
		control.IMMEDIATE_0|control.ALU_B_IN|step,
		result(op, dst),
		advance,
	)
}

// AluMem applies op to dst and the memory byte at the immediate address,
// storing into dst.
func AluMem(op control.AluOp, dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		latchA(dst),
		addressLo,
		addressHi,
		control.RAM_READ|control.ALU_B_IN,
		result(op, dst),
		advance,
	)
}

// Not complements dst.
func Not(dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		latchA(dst),
		result(control.ALU_OP_NOT, dst),
		advance,
	)
}

// Nop does nothing.
func Nop(trap bool) Sequence {
	return finish(trap,
		fetch,
		advance,
	)
}

// Brk halts unconditionally; it has no separate trap variant.
func Brk() Sequence {
	return finish(true,
		fetch,
		advance,
	)
}

// LoadImm loads the immediate byte into dst.
func LoadImm(dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		control.IMMEDIATE_0|dst.In()|step,
		advance,
	)
}

// LoadMem loads the memory byte at the immediate address into dst.
func LoadMem(dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		addressLo,
		addressHi,
		control.RAM_READ|dst.In(),
		advance,
	)
}

// StoreMem stores src to the memory byte at the immediate address.
func StoreMem(src control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		addressLo,
		addressHi,
		control.RAM_WRITE|src.Out(),
		advance,
	)
}

// Deref loads dst from the memory byte addressed by the register pair lo:hi.
func Deref(dst, lo, hi control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		lo.Out()|control.EAU_LO_IN,
		hi.Out()|control.EAU_HI_IN,
		control.RAM_READ|dst.In(),
		advance,
	)
}

// Push decrements the stack pointer, then writes src to the top of stack.
func Push(src control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		control.SP_DECREMENT,
		control.STACK_WRITE|src.Out()|src.Bus(),
		advance,
	)
}

// Pop reads the top of stack into dst, then increments the stack pointer.
func Pop(dst control.Register, trap bool) Sequence {
	return finish(trap,
		fetch,
		control.POP_TOP|dst.In()|dst.Bus(),
		advance,
	)
}

// PopDiscard drops the top of stack.
func PopDiscard(trap bool) Sequence {
	return finish(trap,
		fetch,
		control.POP_TOP,
		advance,
	)
}

// PushImm pushes the immediate byte.
func PushImm(trap bool) Sequence {
	return finish(trap,
		fetch,
		control.SP_DECREMENT,
		control.STACK_WRITE|control.IMMEDIATE_0|step,
		advance,
	)
}

// PushPC pushes the program counter, high byte first, so the low byte ends
// up on top of the stack.
func PushPC(trap bool) Sequence {
	return finish(trap,
		fetch,
		control.SP_DECREMENT,
		control.STACK_WRITE|control.EDU_HI_OUT,
		control.SP_DECREMENT,
		control.STACK_WRITE|control.EDU_LO_OUT,
		advance,
	)
}

// PopPC pops the low then high program counter bytes and jumps to the
// composed address.
func PopPC(trap bool) Sequence {
	return finish(trap,
		fetch,
		control.POP_TOP|control.EAU_LO_IN,
		control.POP_TOP|control.EAU_HI_IN,
		control.LOAD_ADDRESS|control.JUMP,
		advance,
	)
}

// Jump loads the program counter from the immediate address when cond
// holds. The control word is the same whether or not the branch is taken.
func Jump(cond control.Condition, trap bool) Sequence {
	return finish(trap,
		fetch,
		addressLo,
		addressHi,
		control.LOAD_ADDRESS|cond.Signal(),
		advance,
	)
}
