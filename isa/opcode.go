// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa defines the opcode map of the 8-bit processor and binds each
// opcode to its microcode builder.
package isa

import (
	"fmt"

	"github.com/ezrec/ucrom/control"
)

// Opcode is an 8-bit instruction code. The high bit requests the trap
// variant of the instruction.
type Opcode uint8

const (
	TRAP       = Opcode(0x80) // Trap variant select bit.
	LOGICAL    = 0x80         // Number of logical instruction encodings.
	OPCODES    = 0x100        // Number of physical opcode slots.
	PAIRS      = 12           // Ordered pairs of distinct general registers.
	BINARY_OPS = 4            // ADC, SBB, AND, LOR.
	IMM_OPS    = 6            // BINARY_OPS plus SHL, SHR.
)

// Opcode map. Individually assigned opcodes come first, followed by the
// register cross-product blocks.
const (
	NOP        = Opcode(iota) // 0x00
	BRK                       // 0x01
	PUSH_IP                   // 0x02
	POP_IP                    // 0x03
	JMP                       // 0x04
	JEZ                       // 0x05
	JCS                       // 0x06
	DEREF_AB_A                // 0x07
	DEREF_CD_C                // 0x08
	MVB_A_F                   // 0x09
	MVB_F_A                   // 0x0a
	PUSH_F                    // 0x0b
	POP_F                     // 0x0c

	MVB_BASE     = Opcode(0x0d)                    // MVB dst,src
	ALU_REG_BASE = MVB_BASE + PAIRS                // op dst,src
	NOT_BASE     = ALU_REG_BASE + BINARY_OPS*PAIRS // NOT r
	ALU_IMM_BASE = NOT_BASE + 4                    // op r,imm
	ALU_MEM_BASE = ALU_IMM_BASE + IMM_OPS*4        // op A,[mem]
	LDB_IMM_BASE = ALU_MEM_BASE + BINARY_OPS       // LDB r,imm
	LDB_MEM_BASE = LDB_IMM_BASE + 4                // LDB r,[mem]
	STB_MEM_BASE = LDB_MEM_BASE + 4                // STB [mem],r
	PUSH_BASE    = STB_MEM_BASE + 4                // PUSH r
	POP_BASE     = PUSH_BASE + 4                   // POP r
	POP_DISCARD  = POP_BASE + 4                    // POP, dropping the byte
	PUSH_IMM     = POP_DISCARD + 1                 // PUSH imm
	MVB_B_F      = PUSH_IMM + 1                    // MVB B,F
	OPCODE_LIMIT = MVB_B_F + 1                     // One past the last assigned opcode.
)

// Memory ALU forms take register A only. Giving them all four registers
// needs 13+12+48+4+24+16+4*5 = 137 slots, 9 more than LOGICAL.
const _ = uint(LOGICAL - OPCODE_LIMIT)

// Trap returns true if the opcode selects a trap variant.
func (op Opcode) Trap() bool {
	return op&TRAP != 0
}

// Logical returns the opcode with the trap select bit cleared.
func (op Opcode) Logical() Opcode {
	return op &^ TRAP
}

// String returns the mnemonic of the opcode, or its hex value if unassigned.
func (op Opcode) String() string {
	name, ok := mnemonic[op.Logical()]
	if !ok {
		return fmt.Sprintf("0x%02x", uint8(op))
	}
	if op.Trap() {
		return name + TRAP_SUFFIX
	}
	return name
}

// general returns the encoding index of a general register.
func general(reg control.Register) Opcode {
	if reg < control.REG_A || reg > control.REG_D {
		panic(fmt.Sprintf("isa: %v is not a general register", reg))
	}
	return Opcode(reg)
}

// pair returns the index of an ordered pair of distinct general registers.
func pair(dst, src control.Register) Opcode {
	d, s := general(dst), general(src)
	if d == s {
		panic(fmt.Sprintf("isa: register pair %v,%v is not distinct", dst, src))
	}
	if s > d {
		s--
	}
	return d*3 + s
}

// binaryOp returns the encoding index of a two-register ALU operation.
func binaryOp(op control.AluOp) Opcode {
	if op > control.ALU_OP_OR {
		panic(fmt.Sprintf("isa: %v has no register or memory form", op))
	}
	return Opcode(op)
}

// immOp returns the encoding index of an immediate ALU operation.
func immOp(op control.AluOp) Opcode {
	switch op {
	case control.ALU_OP_SHL:
		return 4
	case control.ALU_OP_SHR:
		return 5
	}
	return binaryOp(op)
}

// MoveOpcode returns the opcode of MVB dst,src.
func MoveOpcode(dst, src control.Register) Opcode {
	switch {
	case dst == control.REG_A && src == control.REG_F:
		return MVB_A_F
	case dst == control.REG_F && src == control.REG_A:
		return MVB_F_A
	case dst == control.REG_B && src == control.REG_F:
		return MVB_B_F
	}
	return MVB_BASE + pair(dst, src)
}

// AluRegOpcode returns the opcode of op dst,src.
func AluRegOpcode(op control.AluOp, dst, src control.Register) Opcode {
	return ALU_REG_BASE + binaryOp(op)*PAIRS + pair(dst, src)
}

// NotOpcode returns the opcode of NOT reg.
func NotOpcode(reg control.Register) Opcode {
	return NOT_BASE + general(reg)
}

// AluImmOpcode returns the opcode of op reg,imm.
func AluImmOpcode(op control.AluOp, reg control.Register) Opcode {
	return ALU_IMM_BASE + immOp(op)*4 + general(reg)
}

// AluMemOpcode returns the opcode of op A,[mem].
func AluMemOpcode(op control.AluOp) Opcode {
	return ALU_MEM_BASE + binaryOp(op)
}

// LoadImmOpcode returns the opcode of LDB reg,imm.
func LoadImmOpcode(reg control.Register) Opcode {
	return LDB_IMM_BASE + general(reg)
}

// LoadMemOpcode returns the opcode of LDB reg,[mem].
func LoadMemOpcode(reg control.Register) Opcode {
	return LDB_MEM_BASE + general(reg)
}

// StoreMemOpcode returns the opcode of STB [mem],reg.
func StoreMemOpcode(reg control.Register) Opcode {
	return STB_MEM_BASE + general(reg)
}

// PushOpcode returns the opcode of PUSH reg.
func PushOpcode(reg control.Register) Opcode {
	if reg == control.REG_F {
		return PUSH_F
	}
	return PUSH_BASE + general(reg)
}

// PopOpcode returns the opcode of POP reg.
func PopOpcode(reg control.Register) Opcode {
	if reg == control.REG_F {
		return POP_F
	}
	return POP_BASE + general(reg)
}

// JumpOpcode returns the opcode of the jump taken on cond.
func JumpOpcode(cond control.Condition) Opcode {
	return JMP + Opcode(cond)
}
