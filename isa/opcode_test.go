package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucrom/control"
)

func TestOpcode_Map(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Opcode(0x00), NOP)
	assert.Equal(Opcode(0x01), BRK)
	assert.Equal(Opcode(0x0c), POP_F)
	assert.Equal(Opcode(0x0d), MVB_BASE)
	assert.Equal(Opcode(0x19), ALU_REG_BASE)
	assert.Equal(Opcode(0x49), NOT_BASE)
	assert.Equal(Opcode(0x4d), ALU_IMM_BASE)
	assert.Equal(Opcode(0x65), ALU_MEM_BASE)
	assert.Equal(Opcode(0x69), LDB_IMM_BASE)
	assert.Equal(Opcode(0x6d), LDB_MEM_BASE)
	assert.Equal(Opcode(0x71), STB_MEM_BASE)
	assert.Equal(Opcode(0x75), PUSH_BASE)
	assert.Equal(Opcode(0x79), POP_BASE)
	assert.Equal(Opcode(0x7d), POP_DISCARD)
	assert.Equal(Opcode(0x7e), PUSH_IMM)
	assert.Equal(Opcode(0x7f), MVB_B_F)
	assert.Equal(Opcode(LOGICAL), OPCODE_LIMIT)
}

func TestOpcode_Pairs(t *testing.T) {
	assert := assert.New(t)

	var index Opcode
	for dst, src := range Pairs() {
		assert.NotEqual(dst, src)
		assert.Equal(index, pair(dst, src))
		assert.Equal(MVB_BASE+index, MoveOpcode(dst, src))
		index++
	}
	assert.Equal(Opcode(PAIRS), index)

	assert.Equal(Opcode(0x0d), MoveOpcode(control.REG_A, control.REG_B))
	assert.Equal(Opcode(0x10), MoveOpcode(control.REG_B, control.REG_A))
	assert.Equal(Opcode(0x18), MoveOpcode(control.REG_D, control.REG_C))
}

func TestOpcode_Helpers(t *testing.T) {
	assert := assert.New(t)

	a, b, c, d, fl := control.REG_A, control.REG_B, control.REG_C, control.REG_D, control.REG_F

	assert.Equal(MVB_A_F, MoveOpcode(a, fl))
	assert.Equal(MVB_F_A, MoveOpcode(fl, a))
	assert.Equal(ALU_REG_BASE, AluRegOpcode(control.ALU_OP_ADD, a, b))
	assert.Equal(ALU_REG_BASE+PAIRS, AluRegOpcode(control.ALU_OP_SUB, a, b))
	assert.Equal(NOT_BASE-1, AluRegOpcode(control.ALU_OP_OR, d, c))
	assert.Equal(NOT_BASE+2, NotOpcode(c))
	assert.Equal(ALU_IMM_BASE+4*4+1, AluImmOpcode(control.ALU_OP_SHL, b))
	assert.Equal(ALU_MEM_BASE-1, AluImmOpcode(control.ALU_OP_SHR, d))
	assert.Equal(ALU_MEM_BASE+3, AluMemOpcode(control.ALU_OP_OR))
	assert.Equal(LDB_IMM_BASE+3, LoadImmOpcode(d))
	assert.Equal(LDB_MEM_BASE, LoadMemOpcode(a))
	assert.Equal(STB_MEM_BASE+1, StoreMemOpcode(b))
	assert.Equal(PUSH_F, PushOpcode(fl))
	assert.Equal(PUSH_BASE+2, PushOpcode(c))
	assert.Equal(POP_F, PopOpcode(fl))
	assert.Equal(POP_DISCARD-1, PopOpcode(d))
	assert.Equal(MVB_B_F, MoveOpcode(b, fl))
	assert.Equal(JMP, JumpOpcode(control.COND_ALWAYS))
	assert.Equal(JEZ, JumpOpcode(control.COND_ZERO))
	assert.Equal(JCS, JumpOpcode(control.COND_CARRY))
}

func TestOpcode_Invalid(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { MoveOpcode(control.REG_A, control.REG_A) })
	assert.Panics(func() { MoveOpcode(control.REG_C, control.REG_F) })
	assert.Panics(func() { MoveOpcode(control.REG_F, control.REG_B) })
	assert.Panics(func() { AluRegOpcode(control.ALU_OP_SHL, control.REG_A, control.REG_B) })
	assert.Panics(func() { AluMemOpcode(control.ALU_OP_NOT) })
	assert.Panics(func() { NotOpcode(control.REG_F) })
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", NOP.String())
	assert.Equal("NOP_TRAP", (NOP | TRAP).String())
	assert.Equal("MVB_A_B", MoveOpcode(control.REG_A, control.REG_B).String())
	assert.Equal("SBB_C_D", AluRegOpcode(control.ALU_OP_SUB, control.REG_C, control.REG_D).String())
	assert.Equal("SHR_A_IMM", AluImmOpcode(control.ALU_OP_SHR, control.REG_A).String())
	assert.Equal("LOR_A_MEM", AluMemOpcode(control.ALU_OP_OR).String())
	assert.Equal("STB_MEM_D", StoreMemOpcode(control.REG_D).String())
	assert.Equal("PUSH_IMM", Opcode(0x7e).String())
	assert.Equal("MVB_B_F_TRAP", Opcode(0xff).String())

	assert.True(Opcode(0x85).Trap())
	assert.Equal(Opcode(0x05), Opcode(0x85).Logical())
	assert.False(JEZ.Trap())
}
