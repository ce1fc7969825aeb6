package control

// Register selects a register file entry. REG_F is the flags pseudo-register.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_A = Register(0) // a
	REG_B = Register(1) // b
	REG_C = Register(2) // c
	REG_D = Register(3) // d
	REG_F = Register(4) // f
)

var registerIn = [...]Signal{RF_A_IN, RF_B_IN, RF_C_IN, RF_D_IN, RF_F_IN}
var registerOut = [...]Signal{RF_A_OUT, RF_B_OUT, RF_C_OUT, RF_D_OUT, RF_F_OUT}

// GENERAL_REGISTERS are the four data registers, in encoding order.
var GENERAL_REGISTERS = [...]Register{REG_A, REG_B, REG_C, REG_D}

// In returns the input latch enable of the register.
func (reg Register) In() Signal {
	return registerIn[reg]
}

// Out returns the output enable of the register.
func (reg Register) Out() Signal {
	return registerOut[reg]
}

// Bus returns the extra lines needed to route the register over the data
// bus. The flags register reaches the bus through the flags-connect line.
func (reg Register) Bus() Signal {
	if reg == REG_F {
		return F_BUS
	}
	return 0
}

// AluOp selects an ALU operation.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // adc
	ALU_OP_SUB = AluOp(1) // sbb
	ALU_OP_AND = AluOp(2) // and
	ALU_OP_OR  = AluOp(3) // lor
	ALU_OP_NOT = AluOp(4) // not
	ALU_OP_SHL = AluOp(5) // shl
	ALU_OP_SHR = AluOp(6) // shr
)

var aluSignal = [...]Signal{ALU_ADD, ALU_SUB, ALU_AND, ALU_OR, ALU_NOT, ALU_SHL, ALU_SHR}

// Signal returns the ALU operation select line.
func (op AluOp) Signal() Signal {
	return aluSignal[op]
}

// Binary returns true for the two-operand operations.
func (op AluOp) Binary() bool {
	return op != ALU_OP_NOT
}

// Condition selects the branch condition of a program counter load.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_ALWAYS = Condition(0) // always
	COND_ZERO   = Condition(1) // zero
	COND_CARRY  = Condition(2) // carry
)

var conditionSignal = [...]Signal{JUMP, JUMP_ZERO, JUMP_CARRY}

// Signal returns the jump request line of the condition.
func (cond Condition) Signal() Signal {
	return conditionSignal[cond]
}
