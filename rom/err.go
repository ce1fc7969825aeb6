package rom

import (
	"errors"

	"github.com/ezrec/ucrom/isa"
	"github.com/ezrec/ucrom/translate"
)

var f = translate.From

var (
	ErrOpcodeRange = errors.New(f("opcode uses the trap select bit"))
	ErrImageShort  = errors.New(f("control store image truncated"))
)

// ErrOpcodeCollision is a second instruction defined on an opcode slot.
type ErrOpcodeCollision struct {
	Opcode   isa.Opcode // Contested opcode.
	Mnemonic string     // Rejected instruction.
	Previous string     // Instruction already in the slot.
}

func (err ErrOpcodeCollision) Error() string {
	return f("opcode 0x%02x %v collides with %v", uint8(err.Opcode), err.Mnemonic, err.Previous)
}

// ErrInstruction is an instruction the table can not hold.
type ErrInstruction struct {
	Opcode   isa.Opcode // Requested opcode.
	Mnemonic string     // Rejected instruction.
	Err      error      // Reason for the rejection.
}

func (err ErrInstruction) Error() string {
	return f("opcode 0x%02x %v: %v", uint8(err.Opcode), err.Mnemonic, err.Err)
}

func (err ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrExpression is an expression that does not evaluate to an unsigned integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("expression '%v' is not an integer", string(err))
}
