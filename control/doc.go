// Package control defines the control lines of the 8-bit sequencer.
//
// Each Line is one hardware control output with a fixed bit position in a
// 64-bit control Word. A Signal is a set of lines asserted together, and a
// Word is the control store contents for a single clock cycle, optionally
// tagged in its top bits with the byte length of the owning instruction.
//
// The Register, AluOp and Condition selectors map the semantic operands of
// an instruction onto the lines that implement them.
package control
