// Package microcode builds the per-cycle control word sequences for each
// instruction category of the 8-bit sequencer.
//
// Every builder is a pure function of its operands. Cycle 0 of every
// sequence is the opcode fetch, and the last active cycle terminates the
// instruction. When a trap variant is requested the terminal cycle also
// asserts the halt line, so the processor stops after the instruction
// completes.
package microcode
