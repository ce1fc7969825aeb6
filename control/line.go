// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package control

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// Line is the bit position of a single control line.
type Line int

//go:generate go tool stringer -linecomment -type=Line
const (
	// Register file latches.
	LINE_RF_A_IN  = Line(iota) // rf.a.in
	LINE_RF_B_IN               // rf.b.in
	LINE_RF_C_IN               // rf.c.in
	LINE_RF_D_IN               // rf.d.in
	LINE_RF_F_IN               // rf.f.in
	LINE_RF_A_OUT              // rf.a.out
	LINE_RF_B_OUT              // rf.b.out
	LINE_RF_C_OUT              // rf.c.out
	LINE_RF_D_OUT              // rf.d.out
	LINE_RF_F_OUT              // rf.f.out

	// Load-store unit.
	LINE_LSU_READ     // lsu.read
	LINE_LSU_WRITE    // lsu.write
	LINE_LSU_ROM      // lsu.rom
	LINE_LSU_RAM      // lsu.ram
	LINE_LSU_SP_OUT   // lsu.sp.out
	LINE_LSU_SP_COUNT // lsu.sp.count
	LINE_LSU_SP_DOWN  // lsu.sp.down

	// Arithmetic logic unit.
	LINE_ALU_ADD  // alu.add
	LINE_ALU_SUB  // alu.sub
	LINE_ALU_AND  // alu.and
	LINE_ALU_OR   // alu.or
	LINE_ALU_NOT  // alu.not
	LINE_ALU_SHL  // alu.shl
	LINE_ALU_SHR  // alu.shr
	LINE_ALU_A_IN // alu.a.in
	LINE_ALU_B_IN // alu.b.in
	LINE_ALU_F_IN // alu.f.in
	LINE_ALU_OUT  // alu.out

	// Instruction register.
	LINE_IR_IN // ir.in

	// Program counter.
	LINE_PC_LOAD // pc.load
	LINE_PC_NEXT // pc.next
	LINE_PC_OUT  // pc.out

	// Address composition unit.
	LINE_EAU_LO_IN // eau.lo.in
	LINE_EAU_HI_IN // eau.hi.in
	LINE_EAU_OUT   // eau.out

	// Address decomposition unit.
	LINE_EDU_LO_OUT // edu.lo.out
	LINE_EDU_HI_OUT // edu.hi.out

	// Miscellaneous.
	LINE_JUMP       // jump
	LINE_JUMP_ZERO  // jump.zero
	LINE_JUMP_CARRY // jump.carry
	LINE_F_BUS      // f.bus
	LINE_QUANTUM_0  // quantum.0
	LINE_QUANTUM_1  // quantum.1
	LINE_HALT       // halt
)

// LINE_COUNT is the number of defined control lines.
const LINE_COUNT = int(LINE_HALT) + 1

// Lines may never reach into the instruction length tag.
const _ = uint(LENGTH_SHIFT - LINE_COUNT)

// Signal is a set of control lines.
type Signal uint64

// Signal returns the single-line signal for the line.
func (line Line) Signal() Signal {
	return Signal(1) << uint(line)
}

// Name returns the upper case identifier of the line, as used by the
// expression evaluator and listings.
func (line Line) Name() string {
	return strings.ToUpper(strings.ReplaceAll(line.String(), ".", "_"))
}

const (
	RF_A_IN  = Signal(1) << LINE_RF_A_IN
	RF_B_IN  = Signal(1) << LINE_RF_B_IN
	RF_C_IN  = Signal(1) << LINE_RF_C_IN
	RF_D_IN  = Signal(1) << LINE_RF_D_IN
	RF_F_IN  = Signal(1) << LINE_RF_F_IN
	RF_A_OUT = Signal(1) << LINE_RF_A_OUT
	RF_B_OUT = Signal(1) << LINE_RF_B_OUT
	RF_C_OUT = Signal(1) << LINE_RF_C_OUT
	RF_D_OUT = Signal(1) << LINE_RF_D_OUT
	RF_F_OUT = Signal(1) << LINE_RF_F_OUT

	LSU_READ     = Signal(1) << LINE_LSU_READ
	LSU_WRITE    = Signal(1) << LINE_LSU_WRITE
	LSU_ROM      = Signal(1) << LINE_LSU_ROM
	LSU_RAM      = Signal(1) << LINE_LSU_RAM
	LSU_SP_OUT   = Signal(1) << LINE_LSU_SP_OUT
	LSU_SP_COUNT = Signal(1) << LINE_LSU_SP_COUNT
	LSU_SP_DOWN  = Signal(1) << LINE_LSU_SP_DOWN

	ALU_ADD  = Signal(1) << LINE_ALU_ADD
	ALU_SUB  = Signal(1) << LINE_ALU_SUB
	ALU_AND  = Signal(1) << LINE_ALU_AND
	ALU_OR   = Signal(1) << LINE_ALU_OR
	ALU_NOT  = Signal(1) << LINE_ALU_NOT
	ALU_SHL  = Signal(1) << LINE_ALU_SHL
	ALU_SHR  = Signal(1) << LINE_ALU_SHR
	ALU_A_IN = Signal(1) << LINE_ALU_A_IN
	ALU_B_IN = Signal(1) << LINE_ALU_B_IN
	ALU_F_IN = Signal(1) << LINE_ALU_F_IN
	ALU_OUT  = Signal(1) << LINE_ALU_OUT

	IR_IN = Signal(1) << LINE_IR_IN

	PC_LOAD = Signal(1) << LINE_PC_LOAD
	PC_NEXT = Signal(1) << LINE_PC_NEXT
	PC_OUT  = Signal(1) << LINE_PC_OUT

	EAU_LO_IN = Signal(1) << LINE_EAU_LO_IN
	EAU_HI_IN = Signal(1) << LINE_EAU_HI_IN
	EAU_OUT   = Signal(1) << LINE_EAU_OUT

	EDU_LO_OUT = Signal(1) << LINE_EDU_LO_OUT
	EDU_HI_OUT = Signal(1) << LINE_EDU_HI_OUT

	JUMP       = Signal(1) << LINE_JUMP
	JUMP_ZERO  = Signal(1) << LINE_JUMP_ZERO
	JUMP_CARRY = Signal(1) << LINE_JUMP_CARRY
	F_BUS      = Signal(1) << LINE_F_BUS
	QUANTUM_0  = Signal(1) << LINE_QUANTUM_0
	QUANTUM_1  = Signal(1) << LINE_QUANTUM_1
	HALT       = Signal(1) << LINE_HALT
)

// Composite patterns shared by the instruction categories.
const (
	FETCH_DATA = PC_OUT | LSU_ROM | LSU_READ // Read program memory at the PC.
	FETCH      = FETCH_DATA | IR_IN          // Fetch the opcode into the IR.

	ADVANCE = PC_NEXT // Move on to the next instruction.
	STEP    = PC_NEXT // Skip one immediate byte mid-instruction.

	IMMEDIATE_0 = FETCH_DATA | QUANTUM_0 // First byte after the opcode.
	IMMEDIATE_1 = FETCH_DATA | QUANTUM_1 // Second byte after the opcode.

	RAM_READ  = EAU_OUT | LSU_RAM | LSU_READ
	RAM_WRITE = EAU_OUT | LSU_RAM | LSU_WRITE

	STACK_READ  = LSU_SP_OUT | LSU_RAM | LSU_READ
	STACK_WRITE = LSU_SP_OUT | LSU_RAM | LSU_WRITE

	SP_INCREMENT = LSU_SP_COUNT
	SP_DECREMENT = LSU_SP_COUNT | LSU_SP_DOWN

	POP_TOP = STACK_READ | SP_INCREMENT // Read top of stack, then step SP up.

	LOAD_ADDRESS = EAU_OUT | PC_LOAD // Load the PC from the composed address.

	// Every line that drives the data or address bus.
	BUS_OUTPUTS = RF_A_OUT | RF_B_OUT | RF_C_OUT | RF_D_OUT | RF_F_OUT |
		LSU_READ | ALU_OUT | PC_OUT | EAU_OUT | EDU_LO_OUT | EDU_HI_OUT | F_BUS

	// Every line that ends the instruction.
	TERMINATORS = PC_NEXT | HALT
)

// Lines returns an iterator over every control line, in bit order.
func Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for line := range Line(LINE_COUNT) {
			if !yield(line) {
				return
			}
		}
	}
}

// Lines returns an iterator over the lines asserted by the signal.
func (sig Signal) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for line := range Lines() {
			if sig&line.Signal() != 0 {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// String returns the names of the asserted lines, joined by '|'.
func (sig Signal) String() string {
	var names []string
	for line := range sig.Lines() {
		names = append(names, line.String())
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

var _control_defines = func() map[string]uint64 {
	defines := make(map[string]uint64, LINE_COUNT+1)
	for line := range Lines() {
		defines[line.Name()] = uint64(line.Signal())
	}
	defines["LENGTH_SHIFT"] = LENGTH_SHIFT
	return defines
}()

// Defines returns an iterator over the names and values of every control line.
func Defines() iter.Seq2[string, uint64] {
	return maps.All(_control_defines)
}

// GoString returns the signal as a hexadecimal literal.
func (sig Signal) GoString() string {
	return fmt.Sprintf("0x%016x", uint64(sig))
}
