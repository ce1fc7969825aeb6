package microcode

import (
	"fmt"
	"strings"

	"github.com/ezrec/ucrom/control"
)

// CYCLES is the number of clock cycles available to every opcode.
const CYCLES = 8

// Sequence is the control word for each clock cycle of an opcode.
type Sequence [CYCLES]control.Word

// finish lays out the active cycles of an instruction, padding the rest
// with idle words. A trap variant halts on the terminal cycle.
func finish(trap bool, cycles ...control.Signal) (seq Sequence) {
	if len(cycles) == 0 || len(cycles) > CYCLES {
		panic(fmt.Sprintf("microcode: %d active cycles", len(cycles)))
	}

	for n, sig := range cycles {
		seq[n] = control.Word(sig)
	}

	if trap {
		seq[len(cycles)-1] |= control.Word(control.HALT)
	}

	return
}

// Active returns the number of cycles up to and including the last
// non-idle cycle.
func (seq Sequence) Active() int {
	for n := CYCLES - 1; n >= 0; n-- {
		if !seq[n].Idle() {
			return n + 1
		}
	}
	return 0
}

// Terminal returns the index of the cycle that ends the instruction, or -1
// for an empty sequence.
func (seq Sequence) Terminal() int {
	return seq.Active() - 1
}

// Empty returns true if no cycle asserts any line.
func (seq Sequence) Empty() bool {
	return seq.Active() == 0
}

// Trap returns the sequence with the halt line added to the terminal cycle.
func (seq Sequence) Trap() Sequence {
	if n := seq.Terminal(); n >= 0 {
		seq[n] |= control.Word(control.HALT)
	}
	return seq
}

// String returns the active cycles, one per line.
func (seq Sequence) String() string {
	var lines []string
	for n := range seq.Active() {
		lines = append(lines, fmt.Sprintf("%d: %v", n, seq[n]))
	}
	return strings.Join(lines, "\n")
}
