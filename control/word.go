package control

import (
	"fmt"
)

// Instruction length tag layout.
const (
	LENGTH_SHIFT = 62                         // Bit position of the length tag.
	LENGTH_MAX   = 3                          // Longest instruction, in bytes.
	LENGTH_MASK  = Word(0b11) << LENGTH_SHIFT // Mask of the length tag.
)

// Word is the control store contents for one clock cycle.
//
// The low bits are the asserted control lines. The top two bits optionally
// carry the byte length (1..3) of the instruction the word belongs to; zero
// means the word is untagged.
type Word uint64

// IDLE is the word of a cycle where nothing is asserted.
const IDLE = Word(0)

// Signals returns the control lines of the word, without the length tag.
func (w Word) Signals() Signal {
	return Signal(w &^ LENGTH_MASK)
}

// Length returns the instruction length tag, or 0 if untagged.
func (w Word) Length() int {
	return int(w >> LENGTH_SHIFT)
}

// WithLength returns the word tagged with an instruction length.
func (w Word) WithLength(length int) (tagged Word, err error) {
	if length < 1 || length > LENGTH_MAX {
		err = ErrLengthInvalid(length)
		return
	}

	tagged = (w &^ LENGTH_MASK) | (Word(length) << LENGTH_SHIFT)
	return
}

// Has returns true if every line of sig is asserted in the word.
func (w Word) Has(sig Signal) bool {
	return w.Signals()&sig == sig
}

// Idle returns true if the word asserts no lines.
func (w Word) Idle() bool {
	return w.Signals() == 0
}

// String returns the asserted line names, and the length tag if present.
func (w Word) String() string {
	if w.Length() == 0 {
		return w.Signals().String()
	}
	return fmt.Sprintf("%v len=%d", w.Signals(), w.Length())
}
