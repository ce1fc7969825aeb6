package rom

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/isa"
)

var (
	colorHeader   = ansi.ColorCode("default+b")
	colorTerminal = ansi.ColorCode("green+b")
	colorHalt     = ansi.ColorCode("red+b")
	colorLength   = ansi.ColorCode("cyan")
)

// Listing renders opcode sequences as text.
type Listing struct {
	Color bool // Highlight the terminal cycle and the halt line.
}

func (l Listing) paint(color, text string) string {
	if !l.Color {
		return text
	}
	return color + text + ansi.Reset
}

// word renders the asserted lines of a control word.
func (l Listing) word(word control.Word) string {
	var names []string
	for line := range word.Signals().Lines() {
		name := line.String()
		if line == control.LINE_HALT {
			name = l.paint(colorHalt, name)
		}
		names = append(names, name)
	}

	text := "-"
	if len(names) != 0 {
		text = strings.Join(names, "|")
	}

	if length := word.Length(); length != 0 {
		text += " " + l.paint(colorLength, fmt.Sprintf("len=%d", length))
	}

	return text
}

// Fprint writes the listing of one opcode slot.
func (l Listing) Fprint(w io.Writer, tbl *Table, op isa.Opcode) (err error) {
	header := fmt.Sprintf("0x%02x %v len=%d", uint8(op), tbl.Mnemonic(op), tbl.Length(op))
	_, err = fmt.Fprintln(w, l.paint(colorHeader, header))
	if err != nil {
		return
	}

	seq := tbl.Sequence(op)
	terminal := seq.Terminal()
	for cycle := range seq.Active() {
		index := fmt.Sprintf("%d:", cycle)
		if cycle == terminal {
			index = l.paint(colorTerminal, index)
		}
		_, err = fmt.Fprintf(w, "  %v %v\n", index, l.word(seq[cycle]))
		if err != nil {
			return
		}
	}

	return
}

// FprintAll writes the listing of every defined opcode slot.
func (l Listing) FprintAll(w io.Writer, tbl *Table) (err error) {
	for op := range tbl.Opcodes() {
		err = l.Fprint(w, tbl, op)
		if err != nil {
			return
		}
	}
	return
}
