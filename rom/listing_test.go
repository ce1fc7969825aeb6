package rom

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/isa"
)

func TestListing(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{})

	var buf bytes.Buffer
	err := Listing{}.Fprint(&buf, tbl, isa.NOP)
	assert.NoError(err)

	expected := fmt.Sprintf("0x00 NOP len=1\n  0: %v\n  1: %v\n", control.FETCH, control.PC_NEXT)
	assert.Equal(expected, buf.String())

	buf.Reset()
	err = Listing{}.Fprint(&buf, tbl, isa.NOP|isa.TRAP)
	assert.NoError(err)
	assert.Contains(buf.String(), "0x80 NOP_TRAP len=1\n")
	assert.Contains(buf.String(), "  1: pc.next|halt\n")
	assert.NotContains(buf.String(), "\x1b[")

	empty, err := Assemble(catalogOf(), Options{})
	assert.NoError(err)

	buf.Reset()
	err = Listing{}.Fprint(&buf, empty, 0x7f)
	assert.NoError(err)
	assert.Equal("0x7f 0x7f len=0\n", buf.String())

	buf.Reset()
	err = Listing{}.Fprint(&buf, tbl, isa.MVB_B_F)
	assert.NoError(err)
	assert.Contains(buf.String(), "0x7f MVB_B_F len=1\n")
	assert.Contains(buf.String(), "f.bus")
}

func TestListing_Color(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{LengthTag: true})

	var buf bytes.Buffer
	err := Listing{Color: true}.Fprint(&buf, tbl, isa.BRK)
	assert.NoError(err)

	text := buf.String()
	assert.Contains(text, colorHeader+"0x01 BRK len=1"+ansi.Reset)
	assert.Contains(text, colorTerminal+"1:"+ansi.Reset)
	assert.Contains(text, colorHalt+"halt"+ansi.Reset)
	assert.Contains(text, colorLength+"len=1"+ansi.Reset)
}

func TestListing_All(t *testing.T) {
	assert := assert.New(t)

	tbl := MustAssemble(isa.Catalog(), Options{})

	var buf bytes.Buffer
	err := Listing{}.FprintAll(&buf, tbl)
	assert.NoError(err)

	headers := 0
	for line := range strings.Lines(buf.String()) {
		if strings.HasPrefix(line, "0x") {
			headers++
		}
	}
	assert.Equal(2*int(isa.OPCODE_LIMIT), headers)
}
