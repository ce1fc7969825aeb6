package rom

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/isa"
	"github.com/ezrec/ucrom/microcode"
)

const (
	WORD_BYTES = 8                                           // Bytes per control word.
	IMAGE_SIZE = isa.OPCODES * microcode.CYCLES * WORD_BYTES // Bytes per control store image.
)

// wordGroups is the stored layout of a control word: four 16-bit groups from
// least to most significant, each big-endian.
type wordGroups struct {
	Bits15_0  uint16 `struc:"uint16,big"`
	Bits31_16 uint16 `struc:"uint16,big"`
	Bits47_32 uint16 `struc:"uint16,big"`
	Bits63_48 uint16 `struc:"uint16,big"`
}

// EncodeWord writes the stored form of a control word.
func EncodeWord(w io.Writer, word control.Word) (err error) {
	groups := wordGroups{
		Bits15_0:  uint16(word >> 0),
		Bits31_16: uint16(word >> 16),
		Bits47_32: uint16(word >> 32),
		Bits63_48: uint16(word >> 48),
	}
	return struc.PackWithOrder(w, &groups, binary.BigEndian)
}

// DecodeWord reads the stored form of a control word.
func DecodeWord(r io.Reader) (word control.Word, err error) {
	var groups wordGroups
	err = struc.UnpackWithOrder(r, &groups, binary.BigEndian)
	if err != nil {
		return
	}

	word = control.Word(groups.Bits15_0)<<0 |
		control.Word(groups.Bits31_16)<<16 |
		control.Word(groups.Bits47_32)<<32 |
		control.Word(groups.Bits63_48)<<48
	return
}

// counter tracks the bytes passed to a writer.
type counter struct {
	w io.Writer
	n int64
}

func (c *counter) Write(buf []byte) (n int, err error) {
	n, err = c.w.Write(buf)
	c.n += int64(n)
	return
}

// WriteTo writes the control store image, every word of every opcode slot in
// address order.
func (tbl *Table) WriteTo(w io.Writer) (n int64, err error) {
	out := &counter{w: w}
	buf := bufio.NewWriter(out)

	for addr, word := range tbl.Words() {
		err = EncodeWord(buf, word)
		if err != nil {
			op := isa.Opcode(addr / microcode.CYCLES)
			err = errors.Wrapf(err, "0x%02x %v cycle %d", uint8(op), tbl.Mnemonic(op), addr%microcode.CYCLES)
			n = out.n
			return
		}
	}

	err = buf.Flush()
	n = out.n
	if err != nil {
		err = errors.Wrap(err, "control store image")
	}
	return
}

// Image is a control store image read back into opcode sequences.
type Image [isa.OPCODES]microcode.Sequence

// ReadImage reads a complete control store image.
func ReadImage(r io.Reader) (image *Image, err error) {
	img := &Image{}
	in := bufio.NewReader(r)

	for op := range img {
		for cycle := range img[op] {
			img[op][cycle], err = DecodeWord(in)
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				err = errors.Wrapf(ErrImageShort, "0x%02x cycle %d", op, cycle)
			}
			if err != nil {
				return
			}
		}
	}

	image = img
	return
}
