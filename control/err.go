package control

import (
	"github.com/ezrec/ucrom/translate"
)

var f = translate.From

// ErrLengthInvalid is an instruction length that does not fit the length tag.
type ErrLengthInvalid int

func (err ErrLengthInvalid) Error() string {
	return f("instruction length %d outside 1..%d", int(err), LENGTH_MAX)
}
