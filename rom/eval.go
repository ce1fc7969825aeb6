package rom

import (
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucrom/control"
	"github.com/ezrec/ucrom/isa"
)

// Defines returns every opcode mnemonic and control line name, with its
// value.
func Defines() map[string]uint64 {
	defines := map[string]uint64{}
	maps.Insert(defines, isa.Defines())
	maps.Insert(defines, control.Defines())
	return defines
}

// Eval evaluates an integer expression. Opcode mnemonics (MVB_A_B,
// MVB_A_B_TRAP) and control line names (PC_OUT) are predeclared.
func Eval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range Defines() {
		pred[key] = starlark.MakeUint64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = st_int.Uint64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}
