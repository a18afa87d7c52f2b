package console

import (
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// evalExpr evaluates a $(...) operand expression.
func evalExpr(expr string) (value float64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"pi": starlark.Float(math.Pi),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	switch rc := st_rc.(type) {
	case starlark.Float:
		value = float64(rc)
	case starlark.Int:
		rc_int64, ok := rc.Int64()
		if !ok {
			err = ErrParseExpression(expr)
			return
		}
		value = float64(rc_int64)
	default:
		err = ErrParseExpression(expr)
	}

	return
}
