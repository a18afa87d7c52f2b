package console

import (
	"errors"

	"github.com/ezrec/ucordic/translate"
)

var f = translate.From

// ErrOutOfRange reports an operand outside its operation's closed interval.
var ErrOutOfRange = errors.New(f("out of range"))

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
