package cordic

import (
	"errors"

	"github.com/ezrec/ucordic/translate"
)

var f = translate.From

var (
	ErrNotEnabled = errors.New(f("cordic not enabled"))
	ErrBusy       = errors.New(f("cordic busy"))
)
