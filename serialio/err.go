package serialio

import (
	"errors"

	"github.com/ezrec/ucordic/translate"
)

var f = translate.From

var ErrNoPort = errors.New(f("no serial port configured"))
