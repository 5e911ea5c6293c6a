package collection

import (
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
)

// outOfRange reports whether index lies outside [0, upper).
func outOfRange(index, upper int) bool {
	return index < 0 || index >= upper
}

func indexError(op string, index, upper int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s at %d, valid range is [0, %d)", op, index, upper)
}
