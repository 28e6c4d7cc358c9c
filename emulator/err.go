package emulator

import (
	"strconv"

	"github.com/ezrec/ram/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint32
	Err    error
}

// Numbers are preformatted, as the locale printer would group their digits.
func (err *ErrRuntime) Error() string {
	return f("line %v pc %v %v",
		strconv.Itoa(err.LineNo), strconv.FormatUint(uint64(err.Pc), 10), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
