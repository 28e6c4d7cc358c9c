package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/ram/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrChannelInvalid  = errors.New(f("channel invalid"))
	ErrDivisionByZero  = errors.New(f("division by zero"))
	ErrNumericOverflow = errors.New(f("numeric overflow"))
	ErrOperatorInvalid = errors.New(f("operator invalid"))

	// Assembler errors
	ErrMissingOperand = errors.New(f("missing operand"))
)

// ErrUnknownMnemonic is the offending token of an unknown mnemonic.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("illegal operator '%v'", string(err))
}

// ErrOperand wraps the cause of an operand that is not a 16-bit integer.
type ErrOperand struct {
	Token string
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("invalid number '%v': %v", err.Token, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrAddressRange is a memory address outside of the memory bank.
type ErrAddressRange int16

func (err ErrAddressRange) Error() string {
	return f("address %v out of range", strconv.Itoa(int(err)))
}

// Is matches any ErrAddressRange.
func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrJumpRange is a jump target outside of the program.
type ErrJumpRange int16

func (err ErrJumpRange) Error() string {
	return f("jump target %v out of range", strconv.Itoa(int(err)))
}

// Is matches any ErrJumpRange.
func (err ErrJumpRange) Is(target error) (ok bool) {
	_, ok = target.(ErrJumpRange)
	return
}

// ErrOpcode is the instruction that failed to execute.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad instruction '%v'", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax is the source location of a compile error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
