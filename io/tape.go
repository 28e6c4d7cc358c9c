package io

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// PROMPT is written before every value read from a Tape.
const PROMPT = "-> "

// Tape provides line oriented integer I/O.
// It wraps an io.Reader for input and io.Writer for output, converting
// between decimal text lines and 16-bit values.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	writer *bufio.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind flushes pending output and drops any buffered input.
func (tc *Tape) Rewind() {
	if tc.writer != nil {
		tc.writer.Flush()
	}
	tc.reader = nil
	tc.writer = nil
}

func (tc *Tape) in() *bufio.Reader {
	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}
	return tc.reader
}

func (tc *Tape) out() *bufio.Writer {
	if tc.writer == nil {
		output := tc.Output
		if output == nil {
			output = io.Discard
		}
		tc.writer = bufio.NewWriter(output)
	}
	return tc.writer
}

// prompt writes the prompt marker, flushing all prior output with it.
func (tc *Tape) prompt() (err error) {
	_, err = tc.out().WriteString(PROMPT)
	if err != nil {
		return
	}

	return tc.Flush()
}

// Receive prompts for and reads a decimal value, one per line.
// Lines that are not a 16-bit integer are discarded and re-prompted.
func (tc *Tape) Receive() (value int16, err error) {
	if tc.Input == nil {
		err = ErrInputClosed
		return
	}

	for {
		err = tc.prompt()
		if err != nil {
			return
		}

		var line string
		line, err = tc.in().ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}

		v64, parse_err := strconv.ParseInt(strings.TrimSpace(line), 10, 16)
		if parse_err == nil {
			value = int16(v64)
			err = nil
			return
		}

		if err != nil {
			// EOF, and no usable value before it.
			err = ErrInputClosed
			return
		}
	}
}

// Send writes a value as a decimal line.
func (tc *Tape) Send(value int16) (err error) {
	w := tc.out()

	_, err = w.WriteString(strconv.Itoa(int(value)))
	if err != nil {
		return
	}

	err = w.WriteByte('\n')
	return
}

// Flush writes any buffered output.
func (tc *Tape) Flush() (err error) {
	if tc.writer == nil {
		return
	}

	return tc.writer.Flush()
}
