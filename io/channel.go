// Package io provides the I/O channel implementations for the accumulator
// machine. The Tape channel connects INP and OUT to line oriented text
// streams such as the process console.
package io

// Channel defines the interface for the machine's I/O channel.
// Channels transfer whole 16-bit values.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive blocks until a value is read from the channel.
	Receive() (value int16, err error)
	// Send writes a single value to the channel.
	Send(value int16) error
	// Flush writes any buffered output.
	Flush() error
}
