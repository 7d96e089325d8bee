package io

import (
	"fmt"
	"io"
	"iter"
)

// Tape provides sequential I/O operations for byte streams.
// It wraps an io.Reader for raw byte input, and an io.Writer for
// output, where each sent value is printed in decimal on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields bytes from the input stream,
// until the end of input or a read error.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			return
		}
		var one [1]byte
		for {
			n, err := tc.Input.Read(one[:])
			if n == 1 {
				if !yield(one[0]) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// Send writes value as a decimal line to the output stream.
// Output is discarded if there is no output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}

// Alert writes the notice as a line to the output stream.
func (tc *Tape) Alert(notice string) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, notice)
	return
}
