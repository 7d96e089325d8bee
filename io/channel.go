// Package io provides I/O channel implementations for the LS-8 emulator.
// It includes a read-only ROM holding a boot image, and a Tape for
// sequential byte input and printed output.
package io

import (
	"iter"
)

// Channel defines the interface for all I/O channels in the LS-8 system.
// Channels operate at the byte level; input is consumed when the CPU
// boots from the channel, output is produced by PRN and HLT.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the channel.
	Receive() iter.Seq[byte]
	// Send prints a single value to the channel.
	Send(value byte) error
	// Alert sends a notice line to the channel.
	Alert(notice string) error
}
