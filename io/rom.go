package io

import (
	"iter"
	"slices"
)

// Rom is a read-only channel holding a boot image.
type Rom struct {
	Data []byte
}

var _ Channel = (*Rom)(nil)

// Rewind is a no-op; every Receive starts at the first byte.
func (rc *Rom) Rewind() {
}

// Receive yields the boot image.
func (rc *Rom) Receive() iter.Seq[byte] {
	return slices.Values(rc.Data)
}

// Send is not possible on a ROM.
func (rc *Rom) Send(value byte) error {
	return ErrChannelFull
}

// Alert is not possible on a ROM.
func (rc *Rom) Alert(notice string) error {
	return ErrChannelFull
}
