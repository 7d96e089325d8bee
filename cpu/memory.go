package cpu

import (
	"errors"
	"iter"
)

const (
	MEMORY_SIZE = 256 // Number of addressable memory cells.
)

// Memory is the byte addressable main memory of the CPU.
type Memory [MEMORY_SIZE]byte

// Read returns the cell at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = errors.Join(ErrAddressRange, ErrAddress(address))
		return
	}

	value = mem[address]
	return
}

// Write sets the cell at address.
func (mem *Memory) Write(address int, value byte) (err error) {
	if address < 0 || address >= len(mem) {
		err = errors.Join(ErrAddressRange, ErrAddress(address))
		return
	}

	mem[address] = value
	return
}

// Fetch is a speculative read, wrapping address around the memory size.
// It never faults; the value may be garbage if the caller does not use it.
func (mem *Memory) Fetch(address int) byte {
	address %= len(mem)
	if address < 0 {
		address += len(mem)
	}

	return mem[address]
}

// Load fills memory from address 0 with the bytes of data.
func (mem *Memory) Load(data iter.Seq[byte]) (err error) {
	address := 0
	for value := range data {
		if address >= len(mem) {
			err = ErrProgramTooLarge
			return
		}
		mem[address] = value
		address++
	}

	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
