package cpu

import (
	"errors"
)

const (
	REGISTER_COUNT = 8 // Number of general-purpose registers.
	REG_SP         = 7 // Register used as the stack pointer.
)

// RegisterFile is the general-purpose register bank.
// Arithmetic wrapping is the responsibility of the ALU.
type RegisterFile [REGISTER_COUNT]byte

// Get returns the value of register index.
func (rf *RegisterFile) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(rf) {
		err = errors.Join(ErrRegisterRange, ErrRegister(index))
		return
	}

	value = rf[index]
	return
}

// Set sets the value of register index.
func (rf *RegisterFile) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(rf) {
		err = errors.Join(ErrRegisterRange, ErrRegister(index))
		return
	}

	rf[index] = value
	return
}

// Reset zeros all registers, including the stack pointer.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}
