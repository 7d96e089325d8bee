package cpu

import (
	"errors"
)

// AluOp is an ALU operation type.
type AluOp int

// Only ADD and MUL are implemented by the ALU; other operations fault.
//
//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
	ALU_OP_SUB = AluOp(2) // SUB
)

// Alu computes op on two register values. Results wrap modulo 256.
func Alu(op AluOp, a, b byte) (output byte, err error) {
	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_MUL:
		output = a * b
	default:
		err = errors.Join(ErrAluUnsupported, ErrAluOp(op))
	}

	return
}

// ApplyAlu performs op on registers reg_a and reg_b, storing the result in reg_a.
func (cpu *Cpu) ApplyAlu(op AluOp, reg_a, reg_b int) (err error) {
	a, err := cpu.Register.Get(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Get(reg_b)
	if err != nil {
		return
	}

	output, err := Alu(op, a, b)
	if err != nil {
		return
	}

	return cpu.Register.Set(reg_a, output)
}
