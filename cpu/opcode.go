package cpu

import (
	"fmt"
	"strings"
)

// Kind identifies the instruction an opcode byte decodes to.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UNKNOWN        = Kind(0) // ???
	KIND_HALT           = Kind(1) // HLT
	KIND_LOAD_IMMEDIATE = Kind(2) // LDI
	KIND_PRINT_REGISTER = Kind(3) // PRN
	KIND_MULTIPLY       = Kind(4) // MUL
	KIND_PUSH           = Kind(5) // PUSH
	KIND_POP            = Kind(6) // POP
)

// Opcode byte encodings.
// The upper 2 bits of each opcode are its operand count.
const (
	OP_HLT  = byte(0b00000001)
	OP_LDI  = byte(0b10000010)
	OP_PRN  = byte(0b01000111)
	OP_MUL  = byte(0b10100010)
	OP_PUSH = byte(0b01000101)
	OP_POP  = byte(0b01000110)

	OPERAND_MASK  = byte(0b11000000) // Mask of the operand count bits.
	OPERAND_SHIFT = 6
)

// OperandType describes how an operand byte is interpreted.
type OperandType int

const (
	OPERAND_REGISTER  = OperandType(iota) // Register index.
	OPERAND_IMMEDIATE                     // Immediate value.
)

type kindInfo struct {
	opcode   byte
	operands []OperandType
}

var kindTable = map[Kind]kindInfo{
	KIND_HALT:           {OP_HLT, nil},
	KIND_LOAD_IMMEDIATE: {OP_LDI, []OperandType{OPERAND_REGISTER, OPERAND_IMMEDIATE}},
	KIND_PRINT_REGISTER: {OP_PRN, []OperandType{OPERAND_REGISTER}},
	KIND_MULTIPLY:       {OP_MUL, []OperandType{OPERAND_REGISTER, OPERAND_REGISTER}},
	KIND_PUSH:           {OP_PUSH, []OperandType{OPERAND_REGISTER}},
	KIND_POP:            {OP_POP, []OperandType{OPERAND_REGISTER}},
}

var opcodeKind = map[byte]Kind{}

func init() {
	for kind, info := range kindTable {
		if OperandCount(info.opcode) != len(info.operands) {
			panic(fmt.Sprintf("opcode %v: operand count mismatch", kind))
		}
		opcodeKind[info.opcode] = kind
	}
}

// OperandCount returns the number of operand bytes following opcode.
// This holds for every byte, recognized as an instruction or not.
func OperandCount(opcode byte) int {
	return int((opcode & OPERAND_MASK) >> OPERAND_SHIFT)
}

// DecodeKind returns the instruction kind of an opcode byte.
func DecodeKind(opcode byte) Kind {
	return opcodeKind[opcode]
}

// Opcode returns the opcode byte encoding the kind.
func (kind Kind) Opcode() (opcode byte, ok bool) {
	info, ok := kindTable[kind]
	opcode = info.opcode
	return
}

// Operands returns the operand types the kind expects.
func (kind Kind) Operands() []OperandType {
	return kindTable[kind].operands
}

// Instruction is a decoded instruction.
type Instruction struct {
	Pc       int     // Address of the opcode byte.
	Opcode   byte    // Opcode byte.
	Kind     Kind    // Decoded instruction kind.
	Operands [2]byte // Operand bytes, possibly unused.
}

// Decode decodes an opcode and the two bytes following it.
func Decode(pc int, opcode, operand_a, operand_b byte) Instruction {
	return Instruction{
		Pc:       pc,
		Opcode:   opcode,
		Kind:     DecodeKind(opcode),
		Operands: [2]byte{operand_a, operand_b},
	}
}

// OperandCount returns the number of operand bytes of the instruction.
func (ins Instruction) OperandCount() int {
	return OperandCount(ins.Opcode)
}

// Size returns the number of bytes occupied by the instruction.
func (ins Instruction) Size() int {
	return 1 + ins.OperandCount()
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	count := min(ins.OperandCount(), len(ins.Operands))

	if ins.Kind == KIND_UNKNOWN {
		args := make([]string, count)
		for n := range count {
			args[n] = fmt.Sprintf("0x%02x", ins.Operands[n])
		}
		return strings.TrimSpace(fmt.Sprintf("%v 0b%08b %v", ins.Kind, ins.Opcode, strings.Join(args, ",")))
	}

	var args []string
	for n, kind := range ins.Kind.Operands() {
		switch kind {
		case OPERAND_REGISTER:
			args = append(args, fmt.Sprintf("r%d", ins.Operands[n]))
		case OPERAND_IMMEDIATE:
			args = append(args, fmt.Sprintf("%d", ins.Operands[n]))
		}
	}

	if len(args) == 0 {
		return ins.Kind.String()
	}

	return fmt.Sprintf("%v %v", ins.Kind, strings.Join(args, ","))
}
