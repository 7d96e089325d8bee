package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrAddressRange    = errors.New(f("memory address out of range"))
	ErrRegisterRange   = errors.New(f("register index out of range"))
	ErrAluUnsupported  = errors.New(f("unsupported ALU operation"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))
	ErrProgramTooLarge = errors.New(f("program exceeds memory"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelPosition      = errors.New(f("label reference must be the last operand"))
	ErrOperandCount       = errors.New(f("wrong number of operands"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrAddress reports the memory address of a range fault.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%x", int(ea))
}

// ErrRegister reports the register index of a range fault.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %d", int(er))
}

// ErrAluOp reports the ALU operation that could not be performed.
type ErrAluOp AluOp

func (ea ErrAluOp) Error() string {
	return f("alu op %v", AluOp(ea).String())
}

// ErrOpcode carries the instruction that failed to execute.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0b%08b at 0x%02x %v", eo.Opcode, eo.Pc, Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrParseBinary is a program line that is not a binary byte literal.
type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8-bit binary number", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
