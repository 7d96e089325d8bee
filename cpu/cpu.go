// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/ls8/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// HALT_NOTICE is sent to the output channel by the HLT instruction.
const HALT_NOTICE = "Exiting..."

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // Set to fault on unrecognized opcodes, rather than skip them.

	Memory   Memory       // Main memory.
	Register RegisterFile // Register bank.
	Pc       int          // Program counter.
	Halted   bool         // Set by HLT; no further instructions execute.

	Ticks int // Executed instruction counter.

	channel Channel // Output channel for PRN and HLT.
}

// NewCpu creates a new CPU, with zeroed memory and registers.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// SetChannel sets the output channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the output channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// String returns the current CPU state as a trace line.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Fetch(cpu.Pc),
		cpu.Memory.Fetch(cpu.Pc+1),
		cpu.Memory.Fetch(cpu.Pc+2),
	)
	for _, reg := range cpu.Register {
		text += fmt.Sprintf(" %02X", reg)
	}

	return
}

// Reset the CPU state.
// - Clears memory and registers, including SP.
// - Zeros the program counter and statistics counters.
// - Rewinds the boot channel, and loads memory from it.
func (cpu *Cpu) Reset(boot Channel) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0

	if boot == nil {
		return
	}

	boot.Rewind()
	err = cpu.Memory.Load(boot.Receive())
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: boot loaded")
	}

	return
}

// Fetch fetches and decodes the instruction at the program counter.
// Both operand bytes are always fetched; only the ones the instruction
// consumes must lie within memory.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	opcode, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	ins = Decode(cpu.Pc, opcode, cpu.Memory.Fetch(cpu.Pc+1), cpu.Memory.Fetch(cpu.Pc+2))

	last := cpu.Pc + ins.OperandCount()
	if last >= len(cpu.Memory) {
		err = errors.Join(ErrOpcode(ins), ErrAddressRange, ErrAddress(last))
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	if cpu.Verbose {
		log.Print(cpu.String())
	}

	ins, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(ins)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes a single decoded instruction, and advances the
// program counter past it. On error, the program counter is unchanged.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", ins.Pc, ins)
	}

	next_pc := cpu.Pc + ins.Size()

	reg_a := int(ins.Operands[0])

	switch ins.Kind {
	case KIND_HALT:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err == nil {
			err = channel.Alert(f(HALT_NOTICE))
		}
		cpu.Halted = true
		if err != nil {
			return
		}
	case KIND_LOAD_IMMEDIATE:
		err = cpu.Register.Set(reg_a, ins.Operands[1])
	case KIND_PRINT_REGISTER:
		var value byte
		value, err = cpu.Register.Get(reg_a)
		if err != nil {
			return
		}
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		err = channel.Send(value)
	case KIND_MULTIPLY:
		err = cpu.ApplyAlu(ALU_OP_MUL, reg_a, int(ins.Operands[1]))
	case KIND_PUSH:
		err = cpu.Push(reg_a)
	case KIND_POP:
		err = cpu.Pop(reg_a)
	default:
		if cpu.Strict {
			err = ErrOpcodeInvalid
		}
	}
	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}
