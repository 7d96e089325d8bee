package cpu

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

// newTestCpu boots a CPU from program, with output to a buffer.
func newTestCpu(t *testing.T, program []byte) (cpu *Cpu, output *bytes.Buffer) {
	cpu = NewCpu()
	output = &bytes.Buffer{}
	cpu.SetChannel(&io.Tape{Output: output})

	err := cpu.Reset(&io.Rom{Data: program})
	assert.NoError(t, err)

	return
}

// runTestCpu ticks the CPU until it halts, errors, or the limit is reached.
func runTestCpu(cpu *Cpu, limit int) (err error) {
	for range limit {
		err = cpu.Tick()
		if err != nil || cpu.Halted {
			return
		}
	}

	return
}

func TestCpu_Print8(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, []byte{
		0b10000010, 0b00000000, 0b00001000, // LDI R0,8
		0b01000111, 0b00000000, // PRN R0
		0b00000001, // HLT
	})

	assert.NoError(runTestCpu(cpu, 10))
	assert.True(cpu.Halted)
	assert.Equal("8\n"+HALT_NOTICE+"\n", output.String())
	assert.Equal(6, cpu.Pc)
	assert.Equal(3, cpu.Ticks)

	err := cpu.Tick()
	assert.True(errors.Is(err, ErrHalted))
	assert.Equal(6, cpu.Pc)
}

func TestCpu_Mult(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, []byte{
		0b10000010, 0b00000000, 0b00001001, // LDI R0,9
		0b10000010, 0b00000001, 0b00000101, // LDI R1,5
		0b10100010, 0b00000000, 0b00000001, // MUL R0,R1
		0b01000111, 0b00000000, // PRN R0
		0b00000001, // HLT
	})

	assert.NoError(runTestCpu(cpu, 10))
	assert.Equal("45\n"+HALT_NOTICE+"\n", output.String())
	assert.Equal(byte(5), cpu.Register[1])
}

func TestCpu_Stack(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, []byte{
		OP_LDI, 0, 42, // LDI R0,42
		OP_PUSH, 0, // PUSH R0
		OP_LDI, 0, 0, // LDI R0,0
		OP_POP, 1, // POP R1
		OP_PRN, 1, // PRN R1
		OP_PRN, 0, // PRN R0
		OP_HLT,
	})

	assert.NoError(runTestCpu(cpu, 10))
	assert.Equal("42\n0\n"+HALT_NOTICE+"\n", output.String())
	assert.Equal(byte(0), cpu.Register[REG_SP])
	assert.Equal(byte(42), cpu.Memory[0xff])
}

func TestCpu_LoadPrint(t *testing.T) {
	assert := assert.New(t)

	for value := range 256 {
		for reg := range REGISTER_COUNT {
			cpu, output := newTestCpu(t, []byte{
				OP_LDI, byte(reg), byte(value),
				OP_PRN, byte(reg),
			})
			assert.NoError(runTestCpu(cpu, 2))
			if !assert.Equal(fmt.Sprintf("%d\n", value), output.String()) {
				return
			}
		}
	}
}

func TestCpu_Unrecognized(t *testing.T) {
	assert := assert.New(t)

	cpu, output := newTestCpu(t, []byte{
		0b10000000, 0x01, 0x02, // unknown, 2 operands
		0b00000000, // unknown, no operands
		0b01111111, 0x09, // unknown, 1 operand
		OP_HLT,
	})
	before := cpu.Memory

	assert.NoError(cpu.Tick())
	assert.Equal(3, cpu.Pc)
	assert.NoError(cpu.Tick())
	assert.Equal(4, cpu.Pc)
	assert.NoError(cpu.Tick())
	assert.Equal(6, cpu.Pc)
	assert.Equal(RegisterFile{}, cpu.Register)
	assert.Equal(before, cpu.Memory)
	assert.Equal("", output.String())

	assert.NoError(cpu.Tick())
	assert.True(cpu.Halted)
	assert.Equal(7, cpu.Pc)
}

func TestCpu_Strict(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, []byte{
		0b10000000, 0x01, 0x02,
	})
	cpu.Strict = true

	err := cpu.Tick()
	assert.True(errors.Is(err, ErrOpcodeInvalid))
	assert.True(errors.Is(err, ErrOpcode{}))
	assert.Equal(0, cpu.Pc)
	assert.Equal(0, cpu.Ticks)
}

func TestCpu_RegisterFault(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []byte
	}){
		{"ldi", []byte{OP_LDI, 8, 1}},
		{"prn", []byte{OP_PRN, 9}},
		{"mul", []byte{OP_MUL, 0, 200}},
		{"push", []byte{OP_PUSH, 0xff}},
		{"pop", []byte{OP_POP, 8}},
	}

	for _, entry := range table {
		cpu, output := newTestCpu(t, entry.program)
		err := cpu.Tick()
		assert.True(errors.Is(err, ErrRegisterRange), entry.name)
		assert.Equal(0, cpu.Pc, entry.name)
		assert.Equal(byte(0), cpu.Register[REG_SP], entry.name)
		assert.Equal("", output.String(), entry.name)
	}
}

func TestCpu_AddressFault(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, nil)

	// Program counter past the end of memory.
	cpu.Pc = MEMORY_SIZE
	err := cpu.Tick()
	assert.True(errors.Is(err, ErrAddressRange))

	// Operands past the end of memory.
	cpu.Pc = 0xfe
	cpu.Memory[0xfe] = OP_LDI
	err = cpu.Tick()
	assert.True(errors.Is(err, ErrAddressRange))
	assert.True(errors.Is(err, ErrAddress(0x100)))
	assert.Equal(0xfe, cpu.Pc)

	// Speculative operand fetches past the end are harmless.
	cpu.Pc = 0xff
	cpu.Memory[0xff] = OP_HLT
	assert.NoError(cpu.Tick())
	assert.True(cpu.Halted)
	assert.Equal(MEMORY_SIZE, cpu.Pc)
}

func TestCpu_RunOff(t *testing.T) {
	assert := assert.New(t)

	// All-zero memory decodes as single byte no-ops, until the
	// program counter leaves memory.
	cpu, _ := newTestCpu(t, nil)

	err := runTestCpu(cpu, MEMORY_SIZE+1)
	assert.True(errors.Is(err, ErrAddressRange))
	assert.Equal(MEMORY_SIZE, cpu.Pc)
	assert.Equal(MEMORY_SIZE, cpu.Ticks)
	assert.False(cpu.Halted)
}

func TestCpu_Channel(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.NoError(cpu.Reset(&io.Rom{Data: []byte{OP_PRN, 0, OP_HLT}}))

	_, err := cpu.GetChannel()
	assert.True(errors.Is(err, ErrChannelInvalid))

	err = cpu.Tick()
	assert.True(errors.Is(err, ErrChannelInvalid))
	assert.Equal(0, cpu.Pc)

	cpu.Pc = 2
	err = cpu.Tick()
	assert.True(errors.Is(err, ErrChannelInvalid))
	assert.True(cpu.Halted)

	// A ROM cannot be printed to.
	cpu.SetChannel(&io.Rom{})
	cpu.Halted = false
	err = cpu.Tick()
	assert.True(errors.Is(err, io.ErrChannelFull))
}

func TestCpu_Reset(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, []byte{OP_LDI, 0, 1, OP_HLT})
	assert.NoError(runTestCpu(cpu, 10))
	assert.True(cpu.Halted)

	// Boot from a raw byte tape.
	tape := &io.Tape{Input: bytes.NewReader([]byte{OP_LDI, 3, 7})}
	assert.NoError(cpu.Reset(tape))
	assert.False(cpu.Halted)
	assert.Equal(0, cpu.Pc)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(RegisterFile{}, cpu.Register)
	assert.Equal([]byte{OP_LDI, 3, 7, 0}, cpu.Memory[:4])

	assert.NoError(cpu.Tick())
	assert.Equal(byte(7), cpu.Register[3])

	err := cpu.Reset(&io.Rom{Data: make([]byte, MEMORY_SIZE+1)})
	assert.True(errors.Is(err, ErrProgramTooLarge))

	assert.NoError(cpu.Reset(nil))
	assert.Equal(Memory{}, cpu.Memory)
}

func TestCpu_String(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(t, []byte{OP_LDI, 0, 8})
	cpu.Register[REG_SP] = 0xf4

	assert.Equal("TRACE: 00 | 82 00 08 | 00 00 00 00 00 00 00 F4", cpu.String())

	cpu.Verbose = true
	assert.NoError(cpu.Tick())
	assert.Equal("TRACE: 03 | 00 00 00 | 08 00 00 00 00 00 00 F4", cpu.String())
}
