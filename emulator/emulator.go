// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

// Emulator state. CPU + program + IO channels.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	StepLimit int // If non-zero, the maximum number of ticks Run performs.

	Tape io.Tape // Tape IO channel, receives PRN and HLT output.
	Rom  io.Rom  // ROM IO channel, holds the program image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Reset the emulator state, and boot the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Rom.Data = emu.Program.Binary()

	return emu.Cpu.Reset(&emu.Rom)
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current program counter.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks the emulator until the CPU halts, faults, or exceeds the
// step limit.
func (emu *Emulator) Run() (err error) {
	for steps := 0; emu.StepLimit == 0 || steps < emu.StepLimit; steps++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			if emu.Verbose {
				log.Printf("emulator: stopped after %d ticks", emu.Ticks())
			}
			return
		}
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrStepLimit}
	return
}
