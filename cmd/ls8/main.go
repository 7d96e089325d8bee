// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

// Process exit codes.
const (
	EXIT_OK        = 0
	EXIT_USAGE     = 1 // Wrong number of arguments.
	EXIT_NOT_FOUND = 2 // Program file does not exist.
	EXIT_FAULT     = 3 // Program failed to parse, or faulted while running.
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the program file named by the single argument, writing
// its output to stdout, and returns the process exit code. Arguments are
// not interpreted as flags.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	if len(args) != 2 {
		name := "ls8"
		if len(args) > 0 {
			name = args[0]
		}
		translate.Fprintln(stderr, "usage: %v <filename>", name)
		return EXIT_USAGE
	}

	path := args[1]

	inf, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		translate.Fprintln(stderr, "%v: %v not found", args[0], path)
		return EXIT_NOT_FOUND
	}
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAULT
	}
	defer inf.Close()

	ld := &cpu.Loader{}
	prog, err := ld.Parse(inf)
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAULT
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Tape.Output = stdout

	err = emu.Reset()
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAULT
	}

	err = emu.Run()
	if err != nil {
		logger.Printf("%v: %v", path, err)
		return EXIT_FAULT
	}

	return EXIT_OK
}
