// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/ls8/cpu"
)

// Process exit codes.
const (
	EXIT_OK    = 0
	EXIT_USAGE = 1 // Bad flags or wrong number of arguments.
	EXIT_FAULT = 2 // Source failed to assemble, or output failed.
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// parseDefines splits a comma separated list of NAME=VALUE equates.
func parseDefines(defines string) (equates [][2]string, ok bool) {
	for _, define := range strings.Split(defines, ",") {
		if len(define) == 0 {
			continue
		}
		name, value, found := strings.Cut(define, "=")
		if !found || len(name) == 0 {
			return
		}
		equates = append(equates, [2]string{name, value})
	}

	ok = true
	return
}

// run assembles the source named by the single argument into the
// binary-literal listing, and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	var output string
	var verbose bool
	var defines string

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&output, "o", "-", "Program output")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.StringVar(&defines, "D", "", "Comma separated NAME=VALUE equates")

	err := flags.Parse(args[1:])
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 1 {
		logger.Printf("usage: %v [-o output.ls8] [-D NAME=VALUE,...] input.asm", args[0])
		return EXIT_USAGE
	}

	equates, ok := parseDefines(defines)
	if !ok {
		logger.Printf("-D %v: expected NAME=VALUE", defines)
		return EXIT_USAGE
	}

	source := flags.Arg(0)

	inf, err := os.Open(source)
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return EXIT_FAULT
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	for _, equ := range equates {
		asm.Predefine(equ[0], equ[1])
	}

	prog, err := asm.Parse(inf)
	if err != nil {
		logger.Printf("%v: %v", source, err)
		return EXIT_FAULT
	}

	ouf := stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			logger.Printf("%v: %v", output, err)
			return EXIT_FAULT
		}
		defer file.Close()
		ouf = file
	}

	_, err = prog.WriteTo(ouf)
	if err != nil {
		logger.Printf("%v: %v", output, err)
		return EXIT_FAULT
	}

	return EXIT_OK
}
