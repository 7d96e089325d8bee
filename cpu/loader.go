package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// Loader parses the binary-literal program format: one byte per line,
// written in base 2, with '#' starting a comment. Blank and comment-only
// lines are skipped.
type Loader struct {
	Verbose bool // If set, verbosely logs the loaded bytes.
}

// parseBinary parses a base 2 byte, with an optional 0b prefix.
// Single underscores may separate digits, or follow the prefix.
func parseBinary(token string) (value byte, err error) {
	digits := token
	if len(digits) > 2 && (digits[:2] == "0b" || digits[:2] == "0B") {
		digits = strings.TrimPrefix(digits[2:], "_")
	}

	if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") || strings.Contains(digits, "__") {
		err = ErrParseBinary(token)
		return
	}
	digits = strings.ReplaceAll(digits, "_", "")

	v64, err := strconv.ParseUint(digits, 2, 8)
	if err != nil {
		err = ErrParseBinary(token)
		return
	}

	value = byte(v64)
	return
}

// Parse parses an input stream into a Program of one byte per opcode.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	ip := 0

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		token, comment, _ := strings.Cut(line, "#")
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		var value byte
		value, err = parseBinary(token)
		if err != nil {
			return
		}

		if ip >= MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}

		if ld.Verbose {
			log.Printf("%v: %02x: %08b", lineno, ip, value)
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineno,
			Ip:     ip,
			Words:  strings.Fields(comment),
			Codes:  []byte{value},
		})
		ip++
	}

	err = scanner.Err()
	return
}
