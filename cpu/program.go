package cpu

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode represents a line of program source with its location and generated bytes.
type Opcode struct {
	LineNo    int      // Source line number.
	Ip        int      // Address of the first byte.
	Words     []string // Source words, used as the listing comment.
	Codes     []byte   // Generated bytes.
	LinkLabel string   // Label to resolve into the last byte, if any.
}

// Program is a listing of source lines and the memory image they produce.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug returns the source line that generated the byte at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
// Gaps between source lines are zero filled.
func (prog *Program) Binary() (bins []byte) {
	for ip, code := range prog.Codes() {
		for len(bins) < ip {
			bins = append(bins, 0)
		}
		bins = append(bins, code)
	}

	return
}

// Codes returns an iterator over every generated byte and its address.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return func(yield func(ip int, code byte) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(op.Ip+n, code) {
					return
				}
			}
		}
	}
}

// WriteTo writes the program in the binary-literal text format, one
// byte per line, with the source words as a comment on the first byte
// of each line.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	ip := 0
	for _, op := range prog.Opcodes {
		for ; ip < op.Ip; ip++ {
			err = prog.writeLine(w, &n, "%08b\n", 0)
			if err != nil {
				return
			}
		}
		for c, code := range op.Codes {
			if c == 0 && len(op.Words) > 0 {
				err = prog.writeLine(w, &n, "%08b # %v\n", code, strings.Join(op.Words, " "))
			} else {
				err = prog.writeLine(w, &n, "%08b\n", code)
			}
			if err != nil {
				return
			}
			ip++
		}
	}

	return
}

func (prog *Program) writeLine(w io.Writer, n *int64, format string, args ...any) (err error) {
	count, err := fmt.Fprintf(w, format, args...)
	*n += int64(count)
	return
}
