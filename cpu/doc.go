// Package cpu implements the processor, loader and assembler for the LS-8 system.
//
// The CPU consists of a 256 byte memory, a program counter (PC), eight 8-bit
// general-purpose registers (r0-r7, with r7 serving as the stack pointer),
// and an ALU. Each instruction is an opcode byte followed by zero, one or two
// operand bytes; the operand count is encoded in the top two bits of the
// opcode. The stack grows downward through memory from the address held in
// the stack pointer.
//
// Programs are supplied either as binary-literal text, one byte per line
// (see Loader), or as mnemonic source for the Assembler, which supports
// labels, equates, and compile-time expression evaluation.
package cpu
