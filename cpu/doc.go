// Package cpu implements the accumulator machine and its assembler.
//
// The machine consists of a program counter, a single 16-bit accumulator,
// and a bank of 256 16-bit memory cells. Arithmetic reads its second
// argument from memory and writes the accumulator; only STA and INP write
// memory. Jumps test the accumulator and target an instruction index.
//
// The assembler reads one instruction per line: a case-insensitive mnemonic
// followed by a decimal operand. A ';' starts a comment, and blank lines
// are ignored.
package cpu
