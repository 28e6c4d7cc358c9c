package cpu

import (
	"iter"
	"strings"
)

// Program is an assembled instruction listing. The index of each opcode is
// its jump target address.
type Program struct {
	Opcodes []Opcode
}

// NewProgram creates a program from bare instructions, with no source lines.
func NewProgram(inss ...Instruction) (prog *Program) {
	prog = &Program{}
	for _, ins := range inss {
		prog.Opcodes = append(prog.Opcodes, Opcode{Instruction: ins})
	}

	return
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Opcodes)
}

// Debug returns the opcode at pc, or nil if pc is past the end.
func (prog *Program) Debug(pc uint32) (op *Opcode) {
	if uint64(pc) < uint64(prog.Len()) {
		op = &prog.Opcodes[pc]
	}

	return
}

// Instruction returns the instruction at pc.
func (prog *Program) Instruction(pc uint32) (ins Instruction, ok bool) {
	op := prog.Debug(pc)
	if op == nil {
		return
	}

	return op.Instruction, true
}

// LineNo returns the source line of the instruction at pc, or 0 if unknown.
func (prog *Program) LineNo(pc uint32) int {
	op := prog.Debug(pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Instructions iterates over the instructions and their addresses.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, ins Instruction) bool) {
		for n := range prog.Len() {
			if !yield(uint32(n), prog.Opcodes[n].Instruction) {
				return
			}
		}
	}
}

// Validate checks all operands for range errors.
func (prog *Program) Validate() (err error) {
	for _, op := range prog.Opcodes {
		err = op.Instruction.Validate(prog.Len())
		if err != nil {
			line := strings.Join(op.Words, " ")
			if len(line) == 0 {
				line = op.Instruction.String()
			}
			err = &ErrSyntax{LineNo: op.LineNo, Line: line, Err: err}
			return
		}
	}

	return
}

// String returns the program as assembly source, one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, ins := range prog.Instructions() {
		text.WriteString(ins.String())
		text.WriteByte('\n')
	}

	return text.String()
}
