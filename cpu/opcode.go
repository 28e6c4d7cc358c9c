// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

const (
	MEMORY_SIZE = 256 // Number of cells in the memory bank.
)

// Operator is an instruction operation.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_ADD = Operator(0)  // ADD
	OP_SUB = Operator(1)  // SUB
	OP_MUL = Operator(2)  // MUL
	OP_DIV = Operator(3)  // DIV
	OP_LDA = Operator(4)  // LDA
	OP_LDK = Operator(5)  // LDK
	OP_STA = Operator(6)  // STA
	OP_INP = Operator(7)  // INP
	OP_OUT = Operator(8)  // OUT
	OP_HLT = Operator(9)  // HLT
	OP_JMP = Operator(10) // JMP
	OP_JEZ = Operator(11) // JEZ
	OP_JNE = Operator(12) // JNE
	OP_JLZ = Operator(13) // JLZ
	OP_JLE = Operator(14) // JLE
	OP_JGZ = Operator(15) // JGZ
	OP_JGE = Operator(16) // JGE

	op_count = 17
)

// OperandKind is how an operator interprets its operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_ADDRESS = OperandKind(0) // address
	OPERAND_LITERAL = OperandKind(1) // literal
	OPERAND_TARGET  = OperandKind(2) // target
)

var operandKind = [op_count]OperandKind{
	OP_ADD: OPERAND_ADDRESS,
	OP_SUB: OPERAND_ADDRESS,
	OP_MUL: OPERAND_ADDRESS,
	OP_DIV: OPERAND_ADDRESS,
	OP_LDA: OPERAND_ADDRESS,
	OP_LDK: OPERAND_LITERAL,
	OP_STA: OPERAND_ADDRESS,
	OP_INP: OPERAND_ADDRESS,
	OP_OUT: OPERAND_ADDRESS,
	OP_HLT: OPERAND_LITERAL,
	OP_JMP: OPERAND_TARGET,
	OP_JEZ: OPERAND_TARGET,
	OP_JNE: OPERAND_TARGET,
	OP_JLZ: OPERAND_TARGET,
	OP_JLE: OPERAND_TARGET,
	OP_JGZ: OPERAND_TARGET,
	OP_JGE: OPERAND_TARGET,
}

// Valid returns true if the operator is one of the defined operations.
func (op Operator) Valid() bool {
	return op >= 0 && op < op_count
}

// Kind returns the operand interpretation of the operator.
func (op Operator) Kind() OperandKind {
	if !op.Valid() {
		return OPERAND_LITERAL
	}
	return operandKind[op]
}

// Operators returns all of the defined operators, in encoding order.
func Operators() (ops []Operator) {
	for op := range Operator(op_count) {
		ops = append(ops, op)
	}
	return
}

// validAddress is true if value indexes the memory bank.
func validAddress(value int16) bool {
	return value >= 0 && int(value) < MEMORY_SIZE
}

// validTarget is true if value indexes a program of the given length.
func validTarget(value int16, length int) bool {
	return value >= 0 && int(value) < length
}

// Instruction is a single decoded operation and its operand.
type Instruction struct {
	Operator Operator
	Operand  int16
}

// Validate checks the operand range against the operator's operand kind,
// for a program of the given length.
func (ins Instruction) Validate(length int) (err error) {
	switch ins.Operator.Kind() {
	case OPERAND_ADDRESS:
		if !validAddress(ins.Operand) {
			err = ErrAddressRange(ins.Operand)
		}
	case OPERAND_TARGET:
		if !validTarget(ins.Operand, length) {
			err = ErrJumpRange(ins.Operand)
		}
	}

	if !ins.Operator.Valid() {
		err = ErrOperatorInvalid
	}

	return
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%v %d", ins.Operator.String(), ins.Operand)
}

// Opcode represents a line of assembled code with its source location.
type Opcode struct {
	LineNo int
	Words  []string
	Instruction
}
