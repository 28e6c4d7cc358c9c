// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/ezrec/ram/io"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// Cpu is the simulation context for the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc          uint32             // Index of the next instruction.
	Accumulator int16              // Arithmetic register.
	Memory      [MEMORY_SIZE]int16 // Memory bank.

	Halted   bool // Set once the program has halted.
	ExitCode int  // Exit code requested by the halt.

	Ticks int // CPU ticks counter.

	program *Program
	channel Channel
}

// NewCpu creates a new CPU with an empty program.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		program: &Program{},
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %d\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %d\n", "acc", cpu.Accumulator)
	text += fmt.Sprintf("% 5s: %v\n", "halt", cpu.Halted)
	text += fmt.Sprintf("% 5s: %d\n", "ticks", cpu.Ticks)

	for addr, value := range cpu.Memory {
		if value != 0 {
			text += fmt.Sprintf("[%03d]: %d\n", addr, value)
		}
	}

	return
}

// Load sets the program to execute.
func (cpu *Cpu) Load(prog *Program) {
	if prog == nil {
		prog = &Program{}
	}
	cpu.program = prog
}

// Reset the CPU state.
// - Clears the program counter, accumulator, and memory.
// - Zeros statistics counters.
// - Rewinds the IO channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Accumulator = 0
	clear(cpu.Memory[:])
	cpu.Halted = false
	cpu.ExitCode = 0
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// SetChannel sets the IO channel used by INP and OUT.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the IO channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// halt stops the CPU. Exit codes keep their low 8 bits, as a process exit
// status does.
func (cpu *Cpu) halt(code int16) {
	if cpu.Verbose {
		log.Printf("cpu: halt %d", code)
	}

	cpu.Halted = true
	cpu.ExitCode = int(uint8(code))
}

// Tick executes a single CPU instruction cycle.
// Running past the end of the program halts with exit code 0.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		return
	}

	ins, ok := cpu.program.Instruction(cpu.Pc)
	if !ok {
		cpu.halt(0)
		return
	}

	return cpu.Execute(ins)
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Pc, ins)
	}

	op := ins.Operator
	operand := ins.Operand

	if !op.Valid() {
		err = ErrOperatorInvalid
		return
	}

	if op.Kind() == OPERAND_ADDRESS && !validAddress(operand) {
		err = ErrAddressRange(operand)
		return
	}

	next_pc := cpu.Pc + 1

	var jump bool

	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		var output int16
		output, err = cpu.doAlu(op, cpu.Accumulator, cpu.Memory[operand])
		if err != nil {
			return
		}
		cpu.Accumulator = output
	case OP_LDA:
		cpu.Accumulator = cpu.Memory[operand]
	case OP_LDK:
		cpu.Accumulator = operand
	case OP_STA:
		cpu.Memory[operand] = cpu.Accumulator
	case OP_INP:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		var value int16
		value, err = channel.Receive()
		if err != nil {
			return
		}
		cpu.Memory[operand] = value
	case OP_OUT:
		var channel Channel
		channel, err = cpu.GetChannel()
		if err != nil {
			return
		}
		err = channel.Send(cpu.Memory[operand])
		if err != nil {
			return
		}
	case OP_HLT:
		cpu.halt(operand)
		cpu.Ticks += 1
		return
	case OP_JMP:
		jump = true
	case OP_JEZ:
		jump = cpu.Accumulator == 0
	case OP_JNE:
		jump = cpu.Accumulator != 0
	case OP_JLZ:
		jump = cpu.Accumulator < 0
	case OP_JLE:
		jump = cpu.Accumulator <= 0
	case OP_JGZ:
		jump = cpu.Accumulator > 0
	case OP_JGE:
		jump = cpu.Accumulator >= 0
	}

	if jump {
		if !validTarget(operand, cpu.program.Len()) {
			err = ErrJumpRange(operand)
			return
		}
		next_pc = uint32(operand)
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}

// doAlu performs the requested arithmetic, and returns the output value.
// Results that do not fit in 16 bits are an overflow error.
func (cpu *Cpu) doAlu(op Operator, input int16, value int16) (output int16, err error) {
	a := int32(input)
	b := int32(value)

	var result int32
	switch op {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_MUL:
		result = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		// Truncates toward zero.
		result = a / b
	default:
		err = ErrOperatorInvalid
		return
	}

	if result < math.MinInt16 || result > math.MaxInt16 {
		err = ErrNumericOverflow
		return
	}

	output = int16(result)
	return
}
