package emulator

import (
	"bytes"
	"errors"
	gio "io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ram/cpu"
	"github.com/ezrec/ram/io"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(0, emu.Program.Len())

	channel, err := emu.Cpu.GetChannel()
	assert.NoError(err)
	assert.Same(&emu.Tape, channel)
}

func doRunBranch(emu *Emulator, program []string, input string, t *testing.T) (code int, output string, err error) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	emu.Program = prog

	tape_output := &bytes.Buffer{}
	emu.Tape.Input = strings.NewReader(input)
	emu.Tape.Output = tape_output

	err = emu.Reset()
	assert.NoError(err)

	code, err = emu.Run()
	output = tape_output.String()
	return
}

func TestEmulatorOutReadsMemory(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	code, output, err := doRunBranch(emu, []string{"LDK 5", "OUT 0", "HLT 0"}, "", t)
	assert.NoError(err)
	assert.Equal(0, code)
	assert.Equal("0\n", output)
}

func TestEmulatorAdd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"LDK 5",
		"STA 0",
		"LDK 3",
		"ADD 0",
		"STA 0",
		"OUT 0",
		"HLT 0",
	}

	code, output, err := doRunBranch(emu, program, "", t)
	assert.NoError(err)
	assert.Equal(0, code)
	assert.Equal("8\n", output)
	assert.Equal(int16(8), emu.Cpu.Accumulator)
}

func TestEmulatorJez(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"LDK 7",
		"STA 0",
		"LDK 0",
		"SUB 0",
		"JEZ 6",
		"OUT 0",
		"HLT 1",
		"OUT 0",
		"HLT 0",
	}

	code, output, err := doRunBranch(emu, program, "", t)
	assert.NoError(err)
	assert.Equal(1, code)
	assert.Equal("7\n", output)
}

func TestEmulatorSingleStep(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"; sum two inputs",
		"INP 0",
		"",
		"INP 1",
		"LDA 0",
		"ADD 1",
		"STA 2",
		"OUT 2",
		"HLT 3",
	}

	prog, err := cpu.Compile(strings.Join(program, "\n"))
	assert.NoError(err)
	emu.Program = prog

	tape_output := &bytes.Buffer{}
	emu.Tape.Input = strings.NewReader("40\n2\n")
	emu.Tape.Output = tape_output
	assert.NoError(emu.Reset())

	lines := []int{2, 4, 5, 6, 7, 8, 9}
	for n, op := range prog.Opcodes {
		assert.Equal(n, emu.Pc())
		assert.Equal(lines[n], emu.LineNo())
		assert.Equal(op.Instruction, emu.Code())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.Equal(n == len(prog.Opcodes)-1, done)
	}

	assert.Equal(3, emu.Cpu.ExitCode)
	assert.Equal(7, emu.Ticks())
	assert.NoError(emu.Close())
	assert.Equal(io.PROMPT+io.PROMPT+"42\n", tape_output.String())
}

func TestEmulatorPrompt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"INP 0",
		"OUT 0",
		"INP 1",
		"OUT 1",
	}

	code, output, err := doRunBranch(emu, program, "x\n-5\n\n9\n", t)
	assert.NoError(err)
	assert.Equal(0, code)
	assert.Equal("-> -> -5\n-> -> 9\n", output)
}

func TestEmulatorRunsOffEnd(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	code, output, err := doRunBranch(emu, []string{"LDK 2", "STA 9", "OUT 9"}, "", t)
	assert.NoError(err)
	assert.Equal(0, code)
	assert.Equal("2\n", output)
	assert.True(emu.Cpu.Halted)
}

func TestEmulatorHaltCode(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	code, _, err := doRunBranch(emu, []string{"HLT -1"}, "", t)
	assert.NoError(err)
	assert.Equal(255, code)

	code, _, err = doRunBranch(emu, []string{"HLT 300"}, "", t)
	assert.NoError(err)
	assert.Equal(44, code)
}

func TestEmulatorErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		input   string
		lineno  int
		pc      uint32
		err     error
		output  string
	}){
		{"div0", []string{"LDK 5", "LDK 0", "DIV 0", "HLT 0"}, "", 3, 2, cpu.ErrDivisionByZero, ""},
		{"overflow", []string{"LDK 32767", "STA 0", "", "OUT 0", "ADD 0", "HLT 0"}, "", 5, 3, cpu.ErrNumericOverflow, "32767\n"},
		{"closed", []string{"INP 0", "OUT 0", "INP 1"}, "6\n", 3, 2, io.ErrInputClosed, "-> 6\n-> "},
	}

	for _, entry := range table {
		emu := NewEmulator()
		_, output, err := doRunBranch(emu, entry.program, entry.input, t)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Equal(entry.output, output, entry.name)

		var runtime *ErrRuntime
		if assert.True(errors.As(err, &runtime), entry.name) {
			assert.Equal(entry.lineno, runtime.LineNo, entry.name)
			assert.Equal(entry.pc, runtime.Pc, entry.name)
		}
	}
}

func TestEmulatorErrorMessage(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, _, err := doRunBranch(emu, []string{"LDK 1", "DIV 7"}, "", t)
	assert.EqualError(err, "line 2 pc 1 bad instruction 'DIV 7'\ndivision by zero")
}

func TestEmulatorInvalidProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = cpu.NewProgram(cpu.Instruction{Operator: cpu.OP_JMP, Operand: 5})

	err := emu.Reset()
	assert.ErrorIs(err, cpu.ErrJumpRange(0))

	emu.Program = nil
	assert.NoError(emu.Reset())
	code, err := emu.Run()
	assert.NoError(err)
	assert.Equal(0, code)
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{"INP 3", "LDA 3", "OUT 3", "HLT 2"}

	code, output, err := doRunBranch(emu, program, "11\n", t)
	assert.NoError(err)
	assert.Equal(2, code)
	assert.Equal("-> 11\n", output)

	// A second run starts from a clean machine.
	code, output, err = doRunBranch(emu, []string{"OUT 3", "HLT 1"}, "", t)
	assert.NoError(err)
	assert.Equal(1, code)
	assert.Equal("0\n", output)
}

func TestEmulatorVerbose(t *testing.T) {
	assert := assert.New(t)

	trace := &strings.Builder{}
	defer func(output gio.Writer, log_flags int) {
		log.SetOutput(output)
		log.SetFlags(log_flags)
	}(log.Writer(), log.Flags())
	log.SetOutput(trace)
	log.SetFlags(0)

	emu := NewEmulator()
	emu.Verbose = true
	code, output, err := doRunBranch(emu, []string{"LDK 1", "STA 0", "OUT 0", "HLT 0"}, "", t)
	assert.NoError(err)
	assert.Equal(0, code)
	assert.Equal("1\n", output)
	assert.True(emu.Cpu.Verbose)
	assert.Equal("cpu: reset\n000: LDK 1\n001: STA 0\n002: OUT 0\n003: HLT 0\ncpu: halt 0\n", trace.String())

	// Quiet again once cleared.
	trace.Reset()
	emu.Verbose = false
	_, _, err = doRunBranch(emu, []string{"HLT 0"}, "", t)
	assert.NoError(err)
	assert.Empty(trace.String())
}
