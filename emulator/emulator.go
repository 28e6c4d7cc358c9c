// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/ram/cpu"
	"github.com/ezrec/ram/io"
)

// Emulator state. CPU + program + IO channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape IO channel, used by INP and OUT.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Close the emulator, flushing any pending output.
func (emu *Emulator) Close() (err error) {
	return emu.Tape.Flush()
}

// Reset the emulator state, and load the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		emu.Program = &cpu.Program{}
	}

	err = emu.Program.Validate()
	if err != nil {
		return
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Load(emu.Program)
	emu.Cpu.Reset()

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// Code returns the current instruction.
func (emu *Emulator) Code() (ins cpu.Instruction) {
	ins, _ = emu.Program.Instruction(emu.Cpu.Pc)
	return
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted
	return
}

// Run ticks the emulator until the program halts, and returns the
// program's exit code. Output is flushed before returning.
func (emu *Emulator) Run() (code int, err error) {
	defer func() {
		flush_err := emu.Close()
		if err == nil {
			err = flush_err
		}
	}()

	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	code = emu.Cpu.ExitCode
	return
}
