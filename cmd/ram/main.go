// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/ram/cpu"
	"github.com/ezrec/ram/emulator"
	"github.com/ezrec/ram/translate"
)

// Process exit codes, other than the program's own HLT code.
const (
	EXIT_USAGE   = 1 // Missing or extra arguments.
	EXIT_COMPILE = 2 // Unreadable or invalid program.
	EXIT_RUNTIME = 3 // Fatal error while executing.
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (code int) {
	var verbose bool

	name := args[0]
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Usage = func() {
		translate.Fprintf(stdout, "Usage: %v filename\n", name)
	}

	err := flags.Parse(args[1:])
	if err != nil {
		return EXIT_USAGE
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return EXIT_USAGE
	}

	// Diagnostics and verbose traces both go to stderr.
	defer func(output io.Writer, log_flags int) {
		log.SetOutput(output)
		log.SetFlags(log_flags)
	}(log.Writer(), log.Flags())
	log.SetOutput(stderr)
	log.SetFlags(0)

	path := flags.Arg(0)

	inf, err := os.Open(path)
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_COMPILE
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_COMPILE
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Tape.Input = stdin
	emu.Tape.Output = stdout

	err = emu.Reset()
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_COMPILE
	}

	code, err = emu.Run()
	if err != nil {
		log.Printf("%v: %v", path, err)
		return EXIT_RUNTIME
	}

	return
}
