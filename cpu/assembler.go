// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"log"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Assembler is a single pass, one instruction per line, assembler for the
// accumulator machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.
}

// mnemonicMap maps upper-case mnemonics to operators.
var mnemonicMap = func() map[string]Operator {
	mnemonics := make(map[string]Operator, op_count)
	for _, op := range Operators() {
		mnemonics[op.String()] = op
	}
	return mnemonics
}()

// Compile assembles a program from source text.
func Compile(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Parse(strings.NewReader(source))
}

// valueOf returns the value of an operand word.
func (asm *Assembler) valueOf(word string) (value int16, err error) {
	v64, err := strconv.ParseInt(word, 10, 16)
	if err != nil {
		err = &ErrOperand{Token: word, Err: err}
		return
	}

	value = int16(v64)
	return
}

// parseLine splits a single line into its mnemonic and operand words.
// Comments and surrounding whitespace are removed; a blank line has no words.
func (asm *Assembler) parseLine(text string) (words []string) {
	line, _, _ := strings.Cut(text, ";")
	line = strings.TrimSpace(line)

	if len(line) == 0 {
		return
	}

	split := strings.IndexFunc(line, unicode.IsSpace)
	if split < 0 {
		words = []string{line}
		return
	}

	words = []string{line[:split], strings.TrimSpace(line[split:])}
	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if len(words) < 2 {
		err = ErrMissingOperand
		return
	}

	op, ok := mnemonicMap[strings.ToUpper(strings.TrimSpace(words[0]))]
	if !ok {
		err = ErrUnknownMnemonic(words[0])
		return
	}

	value, err := asm.valueOf(words[1])
	if err != nil {
		return
	}

	// Jump targets are checked once the program length is known.
	if op.Kind() == OPERAND_ADDRESS && !validAddress(value) {
		err = ErrAddressRange(value)
		return
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo:      lineno,
		Words:       words,
		Instruction: Instruction{Operator: op, Operand: value},
	})

	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, math.MaxInt)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		words := asm.parseLine(text)
		line = strings.Join(words, " ")

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The failed read is the line after the last one scanned.
		lineno += 1
		line = ""
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	// Final check of the jump targets.
	err = prog.Validate()
	if err != nil {
		prog = nil
		var syntax *ErrSyntax
		if errors.As(err, &syntax) {
			lineno = syntax.LineNo
			line = syntax.Line
			err = syntax.Err
		}
		return
	}

	return
}
