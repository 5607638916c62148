// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Statement is a source statement and its encoding.
type Statement struct {
	Token
	State       int         // Assigned state, or -1 for a directive.
	Instruction Instruction // Encoded state; zero for directives.
	Environment Environment // Environment the statement was encoded under.
	Err         error       // First error found in the statement.
}

// IsDirective returns true if the statement changed the environment.
func (stmt *Statement) IsDirective() bool {
	return stmt.State < 0
}

// Program is the result of assembling a compilation unit.
type Program struct {
	Environment Environment // Environment in effect at the end of the source.
	Statements  []Statement
}

// Instructions returns the encoded states in order.
func (prog *Program) Instructions() (instrs []Instruction) {
	for _, stmt := range prog.Statements {
		if stmt.IsDirective() {
			continue
		}
		instrs = append(instrs, stmt.Instruction)
	}
	return
}

// Err returns all statement errors, or nil.
func (prog *Program) Err() error {
	var errs []error
	for _, stmt := range prog.Statements {
		if stmt.Err == nil {
			continue
		}
		errs = append(errs, &ErrStatement{LineNo: stmt.LineNo, State: stmt.State, Text: stmt.Mnemonic, Err: stmt.Err})
	}
	return errors.Join(errs...)
}

// Waveform packs the program into a waveform table.
func (prog *Program) Waveform() (*Waveform, error) {
	return NewWaveform(prog.Environment, prog.Instructions())
}

// Assembler compiles GPIF waveform source.
//
// Directives take effect from their position in the source onwards.
// Instructions before a directive keep the encoding they already had, so a
// late .TRICTL or .GPIFREADYCFG5 changes the tables for later states only.
type Assembler struct {
	Verbose     bool         // If set, logs each statement as it is encoded.
	Environment *Environment // Initial environment; defaults if nil.
}

// Predefine sets a flag of the initial environment, as if a directive
// preceded the source.
func (asm *Assembler) Predefine(name string, value string) (err error) {
	flag, ok := LookupDirective(name)
	if !ok {
		err = fmt.Errorf("%w '%v'", ErrDirectiveUnknown, name)
		return
	}

	if asm.Environment == nil {
		env := NewEnvironment()
		asm.Environment = &env
	}

	err = asm.Environment.SetText(flag, value)
	return
}

// Parse reads and assembles a source stream.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	toks, err := Tokenize(input)
	if err != nil {
		return
	}

	prog, err = asm.Assemble(toks)
	return
}

// Assemble encodes every token. Statement errors are collected in the
// program; the returned error is only set for too many states, in which
// case the program holds the statements before the failing one.
func (asm *Assembler) Assemble(toks []Token) (prog *Program, err error) {
	env := NewEnvironment()
	if asm.Environment != nil {
		env = *asm.Environment
	}

	states := 0
	for _, tok := range toks {
		if !tok.IsDirective() {
			states++
		}
	}

	prog = &Program{}
	defer func() {
		prog.Environment = env
	}()

	state := 0
	for _, tok := range toks {
		if asm.Verbose {
			log.Printf("%v: %v %v", tok.LineNo, tok.Mnemonic, strings.Join(tok.Operands, " "))
		}

		if tok.IsDirective() {
			stmt := Statement{Token: tok, State: -1}
			stmt.Err = env.Apply(tok)
			stmt.Environment = env
			prog.Statements = append(prog.Statements, stmt)
			continue
		}

		if state >= STATE_MAX {
			err = &ErrStatement{LineNo: tok.LineNo, State: state, Text: tok.Mnemonic, Err: ErrTooManyStates}
			return
		}

		stmt := Statement{Token: tok, State: state, Environment: env}
		stmt.Instruction, stmt.Err = Encode(env, tok, states)
		if asm.Verbose && stmt.Err != nil {
			log.Printf("%v: %v", tok.LineNo, stmt.Err)
		}
		prog.Statements = append(prog.Statements, stmt)
		state++
	}

	return
}

// Apply applies a directive to the environment. On error the environment
// is unchanged.
func (env *Environment) Apply(tok Token) (err error) {
	flag, ok := LookupDirective(tok.Mnemonic)
	if !ok || !tok.IsDirective() {
		err = ErrDirectiveUnknown
		return
	}

	if len(tok.Operands) != 1 {
		err = ErrInvalidDirectiveArity
		return
	}

	err = env.SetText(flag, tok.Operands[0])
	return
}

// Encode encodes one instruction under an environment. The states
// argument is the number of instructions in the compilation unit, which
// bounds branch targets other than the sentinel state.
//
// On error the partially encoded instruction is still returned.
func Encode(env Environment, tok Token, states int) (in Instruction, err error) {
	var reexecute bool

	in.Opcode, reexecute, err = parseOpcode(tok.Mnemonic)
	if err != nil {
		return
	}

	if in.Opcode.IsDP() {
		err = encodeDual(env, tok.Operands, states, reexecute, &in)
	} else {
		err = encodeSingle(env, tok.Operands, &in)
	}

	return
}

// parseOpcode decodes the mnemonic characters.
func parseOpcode(mnemonic string) (op Opcode, reexecute bool, err error) {
	for _, c := range mnemonic {
		switch c {
		case OPCHAR_NONE:
			if len(mnemonic) != 1 {
				err = &ErrOpcodeChar{Mnemonic: mnemonic, Char: c}
				return
			}
		case OPCHAR_REEXECUTE:
			reexecute = true
		default:
			found := false
			for _, oc := range opcodeChars {
				if oc.char == c {
					op |= oc.bit
					found = true
					break
				}
			}
			if !found {
				err = &ErrOpcodeChar{Mnemonic: mnemonic, Char: c}
				return
			}
		}
	}

	if reexecute && !op.IsDP() {
		err = &ErrOpcodeChar{Mnemonic: mnemonic, Char: OPCHAR_REEXECUTE}
	}

	return
}

// isCount returns true if the operand is meant as a repeat count.
func isCount(operand string) bool {
	return len(operand) > 0 && (operand[0] == '-' || (operand[0] >= '0' && operand[0] <= '9'))
}

// setOutput sets the output bit named by operand.
func setOutput(outputs SymbolTable, operand string, in *Instruction) (err error) {
	bit, ok := outputs.Lookup(operand)
	if !ok {
		err = &ErrOperand{Role: "output", Operand: operand, Legal: outputs.Symbols()}
		return
	}
	in.Output |= Output(1 << bit)
	return
}

// encodeSingle encodes the operands of a single-phase state:
// [count] [output...]
func encodeSingle(env Environment, operands []string, in *Instruction) (err error) {
	outputs := env.Outputs()
	counted := false

	in.Branch = MakeCount(1)

	for _, operand := range operands {
		if isCount(operand) {
			var count uint64
			count, err = strconv.ParseUint(operand, 10, 16)
			if err != nil || count > 256 || counted {
				err = ErrCount(operand)
				return
			}
			in.Branch = MakeCount(int(count))
			counted = true
			continue
		}

		err = setOutput(outputs, operand, in)
		if err != nil {
			return
		}
	}

	return
}

// parseTarget parses a $N branch target.
func parseTarget(operand string, states int) (target uint8, err error) {
	value, perr := strconv.ParseUint(operand[1:], 10, 8)
	if perr != nil || value > STATE_SENTINEL || (value != STATE_SENTINEL && int(value) > states) {
		err = ErrTarget(operand)
		return
	}
	target = uint8(value)
	return
}

// logicOpNames lists the logic function keywords.
func logicOpNames() (names []string) {
	for op := range LogicOp(LOGIC_COUNT) {
		names = append(names, op.String())
	}
	return
}

// encodeDual encodes the operands of a dual-phase state:
// A func B [output...] $true $false [output...]
func encodeDual(env Environment, operands []string, states int, reexecute bool, in *Instruction) (err error) {
	onTrue := uint8(STATE_SENTINEL)
	onFalse := uint8(STATE_SENTINEL)
	in.Branch = MakeBranch(onTrue, onFalse, reexecute)

	if len(operands) < 3 {
		err = ErrOperandsMissing
		return
	}

	terms := env.Operands()

	a, ok := terms.Lookup(operands[0])
	if !ok {
		err = &ErrOperand{Role: "A", Operand: operands[0], Legal: terms.Symbols()}
		return
	}

	op, ok := ParseLogicOp(operands[1])
	if !ok {
		err = &ErrOperand{Role: "function", Operand: operands[1], Legal: logicOpNames()}
		return
	}

	b, ok := terms.Lookup(operands[2])
	if !ok {
		err = &ErrOperand{Role: "B", Operand: operands[2], Legal: terms.Symbols()}
		return
	}

	in.LogicFunc = MakeLogicFunc(a, op, b)

	outputs := env.Outputs()
	targets := 0
	for _, operand := range operands[3:] {
		if !strings.HasPrefix(operand, "$") {
			err = setOutput(outputs, operand, in)
			if err != nil {
				return
			}
			continue
		}

		var target uint8
		target, err = parseTarget(operand, states)
		if err != nil {
			return
		}

		switch targets {
		case 0:
			onTrue = target
		case 1:
			onFalse = target
		default:
			err = ErrTooManyTargets
			return
		}
		targets++
		in.Branch = MakeBranch(onTrue, onFalse, reexecute)
	}

	if targets != 2 {
		err = ErrMissingBranchTargets
	}

	return
}
