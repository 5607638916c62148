// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"errors"
	"strings"

	"github.com/ezrec/gpif/translate"
)

var f = translate.From

var (
	// Environment errors
	ErrInvalidValue = errors.New(f("value out of range"))
	ErrScriptName   = errors.New(f("unknown environment name"))

	// Directive errors
	ErrDirectiveUnknown      = errors.New(f("unknown directive"))
	ErrInvalidDirectiveArity = errors.New(f("directive takes exactly one operand"))
	ErrInvalidDirectiveValue = errors.New(f("invalid directive value"))

	// Instruction errors
	ErrUnknownOpcodeChar    = errors.New(f("unknown opcode character"))
	ErrOperandsMissing      = errors.New(f("missing operand A func B"))
	ErrInvalidOperand       = errors.New(f("invalid operand"))
	ErrInvalidCount         = errors.New(f("invalid count"))
	ErrInvalidBranchTarget  = errors.New(f("invalid target state"))
	ErrTooManyTargets       = errors.New(f("too many target states"))
	ErrMissingBranchTargets = errors.New(f("branch0 and/or branch1 states were not specified"))
	ErrTooManyStates        = errors.New(f("too many states, limit is 7"))

	// Decompiler errors
	ErrAnchorMissing     = errors.New(f("table anchor line not found"))
	ErrBraceMissing      = errors.New(f("missing opening brace"))
	ErrBadTableSize      = errors.New(f("unusual table size"))
	ErrUnresolvedLiteral = errors.New(f("invalid byte literal"))
)

// ErrStatement indicates the source location of a statement error.
type ErrStatement struct {
	LineNo int    // Source line number.
	State  int    // Assigned state, or -1 for directives.
	Text   string // Mnemonic of the statement.
	Err    error
}

func (err *ErrStatement) Error() string {
	if err.State < 0 {
		return f("line %d %v: %v", err.LineNo, err.Text, err.Err)
	}
	return f("line %d $%d %v: %v", err.LineNo, err.State, err.Text, err.Err)
}

func (err *ErrStatement) Unwrap() error {
	return err.Err
}

// ErrDirective is a directive operand that is not legal for the directive.
type ErrDirective struct {
	Flag  Flag
	Value string
}

func (err *ErrDirective) Error() string {
	return f("invalid operand '%v' for %v", err.Value, err.Flag)
}

func (err *ErrDirective) Unwrap() error {
	return ErrInvalidDirectiveValue
}

// ErrOpcodeChar is a mnemonic character that cannot be encoded.
type ErrOpcodeChar struct {
	Mnemonic string
	Char     rune
}

func (err *ErrOpcodeChar) Error() string {
	switch err.Char {
	case OPCHAR_REEXECUTE:
		return f("'%c' in %v is only legal with '%c'", err.Char, err.Mnemonic, OPCHAR_DP)
	case OPCHAR_NONE:
		return f("'%c' in %v must appear alone", err.Char, err.Mnemonic)
	}
	return f("unknown opcode '%c' in %v", err.Char, err.Mnemonic)
}

func (err *ErrOpcodeChar) Unwrap() error {
	return ErrUnknownOpcodeChar
}

// ErrOperand is an operand symbol not in the table in effect.
type ErrOperand struct {
	Role    string   // Which operand: "A", "B", "function", or "output".
	Operand string   // Offending text.
	Legal   []string // Symbols legal in this position.
}

func (err *ErrOperand) Error() string {
	return f("invalid %v operand '%v'\n  Must be one of: %v", err.Role, err.Operand, strings.Join(err.Legal, " "))
}

func (err *ErrOperand) Unwrap() error {
	return ErrInvalidOperand
}

// ErrCount is an invalid repeat count.
type ErrCount string

func (err ErrCount) Error() string {
	return f("invalid count '%v'", string(err))
}

func (err ErrCount) Unwrap() error {
	return ErrInvalidCount
}

// ErrTarget is an invalid branch target reference.
type ErrTarget string

func (err ErrTarget) Error() string {
	return f("invalid target state '%v'", string(err))
}

func (err ErrTarget) Unwrap() error {
	return ErrInvalidBranchTarget
}

// ErrLiteral is a byte literal in a WaveData table that is not a byte.
type ErrLiteral string

func (err ErrLiteral) Error() string {
	return f("invalid data '%v'", string(err))
}

func (err ErrLiteral) Unwrap() error {
	return ErrUnresolvedLiteral
}

// ErrTableSize is a WaveData table that is not 1 to 4 waveforms long.
type ErrTableSize int

func (err ErrTableSize) Error() string {
	return f("unusual data size %d, extraction failed", int(err))
}

func (err ErrTableSize) Unwrap() error {
	return ErrBadTableSize
}
