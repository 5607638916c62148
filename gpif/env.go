// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Flag is a configuration flag set by a directive.
type Flag int

//go:generate go tool stringer -linecomment -type=Flag
const (
	FLAG_IFCLKSRC      = Flag(0) // .IFCLKSRC
	FLAG_3048MHZ       = Flag(1) // .3048MHZ
	FLAG_IFCLKOE       = Flag(2) // .IFCLKOE
	FLAG_TRICTL        = Flag(3) // .TRICTL
	FLAG_GPIFREADYCFG5 = Flag(4) // .GPIFREADYCFG5
	FLAG_GPIFREADYCFG7 = Flag(5) // .GPIFREADYCFG7
	FLAG_EPXGPIFFLGSEL = Flag(6) // .EPXGPIFFLGSEL
	FLAG_EP            = Flag(7) // .EP
	FLAG_WAVEFORM      = Flag(8) // .WAVEFORM

	FLAG_COUNT = 9
)

// Flags returns every flag in directive table order.
func Flags() []Flag {
	flags := make([]Flag, FLAG_COUNT)
	for n := range flags {
		flags[n] = Flag(n)
	}
	return flags
}

// Valid returns true for flags of the directive table.
func (flag Flag) Valid() bool {
	return flag >= 0 && flag < FLAG_COUNT
}

// FlagSelect is the FIFO flag routed to operand code 6.
type FlagSelect int

//go:generate go tool stringer -linecomment -type=FlagSelect
const (
	FLGSEL_PF = FlagSelect(0) // PF
	FLGSEL_EF = FlagSelect(1) // EF
	FLGSEL_FF = FlagSelect(2) // FF

	FLGSEL_COUNT = 3
)

// ParseFlagSelect parses a flag-select symbol.
func ParseFlagSelect(name string) (sel FlagSelect, ok bool) {
	for sel = range FLGSEL_COUNT {
		if sel.String() == name {
			return sel, true
		}
	}
	return 0, false
}

// LookupDirective returns the flag set by a directive name, with or
// without its leading '.'.
func LookupDirective(name string) (flag Flag, ok bool) {
	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}
	for _, flag = range Flags() {
		if flag.String() == name {
			return flag, true
		}
	}
	return
}

// Environment is the set of configuration flags in effect. It is a value;
// copies are independent snapshots.
type Environment struct {
	value [FLAG_COUNT]uint
}

var defaultEnvironment = Environment{
	value: [FLAG_COUNT]uint{
		FLAG_IFCLKSRC:      1,
		FLAG_3048MHZ:       0,
		FLAG_IFCLKOE:       0,
		FLAG_TRICTL:        0,
		FLAG_GPIFREADYCFG5: 0,
		FLAG_GPIFREADYCFG7: 0,
		FLAG_EPXGPIFFLGSEL: uint(FLGSEL_PF),
		FLAG_EP:            2,
		FLAG_WAVEFORM:      0,
	},
}

// NewEnvironment returns the power-on defaults.
func NewEnvironment() Environment {
	return defaultEnvironment
}

// Get returns the current value of a flag, or 0 for an unknown flag.
func (env Environment) Get(flag Flag) uint {
	if !flag.Valid() {
		return 0
	}
	return env.value[flag]
}

// Set sets a flag, checking its legal range.
func (env *Environment) Set(flag Flag, value uint) (err error) {
	if !flag.Valid() {
		err = fmt.Errorf("%w: %v", ErrInvalidValue, flag)
		return
	}

	legal := true
	switch flag {
	case FLAG_EP:
		legal = slices.Contains([]uint{2, 4, 6, 8}, value)
	case FLAG_EPXGPIFFLGSEL:
		legal = value < FLGSEL_COUNT
	case FLAG_WAVEFORM:
	default:
		legal = value <= 1
	}

	if !legal {
		err = fmt.Errorf("%w: %v %v", ErrInvalidValue, flag, value)
		return
	}

	env.value[flag] = value
	return
}

// SetText sets a flag from directive operand text.
func (env *Environment) SetText(flag Flag, text string) (err error) {
	var value uint

	if flag == FLAG_EPXGPIFFLGSEL {
		sel, ok := ParseFlagSelect(text)
		if !ok {
			err = &ErrDirective{Flag: flag, Value: text}
			return
		}
		value = uint(sel)
	} else {
		v64, perr := strconv.ParseUint(text, 10, 32)
		if perr != nil {
			err = &ErrDirective{Flag: flag, Value: text}
			return
		}
		value = uint(v64)
	}

	if env.Set(flag, value) != nil {
		err = &ErrDirective{Flag: flag, Value: text}
	}

	return
}

// Text returns the directive operand text of a flag's value.
func (env Environment) Text(flag Flag) string {
	if flag == FLAG_EPXGPIFFLGSEL {
		return env.FlagSelect().String()
	}
	return strconv.FormatUint(uint64(env.Get(flag)), 10)
}

// TriCtl returns true when the outputs are in tri-state control mode.
func (env Environment) TriCtl() bool {
	return env.value[FLAG_TRICTL] != 0
}

// FlagSelect returns the selected FIFO flag.
func (env Environment) FlagSelect() FlagSelect {
	return FlagSelect(env.value[FLAG_EPXGPIFFLGSEL])
}

// Waveform returns the waveform index used to name emitted tables.
func (env Environment) Waveform() uint {
	return env.value[FLAG_WAVEFORM]
}

// Ifconfig returns the IFCONFIG register byte for this environment.
func (env Environment) Ifconfig() uint8 {
	return uint8(env.value[FLAG_IFCLKSRC]<<7|env.value[FLAG_3048MHZ]<<6|env.value[FLAG_IFCLKOE]<<5) | IFCONFIG_GPIF
}

// OperandKey returns the key of the operand table in effect.
func (env Environment) OperandKey() OperandKey {
	return OperandKey{
		ReadyCfg5:  env.value[FLAG_GPIFREADYCFG5],
		FlagSelect: env.FlagSelect(),
		ReadyCfg7:  env.value[FLAG_GPIFREADYCFG7],
	}
}

// Operands returns the operand A/B symbol table in effect.
func (env Environment) Operands() SymbolTable {
	return OperandTable(env.OperandKey())
}

// Outputs returns the output bit symbol table in effect.
func (env Environment) Outputs() SymbolTable {
	return OutputTable(env.TriCtl())
}
