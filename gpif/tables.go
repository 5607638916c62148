// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"maps"
	"slices"
	"strings"
)

// IFCONFIG_GPIF is the fixed low nibble of IFCONFIG: GPIF master mode,
// synchronous.
const IFCONFIG_GPIF = 0x0a

// LogicOp is the logic function combining operands A and B.
type LogicOp int

//go:generate go tool stringer -linecomment -type=LogicOp
const (
	LOGIC_AND     = LogicOp(0) // AND
	LOGIC_OR      = LogicOp(1) // OR
	LOGIC_XOR     = LogicOp(2) // XOR
	LOGIC_NOT_AND = LogicOp(3) // /AND

	LOGIC_COUNT = 4
)

// ParseLogicOp parses a logic function keyword.
func ParseLogicOp(name string) (op LogicOp, ok bool) {
	for op = range LOGIC_COUNT {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}

// SymbolTable maps operand symbols to codes or bit positions.
type SymbolTable map[string]uint8

// Lookup returns the code of a symbol.
func (st SymbolTable) Lookup(name string) (code uint8, ok bool) {
	code, ok = st[name]
	return
}

// Symbols returns the legal symbols, sorted.
func (st SymbolTable) Symbols() []string {
	return slices.Sorted(maps.Keys(st))
}

// Reverse returns the symbol for a code, if exactly one symbol has it.
func (st SymbolTable) Reverse(code uint8) (name string, ok bool) {
	for sym, value := range st {
		if value == code {
			if ok {
				return "", false
			}
			name, ok = sym, true
		}
	}
	return
}

// OperandKey selects an operand A/B table.
type OperandKey struct {
	ReadyCfg5  uint // GPIFREADYCFG.5: RDY5 when 0, TC when 1.
	FlagSelect FlagSelect
	ReadyCfg7  uint // GPIFREADYCFG.7: INTRDY available when 1.
}

var (
	anyBit    = []uint{0, 1}
	anyFlgSel = []FlagSelect{FLGSEL_PF, FLGSEL_EF, FLGSEL_FF}
)

// operandRows declares where each operand A/B symbol is legal.
var operandRows = []struct {
	symbol    string
	code      uint8
	readyCfg5 []uint
	flagSel   []FlagSelect
	readyCfg7 []uint
}{
	{"RDY0", 0b000, anyBit, anyFlgSel, anyBit},
	{"RDY1", 0b001, anyBit, anyFlgSel, anyBit},
	{"RDY2", 0b010, anyBit, anyFlgSel, anyBit},
	{"RDY3", 0b011, anyBit, anyFlgSel, anyBit},
	{"RDY4", 0b100, anyBit, anyFlgSel, anyBit},
	{"RDY5", 0b101, []uint{0}, anyFlgSel, anyBit},
	{"TC", 0b101, []uint{1}, anyFlgSel, anyBit},
	{"PF", 0b110, anyBit, []FlagSelect{FLGSEL_PF}, anyBit},
	{"EF", 0b110, anyBit, []FlagSelect{FLGSEL_EF}, anyBit},
	{"FF", 0b110, anyBit, []FlagSelect{FLGSEL_FF}, anyBit},
	{"INTRDY", 0b111, anyBit, []FlagSelect{FLGSEL_EF, FLGSEL_FF}, []uint{1}},
}

var operandTable = buildOperandTable()

func buildOperandTable() map[OperandKey]SymbolTable {
	table := make(map[OperandKey]SymbolTable)
	for _, cfg5 := range anyBit {
		for _, sel := range anyFlgSel {
			for _, cfg7 := range anyBit {
				table[OperandKey{cfg5, sel, cfg7}] = SymbolTable{}
			}
		}
	}

	for _, row := range operandRows {
		for _, cfg5 := range row.readyCfg5 {
			for _, sel := range row.flagSel {
				for _, cfg7 := range row.readyCfg7 {
					table[OperandKey{cfg5, sel, cfg7}][row.symbol] = row.code
				}
			}
		}
	}

	return table
}

// OperandKeys returns every operand table key.
func OperandKeys() []OperandKey {
	keys := slices.Collect(maps.Keys(operandTable))
	slices.SortFunc(keys, func(a, b OperandKey) int {
		switch {
		case a.ReadyCfg5 != b.ReadyCfg5:
			return int(a.ReadyCfg5) - int(b.ReadyCfg5)
		case a.FlagSelect != b.FlagSelect:
			return int(a.FlagSelect) - int(b.FlagSelect)
		}
		return int(a.ReadyCfg7) - int(b.ReadyCfg7)
	})
	return keys
}

// OperandTable returns a copy of the operand A/B table for a key.
func OperandTable(key OperandKey) SymbolTable {
	return maps.Clone(operandTable[key])
}

// ambiguousOperand renders a code without knowing the operand table.
var ambiguousOperand = [8]string{
	"RDY0",
	"RDY1",
	"RDY2",
	"RDY3",
	"RDY4",
	"RDY5|TC",
	"PF|EF|FF",
	"INTRDY",
}

// AmbiguousOperand returns the rendering of an operand code that covers
// every table the code could have come from.
func AmbiguousOperand(code uint8) string {
	return ambiguousOperand[code&0x7]
}

// IsAmbiguous returns true if the text is an alternation of symbols.
func IsAmbiguous(text string) bool {
	return strings.Contains(text, "|")
}

var outputTable = [2]SymbolTable{
	// TRICTL=0
	{
		"CTL0": 0,
		"CTL1": 1,
		"CTL2": 2,
		"CTL3": 3,
		"CTL4": 4,
		"CTL5": 5,
	},
	// TRICTL=1
	{
		"CTL0": 0,
		"CTL1": 1,
		"CTL2": 2,
		"CTL3": 3,
		"OE0":  4,
		"OE1":  5,
		"OE2":  6,
		"OE3":  7,
	},
}

// OutputTable returns a copy of the output bit table for a TRICTL mode.
func OutputTable(trictl bool) SymbolTable {
	if trictl {
		return maps.Clone(outputTable[1])
	}
	return maps.Clone(outputTable[0])
}

// OUTPUT_OE_ONLY are output bits that only exist in TRICTL mode.
const OUTPUT_OE_ONLY = Output(1<<7 | 1<<6)

// OutputSymbols renders the set output bits, highest bit first.
func OutputSymbols(out Output, trictl bool) (names []string) {
	table := OutputTable(trictl)
	for bit := 7; bit >= 0; bit-- {
		if out&(1<<bit) == 0 {
			continue
		}
		name, ok := table.Reverse(uint8(bit))
		if !ok {
			continue
		}
		names = append(names, name)
	}
	return
}
