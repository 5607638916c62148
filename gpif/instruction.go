// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"fmt"
)

const (
	STATE_COUNT    = 8               // States in a waveform table.
	STATE_SENTINEL = STATE_COUNT - 1 // Reserved idle/trap state.
	STATE_MAX      = STATE_SENTINEL  // Real instructions are states 0..6.
	STRIDE_SIZE    = 4               // Bytes per state.
	TABLE_SIZE     = STATE_COUNT * STRIDE_SIZE
)

// Opcode characters of the mnemonic.
const (
	OPCHAR_DP        = 'J'
	OPCHAR_SGL       = 'S'
	OPCHAR_INCAD     = '+'
	OPCHAR_GINT      = 'G'
	OPCHAR_NEXT      = 'N'
	OPCHAR_DATA      = 'D'
	OPCHAR_NONE      = 'Z'
	OPCHAR_REEXECUTE = '*'
)

// Opcode is the opcode byte of a state.
type Opcode uint8

const (
	OPCODE_DP    = Opcode(1 << 0) // Dual-phase, branch on logic function.
	OPCODE_DATA  = Opcode(1 << 1) // Drive FIFO data, or sample.
	OPCODE_NEXT  = Opcode(1 << 2) // Advance to next FIFO data, or use UDMACRCH:L.
	OPCODE_INCAD = Opcode(1 << 3) // Increment GPIFADR.
	OPCODE_GINT  = Opcode(1 << 4) // Generate a GPIFWF interrupt.
	OPCODE_SGL   = Opcode(1 << 5) // Use SGLDATH:L / UDMACRCH:L.
)

// opcodeChars lists mnemonic characters in the order the decoder emits them.
var opcodeChars = []struct {
	char rune
	bit  Opcode
}{
	{OPCHAR_DP, OPCODE_DP},
	{OPCHAR_SGL, OPCODE_SGL},
	{OPCHAR_INCAD, OPCODE_INCAD},
	{OPCHAR_GINT, OPCODE_GINT},
	{OPCHAR_NEXT, OPCODE_NEXT},
	{OPCHAR_DATA, OPCODE_DATA},
}

// Has returns true if all of the bits in mask are set.
func (op Opcode) Has(mask Opcode) bool {
	return op&mask == mask
}

// IsDP returns true for a dual-phase (branching) state.
func (op Opcode) IsDP() bool {
	return op.Has(OPCODE_DP)
}

// LogicFunc is the logic function byte of a dual-phase state.
//
//	bits 0..2  TERM B
//	bits 3..5  TERM A
//	bits 6..7  function
type LogicFunc uint8

// MakeLogicFunc packs a logic function byte.
func MakeLogicFunc(a uint8, op LogicOp, b uint8) LogicFunc {
	return LogicFunc((uint8(op)&0x3)<<6 | (a&0x7)<<3 | (b&0x7)<<0)
}

// TermA returns the code of operand A.
func (lf LogicFunc) TermA() uint8 {
	return (uint8(lf) >> 3) & 0x7
}

// TermB returns the code of operand B.
func (lf LogicFunc) TermB() uint8 {
	return (uint8(lf) >> 0) & 0x7
}

// Op returns the logic operation.
func (lf LogicFunc) Op() LogicOp {
	return LogicOp((uint8(lf) >> 6) & 0x3)
}

// Branch is the length/branch byte of a state.
//
// Single-phase states hold a repeat count, where 0 means 256.
// Dual-phase states hold:
//
//	bits 0..2  state to branch to when the function is false
//	bits 3..5  state to branch to when the function is true
//	bit  6     reserved
//	bit  7     re-execute
type Branch uint8

const BRANCH_REEXECUTE = Branch(1 << 7)

// MakeBranch packs a dual-phase branch byte.
func MakeBranch(onTrue, onFalse uint8, reexecute bool) (br Branch) {
	br = Branch((onTrue&0x7)<<3 | (onFalse&0x7)<<0)
	if reexecute {
		br |= BRANCH_REEXECUTE
	}
	return
}

// MakeCount packs a single-phase repeat count in the range 0..256.
func MakeCount(count int) Branch {
	return Branch(uint8(count & 0xff))
}

// Count returns the single-phase repeat count. A zero byte is 256 cycles.
func (br Branch) Count() int {
	if br == 0 {
		return 256
	}
	return int(br)
}

// OnTrue returns the target state when the logic function is true.
func (br Branch) OnTrue() uint8 {
	return (uint8(br) >> 3) & 0x7
}

// OnFalse returns the target state when the logic function is false.
func (br Branch) OnFalse() uint8 {
	return (uint8(br) >> 0) & 0x7
}

// Reexecute returns true if the dual-phase state re-executes.
func (br Branch) Reexecute() bool {
	return br&BRANCH_REEXECUTE != 0
}

// Output is the output byte of a state. Bit names depend on TRICTL.
type Output uint8

// Instruction is one state of a waveform.
type Instruction struct {
	Branch    Branch
	Opcode    Opcode
	LogicFunc LogicFunc
	Output    Output
}

// MakeInstruction unpacks a record-major stride.
func MakeInstruction(stride [STRIDE_SIZE]byte) Instruction {
	return Instruction{
		Branch:    Branch(stride[0]),
		Opcode:    Opcode(stride[1]),
		LogicFunc: LogicFunc(stride[2]),
		Output:    Output(stride[3]),
	}
}

// Stride returns the record-major bytes of the instruction.
func (in Instruction) Stride() [STRIDE_SIZE]byte {
	return [STRIDE_SIZE]byte{byte(in.Branch), byte(in.Opcode), byte(in.LogicFunc), byte(in.Output)}
}

// String returns the listing hex form, branch first.
func (in Instruction) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X", uint8(in.Branch), uint8(in.Opcode), uint8(in.LogicFunc), uint8(in.Output))
}

// Lane is one of the four per-state byte fields.
type Lane int

//go:generate go tool stringer -linecomment -type=Lane
const (
	LANE_BRANCH = Lane(0) // branch
	LANE_OPCODE = Lane(1) // opcode
	LANE_LOGIC  = Lane(2) // logic
	LANE_OUTPUT = Lane(3) // output
)

// Layout is the order of the four 8-byte lanes of a packed waveform table.
type Layout [STRIDE_SIZE]Lane

var (
	// LayoutCompiler is the lane order written by the waveform emitter.
	LayoutCompiler = Layout{LANE_BRANCH, LANE_OPCODE, LANE_LOGIC, LANE_OUTPUT}
	// LayoutFirmware is the lane order of GPIF Designer WaveData[] tables.
	LayoutFirmware = Layout{LANE_BRANCH, LANE_OPCODE, LANE_OUTPUT, LANE_LOGIC}
)

// ParseLayout parses a layout name.
func ParseLayout(name string) (layout Layout, err error) {
	switch name {
	case "compiler":
		layout = LayoutCompiler
	case "firmware":
		layout = LayoutFirmware
	default:
		err = fmt.Errorf("%w: layout '%v'", ErrInvalidValue, name)
	}
	return
}

// Pack serializes states lane-major.
func (layout Layout) Pack(states [STATE_COUNT]Instruction) (table [TABLE_SIZE]byte) {
	for n, lane := range layout {
		for state, in := range states {
			table[n*STATE_COUNT+state] = in.Stride()[lane]
		}
	}
	return
}

// Unpack converts one lane-major table into record-major strides.
func (layout Layout) Unpack(table []byte) (strides [TABLE_SIZE]byte) {
	for n, lane := range layout {
		for state := range STATE_COUNT {
			strides[state*STRIDE_SIZE+int(lane)] = table[n*STATE_COUNT+state]
		}
	}
	return
}
