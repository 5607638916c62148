// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/gpif/translate"
)

// DecodedState is the mnemonic form of one state.
type DecodedState struct {
	State       int
	Instruction Instruction
	Mnemonic    string
	Operands    []string
}

// String returns the decompiler listing line for the state.
func (ds DecodedState) String() string {
	return fmt.Sprintf("%v\t%v\t%v", ds.Instruction, ds.Mnemonic, strings.Join(ds.Operands, " "))
}

// Decoded is one decompiled waveform table.
type Decoded struct {
	Index      int            // Position of the table in the input.
	States     []DecodedState // States 0..6; the sentinel state is not decoded.
	BestEffort bool           // Set when decoded without the source environment.
	TriCtlFrom int            // State where TRICTL mode was first assumed, or -1.
}

// TriCtlInferred returns true if the decoder guessed TRICTL mode from the
// output bits.
func (dd *Decoded) TriCtlInferred() bool {
	return dd.TriCtlFrom >= 0
}

// WriteText writes the decompiled table as source text.
func (dd *Decoded) WriteText(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	translate.Fprintf(bw, "; WaveForm %d\n", dd.Index)
	if dd.BestEffort {
		translate.Fprintf(bw, "; best-effort decode, environment unknown\n")
	}
	if dd.TriCtlInferred() {
		translate.Fprintf(bw, "; TRICTL assumed from state %d\n", dd.TriCtlFrom)
	}
	for _, ds := range dd.States {
		bw.WriteString(ds.String())
		bw.WriteString("\n")
	}

	err = bw.Flush()
	return
}

// Mnemonic returns the opcode text of an instruction.
func Mnemonic(in Instruction) string {
	var sb strings.Builder

	for _, oc := range opcodeChars {
		if in.Opcode.Has(oc.bit) {
			sb.WriteRune(oc.char)
		}
	}
	if sb.Len() == 0 {
		sb.WriteRune(OPCHAR_NONE)
	}
	if in.Opcode.IsDP() && in.Branch.Reexecute() {
		sb.WriteRune(OPCHAR_REEXECUTE)
	}

	return sb.String()
}

// Decoder turns packed waveform tables back into source text.
//
// Without an Environment the decode is best effort: operand codes 5 and 6
// render as every symbol they could stand for, and TRICTL mode is assumed
// from the first state that drives OE2 or OE3. States before that one are
// not revisited.
type Decoder struct {
	Verbose     bool         // If set, logs each decoded state.
	Environment *Environment // Out-of-band environment, or nil.
}

// term renders an operand A/B code.
func (dec *Decoder) term(code uint8) string {
	if dec.Environment != nil {
		name, ok := dec.Environment.Operands().Reverse(code)
		if ok {
			return name
		}
	}
	return AmbiguousOperand(code)
}

// operands renders the operands of an instruction.
func (dec *Decoder) operands(in Instruction, trictl bool) (ops []string) {
	if in.Opcode.IsDP() {
		ops = append(ops,
			dec.term(in.LogicFunc.TermA()),
			in.LogicFunc.Op().String(),
			dec.term(in.LogicFunc.TermB()),
			fmt.Sprintf("$%d", in.Branch.OnTrue()),
			fmt.Sprintf("$%d", in.Branch.OnFalse()),
		)
	} else {
		ops = append(ops, strconv.Itoa(in.Branch.Count()))
	}

	ops = append(ops, OutputSymbols(in.Output, trictl)...)
	return
}

// Decode decodes one table of record-major strides: branch, opcode,
// logic function, output for each state in turn.
func (dec *Decoder) Decode(index int, strides []byte) (dd *Decoded, err error) {
	if len(strides) != TABLE_SIZE {
		err = ErrTableSize(len(strides))
		return
	}

	dd = &Decoded{
		Index:      index,
		BestEffort: dec.Environment == nil,
		TriCtlFrom: -1,
	}

	trictl := false
	if dec.Environment != nil {
		trictl = dec.Environment.TriCtl()
	}

	for state := range STATE_MAX {
		var stride [STRIDE_SIZE]byte
		copy(stride[:], strides[state*STRIDE_SIZE:])
		in := MakeInstruction(stride)

		if dec.Environment == nil && !trictl && in.Output&OUTPUT_OE_ONLY != 0 {
			trictl = true
			dd.TriCtlFrom = state
		}

		ds := DecodedState{
			State:       state,
			Instruction: in,
			Mnemonic:    Mnemonic(in),
			Operands:    dec.operands(in, trictl),
		}
		if dec.Verbose {
			log.Printf("waveform %d $%d: %v", index, state, ds)
		}
		dd.States = append(dd.States, ds)
	}

	return
}

// Decompile decodes one to four concatenated lane-major tables.
func (dec *Decoder) Decompile(data []byte, layout Layout) (dds []*Decoded, err error) {
	switch len(data) {
	case TABLE_SIZE, 2 * TABLE_SIZE, 3 * TABLE_SIZE, 4 * TABLE_SIZE:
	default:
		err = ErrTableSize(len(data))
		return
	}

	for index := range len(data) / TABLE_SIZE {
		strides := layout.Unpack(data[index*TABLE_SIZE : (index+1)*TABLE_SIZE])

		var dd *Decoded
		dd, err = dec.Decode(index, strides[:])
		if err != nil {
			return
		}
		dds = append(dds, dd)
	}

	return
}
