// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"bufio"
	"fmt"
	"io"
)

// Waveform is a complete waveform table, ready to be packed.
type Waveform struct {
	Index    uint                     // Names the emitted table.
	Ifconfig uint8                    // IFCONFIG register value.
	States   [STATE_COUNT]Instruction // Unused states are zero.
}

// NewWaveform pads the instructions to a full table.
func NewWaveform(env Environment, instrs []Instruction) (wf *Waveform, err error) {
	if len(instrs) > STATE_MAX {
		err = ErrTooManyStates
		return
	}

	wf = &Waveform{
		Index:    env.Waveform(),
		Ifconfig: env.Ifconfig(),
	}
	copy(wf.States[:], instrs)

	return
}

// Bytes returns the table in the emitter's lane order.
func (wf *Waveform) Bytes() [TABLE_SIZE]byte {
	return LayoutCompiler.Pack(wf.States)
}

// WriteC writes the table and IFCONFIG value as C source.
func (wf *Waveform) WriteC(w io.Writer) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "#define ifconfig_%d 0x%02x\n\n", wf.Index, wf.Ifconfig)
	fmt.Fprintf(bw, "static const unsigned char waveform_%d[ %d ] = {\n", wf.Index, TABLE_SIZE)

	table := wf.Bytes()
	for lane := range STRIDE_SIZE {
		bw.WriteString("\t")
		for _, data := range table[lane*STATE_COUNT : (lane+1)*STATE_COUNT] {
			fmt.Fprintf(bw, "0x%02X,", data)
		}
		bw.WriteString("\n")
	}
	bw.WriteString("};\n\n")

	err = bw.Flush()
	return
}
