package gpif

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveformPadding(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment()
	wf, err := NewWaveform(env, []Instruction{{Branch: 5}})
	assert.NoError(err)

	assert.Equal(uint(0), wf.Index)
	assert.Equal(uint8(0x8a), wf.Ifconfig)
	assert.Equal(Instruction{Branch: 5}, wf.States[0])
	for state := 1; state < STATE_COUNT; state++ {
		assert.Equal(Instruction{}, wf.States[state])
	}

	table := wf.Bytes()
	assert.Equal(byte(5), table[0])
	for n := 1; n < TABLE_SIZE; n++ {
		assert.Equal(byte(0), table[n], "byte %d", n)
	}

	_, err = NewWaveform(env, make([]Instruction, STATE_MAX+1))
	assert.ErrorIs(err, ErrTooManyStates)
}

func TestWaveformBytes(t *testing.T) {
	assert := assert.New(t)

	instrs := []Instruction{
		{Branch: 0x11, Opcode: 0x21, LogicFunc: 0x31, Output: 0x41},
		{Branch: 0x12, Opcode: 0x22, LogicFunc: 0x32, Output: 0x42},
	}

	wf, err := NewWaveform(NewEnvironment(), instrs)
	assert.NoError(err)

	expected := [TABLE_SIZE]byte{
		0x11, 0x12, 0, 0, 0, 0, 0, 0,
		0x21, 0x22, 0, 0, 0, 0, 0, 0,
		0x31, 0x32, 0, 0, 0, 0, 0, 0,
		0x41, 0x42, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(expected, wf.Bytes())

	firmware := [TABLE_SIZE]byte{
		0x11, 0x12, 0, 0, 0, 0, 0, 0,
		0x21, 0x22, 0, 0, 0, 0, 0, 0,
		0x41, 0x42, 0, 0, 0, 0, 0, 0,
		0x31, 0x32, 0, 0, 0, 0, 0, 0,
	}
	assert.Equal(firmware, LayoutFirmware.Pack(wf.States))
}

func TestWaveformWriteC(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(".WAVEFORM 2\n.IFCLKSRC 0\nZ 5\nD 3 CTL0\n"))
	assert.NoError(err)
	assert.NoError(prog.Err())

	wf, err := prog.Waveform()
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(wf.WriteC(&buf))

	expected := strings.Join([]string{
		"#define ifconfig_2 0x0a",
		"",
		"static const unsigned char waveform_2[ 32 ] = {",
		"\t0x05,0x03,0x00,0x00,0x00,0x00,0x00,0x00,",
		"\t0x00,0x02,0x00,0x00,0x00,0x00,0x00,0x00,",
		"\t0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00,",
		"\t0x00,0x01,0x00,0x00,0x00,0x00,0x00,0x00,",
		"};",
		"",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())
}

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"compiler", "firmware"} {
		layout, err := ParseLayout(name)
		assert.NoError(err)

		var states [STATE_COUNT]Instruction
		for n := range states {
			states[n] = Instruction{
				Branch:    Branch(0x10 + n),
				Opcode:    Opcode(0x20 + n),
				LogicFunc: LogicFunc(0x30 + n),
				Output:    Output(0x40 + n),
			}
		}

		table := layout.Pack(states)
		strides := layout.Unpack(table[:])
		for n, in := range states {
			var stride [STRIDE_SIZE]byte
			copy(stride[:], strides[n*STRIDE_SIZE:])
			assert.Equal(in, MakeInstruction(stride), "%v state %d", name, n)
		}
	}

	_, err := ParseLayout("sideways")
	assert.ErrorIs(err, ErrInvalidValue)

	assert.Equal("branch", LANE_BRANCH.String())
	assert.Equal("output", LayoutFirmware[2].String())
}
