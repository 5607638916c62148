package gpif

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// waveData builds a GPIF Designer style table of n bytes.
func waveData(n int, last string) string {
	var sb strings.Builder
	sb.WriteString("// gpif.c\n#include \"fx2.h\"\n\n")
	sb.WriteString("const char xdata WaveData[128] =\n{\n")
	for i := range n - 1 {
		if i%8 == 0 {
			sb.WriteString("/* Wave */ ")
		}
		sb.WriteString("0x01,")
		if i%8 == 7 {
			sb.WriteString("   // lane\n")
		}
	}
	sb.WriteString(last)
	sb.WriteString("\n};\n\nconst char xdata FlowStates[36] = { 0x00, 0x01 };\n")
	return sb.String()
}

func TestExtractTable(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{32, 64, 96, 128} {
		data, err := ExtractTable(strings.NewReader(waveData(size, "0x02")), nil)
		assert.NoError(err, "size %d", size)
		assert.Equal(size, len(data))
		assert.Equal(byte(0x01), data[0])
		assert.Equal(byte(0x02), data[size-1])
	}

	// Trailing comma
	data, err := ExtractTable(strings.NewReader(waveData(32, "0x02,")), nil)
	assert.NoError(err)
	assert.Equal(32, len(data))
}

func TestExtractTableLiterals(t *testing.T) {
	assert := assert.New(t)

	src := "static const unsigned char waveform_1[ 32 ] = { 255, 0xFe, 010, 0, /* x, y */\n" +
		strings.Repeat("0x00, ", 27) + "0xA5 };"

	data, err := ExtractTable(strings.NewReader(src), nil)
	assert.NoError(err)
	assert.Equal(32, len(data))
	assert.Equal([]byte{255, 0xfe, 8, 0}, data[:4])
	assert.Equal(byte(0xa5), data[31])
}

func TestExtractTableBraceOnAnchorLine(t *testing.T) {
	assert := assert.New(t)

	src := "WaveData[32] = {" + strings.Repeat("1,", 32) + "};"
	data, err := ExtractTable(strings.NewReader(src), nil)
	assert.NoError(err)
	assert.Equal(32, len(data))
}

func TestExtractTableErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		src string
		err error
	}{
		{"const char Other[32] = { 0 };", ErrAnchorMissing},
		{"WaveData[32] = ", ErrBraceMissing},
		{"WaveData[32] = { 0x100, };", ErrUnresolvedLiteral},
		{"WaveData[32] = { 0x10 0x11, };", ErrUnresolvedLiteral},
		{"WaveData[32] = { FOO, };", ErrUnresolvedLiteral},
		{"WaveData[32] = { 1, , 2 };", ErrUnresolvedLiteral},
		{"WaveData[32] = { 08 };", ErrUnresolvedLiteral},
		{"WaveData[32] = { 1, 2, 3 };", ErrBadTableSize},
		{"WaveData[32] = { };", ErrBadTableSize},
		{waveData(33, "0x02"), ErrBadTableSize},
	}

	for _, entry := range table {
		_, err := ExtractTable(strings.NewReader(entry.src), nil)
		assert.ErrorIs(err, entry.err, entry.src)
	}

	var el ErrLiteral
	_, err := ExtractTable(strings.NewReader("WaveData[32] = { 0x1ff };"), nil)
	assert.ErrorAs(err, &el)
	assert.Equal(ErrLiteral("0x1ff"), el)
}

func TestExtractTableAnchor(t *testing.T) {
	assert := assert.New(t)

	src := "uint8_t my_table[] = {" + strings.Repeat("2,", 32) + "};"

	_, err := ExtractTable(strings.NewReader(src), nil)
	assert.ErrorIs(err, ErrAnchorMissing)

	data, err := ExtractTable(strings.NewReader(src), regexp.MustCompile(`my_table\[\]\s*=`))
	assert.NoError(err)
	assert.Equal(byte(2), data[31])
}

func TestExtractLayout(t *testing.T) {
	assert := assert.New(t)

	table, err := Extract(strings.NewReader(waveData(32, "0x02")), nil)
	assert.NoError(err)
	assert.Equal("WaveData", table.Name)
	assert.Equal(LayoutFirmware, table.Layout)

	src := "static const unsigned char waveform_12[ 32 ] = {" + strings.Repeat("0,", 32) + "};"
	table, err = Extract(strings.NewReader(src), nil)
	assert.NoError(err)
	assert.Equal("waveform_12", table.Name)
	assert.Equal(LayoutCompiler, table.Layout)
	assert.Equal(32, len(table.Data))

	// Anchors without a capture group fall back to the firmware order.
	src = "uint8_t waveform_3[] = {" + strings.Repeat("0,", 32) + "};"
	table, err = Extract(strings.NewReader(src), regexp.MustCompile(`waveform_3\[\]\s*=`))
	assert.NoError(err)
	assert.Equal("", table.Name)
	assert.Equal(LayoutFirmware, table.Layout)
}

func TestExtractTableCLiterals(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []string{"0b101", "0B1", "0o17", "0O17", "1_0", "0x_1"} {
		src := "WaveData[32] = { " + word + ", " + strings.Repeat("0, ", 31) + "};"
		_, err := ExtractTable(strings.NewReader(src), nil)
		assert.ErrorIs(err, ErrUnresolvedLiteral, word)
		var el ErrLiteral
		assert.ErrorAs(err, &el, word)
		assert.Equal(ErrLiteral(word), el)
	}

	for word, expected := range map[string]byte{"0": 0, "017": 15, "0XfF": 255, "200": 200} {
		value, ok := parseLiteral(word)
		assert.True(ok, word)
		assert.Equal(expected, value, word)
	}
}
