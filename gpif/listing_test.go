package gpif

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteEnvironment(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment()
	assert.NoError(env.SetText(FLAG_EPXGPIFFLGSEL, "FF"))

	var buf bytes.Buffer
	assert.NoError(WriteEnvironment(&buf, env))

	expected := strings.Join([]string{
		";",
		";\tEnvironment in effect:",
		";",
		"\t.IFCLKSRC\t1",
		"\t.3048MHZ\t0",
		"\t.IFCLKOE\t0",
		"\t.TRICTL\t0",
		"\t.GPIFREADYCFG5\t0",
		"\t.GPIFREADYCFG7\t0",
		"\t.EPXGPIFFLGSEL\tFF",
		"\t.EP\t2",
		"\t.WAVEFORM\t0",
		";",
		"",
	}, "\n")
	assert.Equal(expected, buf.String())
}

func TestWriteListing(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".TRICTL 1",
		"SD 3 CTL0 OE3 ; strobe",
		".BOGUS 1",
		"J RDY0 AND RDY1 $0",
		"Z",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	var buf bytes.Buffer
	assert.NoError(WriteListing(&buf, prog))

	text := buf.String()
	lines := strings.Split(text, "\n")

	// Environment block is first, and shows the final environment.
	assert.Equal(";", lines[0])
	assert.Contains(text, "\t.TRICTL\t1\n")

	listing := lines[13:]
	assert.Equal("$0  03228100\tSD\t3 CTL0 OE3 \t; strobe", listing[0])
	assert.Equal(".BOGUS\t1", listing[1])
	assert.True(strings.HasPrefix(listing[2], "*** ERROR: line 3: "), listing[2])
	assert.Equal("$1  07010100\tJ\tRDY0 AND RDY1 $0 ", listing[3])
	assert.True(strings.HasPrefix(listing[4], "*** ERROR: line 4: "), listing[4])
	assert.Contains(listing[4], ErrMissingBranchTargets.Error())
	assert.Equal("$2  01000000\tZ\t", listing[5])
	assert.Equal("", listing[6])
	assert.Equal(7, len(listing))

	// Directives without errors are not listed.
	assert.NotContains(text, ".TRICTL 1")
}
