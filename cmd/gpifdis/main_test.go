package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gpif/gpif"
)

func writeTable(t *testing.T, dir string, name string, first byte, size int) string {
	var sb strings.Builder
	sb.WriteString("const char xdata WaveData[128] =\n{\n")
	fmt.Fprintf(&sb, "0x%02X,", first)
	for range size - 1 {
		sb.WriteString("0x00,")
	}
	sb.WriteString("\n};\n")

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(sb.String()), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	a := writeTable(t, dir, "a.c", 0x05, 32)
	b := writeTable(t, dir, "b.c", 0x07, 64)

	var buf bytes.Buffer
	err := run(&gpif.Decoder{}, nil, []string{a, b}, &buf)
	assert.NoError(err)

	text := buf.String()
	assert.Equal(1, strings.Count(text, "; "+a+"\n"))
	assert.Equal(1, strings.Count(text, "; "+b+"\n"))
	assert.Less(strings.Index(text, a), strings.Index(text, b))
	assert.Equal(2, strings.Count(text, "; WaveForm 0\n"))
	assert.Equal(1, strings.Count(text, "; WaveForm 1\n"))
	assert.Contains(text, "05000000\tZ\t5\n")
	assert.Contains(text, "07000000\tZ\t7\n")
}

func TestRunErrors(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	good := writeTable(t, dir, "good.c", 0x01, 32)
	short := writeTable(t, dir, "short.c", 0x01, 31)

	var buf bytes.Buffer
	err := run(&gpif.Decoder{}, nil, []string{good, short}, &buf)
	assert.ErrorIs(err, gpif.ErrBadTableSize)
	assert.Contains(err.Error(), short)
	assert.Equal(0, buf.Len())

	err = run(&gpif.Decoder{}, nil, []string{filepath.Join(dir, "missing.c")}, &buf)
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestRunCompilerOutput(t *testing.T) {
	assert := assert.New(t)

	asm := &gpif.Assembler{}
	prog, err := asm.Parse(strings.NewReader("Z 5 CTL0 CTL1\nJ RDY1 OR RDY4 $0 $1\n"))
	assert.NoError(err)
	assert.NoError(prog.Err())

	wf, err := prog.Waveform()
	assert.NoError(err)

	var src bytes.Buffer
	assert.NoError(wf.WriteC(&src))

	path := filepath.Join(t.TempDir(), "waveform.c")
	assert.NoError(os.WriteFile(path, src.Bytes(), 0o644))

	// The lane order follows the table name unless forced.
	var buf bytes.Buffer
	assert.NoError(run(&gpif.Decoder{}, nil, []string{path}, &buf))

	text := buf.String()
	assert.Contains(text, "05000003\tZ\t5 CTL1 CTL0\n")
	assert.Contains(text, "01014C00\tJ\tRDY1 OR RDY4 $0 $1\n")
	assert.NotContains(text, "TRICTL")

	firmware := gpif.LayoutFirmware
	buf.Reset()
	assert.NoError(run(&gpif.Decoder{}, &firmware, []string{path}, &buf))
	assert.NotContains(buf.String(), "05000003\tZ\t5 CTL1 CTL0\n")
}
