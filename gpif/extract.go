// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"bytes"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAnchor matches the declaration line of a GPIF Designer
// WaveData[] table, or of a table written by Waveform.WriteC.
var DefaultAnchor = regexp.MustCompile(`\b(WaveData|waveform_\d+)\s*\[[^\]\n]*\]\s*=`)

var cComment = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)

var compilerTableName = regexp.MustCompile(`^waveform_\d+$`)

// Table is a byte array found in C source.
type Table struct {
	Name   string // Array name matched by the anchor, if the anchor captures it.
	Data   []byte
	Layout Layout // Lane order implied by the name.
}

// ExtractTable finds the byte array introduced by the anchor in C source,
// and returns its bytes. A nil anchor uses DefaultAnchor.
func ExtractTable(input io.Reader, anchor *regexp.Regexp) (data []byte, err error) {
	table, err := Extract(input, anchor)
	if table != nil {
		data = table.Data
	}
	return
}

// Extract is ExtractTable, also reporting the array name. Tables named
// like the output of Waveform.WriteC are in LayoutCompiler order, all
// others in LayoutFirmware order.
func Extract(input io.Reader, anchor *regexp.Regexp) (table *Table, err error) {
	if anchor == nil {
		anchor = DefaultAnchor
	}

	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	loc := anchor.FindSubmatchIndex(text)
	if loc == nil {
		err = ErrAnchorMissing
		return
	}

	table = &Table{Layout: LayoutFirmware}
	if len(loc) >= 4 && loc[2] >= 0 {
		table.Name = string(text[loc[2]:loc[3]])
	}
	if compilerTableName.MatchString(table.Name) {
		table.Layout = LayoutCompiler
	}

	body := cComment.ReplaceAll(text[loc[1]:], []byte(" "))

	open := bytes.IndexByte(body, '{')
	if open < 0 {
		err = ErrBraceMissing
		return
	}
	body = body[open+1:]

	if end := bytes.IndexByte(body, '}'); end >= 0 {
		body = body[:end]
	}

	words := strings.Split(string(body), ",")
	for n, word := range words {
		word = strings.TrimSpace(word)
		if len(word) == 0 && n == len(words)-1 {
			// Trailing comma.
			break
		}

		value, ok := parseLiteral(word)
		if !ok {
			err = ErrLiteral(word)
			return
		}
		table.Data = append(table.Data, value)
	}

	switch len(table.Data) {
	case TABLE_SIZE, 2 * TABLE_SIZE, 3 * TABLE_SIZE, 4 * TABLE_SIZE:
	default:
		err = ErrTableSize(len(table.Data))
	}

	return
}

// parseLiteral parses a C integer literal of one byte: 0x hex, leading-0
// octal, or decimal.
func parseLiteral(word string) (value byte, ok bool) {
	lower := strings.ToLower(word)
	if strings.ContainsRune(word, '_') || strings.HasPrefix(lower, "0b") || strings.HasPrefix(lower, "0o") {
		return
	}

	u64, err := strconv.ParseUint(word, 0, 8)
	if err != nil {
		return
	}

	value, ok = byte(u64), true
	return
}
