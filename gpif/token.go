// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"bufio"
	"io"
	"strings"
)

// Token is one source statement, split but not interpreted.
type Token struct {
	LineNo   int      // Source line number, starting at 1.
	Mnemonic string   // Opcode or directive.
	Operands []string // Operands in source order.
	Comment  string   // Trailing comment, without the ';'.
}

// IsDirective returns true if the mnemonic names a directive.
func (tok Token) IsDirective() bool {
	return strings.HasPrefix(tok.Mnemonic, ".")
}

// ParseLine splits a line of source text. Blank and comment-only lines
// return ok == false.
func ParseLine(line string, lineno int) (tok Token, ok bool) {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], ";") {
		return
	}

	tok = Token{LineNo: lineno, Mnemonic: words[0]}
	pos := strings.Index(line, words[0]) + len(words[0])
	for _, word := range words[1:] {
		pos += strings.Index(line[pos:], word)
		if strings.HasPrefix(word, ";") {
			tok.Comment = strings.TrimSpace(line[pos+1:])
			break
		}
		pos += len(word)
		tok.Operands = append(tok.Operands, word)
	}

	ok = true
	return
}

// Lexer reads tokens from a line oriented source.
type Lexer struct {
	scanner *bufio.Scanner
	lineno  int
}

// NewLexer creates a lexer for the input.
func NewLexer(input io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(input)}
}

// Next returns the next token, or ok == false at the end of input.
func (lex *Lexer) Next() (tok Token, ok bool) {
	for lex.scanner.Scan() {
		lex.lineno += 1
		tok, ok = ParseLine(lex.scanner.Text(), lex.lineno)
		if ok {
			return
		}
	}
	return
}

// Err returns the first read error of the lexer.
func (lex *Lexer) Err() error {
	return lex.scanner.Err()
}

// Tokenize reads the whole input.
func Tokenize(input io.Reader) (toks []Token, err error) {
	lex := NewLexer(input)
	for tok, ok := lex.Next(); ok; tok, ok = lex.Next() {
		toks = append(toks, tok)
	}
	err = lex.Err()
	return
}
