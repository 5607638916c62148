// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gpif

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/gpif/translate"
)

// WriteEnvironment writes the flags of an environment as listing comments.
func WriteEnvironment(w io.Writer, env Environment) (err error) {
	bw := bufio.NewWriter(w)

	translate.Fprintf(bw, ";\n;\tEnvironment in effect:\n;\n")
	for _, flag := range Flags() {
		fmt.Fprintf(bw, "\t%v\t%v\n", flag, env.Text(flag))
	}
	bw.WriteString(";\n")

	err = bw.Flush()
	return
}

// WriteStatement writes the listing line of one statement, and its error.
func WriteStatement(w io.Writer, stmt *Statement) (err error) {
	bw := bufio.NewWriter(w)

	if stmt.IsDirective() {
		if stmt.Err != nil {
			fmt.Fprintf(bw, "%v\t%v\n", stmt.Mnemonic, strings.Join(stmt.Operands, " "))
		}
	} else {
		fmt.Fprintf(bw, "$%d  %v\t%v\t", stmt.State, stmt.Instruction, stmt.Mnemonic)
		for _, operand := range stmt.Operands {
			bw.WriteString(operand)
			bw.WriteString(" ")
		}
		if len(stmt.Comment) != 0 {
			fmt.Fprintf(bw, "\t; %v", stmt.Comment)
		}
		bw.WriteString("\n")
	}

	if stmt.Err != nil {
		translate.Fprintf(bw, "*** ERROR: line %d: %v\n", stmt.LineNo, stmt.Err)
	}

	err = bw.Flush()
	return
}

// WriteListing writes the diagnostic listing of a program: the
// environment in effect, then every instruction with its encoding.
func WriteListing(w io.Writer, prog *Program) (err error) {
	err = WriteEnvironment(w, prog.Environment)
	if err != nil {
		return
	}

	for n := range prog.Statements {
		err = WriteStatement(w, &prog.Statements[n])
		if err != nil {
			return
		}
	}

	return
}
