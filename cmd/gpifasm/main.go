// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command gpifasm assembles GPIF waveform source into a C table.
//
// The diagnostic listing goes to stderr, and the table to stdout or -o.
// Any statement error fails the whole assembly after every statement has
// been listed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/ezrec/gpif/gpif"
)

// defines collects -D NAME=VALUE options.
type defines []string

func (d *defines) String() string {
	return strings.Join(*d, ",")
}

func (d *defines) Set(value string) error {
	*d = append(*d, value)
	return nil
}

func main() {
	var script string
	var predefs defines
	var output string
	var interactive bool
	var verbose bool

	flag.StringVar(&script, "e", "", "Starlark environment script")
	flag.Var(&predefs, "D", "Predefine a directive, as NAME=VALUE")
	flag.StringVar(&output, "o", "-", "C table output")
	flag.BoolVar(&interactive, "i", false, "Interactive mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	log.SetPrefix("gpifasm: ")
	log.SetFlags(0)

	if flag.NArg() > 1 || (interactive && flag.NArg() != 0) {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	asm := &gpif.Assembler{Verbose: verbose}

	env := gpif.NewEnvironment()
	if len(script) != 0 {
		err := env.Exec(script, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	asm.Environment = &env

	for _, def := range predefs {
		name, value, ok := strings.Cut(def, "=")
		if !ok {
			log.Fatalf("-D %v: expected NAME=VALUE", def)
		}
		err := asm.Predefine(name, value)
		if err != nil {
			log.Fatalf("-D %v: %v", def, err)
		}
	}

	input := "-"
	if flag.NArg() == 1 {
		input = flag.Arg(0)
	}

	err := run(asm, input, output, interactive)
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func run(asm *gpif.Assembler, input string, output string, interactive bool) (err error) {
	var wf *gpif.Waveform

	if interactive {
		wf, err = interact(asm, os.Stderr)
	} else {
		var inf io.Reader = os.Stdin
		if input != "-" {
			var f *os.File
			f, err = os.Open(input)
			if err != nil {
				return
			}
			defer f.Close()
			inf = f
		}
		wf, err = assemble(asm, inf, os.Stderr)
		if err != nil {
			err = fmt.Errorf("%v: %w", input, err)
		}
	}
	if err != nil {
		return
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return
		}
		defer func() {
			cerr := f.Close()
			if err == nil {
				err = cerr
			}
		}()
		ouf = f
	}

	err = wf.WriteC(ouf)
	return
}

// assemble compiles a source stream, writing the listing.
func assemble(asm *gpif.Assembler, input io.Reader, listing io.Writer) (wf *gpif.Waveform, err error) {
	prog, err := asm.Parse(input)
	if prog != nil {
		lerr := gpif.WriteListing(listing, prog)
		if lerr != nil {
			err = errors.Join(err, lerr)
		}
	}
	if err != nil {
		return
	}

	err = prog.Err()
	if err != nil {
		err = errors.New("assembly failed")
		return
	}

	wf, err = prog.Waveform()
	return
}

// interact encodes each line as it is typed, and returns the waveform
// of the accepted instructions at end of input.
func interact(asm *gpif.Assembler, listing io.Writer) (wf *gpif.Waveform, err error) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	env := gpif.NewEnvironment()
	if asm.Environment != nil {
		env = *asm.Environment
	}

	var instrs []gpif.Instruction
	for lineno := 1; ; lineno++ {
		var text string
		text, err = line.Prompt("gpif> ")
		if err == io.EOF {
			err = nil
			break
		}
		if err != nil {
			return
		}

		tok, ok := gpif.ParseLine(text, lineno)
		if !ok {
			continue
		}
		line.AppendHistory(text)

		stmt := gpif.Statement{Token: tok, State: len(instrs), Environment: env}
		switch {
		case tok.IsDirective():
			stmt.State = -1
			stmt.Err = env.Apply(tok)
			stmt.Environment = env
		case len(instrs) >= gpif.STATE_MAX:
			stmt.Err = gpif.ErrTooManyStates
		default:
			stmt.Instruction, stmt.Err = gpif.Encode(env, tok, len(instrs)+1)
			if stmt.Err == nil {
				instrs = append(instrs, stmt.Instruction)
			}
		}

		err = gpif.WriteStatement(listing, &stmt)
		if err != nil {
			return
		}
	}

	err = gpif.WriteEnvironment(listing, env)
	if err != nil {
		return
	}

	wf, err = gpif.NewWaveform(env, instrs)
	return
}
