// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command gpifdis decompiles GPIF WaveData tables from C source.
//
// Without -e the decode is best effort, since a table does not record the
// environment it was assembled under.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/gpif/gpif"
)

func main() {
	var script string
	var layoutName string
	var verbose bool

	flag.StringVar(&script, "e", "", "Starlark environment script the tables were assembled with")
	flag.StringVar(&layoutName, "layout", "", "Table lane order, 'firmware' or 'compiler'; default from the table name")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	log.SetPrefix("gpifdis: ")
	log.SetFlags(0)

	var layout *gpif.Layout
	if len(layoutName) != 0 {
		forced, err := gpif.ParseLayout(layoutName)
		if err != nil {
			log.Fatalf("-layout: %v", err)
		}
		layout = &forced
	}

	dec := &gpif.Decoder{Verbose: verbose}
	if len(script) != 0 {
		env := gpif.NewEnvironment()
		err := env.Exec(script, nil)
		if err != nil {
			log.Fatalf("%v", err)
		}
		dec.Environment = &env
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	err := run(dec, layout, files, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// run extracts every file concurrently, then decodes them in argument order.
// A nil layout decodes each table in the lane order its name implies.
func run(dec *gpif.Decoder, layout *gpif.Layout, files []string, w io.Writer) (err error) {
	tables := make([]*gpif.Table, len(files))

	var grp errgroup.Group
	for n, name := range files {
		grp.Go(func() error {
			table, err := load(name)
			if err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
			tables[n] = table
			return nil
		})
	}

	err = grp.Wait()
	if err != nil {
		return
	}

	bw := bufio.NewWriter(w)
	defer func() {
		ferr := bw.Flush()
		if err == nil {
			err = ferr
		}
	}()

	for n, table := range tables {
		order := table.Layout
		if layout != nil {
			order = *layout
		}

		var dds []*gpif.Decoded
		dds, err = dec.Decompile(table.Data, order)
		if err != nil {
			err = fmt.Errorf("%v: %w", files[n], err)
			return
		}

		if len(files) > 1 {
			fmt.Fprintf(bw, "; %v\n", files[n])
		}
		for _, dd := range dds {
			err = dd.WriteText(bw)
			if err != nil {
				return
			}
		}
	}

	return
}

// load extracts the waveform table of a file, or stdin for "-".
func load(name string) (table *gpif.Table, err error) {
	var inf io.Reader = os.Stdin
	if name != "-" {
		var f *os.File
		f, err = os.Open(name)
		if err != nil {
			return
		}
		defer f.Close()
		inf = f
	}

	table, err = gpif.Extract(inf, nil)
	return
}
