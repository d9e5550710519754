// align is a small CLI to manually run the alignment implementations used for benchmarking.
//
// It accepts two text files or a txtar archive with the files x and y, like the ones in
// textdiff/testdata, and prints the number of tokens matched by each implementation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/tools/txtar"
	"znkr.io/tablediff/internal/benchmarks"
	"znkr.io/tablediff/textdiff"
)

type config struct {
	lib       string
	x, y      string
	txtar     string
	graphemes bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "", "library to use for aligning, all libraries if empty")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.BoolVar(&cfg.graphemes, "graphemes", false, "split inputs into grapheme clusters instead of words")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: align -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: align <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var libs []benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if cfg.lib == "" || l.Name == cfg.lib {
			libs = append(libs, l)
		}
	}
	if len(libs) == 0 {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var x, y []byte
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = f.Data
			case "y":
				y = f.Data
			}
		}
	} else {
		var err error
		x, err = os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		y, err = os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
	}

	tokenize := textdiff.Words
	if cfg.graphemes {
		tokenize = textdiff.Graphemes
	}
	tx, ty := tokenize(string(x)), tokenize(string(y))

	fmt.Printf("%d and %d tokens\n", len(tx), len(ty))
	for _, l := range libs {
		start := time.Now()
		n := l.Align(tx, ty)
		fmt.Printf("%-16s %8d matched %12v\n", l.Name, n, time.Since(start))
	}
	return nil
}
