// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ezrec/ucrom/isa"
	"github.com/ezrec/ucrom/rom"
	"github.com/ezrec/ucrom/translate"
)

func usage() {
	translate.Fprintf(flag.CommandLine.Output(), "usage: %v [options] <output-path>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var verbose bool
	var length bool
	var list bool
	var dump string
	var color string

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&length, "length", false, "Tag each fetch cycle with the instruction length")
	flag.BoolVar(&list, "list", false, "List every defined opcode after writing")
	flag.StringVar(&dump, "dump", "", "List the opcode selected by an expression")
	flag.StringVar(&color, "color", "auto", "Listing colour: auto, always or never")

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	listing := rom.Listing{}
	switch color {
	case "auto":
		listing.Color = isatty.IsTerminal(os.Stdout.Fd())
	case "always":
		listing.Color = true
	case "never":
	default:
		log.Fatalf("-color: unknown mode %v", color)
	}

	var dumpOp isa.Opcode
	if len(dump) != 0 {
		value, err := rom.Eval(dump)
		if err != nil {
			log.Fatalf("-dump: %v", err)
		}
		if value >= isa.OPCODES {
			log.Fatalf("-dump: 0x%x is not an opcode", value)
		}
		dumpOp = isa.Opcode(value)
	}

	table := rom.MustAssemble(isa.Catalog(), rom.Options{
		LengthTag: length,
		Verbose:   verbose,
	})

	ouf, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer ouf.Close()

	n, err := table.WriteTo(ouf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = ouf.Close()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if verbose {
		log.Printf("%v: %d bytes", path, n)
	}

	if list {
		err = listing.FprintAll(os.Stdout, table)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(dump) != 0 {
		err = listing.Fprint(os.Stdout, table, dumpOp)
		if err != nil {
			log.Fatal(err)
		}
	}
}
