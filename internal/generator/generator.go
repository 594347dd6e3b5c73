/*
Generator for the terminal grapheme/width lookup module.

Content

This program reads the grouped XML distribution of the Unicode Character
Database and writes a C table module to standard output: the stages of a
size-optimized lookup trie mapping every Unicode scalar value to its packed
cluster-break/width value, the packed grapheme join rules, and four inline
accessor routines.

Usage

   generator [options] <path-to-ucd.nounihan.grouped.xml>

Options select the trie search space: --min-shift and --max-shift bound the
per-stage chunk shifts, --stages picks the number of trie stages. The
defaults (2, 8, 4) explore 343 configurations and are a good trade-off
between build time and table size. -v turns on verbose tracing.

The input document can be downloaded from
https://www.unicode.org/Public/UCD/latest/ucdxml/ucd.nounihan.grouped.zip

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/pflag"

	"github.com/npillmayer/ucdgen/grapheme"
	"github.com/npillmayer/ucdgen/trie"
	"github.com/npillmayer/ucdgen/ucd"
)

var logger = log.New(os.Stderr, "ucdgen: ", log.LstdFlags)

var (
	minShift = pflag.Int("min-shift", 2, "smallest per-stage chunk shift to explore")
	maxShift = pflag.Int("max-shift", 8, "largest per-stage chunk shift to explore")
	stages   = pflag.Int("stages", 4, "number of trie stages, including the root")
	verbose  = pflag.BoolP("verbose", "v", false, "verbose trace output")
)

const usageText = `Usage:
    generator [options] <path-to-ucd.nounihan.grouped.xml>

This program generates a C lookup module for grapheme cluster breaking and
East Asian display widths from the Unicode Character Database. You can
download the latest ucd.nounihan.grouped.xml from:
    https://www.unicode.org/Public/UCD/latest/ucdxml/ucd.nounihan.grouped.zip
`

func main() {
	pflag.Parse()
	if pflag.NArg() < 1 {
		fmt.Print(usageText)
		os.Exit(1)
	}
	setupTracing()
	if err := run(pflag.Arg(0)); err != nil {
		logger.Fatalln(err)
	}
}

func setupTracing() {
	gtrace.CoreTracer = gologadapter.New()
	level := tracing.LevelError
	if *verbose {
		level = tracing.LevelInfo
	}
	for _, key := range []string{"ucdgen.ucd", "ucdgen.trie"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func run(path string) error {
	defer timeTrack(time.Now(), "generating lookup module")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open UCD document: %w", err)
	}
	defer f.Close()
	doc, err := ucd.ReadDocument(f)
	if err != nil {
		return err
	}
	values, err := ucd.Extract(doc)
	if err != nil {
		return err
	}
	input := values.TrieInput()
	best, _, err := trie.FindBest(input, *minShift, *maxShift, *stages)
	if err != nil {
		return err
	}
	if err := best.Verify(input); err != nil {
		return err
	}
	rules, err := grapheme.PackRules(grapheme.JoinRules)
	if err != nil {
		return err
	}
	return emit(os.Stdout, doc.Description, best, rules, time.Now().UTC())
}

// timeTrack logs the elapsed time of a generator phase in verbose mode.
func timeTrack(start time.Time, name string) {
	if *verbose {
		logger.Printf("timing: %s took %s\n", name, time.Since(start))
	}
}
