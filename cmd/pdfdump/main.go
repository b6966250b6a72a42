// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pdfdump parses a PDF's cross-reference structures and
// indirect objects and prints a summary, grounded in Geek0x0-pdf's
// cmd/pdfcli flag/mode dispatch style.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/coregx/pdfxref"
	"github.com/coregx/pdfxref/filter"
)

func main() {
	ignoreFilterErrors := flag.Bool("ignore-filter-errors", false, "swallow stream filter errors instead of failing")
	verbose := flag.Bool("v", false, "print object bodies, not just the xref summary")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: pdfdump [options] file.pdf")
		flag.PrintDefaults()
		os.Exit(2)
	}

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	xref, objects, err := pdfxref.Parse(data, filter.Chain{}, pdfxref.WithIgnoreFilterErrors(*ignoreFilterErrors))
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	fmt.Printf("%s: %d xref entries, trailer root=%s size=%d\n", path, len(xref.Entries), xref.Trailer.Root, xref.Trailer.Size)

	keys := append([]string(nil), xref.Order...)
	sort.Strings(keys)
	for _, key := range keys {
		offset := xref.Entries[key]
		obj, ok := objects[key]
		fmt.Printf("  %s @ %d (%d tokens, materialized=%v)\n", key, offset, len(obj), ok)
		if *verbose {
			for _, v := range obj {
				fmt.Printf("    %s\n", v.Tag)
			}
		}
	}
}
