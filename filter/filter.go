// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter is a reference implementation of the pdfxref.Filter
// collaborator. It is not imported by pdfxref itself — the core only
// depends on the Filter interface — but gives callers, the package's own
// tests, and cmd/pdfdump a concrete codec to plug in.
package filter

import "fmt"

// decoder decodes one filter's encoded bytes into its predecessor's
// output (or the raw stream bytes, for the first filter in a chain).
type decoder func(data []byte) ([]byte, error)

var decoders = map[string]decoder{
	"FlateDecode":     decodeFlate,
	"Fl":              decodeFlate,
	"LZWDecode":       decodeLZW,
	"LZW":             decodeLZW,
	"ASCII85Decode":   decodeASCII85,
	"A85":             decodeASCII85,
	"RunLengthDecode": decodeRunLength,
	"RL":              decodeRunLength,
}

// Chain applies named filters in sequence, mirroring the order stream
// dictionaries list them: the first entry decodes the raw stream bytes,
// each subsequent entry decodes the previous entry's output.
type Chain struct{}

// DecodeAll implements pdfxref.Filter.
func (Chain) DecodeAll(filterNames []string, data []byte) ([]byte, error) {
	out := data
	for _, name := range filterNames {
		dec, ok := decoders[name]
		if !ok {
			return nil, fmt.Errorf("filter: unsupported filter %q", name)
		}
		decoded, err := dec(out)
		if err != nil {
			return nil, fmt.Errorf("filter: %s: %w", name, err)
		}
		out = decoded
	}
	return out, nil
}
