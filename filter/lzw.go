// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"bytes"
	"io"

	"github.com/hhrutter/lzw"
)

// decodeLZW implements LZWDecode using the PDF-flavored LZW reader
// (early-change variant), grounded in benoitkugler-pdf's lzwDecoder
// (reader/parser/filters/lzwDecode.go). The PDF default for
// /EarlyChange is 1 (true); this reference implementation always
// decodes with early change enabled, since pdfxref's stream.go does
// not thread /DecodeParms through to the Filter collaborator.
func decodeLZW(data []byte) ([]byte, error) {
	rc := lzw.NewReader(bytes.NewReader(data), true)
	defer rc.Close()
	return io.ReadAll(rc)
}
