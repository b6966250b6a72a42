// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"bytes"
	"compress/zlib"
	"io"
)

// decodeFlate implements FlateDecode, grounded in benoitkugler-pdf's
// flateDecoder (reader/parser/filters/flateDecode.go): zlib.NewReader
// over the encoded bytes, read to completion. PNG/TIFF predictor
// post-processing for FlateDecode'd content streams is out of this
// package's scope (only xref streams use a predictor in pdfxref, and
// pdfxref's predictor.go handles that directly on already-inflated
// bytes).
func decodeFlate(data []byte) ([]byte, error) {
	rc, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
