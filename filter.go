// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

// Filter is the external stream-filter codec collaborator: DecodeAll
// applies the named filters in order and returns the decoded bytes, or a
// filter error. The core never enumerates supported filter names; it only
// drives this interface. A reference implementation (FlateDecode,
// LZWDecode, ASCII85Decode, RunLengthDecode) lives in the sibling
// pdfxref/filter package, kept out of the core's import graph so the core
// never depends on a concrete codec.
type Filter interface {
	DecodeAll(filterNames []string, data []byte) ([]byte, error)
}
