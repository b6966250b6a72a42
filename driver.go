// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdfxref parses the cross-reference structures and indirect
// objects of a PDF byte buffer: classical xref tables, xref streams, and
// incremental-update chains. It does not render content streams,
// decrypt encrypted documents, or write PDF data back out; stream
// filter decoding is delegated to an external Filter collaborator
// supplied by the caller.
package pdfxref

import "bytes"

var pdfHeader = []byte("%PDF-")

// Objects maps an "num_gen" object reference to its parsed body, the
// token sequence following "N G obj" up to (but excluding) "endobj".
type Objects map[string][]RawValue

// Parse locates the PDF header, resolves the cross-reference chain
// starting at offset 0, then materializes every uncompressed object the
// xref names.
//
// filter decodes stream bytes for the filter names a stream's
// dictionary declares; pass nil to leave all stream bytes undecoded.
func Parse(data []byte, filter Filter, opts ...Option) (*Xref, Objects, error) {
	if len(data) == 0 {
		return nil, nil, wrapErr("parse", 0, ErrEmptyData)
	}

	headerAt := bytes.Index(data, pdfHeader)
	if headerAt < 0 {
		return nil, nil, wrapErr("parse", 0, ErrHeaderMissing)
	}
	data = data[headerAt:]

	cfg := Configure(opts...)
	s := newSession(data, cfg, filter)

	if err := s.resolveXref(0, true); err != nil {
		return nil, nil, err
	}
	if len(s.xref.Entries) == 0 {
		return nil, nil, wrapErr("parse", 0, ErrXrefNotFound)
	}

	objs := make(Objects, len(s.xref.Entries))
	for key, offset := range s.xref.Entries {
		if offset <= 0 {
			continue
		}
		if cached, ok := s.objects.get(key); ok {
			objs[key] = cached
			continue
		}
		obj, err := s.materializedObject(key, true)
		if err != nil {
			return nil, nil, err
		}
		objs[key] = obj
	}

	return s.xref, objs, nil
}
