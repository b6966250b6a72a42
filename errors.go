// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import (
	"errors"
	"fmt"
)

// ParseError wraps a sentinel error kind with the byte offset at which it
// was detected and the operation that detected it, the way the upstream
// reader's PDFError carried Op/Page/Path context around an underlying error.
type ParseError struct {
	Op     string // operation that failed, e.g. "xref", "tokenizer", "materialize"
	Offset int64  // byte offset at which the error was detected, -1 if not applicable
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("pdfxref: %s at offset %d: %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("pdfxref: %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func wrapErr(op string, offset int64, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Op: op, Offset: offset, Err: err}
}

// Sentinel error kinds. Callers should use errors.Is against these, not
// string matching against Error().
var (
	// ErrEmptyData is raised by the driver on empty input.
	ErrEmptyData = errors.New("pdfxref: empty input")

	// ErrHeaderMissing is raised by the driver when "%PDF-" is absent.
	ErrHeaderMissing = errors.New("pdfxref: %PDF- header not found")

	// ErrStartXrefNotFound is raised by the xref resolver when no startxref
	// tail or xref-stream object header can be located.
	ErrStartXrefNotFound = errors.New("pdfxref: startxref not found")

	// ErrXrefNotFound is raised when xref resolution completes with no entries.
	ErrXrefNotFound = errors.New("pdfxref: no cross-reference entries found")

	// ErrTrailerNotFound is raised by the classical xref parser when no
	// trailer dictionary follows the subsection list.
	ErrTrailerNotFound = errors.New("pdfxref: trailer not found")

	// ErrXrefLoop is raised by the revisit guard when a Prev offset is
	// processed twice within one parse.
	ErrXrefLoop = errors.New("pdfxref: xref Prev loop detected")

	// ErrInvalidReference is raised by the materializer on a malformed
	// "num_gen" key.
	ErrInvalidReference = errors.New("pdfxref: invalid object reference")

	// ErrUnknownPredictor is raised by the PNG un-predictor on an
	// unrecognized row selector byte.
	ErrUnknownPredictor = errors.New("pdfxref: unknown predictor selector")

	// ErrUnpackFailure is raised when an xref-stream row cannot be unpacked
	// according to its declared /W field widths.
	ErrUnpackFailure = errors.New("pdfxref: xref stream row unpack failure")

	// ErrFilterError is raised by the stream decoder when the external
	// Filter collaborator fails and IgnoreFilterErrors is not set.
	ErrFilterError = errors.New("pdfxref: filter decode failure")
)
