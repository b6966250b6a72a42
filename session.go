// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "log/slog"

// session bundles the mutable state a single parse call needs (the byte
// buffer, tokenizer, xref accumulator, object cache, and revisit guard)
// into one explicit record threaded through every component, rather than
// process-wide state. A session owns exactly one Xref accumulator, one
// object cache, and one visited-offsets set, and is never shared across
// goroutines.
type session struct {
	src    *byteSource
	tok    *tokenizer
	cfg    Config
	filter Filter

	xref    *Xref
	objects *objectCache
	log     *slog.Logger

	// visited is the xref revisit guard: the same Prev offset must not be
	// processed twice within one parse.
	visited map[int64]bool

	// firstXrefSeen tracks whether the nearest-EOF xref's trailer fields
	// have already been recorded, since the first xref encountered owns
	// the effective trailer.
	firstXrefSeen bool
}

func newSession(data []byte, cfg Config, filter Filter) *session {
	src := newByteSource(data)
	return &session{
		src:     src,
		tok:     newTokenizer(src, cfg),
		cfg:     cfg,
		filter:  filter,
		xref:    newXref(),
		objects: newObjectCache(cfg.MaxCachedObjects),
		log:     cfg.loggerOrDiscard(),
		visited: make(map[int64]bool),
	}
}
