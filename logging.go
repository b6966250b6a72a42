// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import (
	"io"
	"log/slog"
)

// discardLogger is the default: parsing stays silent unless a caller
// opts in with WithLogger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger attaches a structured logger to a session. The core logs
// only at a handful of decision points: xref-chain Prev recursion,
// trailer ownership, and filter-error suppression under
// IgnoreFilterErrors.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.logger = l }
}

func (c Config) loggerOrDiscard() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return discardLogger
}
