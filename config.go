// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "log/slog"

// Config holds the Configure options for a parse session. Configure() with
// no options returns DefaultConfig(): IgnoreFilterErrors is false and the
// lexical windows are the default byte limits below. The zero Config has
// both windows at 0; only Configure replaces non-positive windows with the
// defaults.
type Config struct {
	// IgnoreFilterErrors causes stream decode failures to be swallowed into
	// a residual-filters marker on the stream value instead of propagating
	// as ErrFilterError.
	IgnoreFilterErrors bool

	// MaxNameBytes bounds the longest run consumed for a /name token.
	// 0 falls back to the default of 255.
	MaxNameBytes int

	// MaxRefDigits bounds the digit window used when matching "N G R" and
	// "N G obj" headers. 0 falls back to the default of 33.
	MaxRefDigits int

	// MaxCachedObjects bounds the materialized-object cache a session
	// keeps (see objectCache). 0 means unbounded; set it to cap memory use
	// during large batch parses.
	MaxCachedObjects int

	// logger receives diagnostics at xref/trailer decision points; set via
	// WithLogger. Nil means discard (logging.go).
	logger *slog.Logger
}

// DefaultConfig returns the default lexical window sizes.
func DefaultConfig() Config {
	return Config{
		IgnoreFilterErrors: false,
		MaxNameBytes:       255,
		MaxRefDigits:       33,
	}
}

// Option configures a Config via the functional-options pattern; see
// DESIGN.md for the rationale behind preferring it over a loosely-typed
// options map.
type Option func(*Config)

// WithIgnoreFilterErrors sets IgnoreFilterErrors.
func WithIgnoreFilterErrors(ignore bool) Option {
	return func(c *Config) { c.IgnoreFilterErrors = ignore }
}

// WithMaxNameBytes overrides the name-token window.
func WithMaxNameBytes(n int) Option {
	return func(c *Config) { c.MaxNameBytes = n }
}

// WithMaxRefDigits overrides the reference/object-header digit window.
func WithMaxRefDigits(n int) Option {
	return func(c *Config) { c.MaxRefDigits = n }
}

// WithMaxCachedObjects bounds the materialized-object cache; 0 (the
// default) leaves it unbounded.
func WithMaxCachedObjects(n int) Option {
	return func(c *Config) { c.MaxCachedObjects = n }
}

// Configure builds a Config from DefaultConfig plus the given options.
func Configure(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxNameBytes <= 0 {
		cfg.MaxNameBytes = 255
	}
	if cfg.MaxRefDigits <= 0 {
		cfg.MaxRefDigits = 33
	}
	return cfg
}
