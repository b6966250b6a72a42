// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import (
	"bytes"
	"errors"
	"testing"
)

type upperFilter struct{}

func (upperFilter) DecodeAll(names []string, data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	for i, c := range data {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out, nil
}

func nameEntry(key, value string) (RawValue, RawValue) {
	return RawValue{Tag: TagName, Bytes: []byte(key)}, RawValue{Tag: TagName, Bytes: []byte(value)}
}

func TestDecodeStreamAppliesFilter(t *testing.T) {
	s := newSession([]byte("%PDF-1.4\n"), DefaultConfig(), upperFilter{})
	k, v := nameEntry("Filter", "Upper")
	decoded, err := s.decodeStream([]RawValue{k, v}, []byte("hello"))
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if got, want := string(decoded.Bytes), "HELLO"; got != want {
		t.Errorf("Bytes = %q, want %q", got, want)
	}
}

func TestDecodeStreamNoFilterPassesThrough(t *testing.T) {
	s := newSession([]byte("%PDF-1.4\n"), DefaultConfig(), nil)
	decoded, err := s.decodeStream(nil, []byte("raw"))
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if !bytes.Equal(decoded.Bytes, []byte("raw")) {
		t.Errorf("Bytes = %q, want %q", decoded.Bytes, "raw")
	}
}

func TestDecodeStreamLengthTruncates(t *testing.T) {
	s := newSession([]byte("%PDF-1.4\n"), DefaultConfig(), nil)
	lenKey := RawValue{Tag: TagName, Bytes: []byte("Length")}
	lenVal := RawValue{Tag: TagNumeric, Bytes: []byte("3")}
	decoded, err := s.decodeStream([]RawValue{lenKey, lenVal}, []byte("hello"))
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if got, want := string(decoded.Bytes), "hel"; got != want {
		t.Errorf("Bytes = %q, want %q", got, want)
	}
}

type failingFilter struct{ err error }

func (f failingFilter) DecodeAll(names []string, data []byte) ([]byte, error) {
	return nil, f.err
}

func TestDecodeStreamFilterErrorPropagates(t *testing.T) {
	cause := errors.New("boom")
	s := newSession([]byte("%PDF-1.4\n"), DefaultConfig(), failingFilter{err: cause})
	k, v := nameEntry("Filter", "Whatever")
	_, err := s.decodeStream([]RawValue{k, v}, []byte("data"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrFilterError) {
		t.Errorf("errors.Is(err, ErrFilterError) = false for %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false for %v", err)
	}
}

func TestDecodeStreamIgnoreFilterErrors(t *testing.T) {
	cfg := Configure(WithIgnoreFilterErrors(true))
	s := newSession([]byte("%PDF-1.4\n"), cfg, failingFilter{err: errors.New("boom")})
	k, v := nameEntry("Filter", "Whatever")
	decoded, err := s.decodeStream([]RawValue{k, v}, []byte("data"))
	if err != nil {
		t.Fatalf("decodeStream: %v", err)
	}
	if !bytes.Equal(decoded.Bytes, []byte("data")) {
		t.Errorf("Bytes = %q, want original data", decoded.Bytes)
	}
	if len(decoded.ResidualFilters) != 1 || decoded.ResidualFilters[0] != "Whatever" {
		t.Errorf("ResidualFilters = %v, want [Whatever]", decoded.ResidualFilters)
	}
}
