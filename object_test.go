// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "testing"

func TestSplitRef(t *testing.T) {
	num, gen, err := splitRef("12_0")
	if err != nil {
		t.Fatalf("splitRef: %v", err)
	}
	if num != "12" || gen != "0" {
		t.Errorf("splitRef = (%q, %q), want (12, 0)", num, gen)
	}
	if _, _, err := splitRef("not-a-ref"); err == nil {
		t.Error("expected ErrInvalidReference for malformed ref")
	}
	if _, _, err := splitRef("12_"); err == nil {
		t.Error("expected ErrInvalidReference for trailing underscore")
	}
}

func TestGetIndirectObjectMissingMapsToNull(t *testing.T) {
	s := newSession([]byte("%PDF-1.4\n"), DefaultConfig(), nil)
	values, err := s.getIndirectObject("5_0", 1000, false)
	if err != nil {
		t.Fatalf("getIndirectObject: %v", err)
	}
	if len(values) != 1 || values[0].Tag != TagNull {
		t.Errorf("values = %+v, want a single TagNull", values)
	}
}

func TestGetIndirectObjectLeadingZeroOffset(t *testing.T) {
	// offset points at a run of leading '0' bytes before "1 0 obj"; that
	// run is skipped before matching the header.
	data := []byte("%PDF-1.4\n001 0 obj\n42\nendobj\n")
	s := newSession(data, DefaultConfig(), nil)
	values, err := s.getIndirectObject("1_0", int64(len("%PDF-1.4\n")), false)
	if err != nil {
		t.Fatalf("getIndirectObject: %v", err)
	}
	if len(values) != 1 || string(values[0].Bytes) != "42" {
		t.Errorf("values = %+v, want a single numeric 42", values)
	}
}

func TestMaterializedObjectCachesResult(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\n42\nendobj\n")
	s := newSession(data, DefaultConfig(), nil)
	s.xref.setIfAbsent("1_0", int64(len("%PDF-1.4\n")))

	first, err := s.materializedObject("1_0", false)
	if err != nil {
		t.Fatalf("materializedObject: %v", err)
	}
	if s.objects.len() != 1 {
		t.Fatalf("objects cache len = %d, want 1", s.objects.len())
	}
	second, err := s.materializedObject("1_0", false)
	if err != nil {
		t.Fatalf("materializedObject (cached): %v", err)
	}
	if len(first) != len(second) || string(first[0].Bytes) != string(second[0].Bytes) {
		t.Errorf("cached result diverged: %+v vs %+v", first, second)
	}
}

func TestGetObjectValResolvesReference(t *testing.T) {
	data := []byte("%PDF-1.4\n1 0 obj\n/Hello\nendobj\n")
	s := newSession(data, DefaultConfig(), nil)
	s.xref.setIfAbsent("1_0", int64(len("%PDF-1.4\n")))

	ref := RawValue{Tag: TagObjRef, Str: "1_0"}
	resolved, err := s.getObjectVal(ref)
	if err != nil {
		t.Fatalf("getObjectVal: %v", err)
	}
	if resolved.Tag != TagName || resolved.name() != "Hello" {
		t.Errorf("resolved = %+v, want name Hello", resolved)
	}

	// Unresolvable references (absent from the xref) pass through unchanged.
	dangling := RawValue{Tag: TagObjRef, Str: "99_0"}
	same, err := s.getObjectVal(dangling)
	if err != nil {
		t.Fatalf("getObjectVal(dangling): %v", err)
	}
	if same.Tag != TagObjRef || same.Str != "99_0" {
		t.Errorf("dangling ref was rewritten: %+v", same)
	}
}
