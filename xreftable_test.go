// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "testing"

func TestMatchXrefLine(t *testing.T) {
	src := newByteSource([]byte("0000000010 00000 n \n0000000000 65535 f \n"))
	line, next, ok := matchXrefLine(src, 0)
	if !ok {
		t.Fatal("matchXrefLine: ok = false")
	}
	if line.first != 10 || line.gen != 0 || line.flag != "n" {
		t.Errorf("line = %+v, want {first:10 gen:0 flag:n}", line)
	}
	line2, _, ok := matchXrefLine(src, next)
	if !ok {
		t.Fatal("second matchXrefLine: ok = false")
	}
	if line2.first != 0 || line2.gen != 65535 || line2.flag != "f" {
		t.Errorf("line2 = %+v, want {first:0 gen:65535 flag:f}", line2)
	}
}

func TestResolveXrefClassical(t *testing.T) {
	data := []byte(
		"%PDF-1.4\n" +
			"1 0 obj\n<< /Type /Catalog >>\nendobj\n" +
			"xref\n" +
			"0 2\n" +
			"0000000000 65535 f \n" +
			"0000000009 00000 n \n" +
			"trailer\n" +
			"<< /Size 2 /Root 1 0 R >>\n" +
			"startxref\n45\n%%EOF")
	s := newSession(data, DefaultConfig(), nil)
	if err := s.resolveXref(0, true); err != nil {
		t.Fatalf("resolveXref: %v", err)
	}
	offset, ok := s.xref.Entries["1_0"]
	if !ok {
		t.Fatal("entry 1_0 missing")
	}
	if offset != 9 {
		t.Errorf("offset = %d, want 9", offset)
	}
	if !s.xref.Trailer.HasRoot || s.xref.Trailer.Root != "1_0" {
		t.Errorf("trailer Root = %q (has=%v), want 1_0", s.xref.Trailer.Root, s.xref.Trailer.HasRoot)
	}
}

func TestResolveXrefLoopGuard(t *testing.T) {
	s := newSession([]byte("%PDF-1.4\nxref\n"), DefaultConfig(), nil)
	s.visited[5] = true
	if err := s.resolveXref(5, true); err == nil {
		t.Error("expected ErrXrefLoop on revisit")
	}
}

func TestFormatRef(t *testing.T) {
	if got, want := formatRef(3, 0), "3_0"; got != want {
		t.Errorf("formatRef = %q, want %q", got, want)
	}
}
