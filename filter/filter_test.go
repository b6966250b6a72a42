// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func TestChainDecodeAllFlate(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write([]byte("hello, pdf"))
	w.Close()

	got, err := (Chain{}).DecodeAll([]string{"FlateDecode"}, buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if string(got) != "hello, pdf" {
		t.Errorf("got %q, want %q", got, "hello, pdf")
	}
}

func TestChainDecodeAllRunLength(t *testing.T) {
	// 2 literal bytes "ab", then repeat 'c' (257-254=3 times), then EOD.
	encoded := []byte{1, 'a', 'b', 254, 'c', 0x80}
	got, err := (Chain{}).DecodeAll([]string{"RunLengthDecode"}, encoded)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if string(got) != "abccc" {
		t.Errorf("got %q, want %q", got, "abccc")
	}
}

func TestChainDecodeAllUnsupportedFilter(t *testing.T) {
	if _, err := (Chain{}).DecodeAll([]string{"DCTDecode"}, nil); err == nil {
		t.Error("expected error for unsupported filter")
	}
}

func TestChainDecodeAllAscii85(t *testing.T) {
	// "Man " encodes to "9jqo^" in ASCII85 (classic test vector prefix).
	got, err := (Chain{}).DecodeAll([]string{"ASCII85Decode"}, []byte("9jqo^~>"))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if string(got) != "Man " {
		t.Errorf("got %q, want %q", got, "Man ")
	}
}

func TestChainDecodeAllChainsMultipleFilters(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write([]byte{1, 'h', 'i', 0x80}) // RunLength-encoded "hi"
	w.Close()

	got, err := (Chain{}).DecodeAll([]string{"FlateDecode", "RunLengthDecode"}, buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if string(got) != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}
