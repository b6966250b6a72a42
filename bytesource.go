// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

// byteSource holds the full PDF byte buffer for the duration of one parse
// call; the caller retains ownership and must not mutate it while a parse
// is in flight. Unlike a streaming reader that refills from an io.Reader at
// arbitrary offsets, the whole file is supplied up front here, so this is
// just slice/search primitives over a fixed []byte.
type byteSource struct {
	data []byte
}

func newByteSource(data []byte) *byteSource {
	return &byteSource{data: data}
}

func (s *byteSource) len() int64 {
	return int64(len(s.data))
}

// at reports whether offset is a valid index into the buffer.
func (s *byteSource) at(offset int64) bool {
	return offset >= 0 && offset < int64(len(s.data))
}

// byteAt returns the byte at offset, or 0 if out of range.
func (s *byteSource) byteAt(offset int64) byte {
	if !s.at(offset) {
		return 0
	}
	return s.data[offset]
}

// slice returns data[from:to], clamped to the buffer bounds.
func (s *byteSource) slice(from, to int64) []byte {
	if from < 0 {
		from = 0
	}
	if to > int64(len(s.data)) {
		to = int64(len(s.data))
	}
	if from >= to {
		return nil
	}
	return s.data[from:to]
}

const whitespaceMask = 1<<0x00 | 1<<0x09 | 1<<0x0A | 1<<0x0C | 1<<0x0D | 1<<0x20

// isWhitespace reports whether c is one of PDF's six whitespace bytes:
// NUL, TAB, LF, FF, CR, SPACE.
func isWhitespace(c byte) bool {
	return c < 0x21 && (uint64(1)<<c)&whitespaceMask != 0
}

// isDelimiter reports whether c terminates a name or numeric token:
// whitespace or one of ( ) < > [ ] { } / %.
func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return isWhitespace(c)
}

// skipWhitespaceAndComments advances past whitespace bytes and %-comments:
// a % starts a comment that runs to the next \r or \n.
func (s *byteSource) skipWhitespaceAndComments(offset int64) int64 {
	for {
		advanced := false
		for s.at(offset) && isWhitespace(s.data[offset]) {
			offset++
			advanced = true
		}
		if s.at(offset) && s.data[offset] == '%' {
			for s.at(offset) && s.data[offset] != '\r' && s.data[offset] != '\n' {
				offset++
			}
			advanced = true
		}
		if !advanced {
			return offset
		}
	}
}

// findLast returns the offset of the last occurrence of pat in the buffer,
// or -1 if absent. Used by locateStartXref to find the governing
// "startxref" keyword when resolving from EOF, since a buffer carrying
// incremental updates can contain more than one. Large buffers on AVX2
// hosts go through the lastIndexFast call site, the way the upstream
// reader gated its SIMD string paths on golang.org/x/sys/cpu feature
// detection; lastIndexFast runs the same portable Boyer-Moore-ish scan
// (search.go), so behavior never depends on the CPU.
func (s *byteSource) findLast(pat []byte) int64 {
	if len(pat) == 0 || len(pat) > len(s.data) {
		return -1
	}
	if cpuHasFastScan() && len(s.data) > 4096 {
		if i := lastIndexFast(s.data, pat); i >= 0 {
			return int64(i)
		}
		return -1
	}
	if i := lastIndexPortable(s.data, pat); i >= 0 {
		return int64(i)
	}
	return -1
}

// findFrom returns the offset of the first occurrence of pat at or after
// offset, or -1 if absent.
func (s *byteSource) findFrom(offset int64, pat []byte) int64 {
	if offset < 0 || offset > int64(len(s.data)) {
		return -1
	}
	if i := indexPortable(s.data[offset:], pat); i >= 0 {
		return offset + int64(i)
	}
	return -1
}

// hasPrefixAt reports whether data[offset:] begins with pat.
func (s *byteSource) hasPrefixAt(offset int64, pat []byte) bool {
	end := offset + int64(len(pat))
	if offset < 0 || end > int64(len(s.data)) {
		return false
	}
	for i, c := range pat {
		if s.data[offset+int64(i)] != c {
			return false
		}
	}
	return true
}
