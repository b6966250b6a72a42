// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "strconv"

var kwStartxref = []byte("startxref")

// resolveXref is the top-level xref dispatcher: locate the xref at offset
// (0 means "search from EOF"), reject revisits, then dispatch to the
// classical or xref-stream parser.
func (s *session) resolveXref(offset int64, isFirst bool) error {
	if s.visited[offset] {
		return wrapErr("xref", offset, ErrXrefLoop)
	}
	s.visited[offset] = true

	startxref, err := s.locateStartXref(offset)
	if err != nil {
		return err
	}

	if s.src.hasPrefixAt(startxref, []byte("xref")) {
		return s.parseClassicalXrefAt(startxref, isFirst)
	}
	return s.parseXrefStreamAt(startxref, isFirst)
}

// locateStartXref resolves the byte offset of the xref table or stream,
// either by scanning for the trailing startxref/%%EOF pair or, when
// resuming at a Prev offset, by matching what's found there directly.
func (s *session) locateStartXref(offset int64) (int64, error) {
	if offset == 0 {
		// The whole buffer may carry more than one "startxref" keyword
		// (e.g. inside an earlier incremental-update section); the one
		// that governs is the last occurrence, so this is a genuine
		// last-match scan rather than a forward find.
		tailAt := s.src.findLast(kwStartxref)
		if tailAt < 0 {
			return 0, wrapErr("xref", 0, ErrStartXrefNotFound)
		}
		n, ok := parseStartxrefTail(s.src, tailAt+int64(len(kwStartxref)))
		if !ok {
			return 0, wrapErr("xref", 0, ErrStartXrefNotFound)
		}
		return n, nil
	}

	if idx := s.src.findFrom(offset, []byte("xref")); idx >= 0 && idx <= offset+4 {
		return idx, nil
	}
	if looksLikeObjHeader(s.src, offset) {
		return offset, nil
	}
	if tailAt := s.src.findFrom(offset, kwStartxref); tailAt >= 0 {
		if n, ok := parseStartxrefTail(s.src, tailAt+int64(len(kwStartxref))); ok {
			return n, nil
		}
	}
	return 0, wrapErr("xref", offset, ErrStartXrefNotFound)
}

// parseStartxrefTail matches `\s+(\d+)\s+%%EOF` at pos, the grammar that
// follows the "startxref" keyword, returning the parsed offset.
func parseStartxrefTail(src *byteSource, pos int64) (int64, bool) {
	i := pos
	wsStart := i
	for src.at(i) && isWhitespace(src.byteAt(i)) {
		i++
	}
	if i == wsStart {
		return 0, false
	}

	numStart := i
	for src.at(i) && isDigit(src.byteAt(i)) {
		i++
	}
	if i == numStart {
		return 0, false
	}
	n, err := strconv.ParseInt(string(src.slice(numStart, i)), 10, 64)
	if err != nil {
		return 0, false
	}

	ws2Start := i
	for src.at(i) && isWhitespace(src.byteAt(i)) {
		i++
	}
	if i == ws2Start {
		return 0, false
	}
	if !src.hasPrefixAt(i, []byte("%%EOF")) {
		return 0, false
	}
	return n, true
}

// looksLikeObjHeader reports whether an "N G obj" header starts exactly at
// offset, used to detect an xref-stream object when resuming from a Prev
// offset.
func looksLikeObjHeader(src *byteSource, offset int64) bool {
	i := offset
	start := i
	for src.at(i) && isDigit(src.byteAt(i)) {
		i++
	}
	if i == start {
		return false
	}
	j := i
	for src.at(j) && isWhitespace(src.byteAt(j)) {
		j++
	}
	if j == i {
		return false
	}
	genStart := j
	for src.at(j) && isDigit(src.byteAt(j)) {
		j++
	}
	if j == genStart {
		return false
	}
	k := j
	for src.at(k) && isWhitespace(src.byteAt(k)) {
		k++
	}
	if k == j {
		return false
	}
	return src.hasPrefixAt(k, []byte("obj"))
}

type xrefLine struct {
	first int64
	gen   int64
	flag  string // "n", "f", or "" for a subsection header
}

// matchXrefLine matches the classical-xref entry grammar
// `(\d+) (\d+) ?([nf]?)(\r\n| ?\r|\n)` exactly at offset.
func matchXrefLine(src *byteSource, offset int64) (xrefLine, int64, bool) {
	i := offset
	d1Start := i
	for src.at(i) && isDigit(src.byteAt(i)) {
		i++
	}
	if i == d1Start {
		return xrefLine{}, offset, false
	}
	d1, _ := strconv.ParseInt(string(src.slice(d1Start, i)), 10, 64)

	wsStart := i
	for src.at(i) && isWhitespace(src.byteAt(i)) && src.byteAt(i) != '\n' && src.byteAt(i) != '\r' {
		i++
	}
	if i == wsStart {
		return xrefLine{}, offset, false
	}

	d2Start := i
	for src.at(i) && isDigit(src.byteAt(i)) {
		i++
	}
	if i == d2Start {
		return xrefLine{}, offset, false
	}
	d2, _ := strconv.ParseInt(string(src.slice(d2Start, i)), 10, 64)

	if src.at(i) && src.byteAt(i) == ' ' {
		i++
	}

	flag := ""
	if src.at(i) && (src.byteAt(i) == 'n' || src.byteAt(i) == 'f') {
		flag = string(src.byteAt(i))
		i++
	}

	eolStart := i
	for src.at(i) && (src.byteAt(i) == '\r' || src.byteAt(i) == '\n' || src.byteAt(i) == ' ') {
		i++
	}
	if i == eolStart {
		return xrefLine{}, offset, false
	}

	return xrefLine{first: d1, gen: d2, flag: flag}, i, true
}

// parseClassicalXrefAt parses a classical (non-stream) xref table starting
// at startxref: the subsection/entry lines, then the trailer dict, merging
// the trailer and following any /Prev chain.
func (s *session) parseClassicalXrefAt(startxref int64, isFirst bool) error {
	offset := startxref + int64(len("xref"))
	offset = s.src.skipWhitespaceAndComments(offset)

	var objNum int64
	for {
		line, next, ok := matchXrefLine(s.src, offset)
		if !ok {
			break
		}
		switch line.flag {
		case "n":
			key := formatRef(objNum, line.gen)
			s.xref.setIfAbsent(key, line.first)
			objNum++
		case "f":
			objNum++
		default:
			objNum = line.first
		}
		offset = next
	}

	trailerPos := s.src.findFrom(offset, []byte("trailer"))
	if trailerPos < 0 {
		return wrapErr("xref", offset, ErrTrailerNotFound)
	}
	dictVal := s.tok.next(trailerPos + int64(len("trailer")))
	if dictVal.Tag != TagDict {
		return wrapErr("xref", trailerPos, ErrTrailerNotFound)
	}

	s.applyTrailer(dictVal, isFirst)

	if prevOffset, ok := trailerPrevOffset(dictVal); ok {
		s.log.Debug("xref: following Prev", "from", startxref, "prev", prevOffset)
		return s.resolveXref(prevOffset, false)
	}
	return nil
}

func formatRef(num, gen int64) string {
	return strconv.FormatInt(num, 10) + "_" + strconv.FormatInt(gen, 10)
}

// trailerPrevOffset extracts /Prev from a trailer dict RawValue.
func trailerPrevOffset(dict RawValue) (int64, bool) {
	for i := 0; i+1 < len(dict.Items); i += 2 {
		key := dict.Items[i]
		if key.Tag == TagName && key.name() == "Prev" {
			if n, ok := numericInt64(dict.Items[i+1]); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// applyTrailer merges a parsed trailer dict into s.xref.Trailer. The first
// xref encountered owns the effective trailer; later Prev xrefs only
// contribute previously-unknown xref entries, never trailer fields.
func (s *session) applyTrailer(dict RawValue, isFirst bool) {
	if !isFirst || s.firstXrefSeen {
		return
	}
	s.firstXrefSeen = true
	s.log.Debug("trailer: taking ownership from first xref")

	for i := 0; i+1 < len(dict.Items); i += 2 {
		key := dict.Items[i]
		val := dict.Items[i+1]
		if key.Tag != TagName {
			continue
		}
		switch key.name() {
		case "Size":
			if n, ok := numericInt64(val); ok {
				s.xref.Trailer.Size = int(n)
				s.xref.Trailer.HasSize = true
			}
		case "Root":
			if val.Tag == TagObjRef {
				s.xref.Trailer.Root = val.Str
				s.xref.Trailer.HasRoot = true
			}
		case "Info":
			if val.Tag == TagObjRef {
				s.xref.Trailer.Info = val.Str
				s.xref.Trailer.HasInfo = true
			}
		case "Encrypt":
			if val.Tag == TagObjRef {
				s.xref.Trailer.Encrypt = val.Str
				s.xref.Trailer.HasEncrypt = true
			}
		case "ID":
			if val.Tag == TagArray && len(val.Items) >= 2 {
				if val.Items[0].Tag == TagHex && val.Items[1].Tag == TagHex {
					s.xref.Trailer.ID = [2]string{string(val.Items[0].Bytes), string(val.Items[1].Bytes)}
					s.xref.Trailer.HasID = true
				}
			}
		}
	}
}
