// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

// tokenizer is the recursive-descent raw-object tokenizer. It is pure over
// the immutable byte buffer: next(offset) never mutates shared state, so
// concurrent next calls on one tokenizer are safe. A tokenizer is bound to
// the single byteSource it was built with.
type tokenizer struct {
	src *byteSource
	cfg Config
}

func newTokenizer(src *byteSource, cfg Config) *tokenizer {
	return &tokenizer{src: src, cfg: cfg}
}

// next reads the raw value starting at offset and returns it along with
// the offset where it ended.
func (t *tokenizer) next(offset int64) RawValue {
	offset = t.src.skipWhitespaceAndComments(offset)
	if !t.src.at(offset) {
		return RawValue{Tag: TagNull, End: offset}
	}

	c := t.src.byteAt(offset)
	switch {
	case c == '/':
		return t.readName(offset)
	case c == '(':
		return t.readLiteral(offset)
	case c == '<':
		if t.src.byteAt(offset+1) == '<' {
			return t.readDict(offset)
		}
		return t.readHex(offset)
	case c == '[':
		return t.readArray(offset)
	case c == ']':
		return RawValue{Tag: TagArray, End: offset + 1, closer: true}
	case c == '>':
		end := offset + 1
		if t.src.byteAt(offset+1) == '>' {
			end = offset + 2
		}
		return RawValue{Tag: TagDict, End: end, closer: true}
	case c == ')':
		return RawValue{Tag: TagLiteral, End: offset + 1, closer: true}
	}
	return t.readKeywordOrNumber(offset)
}

// isCloser reports whether v is one of the bare closing-delimiter sentinels
// next() emits for ']', '>', '>>', ')'.
func isCloser(v RawValue, tag Tag) bool {
	return v.Tag == tag && v.closer
}

// readName reads a "/name" token.
func (t *tokenizer) readName(offset int64) RawValue {
	start := offset + 1
	maxBytes := t.cfg.MaxNameBytes
	end := start
	for t.src.at(end) && !isDelimiter(t.src.byteAt(end)) && end-start < int64(maxBytes) {
		end++
	}
	return RawValue{Tag: TagName, Bytes: append([]byte(nil), t.src.slice(start, end)...), End: end}
}

// readLiteral reads a "(literal string)" token. The payload is the raw
// bytes between parentheses with NO escape interpretation; "\" only
// affects balance counting.
func (t *tokenizer) readLiteral(offset int64) RawValue {
	start := offset + 1
	depth := 1
	i := start
	n := t.src.len()
	for i < n {
		c := t.src.byteAt(i)
		switch c {
		case '\\':
			i += 2 // unconditionally skip the escape and following byte
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return RawValue{Tag: TagLiteral, Bytes: append([]byte(nil), t.src.slice(start, i)...), End: i + 1}
			}
		}
		i++
	}
	// Unterminated literal: stop at end-of-buffer, emit the partial payload.
	return RawValue{Tag: TagLiteral, Bytes: append([]byte(nil), t.src.slice(start, n)...), End: n}
}

// readHex reads a single "<" hex-string token: match
// "[0-9A-Fa-f whitespace]+>"; payload is the hex digits with whitespace
// removed. If no match, skip to the next ">".
func (t *tokenizer) readHex(offset int64) RawValue {
	start := offset + 1
	i := start
	n := t.src.len()
	var digits []byte
	for i < n {
		c := t.src.byteAt(i)
		if c == '>' {
			return RawValue{Tag: TagHex, Bytes: digits, End: i + 1}
		}
		if isHexDigit(c) {
			digits = append(digits, c)
			i++
			continue
		}
		if isWhitespace(c) {
			i++
			continue
		}
		// Not a hex digit, not whitespace, not '>': the match fails; skip
		// to the next '>'.
		break
	}
	for i < n && t.src.byteAt(i) != '>' {
		i++
	}
	if i < n {
		i++ // consume '>'
	}
	return RawValue{Tag: TagHex, Bytes: nil, End: i}
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// readArray reads a "[ ... ]" token: recursively collect values until the
// closing "]" terminator, which is consumed but not included in Items.
func (t *tokenizer) readArray(offset int64) RawValue {
	offset++ // consume '['
	var items []RawValue
	for {
		v := t.next(offset)
		if isCloser(v, TagArray) {
			return RawValue{Tag: TagArray, Items: items, End: v.End}
		}
		items = append(items, v)
		if v.End <= offset {
			// Guard against non-advancing offsets on malformed input
			// (mirrors the materializer's loop guard).
			return RawValue{Tag: TagArray, Items: items, End: v.End}
		}
		offset = v.End
	}
}

// readDict reads a "<< ... >>" token: alternating key/value RawValues by
// position, terminated by ">>".
func (t *tokenizer) readDict(offset int64) RawValue {
	offset += 2 // consume '<<'
	var items []RawValue
	for {
		v := t.next(offset)
		if isCloser(v, TagDict) {
			return RawValue{Tag: TagDict, Items: items, End: v.End}
		}
		items = append(items, v)
		if v.End <= offset {
			return RawValue{Tag: TagDict, Items: items, End: v.End}
		}
		offset = v.End
	}
}

var (
	kwEndObj    = []byte("endobj")
	kwEndStream = []byte("endstream")
	kwNull      = []byte("null")
	kwTrue      = []byte("true")
	kwFalse     = []byte("false")
	kwStream    = []byte("stream")
)

// readKeywordOrNumber handles the remaining token shapes: keyword matches
// in order (endobj, endstream, null, true, false, stream), then "N G R" /
// "N G obj" headers, then a bare numeric span.
func (t *tokenizer) readKeywordOrNumber(offset int64) RawValue {
	if t.src.hasPrefixAt(offset, kwEndObj) && tokenBoundary(t.src, offset+int64(len(kwEndObj))) {
		return RawValue{Tag: TagEndObj, End: offset + int64(len(kwEndObj))}
	}
	if t.src.hasPrefixAt(offset, kwEndStream) && tokenBoundary(t.src, offset+int64(len(kwEndStream))) {
		return RawValue{Tag: TagEndStream, End: offset + int64(len(kwEndStream))}
	}
	if t.src.hasPrefixAt(offset, kwNull) && tokenBoundary(t.src, offset+int64(len(kwNull))) {
		return RawValue{Tag: TagNull, Bytes: kwNull, End: offset + int64(len(kwNull))}
	}
	if t.src.hasPrefixAt(offset, kwTrue) && tokenBoundary(t.src, offset+int64(len(kwTrue))) {
		return RawValue{Tag: TagBoolean, Bytes: kwTrue, End: offset + int64(len(kwTrue))}
	}
	if t.src.hasPrefixAt(offset, kwFalse) && tokenBoundary(t.src, offset+int64(len(kwFalse))) {
		return RawValue{Tag: TagBoolean, Bytes: kwFalse, End: offset + int64(len(kwFalse))}
	}
	if t.src.hasPrefixAt(offset, kwStream) && tokenBoundary(t.src, offset+int64(len(kwStream))) {
		return t.readStream(offset + int64(len(kwStream)))
	}

	if v, ok := t.tryRef(offset); ok {
		return v
	}
	if v, ok := t.tryObjHeader(offset); ok {
		return v
	}
	return t.readNumeric(offset)
}

// tokenBoundary reports whether the byte at offset is absent or a
// delimiter/whitespace byte, so e.g. "nullable" is not mistaken for the
// "null" keyword.
func tokenBoundary(src *byteSource, offset int64) bool {
	return !src.at(offset) || isDelimiter(src.byteAt(offset))
}

// readStream handles the "stream" keyword: skip the end-of-line after the
// keyword (CRLF, LF, or a lone CR; the body starts right after the keyword
// when none is present), then run to the nearest "endstream" followed by a whitespace
// byte (or end of buffer); the returned offset sits immediately before
// "endstream".
func (t *tokenizer) readStream(afterKeyword int64) RawValue {
	start := afterKeyword
	if t.src.byteAt(start) == '\r' && t.src.byteAt(start+1) == '\n' {
		start += 2
	} else if t.src.byteAt(start) == '\n' {
		start++
	} else if t.src.byteAt(start) == '\r' {
		start++
	}

	search := start
	for {
		idx := t.src.findFrom(search, kwEndStream)
		if idx < 0 {
			// No terminator found: stream runs to end of buffer.
			return RawValue{Tag: TagStream, Bytes: t.src.slice(start, t.src.len()), End: t.src.len()}
		}
		after := idx + int64(len(kwEndStream))
		if !t.src.at(after) || isWhitespace(t.src.byteAt(after)) || after == t.src.len() {
			return RawValue{Tag: TagStream, Bytes: t.src.slice(start, idx), End: idx}
		}
		search = idx + 1
	}
}

// tryRef matches "^(\d+)\s+(\d+)\s+R" within the configured digit window,
// emitting an objref RawValue with Str == "N_G".
func (t *tokenizer) tryRef(offset int64) (RawValue, bool) {
	return t.tryNGKeyword(offset, "R", TagObjRef)
}

// tryObjHeader matches "^(\d+)\s+(\d+)\s+obj".
func (t *tokenizer) tryObjHeader(offset int64) (RawValue, bool) {
	return t.tryNGKeyword(offset, "obj", TagObj)
}

func (t *tokenizer) tryNGKeyword(offset int64, kw string, tag Tag) (RawValue, bool) {
	limit := offset + int64(t.cfg.MaxRefDigits)
	i := offset
	numStart := i
	for i < limit && isDigit(t.src.byteAt(i)) {
		i++
	}
	if i == numStart {
		return RawValue{}, false
	}
	num := string(t.src.slice(numStart, i))
	j := i
	for t.src.at(j) && isWhitespace(t.src.byteAt(j)) {
		j++
	}
	if j == i {
		return RawValue{}, false
	}
	genStart := j
	for j < limit && isDigit(t.src.byteAt(j)) {
		j++
	}
	if j == genStart {
		return RawValue{}, false
	}
	gen := string(t.src.slice(genStart, j))
	k := j
	for t.src.at(k) && isWhitespace(t.src.byteAt(k)) {
		k++
	}
	if k == j {
		return RawValue{}, false
	}
	kwBytes := []byte(kw)
	if !t.src.hasPrefixAt(k, kwBytes) || !tokenBoundary(t.src, k+int64(len(kwBytes))) {
		return RawValue{}, false
	}
	end := k + int64(len(kwBytes))
	return RawValue{Tag: tag, Str: num + "_" + gen, End: end}, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readNumeric is the fallback token reader: longest run of [-+.0-9].
func (t *tokenizer) readNumeric(offset int64) RawValue {
	end := offset
	for t.src.at(end) && isNumericByte(t.src.byteAt(end)) {
		end++
	}
	if end == offset {
		// No recognizable token at all (stray delimiter/byte): consume one
		// byte so callers never stall.
		return RawValue{Tag: TagNumeric, Bytes: t.src.slice(offset, offset+1), End: offset + 1}
	}
	return RawValue{Tag: TagNumeric, Bytes: append([]byte(nil), t.src.slice(offset, end)...), End: end}
}

func isNumericByte(c byte) bool {
	return c == '-' || c == '+' || c == '.' || isDigit(c)
}
