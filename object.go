// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import (
	"strconv"
	"strings"
)

// splitRef splits a "num_gen" key into its two integer parts, failing with
// ErrInvalidReference on any other shape.
func splitRef(ref string) (num, gen string, err error) {
	i := strings.IndexByte(ref, '_')
	if i < 0 || i == 0 || i == len(ref)-1 {
		return "", "", wrapErr("materialize", -1, ErrInvalidReference)
	}
	num, gen = ref[:i], ref[i+1:]
	if !isAllDigits(num) || !isAllDigits(gen) {
		return "", "", wrapErr("materialize", -1, ErrInvalidReference)
	}
	return num, gen, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// getIndirectObject parses the object body at (object id, offset),
// detecting stream payloads by looking back at the preceding dict, and
// invoking the Filter collaborator to decode stream bytes when decode is
// true.
func (s *session) getIndirectObject(ref string, offset int64, decode bool) ([]RawValue, error) {
	num, gen, err := splitRef(ref)
	if err != nil {
		return nil, err
	}

	// Tolerate leading-zero-padded offsets.
	pos := offset
	for s.src.at(pos) && s.src.byteAt(pos) == '0' {
		pos++
	}

	header := []byte(num + " " + gen + " obj")
	at := pos
	if !s.src.hasPrefixAt(at, header) {
		if s.src.hasPrefixAt(at+1, header) {
			at = at + 1
		} else {
			// Missing indirect object maps to null per PDF semantics.
			return []RawValue{{Tag: TagNull, End: offset}}, nil
		}
	}

	cursor := at + int64(len(header))
	var values []RawValue
	for {
		v := s.tok.next(cursor)
		if v.Tag == TagEndObj {
			break
		}
		if v.End <= cursor {
			// Guard against infinite loops on malformed input.
			break
		}
		if v.Tag == TagStream && decode && len(values) > 0 && values[len(values)-1].Tag == TagDict {
			dict := values[len(values)-1]
			decoded, derr := s.decodeStream(dict.Items, v.Bytes)
			if derr != nil {
				return nil, derr
			}
			v.Decoded = &decoded
		}
		values = append(values, v)
		cursor = v.End
	}
	return values, nil
}

// materializedObject returns (and caches) the indirect object for ref,
// looking up its offset in the xref. This backs both the driver's object
// iteration and getObjectVal's reference resolution.
func (s *session) materializedObject(ref string, decode bool) ([]RawValue, error) {
	if v, ok := s.objects.get(ref); ok {
		return v, nil
	}
	offset, ok := s.xref.Entries[ref]
	if !ok || offset < 0 {
		return nil, nil
	}
	obj, err := s.getIndirectObject(ref, offset, decode)
	if err != nil {
		return nil, err
	}
	s.objects.put(ref, obj)
	return obj, nil
}

// getObjectVal implements the reference-resolution rule: if value is an
// objref already cached in Objects, return its first element.
// Otherwise, if the xref has an entry, parse with decode=false, cache it,
// and return its first element. Otherwise return the input unchanged.
func (s *session) getObjectVal(value RawValue) (RawValue, error) {
	if value.Tag != TagObjRef {
		return value, nil
	}
	if cached, ok := s.objects.get(value.Str); ok {
		if len(cached) == 0 {
			return RawValue{Tag: TagNull}, nil
		}
		return cached[0], nil
	}
	if _, ok := s.xref.Entries[value.Str]; !ok {
		return value, nil
	}
	obj, err := s.materializedObject(value.Str, false)
	if err != nil {
		return RawValue{}, err
	}
	if len(obj) == 0 {
		return RawValue{Tag: TagNull}, nil
	}
	return obj[0], nil
}

// numericInt64 parses a numeric RawValue's integer value. Used wherever a
// comparison against a declared /Length, /Size, row width, and so on is
// needed.
func numericInt64(v RawValue) (int64, bool) {
	if v.Tag != TagNumeric {
		return 0, false
	}
	n, err := strconv.ParseInt(string(v.Bytes), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
