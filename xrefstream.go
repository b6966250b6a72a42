// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "strconv"

// dictGet looks up key in a dict RawValue's alternating key/value Items,
// returning the raw (unresolved) value.
func dictGet(dict RawValue, key string) (RawValue, bool) {
	for i := 0; i+1 < len(dict.Items); i += 2 {
		k := dict.Items[i]
		if k.Tag == TagName && k.name() == key {
			return dict.Items[i+1], true
		}
	}
	return RawValue{}, false
}

// parseXrefStreamAt parses an xref stream: tokenize the object header at
// startxref, materialize with stream decoding enabled, and drive
// entry/trailer population from its dictionary.
func (s *session) parseXrefStreamAt(startxref int64, isFirst bool) error {
	cursor := startxref
	objVal := s.tok.next(cursor)
	if objVal.Tag != TagObj {
		return wrapErr("xref", startxref, ErrStartXrefNotFound)
	}
	cursor = objVal.End

	dictVal := s.tok.next(cursor)
	if dictVal.Tag != TagDict {
		return wrapErr("xref", startxref, ErrStartXrefNotFound)
	}
	cursor = dictVal.End

	streamVal := s.tok.next(cursor)
	if streamVal.Tag != TagStream {
		return wrapErr("xref", startxref, ErrStartXrefNotFound)
	}

	decoded, err := s.decodeStream(dictVal.Items, streamVal.Bytes)
	if err != nil {
		return err
	}
	streamVal.Decoded = &decoded

	typeVal, ok := dictGet(dictVal, "Type")
	if !ok || typeVal.Tag != TagName || typeVal.name() != "XRef" {
		// Rejected for xref purposes: no entries consumed.
		return nil
	}

	wVal, ok := dictGet(dictVal, "W")
	if !ok || wVal.Tag != TagArray || len(wVal.Items) < 3 {
		return wrapErr("xref", startxref, ErrUnpackFailure)
	}
	w := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, ok := numericInt64(wVal.Items[i])
		if !ok || n < 0 {
			return wrapErr("xref", startxref, ErrUnpackFailure)
		}
		w[i] = int(n)
	}
	wtotal := w[0] + w[1] + w[2]

	sizeVal, hasSize := dictGet(dictVal, "Size")
	size := int64(0)
	if hasSize {
		size, _ = numericInt64(sizeVal)
	}

	var indexPairs []int64
	if indexVal, ok := dictGet(dictVal, "Index"); ok && indexVal.Tag == TagArray {
		for _, item := range indexVal.Items {
			n, ok := numericInt64(item)
			if !ok {
				return wrapErr("xref", startxref, ErrUnpackFailure)
			}
			indexPairs = append(indexPairs, n)
		}
	}
	if len(indexPairs) == 0 {
		indexPairs = []int64{0, size}
	}
	if len(indexPairs)%2 != 0 {
		return wrapErr("xref", startxref, ErrUnpackFailure)
	}

	columns := 0
	hasPredictor := false
	if parmsVal, ok := dictGet(dictVal, "DecodeParms"); ok && parmsVal.Tag == TagDict {
		if colVal, ok := dictGet(parmsVal, "Columns"); ok {
			n, _ := numericInt64(colVal)
			if n < 0 {
				n = 0
			}
			columns = int(n)
			hasPredictor = true
		}
	}

	rowData := decoded.Bytes
	if hasPredictor {
		unpred, err := unpredictPNG(rowData, columns)
		if err != nil {
			return err
		}
		rowData = unpred
		wtotal = columns
	}

	pos := 0
	for p := 0; p+1 < len(indexPairs); p += 2 {
		first := indexPairs[p]
		count := indexPairs[p+1]
		for i := int64(0); i < count; i++ {
			if pos+wtotal > len(rowData) {
				return wrapErr("xref", startxref, ErrUnpackFailure)
			}
			row := rowData[pos : pos+wtotal]
			pos += wtotal

			typ := decodeBigEndian(row[:w[0]])
			if w[0] == 0 {
				typ = 1
			}
			field2 := decodeBigEndian(row[w[0] : w[0]+w[1]])
			field3 := decodeBigEndian(row[w[0]+w[1] : w[0]+w[1]+w[2]])
			objNum := first + i

			switch typ {
			case 0:
				// free: no-op
			case 1:
				key := formatRef(objNum, field3)
				s.xref.setIfAbsent(key, field2)
			case 2:
				key := strconv.FormatInt(field2, 10) + "_0_" + strconv.FormatInt(field3, 10)
				s.xref.setIfAbsent(key, -1)
			}
		}
	}

	s.applyTrailer(dictVal, isFirst)

	if prevVal, ok := dictGet(dictVal, "Prev"); ok {
		if n, ok := numericInt64(prevVal); ok {
			s.log.Debug("xref stream: following Prev", "from", startxref, "prev", n)
			return s.resolveXref(n, false)
		}
	}
	return nil
}

func decodeBigEndian(b []byte) int64 {
	var x int64
	for _, c := range b {
		x = x<<8 | int64(c)
	}
	return x
}
