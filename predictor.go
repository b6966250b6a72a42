// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

// unpredictPNG reverses the PNG row-differencing filter xref streams use.
// data is viewed as rows of columns+1 bytes,
// the leading byte of each row being the predictor selector (10..14). The
// returned slice has the leading selector byte stripped from every row,
// i.e. len(rows)*columns bytes.
//
// Unlike the upstream reader's pngUpReader (an io.Reader that only
// special-cased PNG-Up, selector 2 in its own encoding where the PDF
// selector 12 maps to PNG "Up"), this implements all five PNG filter
// types since an xref stream's rows are not all guaranteed to use Up.
func unpredictPNG(data []byte, columns int) ([]byte, error) {
	if columns < 0 {
		columns = 0
	}
	stride := columns + 1
	if stride <= 0 {
		return nil, wrapErr("predictor", -1, ErrUnknownPredictor)
	}
	rows := len(data) / stride
	out := make([]byte, 0, rows*columns)
	prevRow := make([]byte, columns)
	curRow := make([]byte, columns)

	for r := 0; r < rows; r++ {
		row := data[r*stride : (r+1)*stride]
		selector := row[0]
		src := row[1:]
		for i := 0; i < columns; i++ {
			var left, up, upleft byte
			if i > 0 {
				left = curRow[i-1]
			}
			up = prevRow[i]
			if i > 0 {
				upleft = prevRow[i-1]
			}
			cur := src[i]
			switch selector {
			case 10: // None
				curRow[i] = cur
			case 11: // Sub
				curRow[i] = cur + left
			case 12: // Up
				curRow[i] = cur + up
			case 13: // Average
				curRow[i] = cur + byte((int(left)+int(up))/2)
			case 14: // Paeth
				curRow[i] = cur + paethPredictor(left, up, upleft)
			default:
				return nil, wrapErr("predictor", int64(r*stride), ErrUnknownPredictor)
			}
		}
		out = append(out, curRow...)
		prevRow, curRow = curRow, prevRow
	}
	return out, nil
}

// paethPredictor implements the PNG Paeth predictor: pick the
// neighbor closest to the initial estimate p = left + up - upleft, ties
// broken in the order a < b < c (first-wins).
func paethPredictor(left, up, upleft byte) byte {
	p := int(left) + int(up) - int(upleft)
	a := abs(p - int(left))
	b := abs(p - int(up))
	c := abs(p - int(upleft))
	if a <= b && a <= c {
		return left
	}
	if b <= c {
		return up
	}
	return upleft
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
