// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixtures builds small, byte-exact PDF documents for the
// driver's end-to-end tests, computing xref offsets as it writes
// instead of hand-counting bytes in a literal.
package fixtures

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// Classical returns a minimal four-object PDF (Catalog, Pages, Page,
// and a content stream) with a classical xref table and trailer.
func Classical() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int64, 5) // index 0 unused, slot 0 is the free head

	offsets[1] = int64(buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = int64(buf.Len())
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = int64(buf.Len())
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /Contents 4 0 R >>\nendobj\n")

	offsets[4] = int64(buf.Len())
	content := "BT /F1 12 Tf (Hello) Tj ET"
	fmt.Fprintf(&buf, "4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content)

	xrefAt := int64(buf.Len())
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(offsets))
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	buf.WriteString("trailer\n")
	fmt.Fprintf(&buf, "<< /Size %d /Root 1 0 R >>\n", len(offsets))
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF", xrefAt)

	return buf.Bytes()
}

// ClassicalWithIncrementalUpdate returns Classical() followed by a
// second incremental-update section that rewrites object 3 (adding
// /Rotate 90) and appends its own xref table with /Prev pointing at the first,
// exercising Prev-chain traversal.
func ClassicalWithIncrementalUpdate() []byte {
	base := Classical()
	prevXref := bytes.LastIndex(base, []byte("\nxref\n")) + 1

	var buf bytes.Buffer
	buf.Write(base)

	offset3 := int64(buf.Len())
	buf.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /Contents 4 0 R /Rotate 90 >>\nendobj\n")

	xrefAt := int64(buf.Len())
	buf.WriteString("xref\n")
	buf.WriteString("3 1\n")
	fmt.Fprintf(&buf, "%010d 00000 n \n", offset3)
	buf.WriteString("trailer\n")
	fmt.Fprintf(&buf, "<< /Size 5 /Root 1 0 R /Prev %d >>\n", prevXref)
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF", xrefAt)

	return buf.Bytes()
}

// XrefStream returns a minimal two-object PDF whose cross-reference
// section is an xref stream with a FlateDecode-compressed,
// PNG-Up-predicted (selector 12) body.
func XrefStream() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.5\n")

	offset1 := int64(buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offset2 := int64(buf.Len())
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")

	xrefAt := int64(buf.Len())
	xrefObjNum := 3

	// W = [1 4 1]: type(1) + offset(4) + gen/index(1) = 6 raw bytes/row,
	// plus one PNG selector byte per row (columns=6 -> stride 7).
	rows := [][3]int64{
		{0, 0, 255},          // obj 0: free, next free = 0, gen 65535 encoded as low byte
		{1, offset1, 0},      // obj 1: in use
		{1, offset2, 0},      // obj 2: in use
		{1, xrefAt, 0},       // obj 3 (this xref stream object): in use
	}

	var raw bytes.Buffer
	for _, r := range rows {
		raw.WriteByte(12) // PNG Up selector
		raw.WriteByte(byte(r[0]))
		raw.WriteByte(byte(r[1] >> 24))
		raw.WriteByte(byte(r[1] >> 16))
		raw.WriteByte(byte(r[1] >> 8))
		raw.WriteByte(byte(r[1]))
		raw.WriteByte(byte(r[2]))
	}
	predicted := applyPNGUp(raw.Bytes(), 6)

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	zw.Write(predicted)
	zw.Close()

	fmt.Fprintf(&buf, "%d 0 obj\n", xrefObjNum)
	fmt.Fprintf(&buf, "<< /Type /XRef /Size 4 /W [1 4 1] /Index [0 4] /Filter /FlateDecode /DecodeParms << /Columns 6 /Predictor 12 >> /Length %d /Root 1 0 R >>\n", compressed.Len())
	buf.WriteString("stream\n")
	buf.Write(compressed.Bytes())
	buf.WriteString("\nendstream\nendobj\n")
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF", xrefAt)

	return buf.Bytes()
}

// applyPNGUp is unpredictPNG's encode-side inverse: it turns rows of
// columns raw bytes, each already prefixed with the PNG-Up selector
// byte (12), into the row-differenced form pdfxref's unpredictPNG
// expects to reverse.
func applyPNGUp(data []byte, columns int) []byte {
	stride := columns + 1
	rows := len(data) / stride
	out := make([]byte, len(data))
	prev := make([]byte, columns)
	for r := 0; r < rows; r++ {
		row := data[r*stride : (r+1)*stride]
		outRow := out[r*stride : (r+1)*stride]
		outRow[0] = row[0]
		for i := 0; i < columns; i++ {
			outRow[i+1] = row[i+1] - prev[i]
		}
		copy(prev, row[1:])
	}
	return out
}
