// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"bytes"
	"fmt"
)

const eodRunLength = 0x80

// decodeRunLength implements RunLengthDecode, grounded in
// benoitkugler-pdf's SkipperRunLength.decode
// (reader/parser/filters/runLengthDecode.go): a length byte < 128
// copies the next length+1 bytes literally; a length byte > 128 repeats
// the single following byte 257-length times; 0x80 ends the stream.
func decodeRunLength(data []byte) ([]byte, error) {
	var out bytes.Buffer
	i := 0
	for {
		if i >= len(data) {
			return nil, fmt.Errorf("runlength: missing EOD marker")
		}
		b := data[i]
		i++
		if b == eodRunLength {
			return out.Bytes(), nil
		}
		if b < 0x80 {
			n := int(b) + 1
			if i+n > len(data) {
				return nil, fmt.Errorf("runlength: truncated literal run")
			}
			out.Write(data[i : i+n])
			i += n
			continue
		}
		n := 257 - int(b)
		if i >= len(data) {
			return nil, fmt.Errorf("runlength: truncated repeat run")
		}
		c := data[i]
		i++
		for j := 0; j < n; j++ {
			out.WriteByte(c)
		}
	}
}
