// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"bytes"
	"encoding/ascii85"
	"io"
)

// decodeASCII85 implements ASCII85Decode. benoitkugler-pdf rolls its own
// EOD-aware reader (reader/parser/filters/ascii85Decode.go); the
// standard library's encoding/ascii85 reports a CorruptInputError on
// any byte outside the ASCII85 alphabet, so we trim the "~>"
// end-of-data marker PDF appends before handing bytes to it.
func decodeASCII85(data []byte) ([]byte, error) {
	data = bytes.TrimSuffix(bytes.TrimSpace(data), []byte("~>"))
	dec := ascii85.NewDecoder(bytes.NewReader(data))
	return io.ReadAll(dec)
}
