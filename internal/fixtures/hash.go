// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixtures

import (
	"github.com/mitchellh/hashstructure/v2"
)

// Checksum hashes any parse result (an *pdfxref.Xref, an
// pdfxref.Objects map, or both together as a struct) into a stable
// fingerprint, backing the §8 "stable serialization hashes to a fixed
// checksum" round-trip property. Geek0x0-pdf's caching.go hashes ad
// hoc byte concatenations with crypto/md5 for similar purposes;
// hashstructure walks the value graph directly and needs no manual
// serialization step.
func Checksum(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}
