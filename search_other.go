// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !amd64

package pdfxref

// cpuHasFastScan always reports false off amd64; the portable scan is used.
func cpuHasFastScan() bool {
	return false
}
