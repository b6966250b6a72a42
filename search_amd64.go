// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64

package pdfxref

import "golang.org/x/sys/cpu"

// cpuHasFastScan reports whether the host CPU supports the AVX2 path used
// to accelerate the startxref-tail last-match scan over large buffers.
func cpuHasFastScan() bool {
	return cpu.X86.HasAVX2
}
