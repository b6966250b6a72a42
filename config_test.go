// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

import "testing"

func TestConfigureDefaults(t *testing.T) {
	cfg := Configure()
	want := DefaultConfig()
	if cfg.IgnoreFilterErrors != want.IgnoreFilterErrors || cfg.MaxNameBytes != want.MaxNameBytes || cfg.MaxRefDigits != want.MaxRefDigits {
		t.Errorf("Configure() = %+v, want %+v", cfg, want)
	}
}

func TestConfigureOptions(t *testing.T) {
	cfg := Configure(WithIgnoreFilterErrors(true), WithMaxNameBytes(10), WithMaxRefDigits(5), WithMaxCachedObjects(100))
	if !cfg.IgnoreFilterErrors {
		t.Error("IgnoreFilterErrors = false, want true")
	}
	if cfg.MaxNameBytes != 10 {
		t.Errorf("MaxNameBytes = %d, want 10", cfg.MaxNameBytes)
	}
	if cfg.MaxRefDigits != 5 {
		t.Errorf("MaxRefDigits = %d, want 5", cfg.MaxRefDigits)
	}
	if cfg.MaxCachedObjects != 100 {
		t.Errorf("MaxCachedObjects = %d, want 100", cfg.MaxCachedObjects)
	}
}

func TestConfigureClampsNonPositiveWindows(t *testing.T) {
	cfg := Configure(WithMaxNameBytes(-5), WithMaxRefDigits(0))
	if cfg.MaxNameBytes != 255 {
		t.Errorf("MaxNameBytes = %d, want fallback 255", cfg.MaxNameBytes)
	}
	if cfg.MaxRefDigits != 33 {
		t.Errorf("MaxRefDigits = %d, want fallback 33", cfg.MaxRefDigits)
	}
}
