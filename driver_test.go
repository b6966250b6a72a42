// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/pdfxref"
	"github.com/coregx/pdfxref/filter"
	"github.com/coregx/pdfxref/internal/fixtures"
)

func TestParseEmptyInput(t *testing.T) {
	_, _, err := pdfxref.Parse(nil, nil)
	require.ErrorIs(t, err, pdfxref.ErrEmptyData)
}

func TestParseHeaderMissing(t *testing.T) {
	_, _, err := pdfxref.Parse([]byte("not a pdf"), nil)
	require.ErrorIs(t, err, pdfxref.ErrHeaderMissing)
}

func TestParseClassicalFixture(t *testing.T) {
	data := fixtures.Classical()
	xref, objects, err := pdfxref.Parse(data, filter.Chain{})
	require.NoError(t, err)
	require.True(t, xref.Trailer.HasRoot)
	require.Equal(t, "1_0", xref.Trailer.Root)

	catalog, ok := objects["1_0"]
	require.True(t, ok)
	require.NotEmpty(t, catalog)
	require.Equal(t, pdfxref.TagDict, catalog[0].Tag)

	content, ok := objects["4_0"]
	require.True(t, ok)
	var stream pdfxref.RawValue
	for _, v := range content {
		if v.Tag == pdfxref.TagStream {
			stream = v
		}
	}
	require.NotNil(t, stream.Decoded)
	require.Contains(t, string(stream.Decoded.Bytes), "Hello")
}

func TestParseIncrementalUpdateAppliesPrevChain(t *testing.T) {
	data := fixtures.ClassicalWithIncrementalUpdate()
	xref, objects, err := pdfxref.Parse(data, filter.Chain{})
	require.NoError(t, err)

	// The update's own xref only lists object 3, but /Prev must pull in
	// the earlier entries for 1, 2, 4 as well.
	require.Contains(t, xref.Entries, "1_0")
	require.Contains(t, xref.Entries, "2_0")
	require.Contains(t, xref.Entries, "4_0")

	page, ok := objects["3_0"]
	require.True(t, ok)
	require.Equal(t, pdfxref.TagDict, page[0].Tag)
}

func TestParseXrefStreamFixture(t *testing.T) {
	data := fixtures.XrefStream()
	xref, objects, err := pdfxref.Parse(data, filter.Chain{})
	require.NoError(t, err)
	require.True(t, xref.Trailer.HasRoot)
	require.Equal(t, "1_0", xref.Trailer.Root)
	require.Contains(t, objects, "1_0")
	require.Contains(t, objects, "2_0")
}

func TestParseIsRepeatableAndChecksumStable(t *testing.T) {
	data := fixtures.Classical()

	_, objects1, err := pdfxref.Parse(data, filter.Chain{})
	require.NoError(t, err)
	_, objects2, err := pdfxref.Parse(data, filter.Chain{})
	require.NoError(t, err)

	sum1, err := fixtures.Checksum(objects1)
	require.NoError(t, err)
	sum2, err := fixtures.Checksum(objects2)
	require.NoError(t, err)
	require.Equal(t, sum1, sum2)
}
