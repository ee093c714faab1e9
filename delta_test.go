// Diff Match and Patch – delta codec tests
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentEncodeRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"100%",
		"a=b&c=d",
		"日本語",
		"tab\there",
	}
	for _, s := range cases {
		enc := percentEncode(s)
		dec, err := percentDecode(enc)
		require.NoError(t, err)
		assert.Equal(t, s, dec)
	}
}

func TestPercentEncodePreservesSpace(t *testing.T) {
	// Space is never escaped, unlike strict URL encoding.
	assert.Equal(t, "a b", percentEncode("a b"))
}

func TestPercentDecodeRejectsTruncatedEscape(t *testing.T) {
	_, err := percentDecode("abc%2")
	require.Error(t, err)
	var ide *InvalidDelta
	assert.ErrorAs(t, err, &ide)
}

func TestToDeltaAndFromDelta(t *testing.T) {
	diffs := Diffs{
		{Delete, "jump"},
		{Insert, "somersault"},
		{Equal, "s over the lazy"},
		{Insert, " dog"},
	}
	text1 := diffs.Text1()
	delta := diffs.ToDelta()
	assert.Equal(t, "-4\t+somersault\t=15\t+ dog", delta)

	got, err := FromDelta(text1, delta)
	require.NoError(t, err)
	assert.Equal(t, diffs, got)
	assert.Equal(t, diffs.Text2(), got.Text2())
}

func TestFromDeltaNonAscii(t *testing.T) {
	diffs := Diffs{
		{Equal, "jumpé over the lazy dog"},
	}
	delta := diffs.ToDelta()
	got, err := FromDelta(diffs.Text1(), delta)
	require.NoError(t, err)
	assert.Equal(t, diffs, got)
}

func TestFromDeltaRejectsMismatchedLength(t *testing.T) {
	_, err := FromDelta("short", "=100")
	require.Error(t, err)
	var ide *InvalidDelta
	assert.ErrorAs(t, err, &ide)
}

func TestFromDeltaRejectsUnknownOperator(t *testing.T) {
	_, err := FromDelta("abc", "*3")
	require.Error(t, err)
}

func TestFromDeltaRejectsTrailingText1(t *testing.T) {
	_, err := FromDelta("abc", "=1")
	require.Error(t, err)
}
