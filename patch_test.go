// Diff Match and Patch – patch builder and application tests
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchToStringHeader(t *testing.T) {
	p := Patch{
		diffs:   Diffs{{Equal, "jump"}, {Delete, "s"}, {Insert, "ed"}, {Equal, " over "}},
		start1:  20,
		start2:  21,
		length1: 18,
		length2: 17,
	}
	want := "@@ -21,18 +22,17 @@\n jump\n-s\n+ed\n  over \n"
	assert.Equal(t, want, p.String())
}

func TestPatchToTextFromTextRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"@@ -21,18 +22,17 @@\n jump\n-s\n+ed\n over \n",
		"@@ -1,9 +1,9 @@\n-f\n+F\n oo%2bbar\n",
	}
	for _, text := range tests {
		patches, err := PatchFromText(text)
		require.NoError(t, err)
		got := patches.ToText()
		// Re-parsing ToText's own output must reproduce the same patch set.
		reparsed, err := PatchFromText(got)
		require.NoError(t, err)
		assert.Equal(t, patches, reparsed)
	}
}

func TestPatchFromTextRejectsBadHeader(t *testing.T) {
	_, err := PatchFromText("not a patch")
	require.Error(t, err)
	var ipt *InvalidPatchText
	assert.ErrorAs(t, err, &ipt)
}

func TestPatchMakeEmptyTexts(t *testing.T) {
	c := NewConfig()
	assert.Empty(t, c.PatchMake("", ""))
}

func TestPatchMakeAndApplyExact(t *testing.T) {
	c := NewConfig()
	text1 := "The quick brown fox jumps over the lazy dog."
	text2 := "That quick brown fox jumped over a lazy dog."

	patches := c.PatchMake(text1, text2)
	require.NotEmpty(t, patches)

	got, results := c.PatchApply(patches, text1)
	assert.Equal(t, text2, got)
	for i, ok := range results {
		assert.True(t, ok, "patch %d should have applied cleanly", i)
	}
}

func TestPatchApplyWithDrift(t *testing.T) {
	c := NewConfig()
	text1 := "The quick brown fox jumps over the lazy dog."
	text2 := "That quick brown fox jumped over a lazy dog."
	patches := c.PatchMake(text1, text2)

	// Prepend and append unrelated content so none of the hunks start where
	// they were originally generated; Bitap anchoring should still locate them.
	drifted := "Some unrelated preamble. " + text1 + " Some unrelated coda."
	got, results := c.PatchApply(patches, drifted)
	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.True(t, strings.Contains(got, text2))
}

func TestPatchApplyNoMatch(t *testing.T) {
	c := NewConfig()
	patches := c.PatchMake("The quick brown fox.", "The slow brown fox.")
	got, results := c.PatchApply(patches, "Completely unrelated content that shares nothing.")
	assert.NotEmpty(t, got)
	assert.Contains(t, results, false)
}

func TestPatchSplitMaxLongDelete(t *testing.T) {
	c := NewConfig()
	c.MatchMaxBits = 32
	text1 := strings.Repeat("abcdefghij", 10) // 100 runes
	text2 := ""

	// PatchMake builds one oversized hunk; PatchApply is where
	// patchSplitMax breaks it up to fit the matcher's bit width.
	patches := c.PatchMake(text1, text2)
	require.Len(t, patches, 1)
	require.Greater(t, patches[0].length1, c.MatchMaxBits)

	split := c.patchSplitMax(patches.DeepCopy())
	for _, p := range split {
		assert.LessOrEqual(t, p.length1, c.MatchMaxBits)
	}

	got, results := c.PatchApply(patches, text1)
	assert.Equal(t, text2, got)
	for _, ok := range results {
		assert.True(t, ok)
	}
}

func TestPatchDeepCopyIndependence(t *testing.T) {
	c := NewConfig()
	patches := c.PatchMake("hello world", "hello there world")
	cp := patches.DeepCopy()
	cp[0].diffs[0].Text = "mutated"
	assert.NotEqual(t, patches[0].diffs[0].Text, cp[0].diffs[0].Text)
}
