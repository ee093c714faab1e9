// Diff Match and Patch – patch builder and serialization
// 	Original work: Copyright 2006 Google Inc.
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

import (
	"regexp"
	"strconv"
	"strings"
)

// Patch is one hunk of a patch set: a run of diffs together with the rune
// offsets and lengths, in text1 and text2, that it covers. Offsets and
// lengths count runes, consistent with the rest of this package.
type Patch struct {
	diffs   Diffs
	start1  int
	start2  int
	length1 int
	length2 int
}

// PatchList is a patch set, applied as a unit by PatchApply.
type PatchList []Patch

// String renders a patch in unified-diff style, e.g. "@@ -21,4 +21,10 @@",
// followed by one line per diff with a leading ' ', '-' or '+' and its text
// percent-encoded.
func (p Patch) String() string {
	var coords1, coords2 string
	switch p.length1 {
	case 0:
		coords1 = strconv.Itoa(p.start1) + ",0"
	case 1:
		coords1 = strconv.Itoa(p.start1 + 1)
	default:
		coords1 = strconv.Itoa(p.start1+1) + "," + strconv.Itoa(p.length1)
	}
	switch p.length2 {
	case 0:
		coords2 = strconv.Itoa(p.start2) + ",0"
	case 1:
		coords2 = strconv.Itoa(p.start2 + 1)
	default:
		coords2 = strconv.Itoa(p.start2+1) + "," + strconv.Itoa(p.length2)
	}

	var b strings.Builder
	b.WriteString("@@ -")
	b.WriteString(coords1)
	b.WriteString(" +")
	b.WriteString(coords2)
	b.WriteString(" @@\n")

	for _, d := range p.diffs {
		switch d.Op {
		case Insert:
			b.WriteByte('+')
		case Delete:
			b.WriteByte('-')
		case Equal:
			b.WriteByte(' ')
		}
		b.WriteString(percentEncode(d.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

// ToText renders a patch list as the concatenation of each patch's String.
func (patches PatchList) ToText() string {
	var b strings.Builder
	for _, p := range patches {
		b.WriteString(p.String())
	}
	return b.String()
}

var patchHeader = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)

// PatchFromText parses the textual form produced by PatchList.ToText.
func PatchFromText(text string) (PatchList, error) {
	var patches PatchList
	if text == "" {
		return patches, nil
	}
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		m := patchHeader.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, &InvalidPatchText{Line: i, Msg: "expected a hunk header matching @@ -l,n +l,n @@"}
		}
		var p Patch
		p.start1, _ = strconv.Atoi(m[1])
		if m[2] == "" {
			p.start1--
			p.length1 = 1
		} else if m[2] == "0" {
			p.length1 = 0
		} else {
			p.start1--
			p.length1, _ = strconv.Atoi(m[2])
		}
		p.start2, _ = strconv.Atoi(m[3])
		if m[4] == "" {
			p.start2--
			p.length2 = 1
		} else if m[4] == "0" {
			p.length2 = 0
		} else {
			p.start2--
			p.length2, _ = strconv.Atoi(m[4])
		}
		i++

		for i < len(lines) {
			line := lines[i]
			if line == "" {
				i++
				continue
			}
			sign := line[0]
			if sign == '@' {
				break
			}
			payload, err := percentDecode(line[1:])
			if err != nil {
				return nil, err
			}
			switch sign {
			case '-':
				p.diffs.add(Delete, payload)
			case '+':
				p.diffs.add(Insert, payload)
			case ' ':
				p.diffs.add(Equal, payload)
			default:
				return nil, &InvalidPatchText{Line: i, Msg: "line must start with ' ', '-' or '+'"}
			}
			i++
		}
		patches = append(patches, p)
	}
	return patches, nil
}

// PatchMake computes the patches needed to turn text1 into text2.
func (c *Config) PatchMake(text1, text2 string) PatchList {
	diffs := c.DiffMain(text1, text2, true)
	if len(diffs) > 2 {
		diffs.CleanupSemantic()
		diffs.CleanupEfficiency(c.editCost())
	}
	return c.patchFromDiffs(text1, diffs)
}

// PatchMakeFromDiffs computes the patches that realize an already computed
// edit script against text1.
func (c *Config) PatchMakeFromDiffs(text1 string, diffs Diffs) PatchList {
	return c.patchFromDiffs(text1, diffs)
}

// patchFromDiffs walks diffs, accumulating hunks. An equality of at most
// 2*PatchMargin runes that is not the last diff stays attached to the
// current hunk; an equality of at least 2*PatchMargin runes closes the
// current hunk, and the next edit opens a new one.
func (c *Config) patchFromDiffs(text1 string, diffs Diffs) PatchList {
	var patches PatchList
	if len(diffs) == 0 {
		return patches
	}

	margin := c.patchMargin()
	var patch Patch
	charCount1, charCount2 := 0, 0
	prepatchText := text1
	postpatchText := text1

	for i, d := range diffs {
		if len(patch.diffs) == 0 && d.Op != Equal {
			patch.start1 = charCount1
			patch.start2 = charCount2
		}

		switch d.Op {
		case Insert:
			patch.diffs.add(Insert, d.Text)
			patch.length2 += runeCount(d.Text)
			postpatchText = safeMid(postpatchText, 0, charCount2) + d.Text + safeMid(postpatchText, charCount2)
		case Delete:
			patch.length1 += runeCount(d.Text)
			patch.diffs.add(Delete, d.Text)
			postpatchText = safeMid(postpatchText, 0, charCount2) + safeMid(postpatchText, charCount2+runeCount(d.Text))
		case Equal:
			n := runeCount(d.Text)
			if n <= 2*margin && len(patch.diffs) != 0 && i != len(diffs)-1 {
				patch.diffs.add(Equal, d.Text)
				patch.length1 += n
				patch.length2 += n
			}
			if n >= 2*margin && len(patch.diffs) != 0 {
				patch = c.patchAddContext(patch, prepatchText)
				patches = append(patches, patch)
				patch = Patch{}
				prepatchText = postpatchText
				charCount1 = charCount2
			}
		}

		if d.Op != Insert {
			charCount1 += runeCount(d.Text)
		}
		if d.Op != Delete {
			charCount2 += runeCount(d.Text)
		}
	}

	if len(patch.diffs) != 0 {
		patch = c.patchAddContext(patch, prepatchText)
		patches = append(patches, patch)
	}
	return patches
}

// patchAddContext grows a hunk's surrounding context, PatchMargin runes per
// side at a time, until its pattern (text[start2:start2+length1] plus that
// context) is unique within text or has reached MatchMaxBits-2*PatchMargin
// runes; the last step can take it past that size. One further PatchMargin
// of context on each side is then attached to the hunk.
func (c *Config) patchAddContext(patch Patch, text string) Patch {
	if text == "" {
		return patch
	}
	margin := c.patchMargin()
	maxBits := c.matchMaxBits()

	pattern := safeMid(text, patch.start2, patch.length1)
	padding := 0

	for strings.Index(text, pattern) != strings.LastIndex(text, pattern) &&
		runeCount(pattern) < maxBits-2*margin {
		padding += margin
		maxStart := max(0, patch.start2-padding)
		minEnd := min(runeCount(text), patch.start2+patch.length1+padding)
		pattern = safeMid(text, maxStart, minEnd-maxStart)
	}
	padding += margin

	prefix := safeMid(text, max(0, patch.start2-padding), min(padding, patch.start2))
	if prefix != "" {
		patch.diffs = append(Diffs{{Equal, prefix}}, patch.diffs...)
	}
	suffixStart := patch.start2 + patch.length1
	suffixLen := min(padding, runeCount(text)-suffixStart)
	suffix := safeMid(text, suffixStart, max(0, suffixLen))
	if suffix != "" {
		patch.diffs.add(Equal, suffix)
	}

	patch.start1 -= runeCount(prefix)
	patch.start2 -= runeCount(prefix)
	patch.length1 += runeCount(prefix) + runeCount(suffix)
	patch.length2 += runeCount(prefix) + runeCount(suffix)
	return patch
}

// DeepCopy returns a patch list independent of patches: mutating the
// result, or what PatchApply does internally to pad and split it, never
// touches the caller's original slice.
func (patches PatchList) DeepCopy() PatchList {
	out := make(PatchList, len(patches))
	for i, p := range patches {
		cp := Patch{start1: p.start1, start2: p.start2, length1: p.length1, length2: p.length2}
		cp.diffs = make(Diffs, len(p.diffs))
		copy(cp.diffs, p.diffs)
		out[i] = cp
	}
	return out
}
