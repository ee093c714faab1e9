// Diff Match and Patch – patch application
// 	Original work: Copyright 2006 Google Inc.
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

// PatchApply merges patches onto text, tolerating drift in the surrounding
// content via Config.MatchMain. It returns the patched text and, per patch,
// whether a confident anchor was found for it.
func (c *Config) PatchApply(patches PatchList, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, nil
	}
	patches = patches.DeepCopy()

	nullPadding := c.patchAddPadding(patches)
	text = nullPadding + text + nullPadding
	patches = c.patchSplitMax(patches)

	maxBits := c.matchMaxBits()
	deleteThreshold := c.PatchDeleteThreshold
	if deleteThreshold == 0 {
		deleteThreshold = DefaultPatchDeleteThreshold
	}

	delta := 0
	results := make([]bool, len(patches))
	for x, p := range patches {
		expectedLoc := p.start2 + delta
		text1 := p.diffs.Text1()
		text1Len := runeCount(text1)

		var startLoc, endLoc int
		endLoc = -1
		if text1Len > maxBits {
			// patchSplitMax leaves an oversized pattern only for a monster
			// delete; anchor on its head and tail separately.
			startLoc = c.MatchMain(text, safeMid(text1, 0, maxBits), expectedLoc)
			if startLoc != -1 {
				tailPattern := safeMid(text1, text1Len-maxBits)
				endLoc = c.MatchMain(text, tailPattern, expectedLoc+text1Len-maxBits)
				if endLoc == -1 || startLoc >= endLoc {
					startLoc = -1
				}
			}
		} else {
			startLoc = c.MatchMain(text, text1, expectedLoc)
		}

		if startLoc == -1 {
			results[x] = false
			delta -= p.length2 - p.length1
			continue
		}

		results[x] = true
		delta = startLoc - expectedLoc

		textLen := runeCount(text)
		var text2 string
		if endLoc == -1 {
			text2 = safeMid(text, startLoc, min(text1Len, textLen-startLoc))
		} else {
			text2 = safeMid(text, startLoc, min(endLoc+maxBits-startLoc, textLen-startLoc))
		}

		if text1 == text2 {
			text = safeMid(text, 0, startLoc) + p.diffs.Text2() + safeMid(text, startLoc+text1Len)
			continue
		}

		// Imperfect match: diff the two regions to build a coordinate map.
		diffs := c.DiffMain(text1, text2, false)
		if text1Len > maxBits && float64(diffs.Levenshtein())/float64(text1Len) > deleteThreshold {
			results[x] = false
			continue
		}
		diffs.CleanupSemanticLossless()

		index1 := 0
		for _, d := range p.diffs {
			if d.Op != Equal {
				index2 := diffs.XIndex(index1)
				switch d.Op {
				case Insert:
					text = safeMid(text, 0, startLoc+index2) + d.Text + safeMid(text, startLoc+index2)
				case Delete:
					startIndex := startLoc + index2
					endIndex := startLoc + diffs.XIndex(index1+runeCount(d.Text))
					text = safeMid(text, 0, startIndex) + safeMid(text, endIndex)
				}
			}
			if d.Op != Delete {
				index1 += runeCount(d.Text)
			}
		}
	}

	paddingLen := runeCount(nullPadding)
	textLen := runeCount(text)
	text = safeMid(text, paddingLen, textLen-2*paddingLen)
	return text, results
}

// patchAddPadding surrounds the first and last hunks with a small run of
// distinct control runes so that a hunk touching the very start or end of
// the document still has something to anchor its context on.
func (c *Config) patchAddPadding(patches PatchList) string {
	paddingLen := c.patchMargin()
	var nullPadding strbuf
	for x := 1; x <= paddingLen; x++ {
		nullPadding = append(nullPadding, string(rune(x)))
	}
	padding := nullPadding.join()

	for i := range patches {
		patches[i].start1 += paddingLen
		patches[i].start2 += paddingLen
	}

	first := &patches[0]
	if len(first.diffs) == 0 || first.diffs[0].Op != Equal {
		first.diffs = append(Diffs{{Equal, padding}}, first.diffs...)
		first.start1 -= paddingLen
		first.start2 -= paddingLen
		first.length1 += paddingLen
		first.length2 += paddingLen
	} else if extra := paddingLen - runeCount(first.diffs[0].Text); extra > 0 {
		first.diffs[0].Text = safeMid(padding, runeCount(first.diffs[0].Text)) + first.diffs[0].Text
		first.start1 -= extra
		first.start2 -= extra
		first.length1 += extra
		first.length2 += extra
	}

	last := &patches[len(patches)-1]
	if len(last.diffs) == 0 || last.diffs[len(last.diffs)-1].Op != Equal {
		last.diffs.add(Equal, padding)
		last.length1 += paddingLen
		last.length2 += paddingLen
	} else if extra := paddingLen - runeCount(last.diffs[len(last.diffs)-1].Text); extra > 0 {
		last.diffs[len(last.diffs)-1].Text += safeMid(padding, 0, extra)
		last.length1 += extra
		last.length2 += extra
	}

	return padding
}

// patchSplitMax breaks up hunks whose text1 span exceeds MatchMaxBits, the
// longest pattern the Bitap matcher can represent.
func (c *Config) patchSplitMax(patches PatchList) PatchList {
	patchSize := c.matchMaxBits()
	margin := c.patchMargin()

	for x := 0; x < len(patches); x++ {
		if patches[x].length1 <= patchSize {
			continue
		}
		bigPatch := patches[x]
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1 := bigPatch.start1
		start2 := bigPatch.start2
		precontext := ""
		for len(bigPatch.diffs) != 0 {
			patch := Patch{}
			empty := true
			patch.start1 = start1 - runeCount(precontext)
			patch.start2 = start2 - runeCount(precontext)
			if precontext != "" {
				patch.length1 = runeCount(precontext)
				patch.length2 = runeCount(precontext)
				patch.diffs.add(Equal, precontext)
			}

			for len(bigPatch.diffs) != 0 && patch.length1 < patchSize-margin {
				op := bigPatch.diffs[0].Op
				text := bigPatch.diffs[0].Text
				switch {
				case op == Insert:
					n := runeCount(text)
					patch.length2 += n
					start2 += n
					patch.diffs.add(Insert, text)
					bigPatch.diffs = bigPatch.diffs[1:]
					empty = false
				case op == Delete && len(patch.diffs) == 1 && patch.diffs[0].Op == Equal && runeCount(text) > 2*patchSize:
					n := runeCount(text)
					patch.length1 += n
					start1 += n
					empty = false
					patch.diffs.add(Delete, text)
					bigPatch.diffs = bigPatch.diffs[1:]
				default:
					text = safeMid(text, 0, min(runeCount(text), patchSize-patch.length1-margin))
					n := runeCount(text)
					patch.length1 += n
					start1 += n
					if op == Equal {
						patch.length2 += n
						start2 += n
					} else {
						empty = false
					}
					patch.diffs.add(op, text)
					if text == bigPatch.diffs[0].Text {
						bigPatch.diffs = bigPatch.diffs[1:]
					} else {
						bigPatch.diffs[0].Text = safeMid(bigPatch.diffs[0].Text, n)
					}
				}
			}

			precontext = patch.diffs.Text2()
			precontext = safeMid(precontext, max(0, runeCount(precontext)-margin))

			remaining := bigPatch.diffs.Text1()
			postcontext := safeMid(remaining, 0, min(margin, runeCount(remaining)))
			if postcontext != "" {
				patch.length1 += runeCount(postcontext)
				patch.length2 += runeCount(postcontext)
				if n := len(patch.diffs); n != 0 && patch.diffs[n-1].Op == Equal {
					patch.diffs[n-1].Text += postcontext
				} else {
					patch.diffs.add(Equal, postcontext)
				}
			}
			if !empty {
				x++
				patches = append(patches[:x], append(PatchList{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}
