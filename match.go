// Diff Match and Patch – fuzzy matching (Bitap)
// 	Original work: Copyright 2006 Google Inc.
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

import (
	"math"
	"strings"
)

// MatchMain locates the best instance of pattern in text near the rune
// offset loc, using Config.MatchThreshold and Config.MatchDistance to trade
// off the number of errors tolerated against how far the match may drift
// from loc. It returns -1 if no match scores within the threshold.
func (c *Config) MatchMain(text, pattern string, loc int) int {
	textRunes := []rune(text)
	loc = max(0, min(loc, len(textRunes)))

	if text == pattern {
		return 0
	}
	if len(textRunes) == 0 {
		return -1
	}
	patRunes := []rune(pattern)
	if loc+len(patRunes) <= len(textRunes) && string(textRunes[loc:loc+len(patRunes)]) == pattern {
		// Perfect match at the perfect spot.
		return loc
	}
	return c.matchBitap(textRunes, patRunes, loc)
}

// matchBitap runs the shift-or fuzzy search described by Wu & Manber. Both
// text and pattern are already rune slices so every position it reports is
// a rune offset, not a byte offset.
func (c *Config) matchBitap(text, pattern []rune, loc int) int {
	maxBits := c.matchMaxBits()
	if len(pattern) > maxBits {
		// The caller is expected to have split the pattern (patch hunks
		// are bounded by PatchMargin well under MatchMaxBits); a pattern
		// this long can't be represented in the bitmask below.
		return -1
	}

	alphabet := matchAlphabet(pattern)
	scoreThreshold := c.MatchThreshold

	// Nearby exact matches narrow the threshold before the fuzzy scan starts.
	if bestLoc := runeIndex(text, pattern, loc); bestLoc != -1 {
		scoreThreshold = math.Min(c.bitapScore(0, bestLoc, loc, len(pattern)), scoreThreshold)
		if bestLoc = runeLastIndex(text, pattern, loc+len(pattern)); bestLoc != -1 {
			scoreThreshold = math.Min(c.bitapScore(0, bestLoc, loc, len(pattern)), scoreThreshold)
		}
	}

	matchMask := uint64(1) << uint(len(pattern)-1)
	bestLoc := -1

	var binMin, binMid int
	binMax := len(pattern) + len(text)
	var lastRd []uint64

	for d := 0; d < len(pattern); d++ {
		// Binary search for how far from loc we may stray at this error count.
		binMin = 0
		binMid = binMax
		for binMin < binMid {
			if c.bitapScore(d, loc+binMid, loc, len(pattern)) <= scoreThreshold {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := max(1, loc-binMid+1)
		finish := min(loc+binMid, len(text)) + len(pattern)

		rd := make([]uint64, finish+2)
		rd[finish+1] = (uint64(1) << uint(d)) - 1

		for j := finish; j >= start; j-- {
			var charMatch uint64
			if len(text) <= j-1 || j-1 < 0 {
				charMatch = 0
			} else {
				charMatch = alphabet[text[j-1]]
			}

			if d == 0 {
				rd[j] = ((rd[j+1] << 1) | 1) & charMatch
			} else {
				rd[j] = (((rd[j+1] << 1) | 1) & charMatch) | (((lastRd[j+1] | lastRd[j]) << 1) | 1) | lastRd[j+1]
			}
			if rd[j]&matchMask != 0 {
				score := c.bitapScore(d, j-1, loc, len(pattern))
				if score <= scoreThreshold {
					scoreThreshold = score
					bestLoc = j - 1
					if bestLoc > loc {
						start = max(1, 2*loc-bestLoc)
					} else {
						break
					}
				}
			}
		}
		if c.bitapScore(d+1, loc, loc, len(pattern)) > scoreThreshold {
			break
		}
		lastRd = rd
	}
	return bestLoc
}

// bitapScore weighs accuracy (errors relative to pattern length) against
// proximity (distance from loc relative to Config.MatchDistance).
func (c *Config) bitapScore(e, x, loc, patternLen int) float64 {
	accuracy := float64(e) / float64(patternLen)
	proximity := math.Abs(float64(loc - x))
	if c.MatchDistance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + proximity/float64(c.MatchDistance)
}

// matchAlphabet builds the per-rune bitmask Bitap scans against: bit i (from
// the low end) is set wherever pattern[len(pattern)-1-i] equals that rune.
func matchAlphabet(pattern []rune) map[rune]uint64 {
	s := make(map[rune]uint64, len(pattern))
	for i, r := range pattern {
		s[r] |= uint64(1) << uint(len(pattern)-i-1)
	}
	return s
}

func runeIndex(text, pattern []rune, loc int) int {
	if loc > len(text) {
		loc = len(text)
	}
	if loc < 0 {
		loc = 0
	}
	i := strings.Index(string(text[loc:]), string(pattern))
	if i == -1 {
		return -1
	}
	return loc + len([]rune(string(text[loc:])[:i]))
}

func runeLastIndex(text, pattern []rune, loc int) int {
	if loc > len(text) {
		loc = len(text)
	}
	if loc < 0 {
		loc = 0
	}
	i := strings.LastIndex(string(text[:loc]), string(pattern))
	if i == -1 {
		return -1
	}
	return len([]rune(string(text[:loc])[:i]))
}
