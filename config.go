// Diff Match and Patch – configuration
//
// Use of this source code is governed by the Apache License,
// Version 2.0, that can be found in the LICENSE file.

package dmp

import "time"

// Config carries the seven tunables that shape diff, match and patch
// behavior. A Config is an ordinary value: callers own it, and nothing in
// this package reads or writes ambient/global state. Multiple Configs may
// be used concurrently from separate goroutines as long as each is not
// mutated while a call using it is in flight.
type Config struct {
	// DiffTimeout bounds how long DiffMain's bisect may run before it gives
	// up on finding a better split and returns the subproblem as a single
	// delete+insert. Zero means unbounded (and, per the original library's
	// coupling described in spec.md §9, disables the half-match speedup so
	// that the result stays minimal).
	DiffTimeout time.Duration

	// DiffEditCost is the threshold CleanupEfficiency uses to decide
	// whether an equality between two edits is cheap enough to absorb.
	DiffEditCost int

	// MatchThreshold is the highest Bitap score (0 = exact, 1 = anything)
	// MatchMain will accept.
	MatchThreshold float64

	// MatchDistance is how many characters of displacement from the
	// expected location contribute 1.0 to the Bitap score.
	MatchDistance int

	// MatchMaxBits bounds pattern length for the Bitap matcher (it is the
	// bit width of the state register). PatchApply calls patchSplitMax to
	// respect this before applying.
	MatchMaxBits int

	// PatchDeleteThreshold is the maximum Levenshtein/length ratio allowed
	// when patch application reconstructs a deleted block longer than
	// MatchMaxBits.
	PatchDeleteThreshold float64

	// PatchMargin is how many characters of context surround a hunk.
	PatchMargin int
}

// Defaults, matching the reference implementation's tuning except for
// DefaultMatchMaxBits, which is 64 (the width of the uint64 Bitap mask)
// rather than the reference's 32.
const (
	DefaultDiffTimeout          = time.Second
	DefaultDiffEditCost         = 4
	DefaultMatchThreshold       = 0.5
	DefaultMatchDistance        = 1000
	DefaultMatchMaxBits         = 64
	DefaultPatchDeleteThreshold = 0.5
	DefaultPatchMargin          = 4
)

// NewConfig returns a Config populated with the documented defaults.
func NewConfig() *Config {
	return &Config{
		DiffTimeout:          DefaultDiffTimeout,
		DiffEditCost:         DefaultDiffEditCost,
		MatchThreshold:       DefaultMatchThreshold,
		MatchDistance:        DefaultMatchDistance,
		MatchMaxBits:         DefaultMatchMaxBits,
		PatchDeleteThreshold: DefaultPatchDeleteThreshold,
		PatchMargin:          DefaultPatchMargin,
	}
}

func (c *Config) editCost() int {
	if c.DiffEditCost == 0 {
		return DefaultDiffEditCost
	}
	return c.DiffEditCost
}

func (c *Config) matchMaxBits() int {
	if c.MatchMaxBits == 0 {
		return DefaultMatchMaxBits
	}
	return c.MatchMaxBits
}

func (c *Config) patchMargin() int {
	if c.PatchMargin == 0 {
		return DefaultPatchMargin
	}
	return c.PatchMargin
}
