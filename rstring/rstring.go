/*
Package rstring provides an efficient way to index strings by rune rather than by byte.

There are three types, Rstring, LRstring, and IRstring, that provide different
levels of buffering. For instance, LRstring buffers the rune count, so that it
does not have to be recomputed, while Rstring is just a wrapper around string:

 	R	LR	IR	Buffering
	-	+	+	RuneCount
	-	-	+	Position

The IRstring implementation is based on the standard library's exp/utf8string package.

*/
package rstring

import (
	"errors"
	"unicode/utf8"
)

var outOfRange = errors.New("rstring: rune position out of range")

type Rstring string

func (s Rstring) String() string {
	return string(s)
}
func (s Rstring) Len() int {
	return len(s)
}

func (s Rstring) Count() int {
	return utf8.RuneCountInString(string(s))
}

func (s Rstring) BytePos(runePos int) int {
	var n int

	for i := range s {
		if n == runePos {
			return i
		}
		n++
	}
	panic(outOfRange)
}

func (s Rstring) ByteIndices(start, end int) (i0, iEnd int) {
	var n int

	for i := range s {
		if n == start {
			i0 = i
		}
		if n == end {
			iEnd = i
			break
		}
		n++
	}
	return
}

type LRstring struct {
	Rstring
	count int
}

func LRString(s string) (lrstr LRstring) {
	lrstr.Rstring = Rstring(s)
	lrstr.count = utf8.RuneCountInString(s)
	return
}

func (s LRstring) Count() int {
	return s.count
}

func (s *LRstring) Concat(s1, s2 LRstring) LRstring {
	s.Rstring = s1.Rstring + s2.Rstring
	s.count = s1.Count() + s2.Count()
	return *s
}

// IRstring buffers both the rune count and the byte offset of each rune,
// so that random access by rune position is O(1) after Init.
type IRstring struct {
	s      string
	offset []int // offset[i] is the byte offset of the i'th rune; len(offset) == numRunes+1, with offset[numRunes] == len(s)
}

// NewIRstring returns an initialized IRstring wrapping s.
func NewIRstring(s string) *IRstring {
	return new(IRstring).Init(s)
}

// Init initializes s to contain str.
func (s *IRstring) Init(str string) *IRstring {
	s.s = str
	s.offset = make([]int, 0, len(str)+1)
	for i := range str {
		s.offset = append(s.offset, i)
	}
	s.offset = append(s.offset, len(str))
	return s
}

// String returns the string that was used to initialize s.
func (s *IRstring) String() string {
	return s.s
}

// Count returns the number of runes in s.
func (s *IRstring) Count() int {
	return len(s.offset) - 1
}

// BytePos returns the byte offset of the rune at rune position runePos.
func (s *IRstring) BytePos(runePos int) int {
	if runePos < 0 || runePos >= len(s.offset) {
		panic(outOfRange)
	}
	return s.offset[runePos]
}

// At returns the rune at rune position i.
func (s *IRstring) At(i int) rune {
	r, _ := utf8.DecodeRuneInString(s.s[s.BytePos(i):])
	return r
}
