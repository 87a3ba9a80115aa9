package lexi

import "strings"

const alphabetSize = 26

// SortedLetters is a multiset over the letters a-z. It is a plain value and
// can be used as a map key.
type SortedLetters struct {
	counts [alphabetSize]uint8
}

func letterIndex(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	}
	return 0, false
}

// FromWord counts the ASCII letters in word, ignoring case. Anything that
// isn't a letter is skipped. Counts stop at 255, so callers taking terms from
// outside bound their length first.
func FromWord(word string) SortedLetters {
	var s SortedLetters
	for i := 0; i < len(word); i++ {
		idx, ok := letterIndex(word[i])
		if !ok {
			continue
		}
		if s.counts[idx] < 255 {
			s.counts[idx]++
		}
	}
	return s
}

// Count returns how many times the letter c appears.
func (s SortedLetters) Count(c byte) int {
	idx, ok := letterIndex(c)
	if !ok {
		return 0
	}
	return int(s.counts[idx])
}

// IsSuperset returns true if every letter count of s is at least the count
// in o.
func (s SortedLetters) IsSuperset(o SortedLetters) bool {
	for i := range s.counts {
		if s.counts[i] < o.counts[i] {
			return false
		}
	}
	return true
}

func (s SortedLetters) IsSubset(o SortedLetters) bool {
	return o.IsSuperset(s)
}

// Minus removes the letters of o from s. The second return value is false
// if o is not a subset of s.
func (s SortedLetters) Minus(o SortedLetters) (SortedLetters, bool) {
	var res SortedLetters
	for i := range s.counts {
		if s.counts[i] < o.counts[i] {
			return SortedLetters{}, false
		}
		res.counts[i] = s.counts[i] - o.counts[i]
	}
	return res, true
}

// Plus adds the letters of o to s. Counts saturate instead of wrapping.
func (s SortedLetters) Plus(o SortedLetters) SortedLetters {
	var res SortedLetters
	for i := range s.counts {
		sum := int(s.counts[i]) + int(o.counts[i])
		if sum > 255 {
			sum = 255
		}
		res.counts[i] = uint8(sum)
	}
	return res
}

func (s SortedLetters) IsEmpty() bool {
	return s == SortedLetters{}
}

// Len is the total number of letters.
func (s SortedLetters) Len() int {
	n := 0
	for _, c := range s.counts {
		n += int(c)
	}
	return n
}

// Mask returns the set of distinct letters present.
func (s SortedLetters) Mask() LetterMask {
	var m LetterMask
	for i, c := range s.counts {
		if c > 0 {
			m |= 1 << i
		}
	}
	return m
}

// String renders the multiset as its lowercase letters in alphabetical
// order, e.g. "Deafened" becomes "addeeefn".
func (s SortedLetters) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for i, c := range s.counts {
		for j := uint8(0); j < c; j++ {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}
