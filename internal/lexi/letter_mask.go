package lexi

// LetterMask is a presence bitmask over a-z; bit i is set if the i-th letter
// of the alphabet occurs at least once.
type LetterMask uint32

// MaskOf returns the mask of letters occurring in word.
func MaskOf(word string) LetterMask {
	var m LetterMask
	for i := 0; i < len(word); i++ {
		if idx, ok := letterIndex(word[i]); ok {
			m |= 1 << idx
		}
	}
	return m
}

// ParseLetterMask is like MaskOf but fails when s has no letters at all.
func ParseLetterMask(s string) (LetterMask, bool) {
	m := MaskOf(s)
	if m == 0 {
		return 0, false
	}
	return m, true
}

func (m LetterMask) Has(c byte) bool {
	idx, ok := letterIndex(c)
	return ok && m&(1<<idx) != 0
}

func (m LetterMask) String() string {
	bts := make([]byte, 0, alphabetSize)
	for i := 0; i < alphabetSize; i++ {
		if m&(1<<i) != 0 {
			bts = append(bts, byte('a'+i))
		}
	}
	return string(bts)
}
