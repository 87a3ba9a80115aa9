package lexi

// Entry is a single word of the lexicon along with its precomputed letter
// data.
type Entry struct {
	Word    string
	Letters SortedLetters
	Mask    LetterMask
	// Len counts letters only; spaces, hyphens and apostrophes don't count.
	Len int
	// SingleWord is set when every character of Word is an ASCII letter.
	SingleWord bool

	rank int
}

const unranked = -1

func newEntry(word string) Entry {
	letters := FromWord(word)
	return Entry{
		Word:       word,
		Letters:    letters,
		Mask:       letters.Mask(),
		Len:        letters.Len(),
		SingleWord: isSingleWord(word),
		rank:       unranked,
	}
}

func isSingleWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if _, ok := letterIndex(word[i]); !ok {
			return false
		}
	}
	return true
}

// Rank is the 0-based position of the word in the popularity list. The
// second return value is false for words that aren't in that list.
func (e *Entry) Rank() (int, bool) {
	if e.rank == unranked {
		return 0, false
	}
	return e.rank, true
}
