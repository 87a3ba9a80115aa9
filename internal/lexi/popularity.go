package lexi

// Popularity is the coarse tier a lexicon entry is rated with. Higher is
// better.
type Popularity int

const (
	Low    Popularity = 1
	Medium Popularity = 2
	High   Popularity = 3
)

func (p Popularity) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "unknown"
}

// Quality describes how good a letter multiset is as a word.
type Quality int

const (
	NotWord     Quality = 0
	NotPopular  Quality = 1
	LessPopular Quality = 2
	VeryPopular Quality = 3
)

// VeryPopularRank is the rank under which a word counts as very popular
// for BestFor, independent of the lexicon's own threshold.
const VeryPopularRank = 1500

func (q Quality) String() string {
	switch q {
	case NotWord:
		return "not-word"
	case NotPopular:
		return "not-popular"
	case LessPopular:
		return "less-popular"
	case VeryPopular:
		return "very-popular"
	}
	return "unknown"
}

// RankedWord is the best word found for a multiset, or the multiset's
// letters when there is no such word.
type RankedWord struct {
	Word    string  `json:"word"`
	Quality Quality `json:"quality"`
}
