package searchserver

import (
	"cmp"
	"slices"
	"strings"

	"github.com/domino14/lexi_server/internal/countdown"
	"github.com/domino14/lexi_server/internal/lexi"
)

// MinContainsLength is the shortest contains term that gets an anagram
// breakdown instead of a plain word list.
const MinContainsLength = 3

// WordSearch lists the words passing f, longest first, then alphabetically.
func WordSearch(lex *lexi.Lexicon, f *lexi.Filter) []string {
	entries := slices.Collect(lex.Matching(f))
	slices.SortFunc(entries, func(a, b *lexi.Entry) int {
		return cmp.Or(
			cmp.Compare(b.Len, a.Len),
			strings.Compare(a.Word, b.Word),
		)
	})
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

// Score weighs the added letters' word four times as heavily as the full
// word.
func Score(short, long lexi.Quality) int {
	s1 := int(long)
	s2 := int(short) * 4
	return s1*s1 + s2*s2
}

// AnagramBreakdowns reports, for every entry passing f, the best word for
// the letters it adds to contains and the best anagram of the entry itself.
// Entries that don't contain the letters of contains are skipped. Hits are
// ordered by decreasing score.
func AnagramBreakdowns(lex *lexi.Lexicon, f *lexi.Filter, contains string) []Hit {
	sorted := lexi.FromWord(contains)
	hits := []Hit{}
	for e := range lex.Matching(f) {
		rest, ok := e.Letters.Minus(sorted)
		if !ok {
			continue
		}
		short := lex.BestFor(rest)
		long := lex.BestFor(e.Letters)
		hits = append(hits, Hit{
			Query: contains,
			Score: Score(short.Quality, long.Quality),
			Short: ScoredWord(short),
			Long:  ScoredWord(long),
		})
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return hits
}

// SearchParams are the loosely-typed constraints of a word search. Empty
// strings mean "no constraint".
type SearchParams struct {
	Contains  string `json:"contains"`
	Contained string `json:"contained"`
	Excluded  string `json:"excluded"`
	Included  string `json:"included"`
	Length    string `json:"length"`
	OneWord   *bool  `json:"isOneWord"`
}

func (p SearchParams) Filter() *lexi.Filter {
	return lexi.NewFilterBuilder().
		Contains(p.Contains).
		Contained(p.Contained).
		Exclude(p.Excluded).
		Include(p.Included).
		Length(p.Length).
		SingleWord(p.OneWord).
		Build()
}

// breakdownTerm returns the contains term when it is long enough for an
// anagram breakdown.
func (p SearchParams) breakdownTerm() (string, bool) {
	if len(p.Contains) >= MinContainsLength {
		return p.Contains, true
	}
	return "", false
}

// Search runs a constraint search. Anything with more than maxHits hits
// comes back as oversize.
func Search(lex *lexi.Lexicon, p SearchParams, maxHits int) SearchResults {
	f := p.Filter()
	if term, ok := p.breakdownTerm(); ok {
		hits := AnagramBreakdowns(lex, f, term)
		if maxHits > 0 && len(hits) > maxHits {
			oversizeCounter.WithLabelValues("anagrams").Inc()
			return SearchResults{Type: TypeOversize, MaxHits: maxHits}
		}
		return SearchResults{Type: TypeAnagrams, Term: term, Hits: hits}
	}
	if maxHits > 0 && lex.Count(f) > maxHits {
		oversizeCounter.WithLabelValues("words").Inc()
		return SearchResults{Type: TypeOversize, MaxHits: maxHits}
	}
	return SearchResults{Type: TypeWords, Words: WordSearch(lex, f)}
}

// Countdown returns the best words for a Countdown letter selection.
func Countdown(lex *lexi.Lexicon, q string, limit int) CountdownResults {
	best := countdown.Best(lex, q, limit)
	words := make([]string, len(best))
	for i, e := range best {
		words[i] = e.Word
	}
	return CountdownResults{Q: q, Words: words}
}
