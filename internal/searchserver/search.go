package searchserver

import (
	"cmp"
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/internal/anagrammer"
	"github.com/domino14/lexi_server/internal/lexi"
)

// NoLimit disables truncation of results.
const NoLimit = -1

func truncate[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func rated(lex *lexi.Lexicon, e *lexi.Entry) RatedWord {
	return RatedWord{Word: e.Word, Rating: lex.Rate(e)}
}

// LongestSubwords finds the single words that can be spelled from term,
// longest and then most popular first, grouped by length.
func LongestSubwords(lex *lexi.Lexicon, term string, limit int) CountedResults {
	res := CountedResults{Type: TypeWordsByLength, Groups: []WordGroup{}}
	letters := lexi.FromWord(term)
	if letters.IsEmpty() {
		return res
	}
	f := lexi.NewFilterBuilder().
		Add(lexi.ContainedCheck{Letters: letters}).
		Add(lexi.SingleWordCheck{Want: true}).
		Build()
	entries := slices.Collect(lex.Matching(f))
	res.NumTotal = len(entries)
	slices.SortStableFunc(entries, func(a, b *lexi.Entry) int {
		return cmp.Or(
			cmp.Compare(b.Len, a.Len),
			cmp.Compare(lex.Rate(b), lex.Rate(a)),
		)
	})
	entries = truncate(entries, limit)
	res.NumShown = len(entries)

	for _, e := range entries {
		if n := len(res.Groups); n == 0 || res.Groups[n-1].Len != e.Len {
			res.Groups = append(res.Groups, WordGroup{Len: e.Len})
		}
		g := &res.Groups[len(res.Groups)-1]
		g.Words = append(g.Words, rated(lex, e))
	}
	return res
}

type scoredDecomposition struct {
	d        Decomposition
	minScore lexi.Popularity
}

// Decompositions splits term into full anagrams made of one or more words.
// The ones whose least popular word is most popular come first, and fewer
// words beat more. The enumeration stops after maxResults decompositions or
// when ctx is done, and the result is then marked truncated.
func Decompositions(ctx context.Context, lex *lexi.Lexicon, term string, limit,
	maxResults int) CountedResults {

	res := CountedResults{Type: TypeAnagrams, Anagrams: []Decomposition{}}
	letters := lexi.FromWord(term)
	if letters.IsEmpty() {
		return res
	}
	en := anagrammer.NewFromLetters(letters, lex, nil)
	candidatesHistogram.Observe(float64(en.NumCandidates()))

	found := []scoredDecomposition{}
	seen := 0
	for r := range en.All() {
		seen++
		if seen%1024 == 0 && ctx.Err() != nil {
			res.Truncated = true
			break
		}
		if !r.Complete() || len(r.Entries) == 0 {
			continue
		}
		sd := scoredDecomposition{minScore: lexi.High}
		for _, e := range r.Entries {
			rw := rated(lex, e)
			sd.d.Words = append(sd.d.Words, rw)
			sd.minScore = min(sd.minScore, rw.Rating)
		}
		found = append(found, sd)
		if maxResults > 0 && len(found) >= maxResults {
			res.Truncated = true
			break
		}
	}
	if res.Truncated {
		log.Info().Str("term", term).Int("found", len(found)).Int("visited", seen).
			Msg("decompositions-truncated")
	}

	slices.SortStableFunc(found, func(a, b scoredDecomposition) int {
		return cmp.Or(
			cmp.Compare(b.minScore, a.minScore),
			cmp.Compare(len(a.d.Words), len(b.d.Words)),
		)
	})
	res.NumTotal = len(found)
	found = truncate(found, limit)
	res.NumShown = len(found)
	for _, sd := range found {
		res.Anagrams = append(res.Anagrams, sd.d)
	}
	return res
}

// Results answers a query for the given goal.
func Results(ctx context.Context, lex *lexi.Lexicon, term string, goal Goal, limit,
	maxDecompositions int) CountedResults {

	switch goal {
	case GoalAnagram:
		return Decompositions(ctx, lex, term, limit, maxDecompositions)
	default:
		return LongestSubwords(lex, term, limit)
	}
}
