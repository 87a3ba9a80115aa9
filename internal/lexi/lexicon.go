// Package lexi indexes a word list by letter multiset and answers
// letter-constraint queries against it.
package lexi

import (
	"iter"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultPopularThreshold is the rank under which words rate High.
const DefaultPopularThreshold = 10000

// Lexicon is an immutable, indexed word list. It is safe for concurrent use
// once New returns.
type Lexicon struct {
	entries   []Entry
	byLetters map[SortedLetters][]int
	threshold int
}

// New builds a lexicon with one entry per word, in the given order. Each
// word's rank is its position in popular; if a word is listed more than once
// there, the first position wins.
func New(words []string, popular []string, threshold int) *Lexicon {
	ranks := make(map[string]int, len(popular))
	for i, w := range popular {
		w = strings.TrimSpace(w)
		if _, ok := ranks[w]; !ok {
			ranks[w] = i
		}
	}

	l := &Lexicon{
		entries:   make([]Entry, 0, len(words)),
		byLetters: make(map[SortedLetters][]int),
		threshold: threshold,
	}
	ranked := 0
	for _, w := range words {
		e := newEntry(w)
		if r, ok := ranks[w]; ok {
			e.rank = r
			ranked++
		}
		l.byLetters[e.Letters] = append(l.byLetters[e.Letters], len(l.entries))
		l.entries = append(l.entries, e)
	}
	log.Debug().Int("entries", len(l.entries)).Int("ranked", ranked).
		Int("classes", len(l.byLetters)).Msg("lexicon-indexed")
	return l
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}

func (l *Lexicon) Threshold() int {
	return l.threshold
}

func (l *Lexicon) Entry(i int) *Entry {
	return &l.entries[i]
}

// All iterates over every entry in lexicon order.
func (l *Lexicon) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for i := range l.entries {
			if !yield(&l.entries[i]) {
				return
			}
		}
	}
}

// Matching iterates over the entries accepted by f, in lexicon order.
func (l *Lexicon) Matching(f *Filter) iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for i := range l.entries {
			e := &l.entries[i]
			if f.Matches(e) && !yield(e) {
				return
			}
		}
	}
}

func (l *Lexicon) MatchingWords(f *Filter) []string {
	words := []string{}
	for e := range l.Matching(f) {
		words = append(words, e.Word)
	}
	return words
}

// Count returns the number of entries accepted by f without collecting them.
func (l *Lexicon) Count(f *Filter) int {
	n := 0
	for range l.Matching(f) {
		n++
	}
	return n
}

// Rate places an entry into a popularity tier.
func (l *Lexicon) Rate(e *Entry) Popularity {
	r, ok := e.Rank()
	switch {
	case !ok:
		return Low
	case r < l.threshold:
		return High
	default:
		return Medium
	}
}

// LookupExact returns every entry whose letters are exactly letters, in
// lexicon order.
func (l *Lexicon) LookupExact(letters SortedLetters) []*Entry {
	idxs := l.byLetters[letters]
	entries := make([]*Entry, len(idxs))
	for i, idx := range idxs {
		entries[i] = &l.entries[idx]
	}
	return entries
}

// BestFor picks the most popular anagram of letters. Unranked words lose to
// every ranked one; ties go to the entry that comes first in the lexicon.
// If no entry has these letters, the sorted letters are returned as a
// NotWord.
func (l *Lexicon) BestFor(letters SortedLetters) RankedWord {
	idxs := l.byLetters[letters]
	if len(idxs) == 0 {
		return RankedWord{Word: letters.String(), Quality: NotWord}
	}
	var best *Entry
	for _, idx := range idxs {
		e := &l.entries[idx]
		if best == nil || rankedBefore(e, best) {
			best = e
		}
	}
	r, ok := best.Rank()
	switch {
	case !ok:
		return RankedWord{Word: best.Word, Quality: NotPopular}
	case r < VeryPopularRank:
		return RankedWord{Word: best.Word, Quality: VeryPopular}
	default:
		return RankedWord{Word: best.Word, Quality: LessPopular}
	}
}

// rankedBefore reports whether a is more popular than b. Ranked entries come
// before unranked ones; two unranked entries are equal.
func rankedBefore(a, b *Entry) bool {
	ra, oka := a.Rank()
	rb, okb := b.Rank()
	if oka != okb {
		return oka
	}
	return oka && ra < rb
}
