// Package anagrammer breaks a set of letters down into sequences of lexicon
// words that use up the letters.
//
// Results are produced lazily, one per call to Next, so a caller can stop
// whenever it has seen enough. Each distinct bag of words is produced once:
// words within a result always appear in candidate order, so "me at" and
// "at me" can't both show up.
package anagrammer

import (
	"cmp"
	"iter"
	"slices"

	"github.com/domino14/lexi_server/internal/lexi"
)

// Result is one decomposition. Residue holds the letters that no further
// candidate could use; it is empty for a full anagram.
type Result struct {
	Entries []*lexi.Entry
	Residue lexi.SortedLetters
}

// Complete is true when the words use up every letter.
func (r Result) Complete() bool {
	return r.Residue.IsEmpty()
}

func (r Result) Words() []string {
	words := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		words[i] = e.Word
	}
	return words
}

type frame struct {
	letters lexi.SortedLetters
	pos     int
	entries []*lexi.Entry
	// fresh stays true until the frame pushes its first child.
	fresh bool
}

// Enumerator walks the search tree of decompositions with an explicit stack.
// A candidate is used at most once per result. It is not safe for
// concurrent use; create one per query.
type Enumerator struct {
	candidates []*lexi.Entry
	stack      []frame
}

func New(term string, lex *lexi.Lexicon) *Enumerator {
	return NewFromLetters(lexi.FromWord(term), lex, nil)
}

// NewFromLetters builds an enumerator over the single-word entries that fit
// in letters and also pass extra, which may be nil.
func NewFromLetters(letters lexi.SortedLetters, lex *lexi.Lexicon, extra *lexi.Filter) *Enumerator {
	b := lexi.NewFilterBuilder().
		Add(lexi.ContainedCheck{Letters: letters}).
		Add(lexi.SingleWordCheck{Want: true})
	for _, c := range extra.Checks() {
		b.Add(c)
	}
	candidates := slices.Collect(lex.Matching(b.Build()))
	slices.SortStableFunc(candidates, func(a, b *lexi.Entry) int {
		return cmp.Or(
			cmp.Compare(lex.Rate(b), lex.Rate(a)),
			cmp.Compare(b.Len, a.Len),
			cmp.Compare(a.Word, b.Word),
		)
	})
	return &Enumerator{
		candidates: candidates,
		stack:      []frame{{letters: letters, fresh: true}},
	}
}

func (en *Enumerator) NumCandidates() int {
	return len(en.candidates)
}

// Candidates returns the sorted candidate pool. The slice must not be
// modified.
func (en *Enumerator) Candidates() []*lexi.Entry {
	return en.candidates
}

func (en *Enumerator) pop() frame {
	top := en.stack[len(en.stack)-1]
	en.stack = en.stack[:len(en.stack)-1]
	return top
}

// Next advances to the next reportable result. It returns false once the
// search is exhausted.
func (en *Enumerator) Next() (Result, bool) {
	for len(en.stack) > 0 {
		top := &en.stack[len(en.stack)-1]
		if top.letters.IsEmpty() {
			f := en.pop()
			return Result{Entries: f.entries, Residue: f.letters}, true
		}

		var child *frame
		for top.pos < len(en.candidates) {
			c := en.candidates[top.pos]
			top.pos++
			rest, ok := top.letters.Minus(c.Letters)
			if !ok {
				continue
			}
			top.fresh = false
			child = &frame{
				letters: rest,
				pos:     top.pos,
				entries: append(slices.Clip(top.entries), c),
				fresh:   true,
			}
			break
		}
		if child != nil {
			en.stack = append(en.stack, *child)
			continue
		}

		f := en.pop()
		if f.fresh {
			return Result{Entries: f.entries, Residue: f.letters}, true
		}
	}
	return Result{}, false
}

// All yields the remaining results. Breaking out of the range loop stops the
// search.
func (en *Enumerator) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for {
			r, ok := en.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
