package anagrammer

import (
	"slices"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexi_server/internal/lexi"
)

type outcome struct {
	words   string
	residue string
}

func collect(en *Enumerator) []outcome {
	outs := []outcome{}
	for r := range en.All() {
		outs = append(outs, outcome{strings.Join(r.Words(), " "), r.Residue.String()})
	}
	return outs
}

func TestEnumerateUnranked(t *testing.T) {
	lex := lexi.New([]string{"at", "me", "meat", "ta", "ice cream"}, nil, 10)
	en := New("MEAT", lex)
	assert.Equal(t, 4, en.NumCandidates())
	assert.Equal(t, []outcome{
		{"meat", ""},
		{"at me", ""},
		{"me ta", ""},
		{"ta", "em"},
	}, collect(en))
}

func TestEnumerateRankedOrder(t *testing.T) {
	lex := lexi.New([]string{"at", "me", "meat", "ta"}, []string{"me", "ta"}, 10)
	en := New("meat", lex)
	cands := []string{}
	for _, e := range en.Candidates() {
		cands = append(cands, e.Word)
	}
	assert.Equal(t, []string{"me", "ta", "meat", "at"}, cands)
	assert.Equal(t, []outcome{
		{"me ta", ""},
		{"me at", ""},
		{"ta", "em"},
		{"meat", ""},
		{"at", "em"},
	}, collect(en))
}

func TestEnumerateNothingFits(t *testing.T) {
	is := is.New(t)
	lex := lexi.New([]string{"at", "me"}, nil, 10)
	outs := collect(New("xyz", lex))
	is.Equal(outs, []outcome{{"", "xyz"}})

	outs = collect(New("", lex))
	is.Equal(outs, []outcome{{"", ""}})
}

func TestEntryUsedOncePerResult(t *testing.T) {
	is := is.New(t)
	lex := lexi.New([]string{"ab"}, nil, 10)
	is.Equal(collect(New("abab", lex)), []outcome{{"ab", "ab"}})
}

func TestEarlyStop(t *testing.T) {
	is := is.New(t)
	lex := lexi.New([]string{"at", "me", "meat", "ta"}, nil, 10)
	en := New("meat", lex)
	n := 0
	for range en.All() {
		n++
		break
	}
	is.Equal(n, 1)
	// the enumerator picks up where it left off
	r, ok := en.Next()
	is.True(ok)
	is.Equal(r.Words(), []string{"at", "me"})
}

var steamWords = []string{
	"steam", "meats", "mates", "teams", "tames", "satem",
	"meat", "mate", "team", "tame", "seam", "same", "mast", "mats", "eats",
	"east", "seat", "sate", "teas", "stem", "mesa",
	"me", "em", "at", "ta", "as", "am", "ma", "set", "sat", "tea", "eat",
	"ate", "sea", "mes", "a", "m",
}

func TestNoDuplicateBagsAndCompleteness(t *testing.T) {
	is := is.New(t)
	lex := lexi.New(steamWords, []string{"steam", "team", "me", "at", "sat", "a"}, 3)
	query := lexi.FromWord("steam")

	seen := map[string]bool{}
	complete := 0
	for r := range New("steam", lex).All() {
		words := r.Words()
		var sum lexi.SortedLetters
		for _, e := range r.Entries {
			sum = sum.Plus(e.Letters)
		}
		is.Equal(sum.Plus(r.Residue), query)

		bag := slices.Clone(words)
		slices.Sort(bag)
		key := strings.Join(bag, " ")
		is.True(!seen[key])
		seen[key] = true
		if r.Complete() {
			complete++
		}
	}

	// every single-word anagram of steam is its own complete result
	for _, w := range []string{"steam", "meats", "mates", "teams", "tames", "satem"} {
		is.True(seen[w])
	}
	is.True(seen["me sat"])
	is.True(seen["a stem"])
	is.True(complete > 10)
}

func TestExtraFilter(t *testing.T) {
	lex := lexi.New(steamWords, nil, 3)
	extra := lexi.NewFilterBuilder().Length("2").Build()
	en := NewFromLetters(lexi.FromWord("meat"), lex, extra)
	for _, e := range en.Candidates() {
		assert.Equal(t, 2, e.Len)
	}
	for r := range en.All() {
		for _, e := range r.Entries {
			assert.Equal(t, 2, e.Len)
		}
	}
}
