package searchserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexi_server/internal/lexi"
)

func boolp(b bool) *bool {
	return &b
}

func subwordLexicon() *lexi.Lexicon {
	return lexi.New(
		[]string{"steam", "meats", "team", "meat", "me", "at", "sat", "ice cream", "mat"},
		[]string{"meat", "me", "steam"},
		2)
}

func TestLustersBreakdown(t *testing.T) {
	is := is.New(t)
	lex := lexi.New([]string{"clusters", "dusters", "lusters"}, []string{"clusters"}, 1)
	f := lexi.NewFilterBuilder().Contains("lusters").Length("8").Build()

	hits := AnagramBreakdowns(lex, f, "lusters")
	is.Equal(len(hits), 1)
	is.Equal(hits[0].Query, "lusters")
	is.Equal(hits[0].Short, ScoredWord{Word: "c", Quality: lexi.NotWord})
	is.Equal(hits[0].Long, ScoredWord{Word: "clusters", Quality: lexi.VeryPopular})
	is.Equal(hits[0].Score, 9)
}

func TestBreakdownsSortedByScore(t *testing.T) {
	lex := lexi.New([]string{"rats", "stare", "tears", "ratsz", "e"}, []string{"tears", "e"}, 10)
	hits := AnagramBreakdowns(lex, lexi.NewFilterBuilder().Contains("rats").Build(), "rats")
	got := []string{}
	for _, h := range hits {
		got = append(got, h.Long.Word)
	}
	// stare/tears add a popular "e"; ratsz adds a non-word
	assert.Equal(t, []string{"tears", "tears", "rats", "ratsz"}, got)
	assert.Equal(t, Score(lexi.VeryPopular, lexi.VeryPopular), hits[0].Score)
	assert.Equal(t, 153, hits[0].Score)
}

func TestBreakdownsSkipEntriesWithoutTerm(t *testing.T) {
	is := is.New(t)
	lex := subwordLexicon()
	is.Equal(len(AnagramBreakdowns(lex, lexi.NewFilterBuilder().Build(), "xyz")), 0)
}

func TestLongestSubwords(t *testing.T) {
	lex := subwordLexicon()
	res := LongestSubwords(lex, "STEAM", NoLimit)
	assert.Equal(t, TypeWordsByLength, res.Type)
	assert.Equal(t, 8, res.NumTotal)
	assert.Equal(t, 8, res.NumShown)
	assert.Equal(t, []WordGroup{
		{Len: 5, Words: []RatedWord{{"steam", lexi.Medium}, {"meats", lexi.Low}}},
		{Len: 4, Words: []RatedWord{{"meat", lexi.High}, {"team", lexi.Low}}},
		{Len: 3, Words: []RatedWord{{"sat", lexi.Low}, {"mat", lexi.Low}}},
		{Len: 2, Words: []RatedWord{{"me", lexi.High}, {"at", lexi.Low}}},
	}, res.Groups)

	res = LongestSubwords(lex, "steam", 3)
	assert.Equal(t, 8, res.NumTotal)
	assert.Equal(t, 3, res.NumShown)
	assert.Equal(t, []WordGroup{
		{Len: 5, Words: []RatedWord{{"steam", lexi.Medium}, {"meats", lexi.Low}}},
		{Len: 4, Words: []RatedWord{{"meat", lexi.High}}},
	}, res.Groups)

	res = LongestSubwords(lex, "", NoLimit)
	assert.Equal(t, 0, res.NumTotal)
	assert.Empty(t, res.Groups)
}

func decompositionWords(res CountedResults) [][]string {
	all := [][]string{}
	for _, d := range res.Anagrams {
		words := []string{}
		for _, w := range d.Words {
			words = append(words, w.Word)
		}
		all = append(all, words)
	}
	return all
}

func TestDecompositions(t *testing.T) {
	lex := lexi.New([]string{"at", "me", "meat", "ta", "team"}, []string{"me", "at"}, 10)
	ctx := context.Background()

	res := Decompositions(ctx, lex, "meat", NoLimit, 0)
	assert.Equal(t, TypeAnagrams, res.Type)
	assert.Equal(t, 4, res.NumTotal)
	assert.False(t, res.Truncated)
	assert.Equal(t, [][]string{{"at", "me"}, {"meat"}, {"team"}, {"me", "ta"}},
		decompositionWords(res))
	assert.Equal(t, lexi.High, res.Anagrams[0].Words[0].Rating)

	res = Decompositions(ctx, lex, "meat", 2, 0)
	assert.Equal(t, 4, res.NumTotal)
	assert.Equal(t, 2, res.NumShown)

	res = Decompositions(ctx, lex, "meat", NoLimit, 2)
	assert.True(t, res.Truncated)
	assert.Equal(t, [][]string{{"at", "me"}, {"me", "ta"}}, decompositionWords(res))

	res = Decompositions(ctx, lex, "", NoLimit, 0)
	assert.Equal(t, 0, res.NumTotal)
	assert.Empty(t, res.Anagrams)
}

func TestResultsByGoal(t *testing.T) {
	is := is.New(t)
	lex := subwordLexicon()
	ctx := context.Background()
	is.Equal(Results(ctx, lex, "steam", GoalCountdown, NoLimit, 0).Type, TypeWordsByLength)
	is.Equal(Results(ctx, lex, "steam", GoalConnect, NoLimit, 0).Type, TypeWordsByLength)
	is.Equal(Results(ctx, lex, "steam", GoalAnagram, NoLimit, 0).Type, TypeAnagrams)

	_, err := ParseGoal("ghost")
	is.True(err != nil)
	_, err = ParseGoal("")
	is.True(err != nil)
	g, err := ParseGoal("anagram")
	is.NoErr(err)
	is.Equal(g, GoalAnagram)
}

func TestSearch(t *testing.T) {
	lex := lexi.New([]string{"clusters", "dusters", "lusters", "rustles", "ice cream", "ace"},
		[]string{"clusters"}, 1)

	res := Search(lex, SearchParams{Contained: "clustersd", OneWord: boolp(true)}, 100)
	assert.Equal(t, TypeWords, res.Type)
	assert.Equal(t, []string{"clusters", "dusters", "lusters", "rustles"}, res.Words)

	res = Search(lex, SearchParams{Contains: "ce"}, 100)
	assert.Equal(t, TypeWords, res.Type)
	assert.Equal(t, []string{"clusters", "ice cream", "ace"}, res.Words)

	res = Search(lex, SearchParams{Contains: "lusters", Length: "8"}, 100)
	assert.Equal(t, TypeAnagrams, res.Type)
	assert.Equal(t, "lusters", res.Term)
	assert.Len(t, res.Hits, 1)

	res = Search(lex, SearchParams{Contains: "rstu"}, 2)
	assert.Equal(t, TypeOversize, res.Type)
	assert.Equal(t, 2, res.MaxHits)

	res = Search(lex, SearchParams{Contained: "clustersd"}, 3)
	assert.Equal(t, TypeOversize, res.Type)
}

func TestCountdown(t *testing.T) {
	lex := lexi.New([]string{"Paris", "pairs", "rap", "spa", "ripsaw"}, []string{"spa"}, 10)
	res := Countdown(lex, "SPARI", 2)
	assert.Equal(t, CountdownResults{Q: "SPARI", Words: []string{"pairs", "spa"}}, res)
}

func TestJSONShapes(t *testing.T) {
	is := is.New(t)
	bts, err := json.Marshal(CountedResults{Type: TypeWordsByLength, NumTotal: 0})
	is.NoErr(err)
	is.Equal(string(bts), `{"groups":[],"num_shown":0,"num_total":0,"type":"words_by_length"}`)

	bts, err = json.Marshal(SearchResults{Type: TypeOversize, MaxHits: 100})
	is.NoErr(err)
	is.Equal(string(bts), `{"max_hits":100,"type":"oversize"}`)

	hit := Hit{Query: "lusters", Score: 9,
		Short: ScoredWord{Word: "c", Quality: lexi.NotWord},
		Long:  ScoredWord{Word: "clusters", Quality: lexi.VeryPopular}}
	bts, err = json.Marshal(hit)
	is.NoErr(err)
	is.Equal(string(bts), `{"query":"lusters","score":9,"short":["c",0],"long":["clusters",3]}`)

	var back Hit
	is.NoErr(json.Unmarshal(bts, &back))
	is.Equal(back, hit)

	bts, err = json.Marshal(RatedWord{Word: "me", Rating: lexi.High})
	is.NoErr(err)
	is.Equal(string(bts), `{"word":"me","rating":3}`)
}
