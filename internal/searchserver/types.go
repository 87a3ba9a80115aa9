package searchserver

import (
	"encoding/json"
	"fmt"

	"github.com/domino14/lexi_server/internal/lexi"
)

// Goal is the word game a query is for.
type Goal string

const (
	GoalCountdown Goal = "countdown"
	GoalConnect   Goal = "connect"
	GoalAnagram   Goal = "anagram"
	GoalGhost     Goal = "ghost"
)

func ParseGoal(s string) (Goal, error) {
	switch g := Goal(s); g {
	case GoalCountdown, GoalConnect, GoalAnagram:
		return g, nil
	case GoalGhost:
		return "", fmt.Errorf("goal %q is not supported", s)
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

const (
	TypeWordsByLength = "words_by_length"
	TypeAnagrams      = "anagrams"
	TypeWords         = "words"
	TypeOversize      = "oversize"
)

// RatedWord is a lexicon word with its popularity tier.
type RatedWord struct {
	Word   string          `json:"word"`
	Rating lexi.Popularity `json:"rating"`
}

// WordGroup holds words of the same length, most popular first.
type WordGroup struct {
	Len   int         `json:"len"`
	Words []RatedWord `json:"words"`
}

// Decomposition is one way of splitting the query into lexicon words.
type Decomposition struct {
	Words []RatedWord `json:"words"`
}

// CountedResults is the answer to a preview or a full results query.
// NumTotal counts every result found, NumShown those actually returned.
type CountedResults struct {
	NumTotal int             `json:"num_total"`
	NumShown int             `json:"num_shown"`
	Type     string          `json:"type"`
	Groups   []WordGroup     `json:"groups"`
	Anagrams []Decomposition `json:"anagrams"`
	// Truncated is set when the search stopped before finding everything.
	Truncated bool `json:"truncated"`
}

func (c CountedResults) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"num_total": c.NumTotal,
		"num_shown": c.NumShown,
		"type":      c.Type,
	}
	switch c.Type {
	case TypeWordsByLength:
		m["groups"] = nonNil(c.Groups)
	case TypeAnagrams:
		m["anagrams"] = nonNil(c.Anagrams)
	}
	if c.Truncated {
		m["truncated"] = true
	}
	return json.Marshal(m)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ScoredWord is serialized as a [word, quality] pair.
type ScoredWord lexi.RankedWord

func (s ScoredWord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Word, int(s.Quality)})
}

func (s *ScoredWord) UnmarshalJSON(bts []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(bts, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [word, quality], got %s", bts)
	}
	if err := json.Unmarshal(pair[0], &s.Word); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &s.Quality)
}

// Hit is a word containing the query letters, with the best words for its
// full letters (Long) and for the letters it adds (Short).
type Hit struct {
	Query string     `json:"query"`
	Score int        `json:"score"`
	Short ScoredWord `json:"short"`
	Long  ScoredWord `json:"long"`
}

// SearchResults answers a constraint search: a plain word list, anagram
// breakdowns, or a refusal when there are too many hits.
type SearchResults struct {
	Type    string   `json:"type"`
	Words   []string `json:"words"`
	Term    string   `json:"term"`
	Hits    []Hit    `json:"hits"`
	MaxHits int      `json:"max_hits"`
}

func (s SearchResults) MarshalJSON() ([]byte, error) {
	m := map[string]any{"type": s.Type}
	switch s.Type {
	case TypeWords:
		m["words"] = nonNil(s.Words)
	case TypeAnagrams:
		m["term"] = s.Term
		m["hits"] = nonNil(s.Hits)
	case TypeOversize:
		m["max_hits"] = s.MaxHits
	}
	return json.Marshal(m)
}

type CountdownResults struct {
	Q     string   `json:"q"`
	Words []string `json:"words"`
}

type CountdownLetters struct {
	Letters string   `json:"letters"`
	Best    []string `json:"best,omitempty"`
}
