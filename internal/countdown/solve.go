package countdown

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/domino14/lexi_server/internal/lexi"
)

var ErrNoSolution = errors.New("could not find a selection in time")

type lowercaseCheck struct{}

func (lowercaseCheck) Matches(e *lexi.Entry) bool {
	for i := 0; i < len(e.Word); i++ {
		if e.Word[i] < 'a' || e.Word[i] > 'z' {
			return false
		}
	}
	return e.Word != ""
}

func (lowercaseCheck) String() string { return "lowercase" }

// Best returns up to limit words spellable from letters, longest first.
// Only plain lowercase words count, so proper nouns and phrases are left
// out. Words of the same length go from most to least popular, unranked
// words last, then alphabetically.
func Best(lex *lexi.Lexicon, letters string, limit int) []*lexi.Entry {
	pool := lexi.FromWord(letters)
	if pool.IsEmpty() {
		return nil
	}
	f := lexi.NewFilterBuilder().
		Add(lexi.ContainedCheck{Letters: pool}).
		Add(lowercaseCheck{}).
		Build()
	words := slices.Collect(lex.Matching(f))
	slices.SortFunc(words, func(a, b *lexi.Entry) int {
		if c := cmp.Compare(b.Len, a.Len); c != 0 {
			return c
		}
		ra, oka := a.Rank()
		rb, okb := b.Rank()
		switch {
		case oka && okb && ra != rb:
			return cmp.Compare(ra, rb)
		case oka != okb:
			if oka {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if limit >= 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

// Challenge is a letter selection and its longest words.
type Challenge struct {
	Letters string
	Best    []string
	Tries   int
}

// GenerateChallenge keeps drawing selections of v vowels and c consonants
// until one has a word of at least minLength letters. It gives up when ctx
// is done.
func GenerateChallenge(ctx context.Context, lex *lexi.Lexicon, rng *rand.Rand,
	v, c, minLength, numBest int) (*Challenge, error) {

	if _, err := Pick(rng, v, c); err != nil {
		return nil, err
	}
	tries := 0
	doIteration := func() (*Challenge, error) {
		tries++
		p, _ := Pick(rng, v, c)
		best := Best(lex, p.Letters(), numBest)
		if len(best) == 0 || best[0].Len < minLength {
			return nil, fmt.Errorf("no word of length %d in %s", minLength, p.Letters())
		}
		words := make([]string, len(best))
		for i, e := range best {
			words[i] = e.Word
		}
		return &Challenge{Letters: p.Letters(), Best: words, Tries: tries}, nil
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Int("tries", tries).Msg("countdown-challenge-deadline")
			return nil, fmt.Errorf("%w: %w", ErrNoSolution, ctx.Err())
		default:
			ch, err := doIteration()
			if err != nil {
				log.Debug().Err(err).Msg("countdown-challenge-retry")
				continue
			}
			log.Debug().Int("tries", tries).Str("letters", ch.Letters).Msg("countdown-challenge")
			return ch, nil
		}
	}
}
