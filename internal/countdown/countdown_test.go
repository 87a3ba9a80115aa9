package countdown

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/lexi_server/internal/lexi"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPiles(t *testing.T) {
	is := is.New(t)
	is.Equal(len(vowelPile), 67)
	is.Equal(len(consonantPile), 8+6+6+8+5+6+8+27)
	p := NewPool(testRNG())
	v, c := p.Remaining()
	is.Equal(v, 67)
	is.Equal(c, 74)
	is.Equal(p.Letters(), "")
}

func TestTakeLimits(t *testing.T) {
	is := is.New(t)
	p := NewPool(testRNG())
	for range 7 {
		p.TakeVowel()
	}
	is.Equal(p.NumVowels(), MaxVowels)
	is.True(!p.CanAddVowel())
	for range 7 {
		p.TakeConsonant()
	}
	// nine letters fill the selection before the consonant cap
	is.Equal(p.NumConsonants(), 4)
	is.Equal(len(p.Letters()), SelectionSize)
	is.True(p.CanSubmit())
	is.True(!p.TakeConsonant())
}

func TestPick(t *testing.T) {
	is := is.New(t)
	p, err := Pick(testRNG(), 3, 6)
	is.NoErr(err)
	is.Equal(p.NumVowels(), 3)
	is.Equal(p.NumConsonants(), 6)
	is.True(p.CanSubmit())

	_, err = Pick(testRNG(), 2, 7)
	is.True(errors.Is(err, ErrBadPick))
	_, err = Pick(testRNG(), 4, 4)
	is.True(errors.Is(err, ErrBadPick))
}

func TestSet(t *testing.T) {
	is := is.New(t)
	p := Set(testRNG(), "countdown!")
	is.Equal(p.Letters(), "COUNTDOWN")
	is.True(p.CanSubmit())

	// only one J in the consonant pile
	p = Set(testRNG(), "jjam")
	is.Equal(p.Letters(), "JAM")
	is.True(!p.CanSubmit())

	p = Set(testRNG(), "abcdefghijklm")
	is.Equal(p.Letters(), "ABCDEFGHI")
}

func TestShuffleKeepsLetters(t *testing.T) {
	is := is.New(t)
	p := Set(testRNG(), "countdown")
	before := lexi.FromWord(p.Letters())
	p.Shuffle()
	is.Equal(lexi.FromWord(p.Letters()), before)
}

func words(es []*lexi.Entry) []string {
	ws := []string{}
	for _, e := range es {
		ws = append(ws, e.Word)
	}
	return ws
}

func TestBest(t *testing.T) {
	lex := lexi.New(
		[]string{"count", "down", "countdown", "Dow", "town", "cod", "nod", "don", "won", "now", "own", "un do"},
		[]string{"now", "won", "town", "down"},
		10000)
	assert.Equal(t, []string{"countdown", "count", "town", "down", "now", "won", "cod", "don", "nod", "own"},
		words(Best(lex, "COUNTDOWN", -1)))
	assert.Equal(t, []string{"countdown", "count", "town"}, words(Best(lex, "countdown", 3)))
	assert.Empty(t, Best(lex, "", 10))
	assert.Empty(t, Best(lex, "xyz", 10))
}

func TestGenerateChallenge(t *testing.T) {
	is := is.New(t)
	vowels := []string{"a", "e", "i", "o", "u"}
	lex := lexi.New(vowels, nil, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch, err := GenerateChallenge(ctx, lex, testRNG(), 4, 5, 1, 3)
	is.NoErr(err)
	is.Equal(len(ch.Letters), SelectionSize)
	is.True(len(ch.Best) > 0)
	is.True(strings.Contains(strings.ToLower(ch.Letters), ch.Best[0]))
	is.True(ch.Tries >= 1)
}

func TestGenerateChallengeTimesOut(t *testing.T) {
	is := is.New(t)
	lex := lexi.New([]string{"zzzzzzzzzz"}, nil, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := GenerateChallenge(ctx, lex, testRNG(), 4, 5, 9, 3)
	is.True(errors.Is(err, ErrNoSolution))
	is.True(errors.Is(err, context.DeadlineExceeded))

	_, err = GenerateChallenge(ctx, lex, testRNG(), 1, 1, 9, 3)
	is.True(errors.Is(err, ErrBadPick))
}
