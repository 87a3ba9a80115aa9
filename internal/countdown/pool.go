// Package countdown draws letter selections for the Countdown letters round
// and finds the longest words they make.
package countdown

import (
	"errors"
	"math/rand/v2"
	"strings"
)

const (
	SelectionSize = 9
	MaxVowels     = 5
	MaxConsonants = 6
	MinVowels     = 3
	MinConsonants = 4
)

// Letter frequencies per thecountdownpage.com.
var (
	vowelPile = strings.Repeat("A", 15) + strings.Repeat("E", 21) +
		strings.Repeat("I", 13) + strings.Repeat("O", 13) + strings.Repeat("U", 5)
	consonantPile = "JKQVWXYZ" + strings.Repeat("BFH", 2) + strings.Repeat("GC", 3) +
		strings.Repeat("MP", 4) + strings.Repeat("L", 5) + strings.Repeat("D", 6) +
		strings.Repeat("N", 8) + strings.Repeat("RST", 9)
)

var ErrBadPick = errors.New("selection must have 3-5 vowels, 4-6 consonants and 9 letters")

func isVowel(c byte) bool {
	return strings.IndexByte("AEIOU", c) >= 0
}

// Pool holds the two shuffled piles and the letters drawn from them so far.
type Pool struct {
	vowels     []byte
	consonants []byte
	selection  []byte
	rng        *rand.Rand
}

// NewPool returns full, shuffled piles. A nil rng uses a randomly seeded
// source.
func NewPool(rng *rand.Rand) *Pool {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Pool{
		vowels:     []byte(vowelPile),
		consonants: []byte(consonantPile),
		rng:        rng,
	}
	p.shuffle(p.vowels)
	p.shuffle(p.consonants)
	return p
}

func (p *Pool) shuffle(bts []byte) {
	p.rng.Shuffle(len(bts), func(i, j int) { bts[i], bts[j] = bts[j], bts[i] })
}

func (p *Pool) NumVowels() int {
	n := 0
	for _, c := range p.selection {
		if isVowel(c) {
			n++
		}
	}
	return n
}

func (p *Pool) NumConsonants() int {
	return len(p.selection) - p.NumVowels()
}

func (p *Pool) CanAddVowel() bool {
	return len(p.selection) < SelectionSize && p.NumVowels() < MaxVowels && len(p.vowels) > 0
}

func (p *Pool) CanAddConsonant() bool {
	return len(p.selection) < SelectionSize && p.NumConsonants() < MaxConsonants &&
		len(p.consonants) > 0
}

// TakeVowel draws the top vowel. It does nothing once the selection can't
// take another vowel.
func (p *Pool) TakeVowel() bool {
	if !p.CanAddVowel() {
		return false
	}
	p.selection = append(p.selection, p.vowels[0])
	p.vowels = p.vowels[1:]
	return true
}

func (p *Pool) TakeConsonant() bool {
	if !p.CanAddConsonant() {
		return false
	}
	p.selection = append(p.selection, p.consonants[0])
	p.consonants = p.consonants[1:]
	return true
}

// Pick draws a fresh selection of v vowels and c consonants and shuffles it.
func Pick(rng *rand.Rand, v, c int) (*Pool, error) {
	if v < MinVowels || v > MaxVowels || c < MinConsonants || c > MaxConsonants ||
		v+c != SelectionSize {
		return nil, ErrBadPick
	}
	p := NewPool(rng)
	for range v {
		p.TakeVowel()
	}
	for range c {
		p.TakeConsonant()
	}
	p.Shuffle()
	return p, nil
}

// Set builds a selection from the letters of word, in order, skipping
// anything the piles can't supply and stopping at nine letters.
func Set(rng *rand.Rand, word string) *Pool {
	p := NewPool(rng)
	word = strings.ToUpper(word)
	for i := 0; i < len(word) && len(p.selection) < SelectionSize; i++ {
		c := word[i]
		if isVowel(c) {
			if idx := indexOf(p.vowels, c); idx >= 0 {
				p.vowels = append(p.vowels[:idx], p.vowels[idx+1:]...)
				p.selection = append(p.selection, c)
			}
		} else if idx := indexOf(p.consonants, c); idx >= 0 {
			p.consonants = append(p.consonants[:idx], p.consonants[idx+1:]...)
			p.selection = append(p.selection, c)
		}
	}
	return p
}

func indexOf(bts []byte, c byte) int {
	for i, b := range bts {
		if b == c {
			return i
		}
	}
	return -1
}

func (p *Pool) Shuffle() {
	p.shuffle(p.selection)
}

// CanSubmit is true for a full selection with at least three vowels and four
// consonants.
func (p *Pool) CanSubmit() bool {
	return len(p.selection) == SelectionSize && p.NumVowels() >= MinVowels &&
		p.NumConsonants() >= MinConsonants
}

func (p *Pool) Letters() string {
	return string(p.selection)
}

func (p *Pool) Remaining() (vowels, consonants int) {
	return len(p.vowels), len(p.consonants)
}
