package dbmaker

import (
	"github.com/domino14/lexi_server/internal/lexi"
)

// MakeAlphagram returns the letters of word in alphabetical order, lower
// case, with anything that isn't a letter removed.
func MakeAlphagram(word string) string {
	return lexi.FromWord(word).String()
}
