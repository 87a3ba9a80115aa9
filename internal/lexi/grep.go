package lexi

import (
	"regexp"
)

// Grep returns the words matching re, in lexicon order.
func (l *Lexicon) Grep(re *regexp.Regexp) []string {
	words := []string{}
	for e := range l.All() {
		if re.MatchString(e.Word) {
			words = append(words, e.Word)
		}
	}
	return words
}

// CompileGrep compiles a grep pattern, optionally ignoring case.
func CompileGrep(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}
