package lexi

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Check is a single predicate on a lexicon entry.
type Check interface {
	Matches(e *Entry) bool
	String() string
}

type SingleWordCheck struct {
	Want bool
}

func (c SingleWordCheck) Matches(e *Entry) bool { return e.SingleWord == c.Want }
func (c SingleWordCheck) String() string        { return fmt.Sprintf("single-word=%v", c.Want) }

type LengthCheck struct {
	Range LengthRange
}

func (c LengthCheck) Matches(e *Entry) bool { return c.Range.Contains(e.Len) }
func (c LengthCheck) String() string        { return "length=" + c.Range.String() }

// ExcludeLettersCheck rejects entries that use any of the masked letters.
type ExcludeLettersCheck struct {
	Mask LetterMask
}

func (c ExcludeLettersCheck) Matches(e *Entry) bool { return e.Mask&c.Mask == 0 }
func (c ExcludeLettersCheck) String() string        { return "exclude=" + c.Mask.String() }

// IncludeLettersCheck requires every masked letter to appear at least once.
type IncludeLettersCheck struct {
	Mask LetterMask
}

func (c IncludeLettersCheck) Matches(e *Entry) bool { return e.Mask&c.Mask == c.Mask }
func (c IncludeLettersCheck) String() string        { return "include=" + c.Mask.String() }

// ContainsCheck accepts entries whose letters are a superset of Letters.
type ContainsCheck struct {
	Letters SortedLetters
}

func (c ContainsCheck) Matches(e *Entry) bool { return e.Letters.IsSuperset(c.Letters) }
func (c ContainsCheck) String() string        { return "contains=" + c.Letters.String() }

// ContainedCheck accepts entries that can be spelled from Letters.
type ContainedCheck struct {
	Letters SortedLetters
}

func (c ContainedCheck) Matches(e *Entry) bool { return e.Letters.IsSubset(c.Letters) }
func (c ContainedCheck) String() string        { return "contained=" + c.Letters.String() }

// Filter is a conjunction of checks, evaluated in the order they were added.
type Filter struct {
	checks []Check
}

// Matches reports whether e passes every check. An empty filter matches
// everything.
func (f *Filter) Matches(e *Entry) bool {
	if f == nil {
		return true
	}
	for _, c := range f.checks {
		if !c.Matches(e) {
			return false
		}
	}
	return true
}

func (f *Filter) IsEmpty() bool {
	return f == nil || len(f.checks) == 0
}

func (f *Filter) Checks() []Check {
	if f == nil {
		return nil
	}
	return f.checks
}

func (f *Filter) String() string {
	if f.IsEmpty() {
		return "<all>"
	}
	parts := make([]string, len(f.checks))
	for i, c := range f.checks {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}

// FilterBuilder accumulates checks from loosely-typed user input. Inputs that
// are empty or can't be parsed are dropped rather than reported; callers that
// need strict validation should parse with ParseLengthRange or
// ParseLetterMask first.
type FilterBuilder struct {
	checks []Check
}

func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Add appends an already-built check.
func (b *FilterBuilder) Add(c Check) *FilterBuilder {
	if c != nil {
		b.checks = append(b.checks, c)
	}
	return b
}

func (b *FilterBuilder) SingleWord(want *bool) *FilterBuilder {
	if want == nil {
		return b
	}
	return b.Add(SingleWordCheck{Want: *want})
}

func (b *FilterBuilder) Length(s string) *FilterBuilder {
	if s == "" {
		return b
	}
	r, err := ParseLengthRange(s)
	if err != nil {
		log.Debug().Err(err).Str("length", s).Msg("dropped-length-constraint")
		return b
	}
	return b.Add(LengthCheck{Range: r})
}

func (b *FilterBuilder) Exclude(s string) *FilterBuilder {
	m, ok := b.mask("exclude", s)
	if !ok {
		return b
	}
	return b.Add(ExcludeLettersCheck{Mask: m})
}

func (b *FilterBuilder) Include(s string) *FilterBuilder {
	m, ok := b.mask("include", s)
	if !ok {
		return b
	}
	return b.Add(IncludeLettersCheck{Mask: m})
}

func (b *FilterBuilder) Contains(s string) *FilterBuilder {
	letters, ok := b.letters("contains", s)
	if !ok {
		return b
	}
	return b.Add(ContainsCheck{Letters: letters})
}

func (b *FilterBuilder) Contained(s string) *FilterBuilder {
	letters, ok := b.letters("contained", s)
	if !ok {
		return b
	}
	return b.Add(ContainedCheck{Letters: letters})
}

func (b *FilterBuilder) mask(kind, s string) (LetterMask, bool) {
	if s == "" {
		return 0, false
	}
	m, ok := ParseLetterMask(s)
	if !ok {
		log.Debug().Str(kind, s).Msg("dropped-mask-constraint")
	}
	return m, ok
}

func (b *FilterBuilder) letters(kind, s string) (SortedLetters, bool) {
	if s == "" {
		return SortedLetters{}, false
	}
	letters := FromWord(s)
	if letters.IsEmpty() {
		log.Debug().Str(kind, s).Msg("dropped-letters-constraint")
		return letters, false
	}
	return letters, true
}

func (b *FilterBuilder) Build() *Filter {
	checks := make([]Check, len(b.checks))
	copy(checks, b.checks)
	return &Filter{checks: checks}
}
