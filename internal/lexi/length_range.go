package lexi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadRange = errors.New("bad length range")

// LengthRange is an inclusive range of word lengths.
type LengthRange struct {
	Min int
	Max int
}

func NewLengthRange(min, max int) (LengthRange, error) {
	if min < 0 || min > max {
		return LengthRange{}, fmt.Errorf("%w: %d-%d", ErrBadRange, min, max)
	}
	return LengthRange{Min: min, Max: max}, nil
}

// ParseLengthRange accepts either "N" (exactly N) or "N-M".
func ParseLengthRange(s string) (LengthRange, error) {
	s = strings.TrimSpace(s)
	lo, hi, found := strings.Cut(s, "-")
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return LengthRange{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	if !found {
		return NewLengthRange(min, min)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return LengthRange{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	return NewLengthRange(min, max)
}

func (r LengthRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r LengthRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
