package life

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat reports a rule string that is not of the form B.../S...
	ErrInvalidFormat = errors.New("invalid rule format")
	// ErrInvalidNumber reports a non-digit where a neighbour count was expected.
	ErrInvalidNumber = errors.New("invalid neighbour count")
)

// ParseError describes a rule string that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "life: parse rule " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// countSet is a membership bitmap over every uint8 value.
type countSet [4]uint64

func (s *countSet) add(n uint8)          { s[n>>6] |= 1 << (n & 63) }
func (s countSet) contains(n uint8) bool { return s[n>>6]&(1<<(n&63)) != 0 }

func (s countSet) values() []uint8 {
	var out []uint8
	for n := 0; n < 256; n++ {
		if s.contains(uint8(n)) {
			out = append(out, uint8(n))
		}
	}
	return out
}

// Rule decides which dead cells are born and which live cells survive,
// based on the number of live Moore neighbours. The zero value never births
// nor keeps anything alive.
type Rule struct {
	birth    countSet
	survival countSet
}

// NewRule builds a rule from birth and survival neighbour counts. Counts above
// eight are accepted but can never match.
func NewRule(birth, survival []uint8) Rule {
	var r Rule
	for _, n := range birth {
		r.birth.add(n)
	}
	for _, n := range survival {
		r.survival.add(n)
	}
	return r
}

// DefaultRule returns Conway's Life, B3/S23.
func DefaultRule() Rule {
	return NewRule([]uint8{3}, []uint8{2, 3})
}

// ParseRule parses the B<digits>/S<digits> notation, e.g. "B3/S23". Every
// character after the prefix letter is one neighbour count.
func ParseRule(text string) (Rule, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, &ParseError{Input: text, Err: ErrInvalidFormat}
	}
	birth, err := parseCounts(parts[0][1:])
	if err != nil {
		return Rule{}, &ParseError{Input: text, Err: err}
	}
	survival, err := parseCounts(parts[1][1:])
	if err != nil {
		return Rule{}, &ParseError{Input: text, Err: err}
	}
	return NewRule(birth, survival), nil
}

func parseCounts(digits string) ([]uint8, error) {
	counts := make([]uint8, 0, len(digits))
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return nil, ErrInvalidNumber
		}
		counts = append(counts, uint8(ch-'0'))
	}
	return counts, nil
}

// IsBorn reports whether a dead cell with n live neighbours becomes live.
func (r Rule) IsBorn(n uint8) bool { return r.birth.contains(n) }

// IsSurvivor reports whether a live cell with n live neighbours stays live.
func (r Rule) IsSurvivor(n uint8) bool { return r.survival.contains(n) }

// Birth returns the birth counts in ascending order.
func (r Rule) Birth() []uint8 { return r.birth.values() }

// Survival returns the survival counts in ascending order.
func (r Rule) Survival() []uint8 { return r.survival.values() }

// String renders the rule in B/S notation with counts sorted.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.birth.values() {
		b.WriteString(strconv.Itoa(int(n)))
	}
	b.WriteString("/S")
	for _, n := range r.survival.values() {
		b.WriteString(strconv.Itoa(int(n)))
	}
	return b.String()
}
