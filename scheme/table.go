package scheme

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/exp/slices"
)

var ErrInvalidTable = errors.New("invalid scheme table")

// Metadata is the per-scheme configuration read by the card helpers.
type Metadata struct {
	Scheme Scheme
	// CardGaps are 0-based digit offsets where a separator goes when formatting.
	CardGaps []int
	// CVVLengths are the accepted CVV lengths.
	CVVLengths []int
	// FullCardNumberPattern matches a complete digit-only card number. Nil
	// means the scheme is never auto-detected.
	FullCardNumberPattern *regexp.Regexp
}

func (m Metadata) clone() Metadata {
	m.CardGaps = slices.Clone(m.CardGaps)
	m.CVVLengths = slices.Clone(m.CVVLengths)
	return m
}

// Detectable reports whether the scheme carries a detection pattern.
func (m Metadata) Detectable() bool {
	return m.FullCardNumberPattern != nil
}

// Table is an ordered, immutable set of scheme metadata. The order of the
// entries is the order in which detection tries them.
type Table struct {
	entries []Metadata
	index   map[Scheme]int
}

// NewTable builds a table from entries, keeping their order.
func NewTable(entries ...Metadata) (*Table, error) {
	t := &Table{
		entries: make([]Metadata, 0, len(entries)),
		index:   make(map[Scheme]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.index[e.Scheme]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %s", ErrInvalidTable, e.Scheme)
		}
		for _, gap := range e.CardGaps {
			if gap < 0 {
				return nil, fmt.Errorf("%w: %s: negative card gap %d", ErrInvalidTable, e.Scheme, gap)
			}
		}
		for _, l := range e.CVVLengths {
			if l <= 0 {
				return nil, fmt.Errorf("%w: %s: cvv length must be positive, got %d", ErrInvalidTable, e.Scheme, l)
			}
		}
		t.index[e.Scheme] = len(t.entries)
		t.entries = append(t.entries, e.clone())
	}
	return t, nil
}

// Lookup returns the metadata for s.
func (t *Table) Lookup(s Scheme) (Metadata, bool) {
	i, ok := t.index[s]
	if !ok {
		return Metadata{}, false
	}
	return t.entries[i].clone(), true
}

// All returns the entries in enumeration order.
func (t *Table) All() []Metadata {
	out := make([]Metadata, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}
	return out
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Match returns the first scheme whose pattern matches the whole number.
func (t *Table) Match(number string) (Scheme, bool) {
	for _, e := range t.entries {
		if e.FullCardNumberPattern == nil {
			continue
		}
		if e.FullCardNumberPattern.MatchString(number) {
			return e.Scheme, true
		}
	}
	return Unknown, false
}

// CompilePattern compiles a detection pattern so that it only matches a
// complete card number.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}

func mustCompilePattern(pattern string) *regexp.Regexp {
	re, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return re
}
