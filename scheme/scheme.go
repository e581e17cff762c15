// Package scheme describes card networks and the metadata the card helpers
// need for them: where to put gaps when formatting, which CVV lengths are
// accepted and how to recognise a complete card number.
package scheme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownScheme = errors.New("unknown scheme")

// Scheme is a card network. The set is closed; the declaration order is the
// enumeration order of the default table.
type Scheme int

const (
	Unknown Scheme = iota
	Mada
	Visa
	Mastercard
	Maestro
	AmericanExpress
	Discover
	DinersClub
	JCB
)

var names = [...]string{
	Unknown:         "unknown",
	Mada:            "mada",
	Visa:            "visa",
	Mastercard:      "mastercard",
	Maestro:         "maestro",
	AmericanExpress: "american_express",
	Discover:        "discover",
	DinersClub:      "diners_club",
	JCB:             "jcb",
}

// All returns every scheme in enumeration order.
func All() []Scheme {
	all := make([]Scheme, len(names))
	for i := range names {
		all[i] = Scheme(i)
	}
	return all
}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("scheme(%d)", int(s))
	}
	return names[s]
}

// Parse returns the scheme with the given name. Matching ignores case and
// surrounding whitespace; "amex" and "diners" are accepted as aliases.
func Parse(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "amex":
		return AmericanExpress, nil
	case "diners":
		return DinersClub, nil
	}
	for i, candidate := range names {
		if candidate == n {
			return Scheme(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
