// Package cardutils holds the payment form helpers: card number formatting
// and validation, expiration date normalisation, CVV checks and scheme
// detection. Every function is pure and safe for concurrent use.
package cardutils

import (
	"github.com/alovak/cardform/scheme"
)

// Utils binds the helpers to a scheme table.
type Utils struct {
	schemes *scheme.Table
}

// New returns helpers backed by t, or by the default table when t is nil.
func New(t *scheme.Table) *Utils {
	if t == nil {
		t = scheme.Default()
	}
	return &Utils{schemes: t}
}

var defaultUtils = New(nil)

func (u *Utils) Schemes() *scheme.Table {
	return u.schemes
}

// Format formats the card number with the default table, e.g. a Visa number
// becomes "4242 4242 4242 4242".
func Format(cardNumber string, s scheme.Scheme) string {
	return defaultUtils.Format(cardNumber, s)
}

// IsValidCVV checks cvv against the CVV lengths of s in the default table.
func IsValidCVV(cvv string, s scheme.Scheme) bool {
	return defaultUtils.IsValidCVV(cvv, s)
}

// TypeOf detects the scheme of a digit-only card number with the default table.
func TypeOf(cardNumber string) (scheme.Scheme, bool) {
	return defaultUtils.TypeOf(cardNumber)
}

// Describe inspects raw user input with the default table.
func Describe(raw string) Card {
	return defaultUtils.Describe(raw)
}
