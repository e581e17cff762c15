package cardutils

import (
	"github.com/alovak/cardform/scheme"
)

// TypeOf returns the first scheme, in table order, whose pattern matches the
// whole card number. The number must not contain spaces.
func (u *Utils) TypeOf(cardNumber string) (scheme.Scheme, bool) {
	return u.schemes.Match(cardNumber)
}

// Card is what the form knows about a number typed by the user.
type Card struct {
	Number    string        `json:"number"`
	Formatted string        `json:"formatted"`
	Scheme    scheme.Scheme `json:"scheme"`
	Detected  bool          `json:"detected"`
	Valid     bool          `json:"valid"`
}

// Describe strips raw down to its digits, detects the scheme and formats the
// number with it. Undetected numbers are formatted as scheme.Unknown.
func (u *Utils) Describe(raw string) Card {
	number := RemoveNonDigits(raw)
	s, detected := u.TypeOf(number)
	return Card{
		Number:    number,
		Formatted: u.Format(number, s),
		Scheme:    s,
		Detected:  detected,
		Valid:     IsValid(number),
	}
}
