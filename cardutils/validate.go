package cardutils

import (
	"unicode/utf8"

	"github.com/alovak/cardform/scheme"
	"golang.org/x/exp/slices"
)

// IsValid reports whether the card number passes the Luhn check. Any
// character other than an ASCII digit makes the number invalid. An empty
// string sums to zero and is therefore valid.
func IsValid(cardNumber string) bool {
	sum := 0
	for i, pos := len(cardNumber)-1, 0; i >= 0; i, pos = i-1, pos+1 {
		c := cardNumber[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		switch {
		case pos%2 == 0:
			sum += d
		case d == 9:
			sum += 9
		default:
			sum += (d * 2) % 9
		}
	}
	return sum%10 == 0
}

// IsValidCVV reports whether cvv has one of the lengths accepted by s. The
// content of cvv is not checked.
func (u *Utils) IsValidCVV(cvv string, s scheme.Scheme) bool {
	m, ok := u.schemes.Lookup(s)
	if !ok {
		return false
	}
	return slices.Contains(m.CVVLengths, utf8.RuneCountInString(cvv))
}
