package cardutils

import (
	"strings"

	"github.com/alovak/cardform/scheme"
	"golang.org/x/exp/slices"
)

// Format inserts a space at every card gap of s that falls inside the number.
// The number is expected to hold digits only. Gaps are applied from the
// largest offset down so earlier insertions never shift the remaining ones.
func (u *Utils) Format(cardNumber string, s scheme.Scheme) string {
	m, ok := u.schemes.Lookup(s)
	if !ok || len(m.CardGaps) == 0 {
		return cardNumber
	}

	gaps := m.CardGaps
	slices.Sort(gaps)

	runes := []rune(cardNumber)
	for i := len(gaps) - 1; i >= 0; i-- {
		gap := gaps[i]
		if gap >= len(runes) {
			continue
		}
		runes = append(runes[:gap], append([]rune{' '}, runes[gap:]...)...)
	}
	return string(runes)
}

// RemoveNonDigits keeps only the ASCII digits of s, in order.
func RemoveNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
