// Package cardgen produces Luhn-valid test card numbers and the masked or
// hashed forms of a PAN that are safe to log.
package cardgen

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/scheme"
)

var ErrUnsupportedScheme = errors.New("no test range for scheme")

const (
	minPANLen = 12
	maxPANLen = 19
)

type testRange struct {
	prefix string
	length int
}

// testRanges are prefixes that the default scheme table detects.
var testRanges = map[scheme.Scheme]testRange{
	scheme.Mada:            {"446404", 16},
	scheme.Visa:            {"4242", 16},
	scheme.Mastercard:      {"5105", 16},
	scheme.Maestro:         {"6759", 16},
	scheme.AmericanExpress: {"3782", 15},
	scheme.Discover:        {"6011", 16},
	scheme.DinersClub:      {"3622", 14},
	scheme.JCB:             {"3530", 16},
}

// Generate returns a random number of the given length that starts with
// prefix and ends with a Luhn check digit.
func Generate(prefix string, length int) (string, error) {
	if !IsDigits(prefix) {
		return "", fmt.Errorf("prefix must contain digits only")
	}
	if length < minPANLen || length > maxPANLen {
		return "", fmt.Errorf("length must be %d..%d (got %d)", minPANLen, maxPANLen, length)
	}
	fill := length - 1 - len(prefix)
	if fill < 0 {
		return "", fmt.Errorf("prefix too long for length %d: %s", length, prefix)
	}

	digits, err := randomDigits(fill)
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	body := prefix + digits
	return body + LuhnCheckDigit(body), nil
}

// ForScheme generates a Luhn-valid test number that the default table
// detects as s.
func ForScheme(s scheme.Scheme) (string, error) {
	r, ok := testRanges[s]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
	return Generate(r.prefix, r.length)
}

// randomDigits uses rejection sampling so every digit is equally likely.
func randomDigits(count int) (string, error) {
	if count <= 0 {
		return "", nil
	}
	const threshold = 250 // 256 - (256 % 10)
	var sb strings.Builder
	sb.Grow(count)
	buf := make([]byte, 64)
	for sb.Len() < count {
		n, err := rand.Read(buf)
		if err != nil {
			return "", err
		}
		for i := 0; i < n && sb.Len() < count; i++ {
			if b := buf[i]; b < threshold {
				sb.WriteByte('0' + (b % 10))
			}
		}
	}
	return sb.String(), nil
}

// LuhnCheckDigit returns the digit that makes body+digit pass the Luhn check.
func LuhnCheckDigit(body string) string {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	cd := (10 - (sum % 10)) % 10
	return string('0' + byte(cd))
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskPAN keeps the first six and last four digits of a PAN. Short numbers
// keep at most the last four.
func MaskPAN(pan string) string {
	cleaned := cardutils.RemoveNonDigits(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}

// Fingerprint is a keyed HMAC-SHA256 of the PAN digits, hex encoded. It lets
// callers recognise a card again without keeping the number.
func Fingerprint(pan string, key []byte) string {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(cardutils.RemoveNonDigits(pan)))
	return hex.EncodeToString(h.Sum(nil))
}
