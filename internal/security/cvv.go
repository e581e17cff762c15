// Package security computes demo card verification values for generated test
// cards. The values only need the right shape to pass form validation; they
// are not real CVV2 codes.
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/alovak/cardform/internal/cardgen"
	"github.com/alovak/cardform/scheme"
	"golang.org/x/exp/slices"
)

var ErrKeyMissing = errors.New("demo CVV key not set")

// CVVProvider computes a CVV for a PAN and an expiry in YYMM form.
type CVVProvider interface {
	ComputeCVV(pan, expiryYYMM string, width int) (string, error)
}

type DemoProvider struct {
	key []byte
}

func NewDemoProvider(key []byte) (*DemoProvider, error) {
	if len(key) == 0 {
		return nil, ErrKeyMissing
	}
	return &DemoProvider{key: slices.Clone(key)}, nil
}

// ComputeCVV derives width decimal digits from an HMAC-SHA256 of the PAN
// without its check digit and the expiry.
func (p *DemoProvider) ComputeCVV(pan, expiryYYMM string, width int) (string, error) {
	if width < 3 || width > 4 {
		return "", fmt.Errorf("cvv width must be 3 or 4, got %d", width)
	}
	if len(pan) < 2 || !cardgen.IsDigits(pan) {
		return "", fmt.Errorf("pan must be digits")
	}
	if len(expiryYYMM) != 4 || !cardgen.IsDigits(expiryYYMM) {
		return "", fmt.Errorf("expiry must be YYMM, got %q", expiryYYMM)
	}

	return truncatedDecimal(p.key, []byte(pan[:len(pan)-1]+"|"+expiryYYMM), width), nil
}

// Width picks the CVV length for a scheme: the longest one its metadata allows.
func Width(t *scheme.Table, s scheme.Scheme) (int, error) {
	m, ok := t.Lookup(s)
	if !ok || len(m.CVVLengths) == 0 {
		return 0, fmt.Errorf("no cvv lengths for %s", s)
	}
	return slices.Max(m.CVVLengths), nil
}

// truncatedDecimal is RFC 4226 dynamic truncation rendered as width digits.
func truncatedDecimal(key, msg []byte, width int) string {
	h := hmac.New(sha256.New, key)
	h.Write(msg)
	sum := h.Sum(nil)

	off := sum[len(sum)-1] & 0x0f
	code := (uint32(sum[off])&0x7f)<<24 |
		uint32(sum[off+1])<<16 |
		uint32(sum[off+2])<<8 |
		uint32(sum[off+3])

	if width == 4 {
		return fmt.Sprintf("%04d", code%10000)
	}
	return fmt.Sprintf("%03d", code%1000)
}
