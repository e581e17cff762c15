// Package expiry interprets the month and year produced by
// cardutils.Standardize as a card expiry month.
package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidDate = errors.New("invalid expiration date")

var defaultLoc = time.UTC

// SetDefaultExpiryLocation sets the location used when none is given (fallback UTC).
func SetDefaultExpiryLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// Date is the month a card expires in. A card stays valid until the end of it.
type Date struct {
	Year  int
	Month time.Month
}

// Parse accepts a two digit month and a two or four digit year. Two digit
// years are in the 2000s.
func Parse(month, year string) (Date, error) {
	if len(month) != 2 || !isDigits(month) {
		return Date{}, fmt.Errorf("%w: month must be 2 digits, got %q", ErrInvalidDate, month)
	}
	mm, _ := strconv.Atoi(month)
	if mm < 1 || mm > 12 {
		return Date{}, fmt.Errorf("%w: month must be 01..12, got %s", ErrInvalidDate, month)
	}
	if !isDigits(year) {
		return Date{}, fmt.Errorf("%w: year must be digits, got %q", ErrInvalidDate, year)
	}
	yy, _ := strconv.Atoi(year)
	switch len(year) {
	case 2:
		yy += 2000
	case 4:
	default:
		return Date{}, fmt.Errorf("%w: year must be 2 or 4 digits, got %q", ErrInvalidDate, year)
	}
	return Date{Year: yy, Month: time.Month(mm)}, nil
}

// EndOfMonth is the last instant of the expiry month in loc.
func (d Date) EndOfMonth(loc *time.Location) time.Time {
	if loc == nil {
		loc = defaultLoc
	}
	firstNext := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond)
}

// IsExpired reports whether at is strictly after the end of the expiry month.
func (d Date) IsExpired(at time.Time, loc *time.Location) bool {
	end := d.EndOfMonth(loc)
	return at.In(end.Location()).After(end)
}

// YYMM renders the date as ISO 8583 field 14 expects it.
func (d Date) YYMM() string {
	return fmt.Sprintf("%02d%02d", d.Year%100, int(d.Month))
}

// CardFace renders the date as printed on a card, MM/YY.
func (d Date) CardFace() string {
	return fmt.Sprintf("%02d/%02d", int(d.Month), d.Year%100)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
