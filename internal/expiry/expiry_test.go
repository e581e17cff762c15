package expiry

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		month, year string
		want        Date
		ok          bool
	}{
		{"05", "20", Date{2020, time.May}, true},
		{"12", "2031", Date{2031, time.December}, true},
		{"01", "00", Date{2000, time.January}, true},
		{"00", "25", Date{}, false},
		{"13", "25", Date{}, false},
		{"5", "25", Date{}, false},
		{"05", "", Date{}, false},
		{"05", "202", Date{}, false},
		{"05", "2a", Date{}, false},
		{"", "", Date{}, false},
	}
	for _, c := range cases {
		got, err := Parse(c.month, c.year)
		if (err == nil) != c.ok {
			t.Fatalf("Parse(%q, %q) ok=%v got err=%v", c.month, c.year, c.ok, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("Parse(%q, %q) err=%v, want ErrInvalidDate", c.month, c.year, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q, %q) = %+v want %+v", c.month, c.year, got, c.want)
		}
	}
}

func TestFormats_Rollover(t *testing.T) {
	d := Date{Year: 2030, Month: time.December}
	if got := d.YYMM(); got != "3012" {
		t.Fatalf("YYMM got %s want %s", got, "3012")
	}
	if got := d.CardFace(); got != "12/30" {
		t.Fatalf("CardFace got %s want %s", got, "12/30")
	}

	d = Date{Year: 2101, Month: time.February}
	if got := d.YYMM(); got != "0102" {
		t.Fatalf("YYMM got %s want %s", got, "0102")
	}
	if got := d.CardFace(); got != "02/01" {
		t.Fatalf("CardFace got %s want %s", got, "02/01")
	}
}

func TestEndOfMonth(t *testing.T) {
	// 2030-02 (non-leap): expect 28th 23:59:59.999999999
	got := Date{2030, time.February}.EndOfMonth(time.UTC)
	want := time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got = Date{2028, time.February}.EndOfMonth(time.UTC)
	want = time.Date(2028, time.February, 29, 23, 59, 59, 999999999, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}

	got = Date{2030, time.December}.EndOfMonth(time.UTC)
	want = time.Date(2030, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEndOfMonth_Location(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := Date{2030, time.April}
	end := d.EndOfMonth(loc)
	if end.Location() != loc {
		t.Fatalf("location %v want %v", end.Location(), loc)
	}
	// 2030-04-30 20:00 UTC is already May in UTC+10
	at := time.Date(2030, time.April, 30, 20, 0, 0, 0, time.UTC)
	if !d.IsExpired(at, loc) {
		t.Fatalf("expected expired at %v in %v", at, loc)
	}
	if d.IsExpired(at, time.UTC) {
		t.Fatalf("expected not expired at %v in UTC", at)
	}
}

func TestIsExpired(t *testing.T) {
	d := Date{2030, time.February}
	end := d.EndOfMonth(time.UTC)
	if d.IsExpired(end.Add(-time.Nanosecond), time.UTC) {
		t.Fatalf("expected not expired before end")
	}
	// the end instant itself is still valid
	if d.IsExpired(end, time.UTC) {
		t.Fatalf("expected not expired at end")
	}
	if !d.IsExpired(end.Add(time.Nanosecond), time.UTC) {
		t.Fatalf("expected expired after %v", end)
	}
}
