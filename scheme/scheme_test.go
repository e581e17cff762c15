package scheme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alovak/cardform/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    scheme.Scheme
		wantErr bool
	}{
		{name: "canonical name", in: "visa", want: scheme.Visa},
		{name: "mixed case and spaces", in: "  MasterCard ", want: scheme.Mastercard},
		{name: "amex alias", in: "amex", want: scheme.AmericanExpress},
		{name: "diners alias", in: "diners", want: scheme.DinersClub},
		{name: "unknown is a member of the set", in: "unknown", want: scheme.Unknown},
		{name: "outside the set", in: "troy", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheme.Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, scheme.ErrUnknownScheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range scheme.All() {
		parsed, err := scheme.Parse(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}
	require.Equal(t, "scheme(42)", scheme.Scheme(42).String())
}

func TestDefaultTable(t *testing.T) {
	table := scheme.Default()

	require.Equal(t, len(scheme.All()), table.Len())

	// Enumeration order of the default table follows the declaration order.
	for i, m := range table.All() {
		require.Equal(t, scheme.Scheme(i), m.Scheme)
	}

	unknown, ok := table.Lookup(scheme.Unknown)
	require.True(t, ok)
	require.False(t, unknown.Detectable())

	amex, ok := table.Lookup(scheme.AmericanExpress)
	require.True(t, ok)
	require.Equal(t, []int{4, 10}, amex.CardGaps)
	require.Equal(t, []int{4}, amex.CVVLengths)
}

func TestTable_IsImmutable(t *testing.T) {
	table := scheme.Default()

	visa, _ := table.Lookup(scheme.Visa)
	visa.CardGaps[0] = 99
	visa.CVVLengths = append(visa.CVVLengths, 7)

	again, _ := table.Lookup(scheme.Visa)
	require.Equal(t, []int{4, 8, 12}, again.CardGaps)
	require.Equal(t, []int{3}, again.CVVLengths)

	gaps := []int{4, 8}
	custom, err := scheme.NewTable(scheme.Metadata{Scheme: scheme.Visa, CardGaps: gaps})
	require.NoError(t, err)
	gaps[0] = 1
	m, _ := custom.Lookup(scheme.Visa)
	require.Equal(t, []int{4, 8}, m.CardGaps)
}

func TestNewTable_Rejects(t *testing.T) {
	_, err := scheme.NewTable(
		scheme.Metadata{Scheme: scheme.Visa},
		scheme.Metadata{Scheme: scheme.Visa},
	)
	require.ErrorIs(t, err, scheme.ErrInvalidTable)

	_, err = scheme.NewTable(scheme.Metadata{Scheme: scheme.Visa, CardGaps: []int{-1}})
	require.ErrorIs(t, err, scheme.ErrInvalidTable)

	_, err = scheme.NewTable(scheme.Metadata{Scheme: scheme.Visa, CVVLengths: []int{0}})
	require.ErrorIs(t, err, scheme.ErrInvalidTable)
}

func TestTable_Match(t *testing.T) {
	table := scheme.Default()

	tests := []struct {
		number string
		want   scheme.Scheme
	}{
		{"4242424242424242", scheme.Visa},
		{"4222222222222", scheme.Visa},
		{"5555555555554444", scheme.Mastercard},
		{"2223003122003222", scheme.Mastercard},
		{"378282246310005", scheme.AmericanExpress},
		{"6011111111111117", scheme.Discover},
		{"36227206271667", scheme.DinersClub},
		{"3566002020360505", scheme.JCB},
		{"6759649826438453", scheme.Maestro},
		// mada BIN that also looks like Visa: earlier entry wins
		{"4464040000000007", scheme.Mada},
	}
	for _, tt := range tests {
		got, ok := table.Match(tt.number)
		require.True(t, ok, tt.number)
		require.Equal(t, tt.want, got, tt.number)
	}

	// Patterns match the whole number, not a prefix or a substring.
	for _, number := range []string{"42424242424242421", "x4242424242424242", "4242 4242 4242 4242", ""} {
		_, ok := table.Match(number)
		require.False(t, ok, number)
	}
}

func TestParseTable(t *testing.T) {
	doc := []byte(`
schemes:
  - name: jcb
    card_gaps: [4, 8, 12]
    cvv_lengths: [3]
    full_card_number_pattern: '35\d{14}'
  - name: visa
    card_gaps: [4, 8, 12]
    cvv_lengths: [3]
    full_card_number_pattern: '4\d{15}'
  - name: unknown
    card_gaps: []
    cvv_lengths: [3, 4]
`)

	table, err := scheme.ParseTable(doc)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	all := table.All()
	require.Equal(t, scheme.JCB, all[0].Scheme)
	require.Equal(t, scheme.Visa, all[1].Scheme)
	require.False(t, all[2].Detectable())

	got, ok := table.Match("4242424242424242")
	require.True(t, ok)
	require.Equal(t, scheme.Visa, got)

	// anchored even though the file pattern is not
	_, ok = table.Match("42424242424242420000")
	require.False(t, ok)

	_, ok = table.Lookup(scheme.Mastercard)
	require.False(t, ok)
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{name: "not yaml", doc: "schemes: [", err: scheme.ErrInvalidTable},
		{name: "empty", doc: "schemes: []", err: scheme.ErrInvalidTable},
		{name: "unknown scheme", doc: "schemes:\n  - name: troy\n", err: scheme.ErrUnknownScheme},
		{name: "bad pattern", doc: "schemes:\n  - name: visa\n    full_card_number_pattern: '4(\\d'\n", err: scheme.ErrInvalidTable},
		{name: "duplicate", doc: "schemes:\n  - name: visa\n  - name: visa\n", err: scheme.ErrInvalidTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheme.ParseTable([]byte(tt.doc))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schemes:\n  - name: amex\n    card_gaps: [4, 10]\n    cvv_lengths: [4]\n"), 0o600))

	table, err := scheme.LoadFile(path)
	require.NoError(t, err)
	m, ok := table.Lookup(scheme.AmericanExpress)
	require.True(t, ok)
	require.Equal(t, []int{4}, m.CVVLengths)

	_, err = scheme.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
