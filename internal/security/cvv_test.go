package security

import (
	"testing"

	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/scheme"
	"github.com/stretchr/testify/require"
)

func TestDemoProvider(t *testing.T) {
	_, err := NewDemoProvider(nil)
	require.ErrorIs(t, err, ErrKeyMissing)

	p, err := NewDemoProvider([]byte("demo-key"))
	require.NoError(t, err)

	cvv, err := p.ComputeCVV("4242424242424242", "3105", 3)
	require.NoError(t, err)
	require.Len(t, cvv, 3)

	again, err := p.ComputeCVV("4242424242424242", "3105", 3)
	require.NoError(t, err)
	require.Equal(t, cvv, again)

	amex, err := p.ComputeCVV("378282246310005", "3105", 4)
	require.NoError(t, err)
	require.Len(t, amex, 4)

	_, err = p.ComputeCVV("4242424242424242", "3105", 5)
	require.Error(t, err)
	_, err = p.ComputeCVV("4242-4242", "3105", 3)
	require.Error(t, err)
	_, err = p.ComputeCVV("4242424242424242", "05/31", 3)
	require.Error(t, err)
}

func TestWidth_MatchesFormValidation(t *testing.T) {
	p, err := NewDemoProvider([]byte("demo-key"))
	require.NoError(t, err)

	for _, s := range scheme.All() {
		width, err := Width(scheme.Default(), s)
		require.NoError(t, err)

		cvv, err := p.ComputeCVV("4242424242424242", "3105", width)
		require.NoError(t, err)
		require.True(t, cardutils.IsValidCVV(cvv, s), "cvv %q for %s", cvv, s)
	}

	require.Equal(t, 4, mustWidth(t, scheme.AmericanExpress))
	require.Equal(t, 3, mustWidth(t, scheme.Visa))
}

func mustWidth(t *testing.T, s scheme.Scheme) int {
	t.Helper()
	w, err := Width(scheme.Default(), s)
	require.NoError(t, err)
	return w
}
