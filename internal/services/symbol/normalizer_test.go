package symbol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_BareAndQualifiedAgree(t *testing.T) {
	bare, err := Normalize("RELIANCE")
	require.NoError(t, err)

	qualified, err := Normalize("RELIANCE.NS")
	require.NoError(t, err)

	assert.Equal(t, "RELIANCE.NS", bare)
	assert.Equal(t, bare, qualified)
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := Normalize("tcs")
	require.NoError(t, err)

	second, err := Normalize(first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"RELIANCE", "RELIANCE.NS"},
		{"reliance", "RELIANCE.NS"},
		{"  INFY  ", "INFY.NS"},
		{"hdfcbank.ns", "HDFCBANK.NS"},
		{"TCS.NSE", "TCS.NS"},
		{"M&M", "M&M.NS"},
		{"BAJAJ-AUTO", "BAJAJ-AUTO.NS"},
	}

	for _, tc := range cases {
		got, err := Normalize(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestNormalize_Errors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"", ErrEmptySymbol},
		{"   ", ErrEmptySymbol},
		{"RELIANCE.BO", ErrUnsupportedExchange},
		{"AAPL.US", ErrUnsupportedExchange},
		{".NS", ErrInvalidSymbol},
		{"REL IANCE", ErrInvalidSymbol},
		{"TCS?", ErrInvalidSymbol},
	}

	for _, tc := range cases {
		_, err := Normalize(tc.input)
		require.Error(t, err, "input %q", tc.input)
		assert.True(t, errors.Is(err, tc.want), "input %q: got %v, want %v", tc.input, err, tc.want)
	}
}
