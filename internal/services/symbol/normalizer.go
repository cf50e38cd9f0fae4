// Package symbol normalizes user-supplied tickers to the exchange-qualified
// form expected by the data provider.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// NSESuffix is the provider's qualifier for National Stock Exchange listings.
const NSESuffix = ".NS"

var (
	ErrEmptySymbol         = errors.New("empty symbol")
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrUnsupportedExchange = errors.New("unsupported exchange suffix")
)

// Normalize maps a bare ticker or exchange-suffixed identifier to its
// canonical NSE-qualified form. "RELIANCE", "reliance" and "RELIANCE.NS"
// all yield "RELIANCE.NS". Normalization is idempotent.
func Normalize(input string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return "", ErrEmptySymbol
	}

	ticker := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		ticker = s[:i]
		switch suffix := s[i:]; suffix {
		case NSESuffix, ".NSE":
			// canonical or alias
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedExchange, suffix)
		}
	}

	if ticker == "" || !validTicker(ticker) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, input)
	}

	return ticker + NSESuffix, nil
}

// validTicker accepts the characters NSE uses in trading symbols.
func validTicker(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '&':
		default:
			return false
		}
	}
	return true
}
