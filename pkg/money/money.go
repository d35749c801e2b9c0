// Package money holds the price parsing and rounding rules shared by every
// page model. All price arithmetic goes through decimal values; the two-place
// half-up rounding here must match what the storefront itself renders, so
// totals can be compared with exact equality.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// ExtractPrice pulls a non-negative decimal out of formatted currency text.
// Currency symbols, thousands separators and surrounding labels are stripped;
// anything left that is not a digit or a decimal point is discarded before
// parsing.
func ExtractPrice(text string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)

	if cleaned == "" {
		return decimal.Zero, xerrors.New(xerrors.CodeMalformedPrice, "no digits in price text").
			WithContext("raw", text)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, xerrors.Wrap(err, xerrors.CodeMalformedPrice, "price text did not parse").
			WithContext("raw", text)
	}
	if d.IsNegative() {
		return decimal.Zero, xerrors.New(xerrors.CodeMalformedPrice, "price is negative").
			WithContext("raw", text)
	}
	return d, nil
}

// Round2 rounds to two fractional digits, ties away from zero. Idempotent.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
