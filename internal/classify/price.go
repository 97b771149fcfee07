// =============================================================================
// EDIWIN Order Extractor - Numeric Field Normalization
// =============================================================================
//
// Price and quantity tokens arrive in Spanish locale conventions. Each vendor
// grammar has its own normalization rule:
//
//   - Eurofiel prints short prices ("50", "27,50"): the decimal comma is
//     converted to a dot; dots never appear as thousands separators.
//   - ECI prints long prices ("7.102,00", "53,000"): thousands-separator
//     dots are stripped, then the decimal comma is converted to a dot.
//
// Both rules are idempotent after the first application: a value already in
// dot-decimal form passes through unchanged.
//
// =============================================================================

package classify

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceFormat selects the locale-normalization rule of a vendor grammar.
type PriceFormat int

const (
	// PriceCommaDecimal converts a decimal comma to a dot and leaves dots
	// alone (Eurofiel).
	PriceCommaDecimal PriceFormat = iota

	// PriceDotThousands strips thousands-separator dots and then converts
	// the decimal comma to a dot (ECI).
	PriceDotThousands
)

// NormalizePrice rewrites a price token into dot-decimal form according to
// the grammar's locale rule. A value without a decimal comma is considered
// already normalized and is returned unchanged, which keeps the function
// idempotent (a second pass over "53.000" must not strip its decimals).
func NormalizePrice(s string, format PriceFormat) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ",") {
		return s
	}
	if format == PriceDotThousands {
		s = strings.ReplaceAll(s, ".", "")
	}
	return strings.ReplaceAll(s, ",", ".")
}

// ParsePrice converts a normalized price into a decimal value. Returns nil
// when the text is empty or malformed; per the error taxonomy the caller
// keeps the record with a blank price.
func ParsePrice(normalized string) *decimal.Decimal {
	if normalized == "" {
		return nil
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil
	}
	return &d
}

// ParseQuantity converts a quantity token into a non-negative integer.
// Returns nil when the token is not a bare non-negative integer.
func ParseQuantity(tok string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
