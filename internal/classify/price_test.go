package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		format   PriceFormat
		expected string
	}{
		{name: "eurofiel integer unchanged", value: "50", format: PriceCommaDecimal, expected: "50"},
		{name: "eurofiel comma to dot", value: "27,50", format: PriceCommaDecimal, expected: "27.50"},
		{name: "eurofiel already normalized", value: "27.50", format: PriceCommaDecimal, expected: "27.50"},
		{name: "eci comma only", value: "53,000", format: PriceDotThousands, expected: "53.000"},
		{name: "eci thousands and decimals", value: "7.102,00", format: PriceDotThousands, expected: "7102.00"},
		{name: "eci already normalized keeps decimals", value: "53.000", format: PriceDotThousands, expected: "53.000"},
		{name: "whitespace trimmed", value: " 50 ", format: PriceCommaDecimal, expected: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePrice(tt.value, tt.format))
		})
	}
}

// Normalizing an already-normalized price must yield the same value for
// either grammar's rule.
func TestNormalizePriceIdempotent(t *testing.T) {
	values := []string{"50", "27,50", "53,000", "7.102,00", "0", "189"}
	formats := []PriceFormat{PriceCommaDecimal, PriceDotThousands}

	for _, format := range formats {
		for _, v := range values {
			once := NormalizePrice(v, format)
			twice := NormalizePrice(once, format)
			assert.Equal(t, once, twice, "format %d value %q", format, v)
		}
	}
}

func TestParsePrice(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d := ParsePrice("53.000")
		require.NotNil(t, d)
		assert.True(t, d.Equal(decimal.NewFromInt(53)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, ParsePrice(""))
	})

	t.Run("malformed", func(t *testing.T) {
		assert.Nil(t, ParsePrice("EUR"))
	})
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected *int
	}{
		{name: "plain", token: "134", expected: intPtr(134)},
		{name: "zero", token: "0", expected: intPtr(0)},
		{name: "negative rejected", token: "-4", expected: nil},
		{name: "decimal rejected", token: "1,5", expected: nil},
		{name: "word rejected", token: "EUR", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseQuantity(tt.token))
		})
	}
}

func intPtr(n int) *int { return &n }
