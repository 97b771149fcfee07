package eurofiel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDetailLine(t *testing.T) {
	t.Run("documented shape", func(t *testing.T) {
		detail := ParseDetailLine("1 8447571299747 3RC240/NARANJA/XS 0863769/66/01 1 50 50 0 EUR")
		require.NotNil(t, detail)

		assert.Equal(t, "3RC240/NARANJA", detail.Model)
		assert.Equal(t, "0863769/66", detail.Pattern)
		assert.Equal(t, "50", detail.PriceText)
		assert.Equal(t, "8447571299747", detail.EAN)
		require.NotNil(t, detail.Quantity)
		assert.Equal(t, 1, *detail.Quantity)
		require.NotNil(t, detail.Price)
		assert.True(t, detail.Price.Equal(decimal.NewFromInt(50)))
	})

	t.Run("vendor code with embedded space", func(t *testing.T) {
		detail := ParseDetailLine("1 8447571186818 2TB060/AZUL OSCUR/S 0832547/11/04 4 27 27 189 EUR")
		require.NotNil(t, detail)

		assert.Equal(t, "2TB060/AZUL OSCUR", detail.Model)
		assert.Equal(t, "0832547/11", detail.Pattern)
		assert.Equal(t, "27", detail.PriceText)
		require.NotNil(t, detail.Quantity)
		assert.Equal(t, 4, *detail.Quantity)
	})

	t.Run("comma-decimal net price normalized", func(t *testing.T) {
		detail := ParseDetailLine("2 8447571186818 2TB060/AZUL/M 0832547/11/05 4 27,50 26,95 189 EUR")
		require.NotNil(t, detail)

		assert.Equal(t, "26.95", detail.PriceText)
		require.NotNil(t, detail.Price)
		assert.True(t, detail.Price.Equal(decimal.RequireFromString("26.95")))
	})
}

// Each case violates exactly one clause of the detail-line shape.
func TestParseDetailLineRejections(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "fewer than eight tokens", line: "1 8447571299747 X 0863769/66/01 1 50 50"},
		{name: "first token not integer", line: "No 8447571299747 3RC240/NARANJA/XS 0863769/66/01 1 50 50 0 EUR"},
		{name: "second token not thirteen digits", line: "1 844757129974 3RC240/NARANJA/XS 0863769/66/01 1 50 50 0 EUR"},
		{name: "no composite token", line: "1 8447571299747 3RC240/NARANJA/XS 0863769-66-01 1 50 50 0 EUR"},
		{name: "composite too close to line end", line: "1 8447571299747 3RC240/NARANJA/XS AAA BBB 0863769/66/01 1 50 50"},
		{name: "header line", line: "Nº Pedido : 2025002339"},
		{name: "blank", line: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseDetailLine(tt.line))
		})
	}
}

func TestSlotIndex(t *testing.T) {
	// Anchor at 3: quantity, gross, net and list occupy 4..7 in that order.
	assert.Equal(t, 4, slotIndex(3, slotQuantity))
	assert.Equal(t, 5, slotIndex(3, slotGross))
	assert.Equal(t, 6, slotIndex(3, slotNet))
	assert.Equal(t, 7, slotIndex(3, slotList))
	assert.Equal(t, -1, slotIndex(3, "unknown"))
}
