package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string // FormatDate rendering; "" means nil
	}{
		{"14/07/2025", "14/07/2025"},
		{"14-07-2025", "14/07/2025"},
		{" 14/07/2025 ", "14/07/2025"},
		{"2025-07-14", ""},
		{"31/02/2025", ""},
		{"pronto", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got := ParseDate(tt.in)
		if tt.want == "" {
			assert.Nil(t, got, "input %q", tt.in)
			continue
		}
		require.NotNil(t, got, "input %q", tt.in)
		assert.Equal(t, tt.want, FormatDate(got), "input %q", tt.in)
	}
}

func TestFormatDateNil(t *testing.T) {
	assert.Empty(t, FormatDate(nil))
}

func TestMergeFirstWins(t *testing.T) {
	early := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	h := Header{OrderNumber: "111", DeliveryDate: &early}
	h.MergeFirstWins(Header{
		DocType:      "PEDIDO",
		OrderNumber:  "222",
		DeliveryDate: &late,
		Country:      "ESPAÑA",
	})

	// Already-set fields keep their first value.
	assert.Equal(t, "111", h.OrderNumber)
	assert.Equal(t, &early, h.DeliveryDate)

	// Empty fields take the incoming value.
	assert.Equal(t, "PEDIDO", h.DocType)
	assert.Equal(t, "ESPAÑA", h.Country)

	// Later merges never overwrite.
	h.MergeFirstWins(Header{DocType: "ANULACION PEDIDO"})
	assert.Equal(t, "PEDIDO", h.DocType)
}
