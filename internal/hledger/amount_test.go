package hledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

func floatPtr(v float64) *float64 {
	return &v
}

func usd(v float64) Amount {
	return Amount{
		Commodity: "$",
		Quantity:  &Quantity{FloatingPoint: floatPtr(v)},
	}
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name    string
		amounts []Amount
		want    float64
	}{
		{
			name:    "empty cell is zero",
			amounts: nil,
			want:    0,
		},
		{
			name:    "empty slice is zero",
			amounts: []Amount{},
			want:    0,
		},
		{
			name:    "single entry",
			amounts: []Amount{usd(-300)},
			want:    -300,
		},
		{
			name:    "first entry wins in multi-commodity cells",
			amounts: []Amount{usd(42.5), usd(999)},
			want:    42.5,
		},
		{
			name:    "rounds half away from zero",
			amounts: []Amount{usd(1.005)},
			want:    1.01,
		},
		{
			name:    "rounds half away from zero for negatives",
			amounts: []Amount{usd(-1.005)},
			want:    -1.01,
		},
		{
			name:    "rounds down below the midpoint",
			amounts: []Amount{usd(2.674)},
			want:    2.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAmount("balance", tt.amounts)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestExtractAmountShapeDrift(t *testing.T) {
	tests := []struct {
		name    string
		amounts []Amount
	}{
		{
			name:    "entry without quantity",
			amounts: []Amount{{Commodity: "$"}},
		},
		{
			name:    "quantity without floating point",
			amounts: []Amount{{Commodity: "$", Quantity: &Quantity{DecimalMantissa: 100}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractAmount("balance", tt.amounts)
			require.Error(t, err)

			var decodeErr *common.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, "balance", decodeErr.Report)
		})
	}
}
