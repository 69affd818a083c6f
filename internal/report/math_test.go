package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "no fraction", in: 2000, want: 2000},
		{name: "half rounds away from zero", in: 0.125, want: 0.13},
		{name: "negative half rounds away from zero", in: -0.125, want: -0.13},
		{name: "float artifacts collapse", in: 0.1 + 0.2, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, round2(tt.in), 1e-9)
		})
	}
}

func TestPercentOf(t *testing.T) {
	assert.InDelta(t, 20.0, percentOf(300, 1500), 1e-9)
	assert.InDelta(t, 33.33, percentOf(1, 3), 1e-9)
	assert.Zero(t, percentOf(300, 0), "zero total yields zero, not a division error")
}

func TestSavingsRate(t *testing.T) {
	assert.InDelta(t, 20.0, savingsRate(5000, 4000), 1e-9)
	assert.Zero(t, savingsRate(0, 4000), "zero income yields zero, not a division error")
	assert.InDelta(t, -10.0, savingsRate(1000, 1100), 1e-9, "overspending yields a negative rate")
}
