package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorporateTax(t *testing.T) {
	tests := []struct {
		base     float64
		expected float64
	}{
		{0, 0},
		{10000, 1500},
		{42500, 6375},
		{50000, 42500*0.15 + 7500*0.25},
		{100000, 6375 + 57500*0.25},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, CorporateTax(tt.base), 1e-9, "base %.0f", tt.base)
	}
}

func TestTransparentTaxRate(t *testing.T) {
	assert.InDelta(t, 0.472, TransparentTaxRate(0.30, true), 1e-12)
	assert.Equal(t, 0.30, TransparentTaxRate(0.30, false))
	assert.InDelta(t, 0.172, TransparentTaxRate(0, true), 1e-12)
}

func TestLossCarryforward_Absorb(t *testing.T) {
	losses := &lossCarryforward{}

	assert.Zero(t, losses.absorb(-1000))
	assert.Equal(t, 1000.0, losses.stock)

	assert.Zero(t, losses.absorb(400))
	assert.Equal(t, 600.0, losses.stock)

	assert.Equal(t, 400.0, losses.absorb(1000))
	assert.Zero(t, losses.stock)

	assert.Equal(t, 250.0, losses.absorb(250))
	assert.Zero(t, losses.stock)
}
