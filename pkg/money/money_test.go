package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOf(t *testing.T) {
	// 5% of ₹500.00 = ₹25.00
	assert.Equal(t, int64(2500), PercentOf(50000, 5))
	// 20% of ₹250.00 = ₹50.00
	assert.Equal(t, int64(5000), PercentOf(25000, 20))
	// half-up: 5% of ₹0.50 = 2.5p -> 3p
	assert.Equal(t, int64(3), PercentOf(50, 5))
	// just below half rounds down: 5% of ₹0.49 = 2.45p -> 2p
	assert.Equal(t, int64(2), PercentOf(49, 5))
	assert.Equal(t, int64(0), PercentOf(0, 5))
	assert.Equal(t, int64(-3), PercentOf(-50, 5))
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "565.00", Rupees(56500))
	assert.Equal(t, "0.05", Rupees(5))
	assert.Equal(t, "-12.30", Rupees(-1230))
}

func TestFromRupees(t *testing.T) {
	assert.Equal(t, int64(50000), FromRupees(500))
}

func TestMin(t *testing.T) {
	assert.Equal(t, int64(3), Min(3, 7))
	assert.Equal(t, int64(3), Min(7, 3))
}
