package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nicholasturner1/dnd-roller/internal/dice"
)

// TestCryptoSource_Intn_InRange verifies the postcondition: every value
// returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition: Intn panics
// when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

// TestSeededSource_Reproducible verifies two sources with the same seed
// produce identical draw sequences.
func TestSeededSource_Reproducible(t *testing.T) {
	a := dice.NewSeededSource(1234)
	b := dice.NewSeededSource(1234)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(20), b.Intn(20))
	}
}

func TestSeededSource_Intn_InRange(t *testing.T) {
	src := dice.NewSeededSource(7)
	for i := 0; i < 1000; i++ {
		v := src.Intn(8)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 8)
	}
}

func TestSeededSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewSeededSource(7)
	assert.Panics(t, func() { src.Intn(0) })
}
