package util

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLut_Symmetric(t *testing.T) {
	lut := GenerateLut(10)
	require.Len(t, lut, 10)

	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 0.0, lut[9])
	for i := 0; i < 5; i++ {
		assert.Equal(t, lut[i], lut[9-i], "index %d", i)
	}
	for i := 1; i < 5; i++ {
		assert.Greater(t, lut[i], lut[i-1])
	}
}

func TestGenerateLutWith(t *testing.T) {
	lut := GenerateLutWith(4, ease.Linear)
	assert.Equal(t, []float64{0, 0.5, 0.5, 0}, lut)
}

func TestGenerateLut_Short(t *testing.T) {
	assert.Equal(t, []float64{}, GenerateLut(0))
	assert.Equal(t, []float64{0}, GenerateLut(1))
}

func TestGenerateLutMemoized(t *testing.T) {
	m := Memoizer{}
	a := GenerateLutMemoized(8, m)
	b := GenerateLutMemoized(8, m)

	assert.Len(t, m, 1)
	assert.Same(t, &a[0], &b[0])
}
