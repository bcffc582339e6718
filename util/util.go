package util

import "github.com/fogleman/ease"

// Easing maps t in [0, 1] to an eased value.
type Easing func(t float64) float64

// GenerateLut builds a symmetric rise-and-fall table of the given length using
// ease.InOutQuad. The first half rises from 0, the second half mirrors it.
func GenerateLut(length int) []float64 {
	return GenerateLutWith(length, ease.InOutQuad)
}

// GenerateLutWith is GenerateLut with a caller-supplied easing function.
func GenerateLutWith(length int, easing Easing) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := easing(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}

// Memoizer caches look-up tables by length.
type Memoizer map[int][]float64

// GenerateLutMemoized returns the cached table for length, building it on first use.
func GenerateLutMemoized(length int, memoizer Memoizer) []float64 {
	if lut, ok := memoizer[length]; ok {
		return lut
	}
	lut := GenerateLut(length)
	memoizer[length] = lut
	return lut
}
