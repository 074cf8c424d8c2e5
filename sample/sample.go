// Package sample produces the noiseless training data the trainer learns from.
package sample

import "github.com/yarrumevets/helloai/internal/hash"

// Sample is one (x, y) observation.
type Sample struct {
	X float64
	Y float64
}

// Generate evaluates y = a·x² + b·x + c at the integer points x = 0..count-1.
//
// The result is deterministic and noise free, ordered by ascending x, and has
// exactly count elements. A count of zero or less yields an empty, non-nil slice.
//
// Example:
//
//	samples := sample.Generate(0, 2, 1, 3) // [(0,1) (1,3) (2,5)]
func Generate(a, b, c float64, count int) []Sample {
	if count < 0 {
		count = 0
	}
	out := make([]Sample, 0, count)
	for i := range count {
		x := float64(i)
		out = append(out, Sample{X: x, Y: a*x*x + b*x + c})
	}

	return out
}

// Split returns the x and y columns of samples.
func Split(samples []Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}

	return xs, ys
}

// Fingerprint returns an order-sensitive 64-bit hash of samples, used to tie
// log records and traces to the dataset that produced them.
func Fingerprint(samples []Sample) uint64 {
	return hash.Points(Split(samples))
}
