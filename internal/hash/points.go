// Package hash fingerprints training data so that log lines and trace files can
// be matched to the exact sample set that produced them.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Points computes the xxHash64 of a sequence of (x, y) pairs.
//
// Each coordinate is hashed through its IEEE-754 bit pattern in little-endian
// order, so the fingerprint is exact: 0.1+0.2 computed at run time and 0.3
// hash differently. Order matters; the same points in another order produce
// another fingerprint.
func Points(xs, ys []float64) uint64 {
	d := xxhash.New()
	var buf [16]byte
	n := min(len(xs), len(ys))
	for i := range n {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(xs[i]))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(ys[i]))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
