package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		count   int
	}{
		{name: "pure square", a: 1, count: 20},
		{name: "linear", b: 2, c: 1, count: 3},
		{name: "negative coefficients", a: -0.5, b: 3.25, c: -7, count: 11},
		{name: "single point", a: 4, b: 4, c: 4, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.a, tt.b, tt.c, tt.count)
			require.Len(t, got, tt.count)
			for i, s := range got {
				x := float64(i)
				require.Equal(t, x, s.X)
				require.Equal(t, tt.a*x*x+tt.b*x+tt.c, s.Y, "sample %d", i)
			}
		})
	}
}

func TestGenerate_Linear(t *testing.T) {
	require.Equal(t, []Sample{{0, 1}, {1, 3}, {2, 5}}, Generate(0, 2, 1, 3))
}

func TestGenerate_Empty(t *testing.T) {
	for _, count := range []int{0, -3} {
		got := Generate(1, 2, 3, count)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	require.Equal(t, Generate(1.5, -2, 0.25, 50), Generate(1.5, -2, 0.25, 50))
}

func TestSplit(t *testing.T) {
	xs, ys := Split([]Sample{{0, 1}, {1, 3}})
	require.Equal(t, []float64{0, 1}, xs)
	require.Equal(t, []float64{1, 3}, ys)

	xs, ys = Split(nil)
	require.Empty(t, xs)
	require.Empty(t, ys)
}

func TestFingerprint(t *testing.T) {
	base := Generate(1, 0, 0, 11)
	require.Equal(t, Fingerprint(base), Fingerprint(Generate(1, 0, 0, 11)))
	require.NotEqual(t, Fingerprint(base), Fingerprint(Generate(1, 0, 0, 12)))
	require.NotEqual(t, Fingerprint(base), Fingerprint(Generate(1, 0, 1, 11)))
}
