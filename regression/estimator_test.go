package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelType_String(t *testing.T) {
	assert.Equal(t, "quadratic", ModelTypeQuadratic.String())
	assert.Equal(t, "linear", ModelTypeLinear.String())
	assert.Equal(t, "unknown", ModelType(99).String())
}

func TestModelTypeFromString(t *testing.T) {
	tests := []struct {
		name string
		want ModelType
	}{
		{"quadratic", ModelTypeQuadratic},
		{"Quadratic", ModelTypeQuadratic},
		{"LINEAR", ModelTypeLinear},
		{"cubic", ModelType(-1)},
		{"", ModelType(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModelTypeFromString(tt.name))
		})
	}
}

func TestQuadraticEstimator(t *testing.T) {
	est := NewQuadraticEstimator(2, -3, 1)

	assert.Equal(t, ModelTypeQuadratic, est.Type())
	assert.Equal(t, []float64{2, -3, 1}, est.Coefficients())
	assert.InDelta(t, 1.0, est.Estimate(0), 1e-12)
	assert.InDelta(t, 6.0, est.Estimate(-1), 1e-12)
	assert.InDelta(t, 3.0, est.Estimate(2), 1e-12)
	assert.Equal(t, "y = 2.00000*x^2 - 3.00000*x + 1.00000", est.Formula())

	require.NoError(t, est.SetCoefficients([]float64{1, 0, 0}))
	assert.InDelta(t, 16.0, est.Estimate(4), 1e-12)
	assert.Equal(t, "y = 1.00000*x^2 + 0.00000*x + 0.00000", est.Formula())

	require.Error(t, est.SetCoefficients([]float64{1, 2}))
	assert.Equal(t, []float64{1, 0, 0}, est.Coefficients(), "failed set must not change coefficients")
}

func TestQuadraticEstimator_CoefficientsAreCopies(t *testing.T) {
	est := NewQuadraticEstimator(1, 2, 3)
	coeffs := est.Coefficients()
	coeffs[0] = 100

	assert.Equal(t, []float64{1, 2, 3}, est.Coefficients())
}

func TestQuadraticEstimator_Step(t *testing.T) {
	est := NewQuadraticEstimator(0, 0, 0)
	est.step(2, 1, 0.5)

	assert.Equal(t, []float64{2, 1, 0.5}, est.Coefficients())
}

func TestLinearEstimator(t *testing.T) {
	est := NewLinearEstimator(2, 1)

	assert.Equal(t, ModelTypeLinear, est.Type())
	assert.InDelta(t, 9.0, est.Estimate(4), 1e-12)
	assert.Equal(t, "y = 2.00000*x + 1.00000", est.Formula())

	est.step(3, 1, 0.1)
	assert.InDeltaSlice(t, []float64{2.3, 1.1}, est.Coefficients(), 1e-12)

	require.Error(t, est.SetCoefficients([]float64{1, 2, 3}))
}

func TestNewEstimator(t *testing.T) {
	t.Run("quadratic", func(t *testing.T) {
		est, err := NewEstimator("quadratic", []float64{1, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, ModelTypeQuadratic, est.Type())
		assert.InDelta(t, 25.0, est.Estimate(5), 1e-12)
	})

	t.Run("linear", func(t *testing.T) {
		est, err := NewEstimator("linear", []float64{2, 1})
		require.NoError(t, err)
		assert.InDelta(t, 823.0, est.Estimate(411), 1e-9)
	})

	t.Run("unknown model", func(t *testing.T) {
		_, err := NewEstimator("cubic", []float64{1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "linear, quadratic")
	})

	t.Run("wrong coefficient count", func(t *testing.T) {
		_, err := NewEstimator("linear", []float64{1, 2, 3})
		require.Error(t, err)
	})
}
