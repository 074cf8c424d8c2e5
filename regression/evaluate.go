package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/yarrumevets/helloai/sample"
)

// Evaluation describes how well an estimator fits a set of samples.
type Evaluation struct {
	Type         ModelType
	Coefficients []float64
	MSE          float64 // Mean squared error
	RMSE         float64 // Root mean squared error
	RSquared     float64 // Coefficient of determination (0-1, higher is better)
	Formula      string
}

// String returns a human-readable representation of the evaluation.
func (e *Evaluation) String() string {
	return fmt.Sprintf("Evaluation{Type: %s, MSE: %.6f, RMSE: %.6f, R²: %.6f, Formula: %s}",
		e.Type, e.MSE, e.RMSE, e.RSquared, e.Formula)
}

// Evaluate scores est against samples using Estimate only, so no observer or
// sink is notified.
//
// R² is reported as 0 when every sample has the same y, where the statistic is
// undefined.
//
// Returns ErrEmptyTrainingSet when samples is empty.
func Evaluate(est Estimator, samples []sample.Sample) (*Evaluation, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTrainingSet
	}

	xs, ys := sample.Split(samples)
	predicted := make([]float64, len(xs))
	for i, x := range xs {
		predicted[i] = est.Estimate(x)
	}

	n := float64(len(samples))
	dist := floats.Distance(ys, predicted, 2)

	rSquared := 0.0
	if floats.Min(ys) != floats.Max(ys) {
		rSquared = stat.RSquaredFrom(predicted, ys, nil)
	}

	return &Evaluation{
		Type:         est.Type(),
		Coefficients: est.Coefficients(),
		MSE:          dist * dist / n,
		RMSE:         dist / math.Sqrt(n),
		RSquared:     rSquared,
		Formula:      est.Formula(),
	}, nil
}
