package regression

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ModelType represents the family of curve being fitted.
type ModelType int

const (
	// ModelTypeQuadratic represents y = a·x² + b·x + c.
	ModelTypeQuadratic ModelType = iota
	// ModelTypeLinear represents y = w·x + b.
	ModelTypeLinear
)

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeQuadratic: "quadratic",
	ModelTypeLinear:    "linear",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"quadratic": ModelTypeQuadratic,
	"linear":    ModelTypeLinear,
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(name)]; exists {
		return modelType
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted curve.
type Estimator interface {
	// Estimate evaluates the curve at x. It has no side effects.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the current coefficients in declaration order
	// ([a, b, c] for quadratic, [w, b] for linear).
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. The slice length must match
	// the model's coefficient count.
	SetCoefficients(coeffs []float64) error
	// Formula renders the current equation.
	Formula() string
}

// learner is an Estimator that can take one stochastic gradient step.
type learner interface {
	Estimator
	// step moves every coefficient along the squared-error gradient of a
	// single sample: coefficient += rate · residual · ∂prediction/∂coefficient.
	step(x, residual, rate float64)
	// coefficientNames labels Coefficients() for telemetry.
	coefficientNames() []string
}

// QuadraticEstimator implements y = a·x² + b·x + c.
type QuadraticEstimator struct {
	a, b, c float64
}

var _ learner = (*QuadraticEstimator)(nil)

// NewQuadraticEstimator creates a quadratic estimator with the given coefficients.
func NewQuadraticEstimator(a, b, c float64) *QuadraticEstimator {
	return &QuadraticEstimator{a: a, b: b, c: c}
}

// Estimate calculates a·x² + b·x + c. Any real x is valid, including zero and
// negative values.
func (q *QuadraticEstimator) Estimate(x float64) float64 {
	return q.a*x*x + q.b*x + q.c
}

// Type returns the model type.
func (q *QuadraticEstimator) Type() ModelType {
	return ModelTypeQuadratic
}

// Coefficients returns a fresh slice [a, b, c].
func (q *QuadraticEstimator) Coefficients() []float64 {
	return []float64{q.a, q.b, q.c}
}

// SetCoefficients expects exactly 3 coefficients: [a, b, c].
func (q *QuadraticEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return fmt.Errorf("quadratic model expects exactly 3 coefficients, got %d", len(coeffs))
	}
	q.a, q.b, q.c = coeffs[0], coeffs[1], coeffs[2]

	return nil
}

// Formula renders the equation with five decimals, e.g. "y = 1.00000*x^2 - 0.50000*x + 2.00000".
func (q *QuadraticEstimator) Formula() string {
	return "y = " + strconv.FormatFloat(q.a, 'f', 5, 64) + "*x^2" + term(q.b) + "*x" + term(q.c)
}

func (q *QuadraticEstimator) step(x, residual, rate float64) {
	g := rate * residual
	q.a += g * x * x
	q.b += g * x
	q.c += g
}

func (q *QuadraticEstimator) coefficientNames() []string {
	return []string{"a", "b", "c"}
}

// LinearEstimator implements y = w·x + b.
type LinearEstimator struct {
	w, b float64
}

var _ learner = (*LinearEstimator)(nil)

// NewLinearEstimator creates a linear estimator with weight w and bias b.
func NewLinearEstimator(w, b float64) *LinearEstimator {
	return &LinearEstimator{w: w, b: b}
}

// Estimate calculates w·x + b.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.w*x + l.b
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns a fresh slice [w, b].
func (l *LinearEstimator) Coefficients() []float64 {
	return []float64{l.w, l.b}
}

// SetCoefficients expects exactly 2 coefficients: [w, b].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.w, l.b = coeffs[0], coeffs[1]

	return nil
}

// Formula renders the equation with five decimals, e.g. "y = 2.00000*x + 1.00000".
func (l *LinearEstimator) Formula() string {
	return "y = " + strconv.FormatFloat(l.w, 'f', 5, 64) + "*x" + term(l.b)
}

func (l *LinearEstimator) step(x, residual, rate float64) {
	g := rate * residual
	l.w += g * x
	l.b += g
}

func (l *LinearEstimator) coefficientNames() []string {
	return []string{"w", "b"}
}

// term renders a coefficient with its sign as a separate operator.
func term(v float64) string {
	if v < 0 {
		return " - " + strconv.FormatFloat(-v, 'f', 5, 64)
	}

	return " + " + strconv.FormatFloat(v, 'f', 5, 64)
}

// newEmptyLearner creates a zero-valued learner for the given ModelType.
func newEmptyLearner(modelType ModelType) learner {
	switch modelType {
	case ModelTypeQuadratic:
		return NewQuadraticEstimator(0, 0, 0)
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	default:
		return nil
	}
}

// NewEstimator creates an estimator by name and coefficients.
//
// Parameters:
//   - name: The model name (case-insensitive): "quadratic" (3 coefficients
//     [a, b, c]) or "linear" (2 coefficients [w, b])
//   - coeffs: The model coefficients
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: Unknown model name or wrong coefficient count
//
// Example:
//
//	est, err := regression.NewEstimator("quadratic", []float64{1, 0, 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Estimate(4) // 16
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		var supported []string
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	est := newEmptyLearner(modelType)
	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return est, nil
}
