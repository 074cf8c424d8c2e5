// Package helloai runs end-to-end curve fitting experiments: it generates
// samples from a known polynomial, trains a model on them with stochastic
// gradient descent and extrapolates the learned curve.
//
// # Basic Usage
//
//	cfg := helloai.DefaultConfig()
//	report, err := helloai.Run(cfg,
//	    helloai.WithSurface(canvas),
//	    helloai.WithSink(observe.NewSlogSink(logger)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Evaluation)
//
// # Package Structure
//
// This package wires together the lower-level packages, which can be used on
// their own:
//
//   - sample: training data generation
//   - regression: estimators, the SGD trainer and fit evaluation
//   - plot: rendering surfaces
//   - observe: telemetry sinks and compressed traces
package helloai

import (
	"fmt"
	"math"

	"github.com/yarrumevets/helloai/internal/options"
	"github.com/yarrumevets/helloai/observe"
	"github.com/yarrumevets/helloai/plot"
	"github.com/yarrumevets/helloai/regression"
	"github.com/yarrumevets/helloai/sample"
)

// ErrInvalidConfiguration is returned by Config.Validate and Run. It is the
// same sentinel as regression.ErrInvalidConfiguration.
var ErrInvalidConfiguration = regression.ErrInvalidConfiguration

// Config describes one experiment.
type Config struct {
	// Epochs is the number of training passes.
	Epochs int
	// SampleCount is the number of training samples, at x = 0..SampleCount-1.
	SampleCount int
	// A, B and C are the ground truth y = A·x² + B·x + C.
	A, B, C float64
	// Mode selects the fitted model.
	Mode regression.ModelType
	// PlotLimit bounds the ground truth and prediction ranges (exclusive).
	PlotLimit int
	// PredictFrom is the first x predicted after training.
	PredictFrom int
}

// DefaultConfig returns the quadratic experiment: y = x² over 11 samples,
// 5000 epochs, predictions for x = 11..59.
func DefaultConfig() Config {
	return Config{
		Epochs:      5000,
		SampleCount: 11,
		A:           1,
		B:           0,
		C:           0,
		Mode:        regression.ModelTypeQuadratic,
		PlotLimit:   60,
		PredictFrom: 11,
	}
}

// Validate reports ErrInvalidConfiguration for non-finite coefficients,
// negative counts, fewer than one epoch, an unknown mode or a prediction
// range that starts past PlotLimit.
func (c Config) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{{"a", c.A}, {"b", c.B}, {"c", c.C}}
	for _, coef := range coefficients {
		if math.IsNaN(coef.value) || math.IsInf(coef.value, 0) {
			return fmt.Errorf("%w: coefficient %s must be finite, got %v", ErrInvalidConfiguration, coef.name, coef.value)
		}
	}
	if c.Epochs < 1 {
		return fmt.Errorf("%w: epochs must be at least 1, got %d", ErrInvalidConfiguration, c.Epochs)
	}
	if c.SampleCount < 0 {
		return fmt.Errorf("%w: sample count must not be negative, got %d", ErrInvalidConfiguration, c.SampleCount)
	}
	if c.PlotLimit < 0 || c.PredictFrom < 0 {
		return fmt.Errorf("%w: plot range must not be negative, got %d..%d", ErrInvalidConfiguration, c.PredictFrom, c.PlotLimit)
	}
	if c.PredictFrom > c.PlotLimit {
		return fmt.Errorf("%w: predict-from %d exceeds plot limit %d", ErrInvalidConfiguration, c.PredictFrom, c.PlotLimit)
	}
	if c.Mode != regression.ModelTypeQuadratic && c.Mode != regression.ModelTypeLinear {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfiguration, int(c.Mode))
	}

	return nil
}

// Report is the outcome of Run.
type Report struct {
	Config      Config
	Samples     []sample.Sample
	Fingerprint uint64
	GroundTruth string
	Training    *regression.TrainingResult
	Evaluation  *regression.Evaluation
	Predictions []sample.Sample
}

type runConfig struct {
	surface plot.Surface
	sink    observe.Sink
	rnd     regression.RandSource
	onEpoch regression.EpochHook
}

// Option configures Run.
type Option = options.Option[*runConfig]

// WithSurface draws samples, ground truth and predictions onto s.
func WithSurface(s plot.Surface) Option {
	return options.NoError(func(cfg *runConfig) {
		cfg.surface = s
	})
}

// WithSink sends training and prediction records to sink.
func WithSink(sink observe.Sink) Option {
	return options.NoError(func(cfg *runConfig) {
		cfg.sink = sink
	})
}

// WithRandSource sets the source of the initial coefficients.
func WithRandSource(src regression.RandSource) Option {
	return options.NoError(func(cfg *runConfig) {
		cfg.rnd = src
	})
}

// WithEpochHook runs fn after every training epoch.
func WithEpochHook(fn regression.EpochHook) Option {
	return options.NoError(func(cfg *runConfig) {
		cfg.onEpoch = fn
	})
}

// Run executes one experiment.
//
// Steps:
//  1. Validate cfg.
//  2. Generate cfg.SampleCount samples and plot them in SampleColor.
//  3. Plot the ground truth from the last sample up to PlotLimit in GroundTruthColor.
//  4. Train a fresh model with the preset for cfg.Mode.
//  5. Predict x = PredictFrom..PlotLimit-1; predictions are plotted in PredictionColor.
//
// Returns ErrInvalidConfiguration for a bad cfg and
// regression.ErrEmptyTrainingSet when SampleCount is zero, in both cases
// before anything is plotted.
func Run(cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.SampleCount == 0 {
		return nil, regression.ErrEmptyTrainingSet
	}

	rc := &runConfig{surface: plot.Multi(nil), sink: observe.Discard}
	if err := options.Apply(rc, opts...); err != nil {
		return nil, err
	}
	if rc.surface == nil {
		rc.surface = plot.Multi(nil)
	}

	samples := sample.Generate(cfg.A, cfg.B, cfg.C, cfg.SampleCount)
	for _, s := range samples {
		rc.surface.PlotPoint(s.X, s.Y, plot.SampleColor)
	}

	truth := regression.NewQuadraticEstimator(cfg.A, cfg.B, cfg.C)
	for x := len(samples) - 1; x < cfg.PlotLimit; x++ {
		fx := float64(x)
		rc.surface.PlotPoint(fx, truth.Estimate(fx), plot.GroundTruthColor)
	}

	trainerOpts := []regression.TrainerOption{
		regression.WithSink(rc.sink),
		regression.WithPredictionObserver(plot.NewPredictionLayer(rc.surface)),
		regression.WithEpochHook(rc.onEpoch),
	}
	if rc.rnd != nil {
		trainerOpts = append(trainerOpts, regression.WithRandSource(rc.rnd))
	}

	trainer, err := regression.NewTrainer(cfg.Mode, trainerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}

	training, err := trainer.Train(samples, regression.PresetConfig(cfg.Mode, cfg.Epochs))
	if err != nil {
		return nil, fmt.Errorf("training failed: %w", err)
	}

	evaluation, err := regression.Evaluate(trainer.Snapshot(), samples)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	predictions := make([]sample.Sample, 0, cfg.PlotLimit-cfg.PredictFrom)
	for x := cfg.PredictFrom; x < cfg.PlotLimit; x++ {
		fx := float64(x)
		predictions = append(predictions, sample.Sample{X: fx, Y: trainer.Predict(fx)})
	}

	return &Report{
		Config:      cfg,
		Samples:     samples,
		Fingerprint: sample.Fingerprint(samples),
		GroundTruth: truth.Formula(),
		Training:    training,
		Evaluation:  evaluation,
		Predictions: predictions,
	}, nil
}
