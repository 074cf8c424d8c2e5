package regression

import (
	"errors"
	"math/rand/v2"

	"github.com/yarrumevets/helloai/internal/options"
	"github.com/yarrumevets/helloai/observe"
)

// RandSource supplies uniform values in [0, 1) for coefficient initialization.
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// PredictionObserver is notified of every Predict call.
type PredictionObserver interface {
	ObservePrediction(x, y float64)
}

// PredictionObserverFunc adapts a function to PredictionObserver.
type PredictionObserverFunc func(x, y float64)

// ObservePrediction calls f(x, y).
func (f PredictionObserverFunc) ObservePrediction(x, y float64) { f(x, y) }

// EpochHook runs synchronously after every epoch, logged or not.
type EpochHook func(epoch int, mse float64)

type trainerConfig struct {
	rnd      RandSource
	sink     observe.Sink
	observer PredictionObserver
	onEpoch  EpochHook
}

func newTrainerConfig() *trainerConfig {
	return &trainerConfig{
		rnd:  globalRand{},
		sink: observe.Discard,
	}
}

// TrainerOption configures a Trainer.
type TrainerOption = options.Option[*trainerConfig]

// WithRandSource sets the uniform source used to draw the initial coefficients.
// Defaults to the auto-seeded math/rand/v2 global source.
func WithRandSource(src RandSource) TrainerOption {
	return options.New(func(cfg *trainerConfig) error {
		if src == nil {
			return errors.New("rand source cannot be nil")
		}
		cfg.rnd = src

		return nil
	})
}

// WithSink sets where progress, epoch and prediction records go. A nil sink
// discards records.
func WithSink(sink observe.Sink) TrainerOption {
	return options.NoError(func(cfg *trainerConfig) {
		if sink == nil {
			sink = observe.Discard
		}
		cfg.sink = sink
	})
}

// WithPredictionObserver registers obs to receive every (x, y) returned by Predict.
func WithPredictionObserver(obs PredictionObserver) TrainerOption {
	return options.NoError(func(cfg *trainerConfig) {
		cfg.observer = obs
	})
}

// WithEpochHook registers fn to run after every epoch.
func WithEpochHook(fn EpochHook) TrainerOption {
	return options.NoError(func(cfg *trainerConfig) {
		cfg.onEpoch = fn
	})
}
