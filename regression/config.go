package regression

import (
	"fmt"
	"math"
)

const (
	// QuadraticLearningRate keeps per-sample updates stable for x up to roughly 12.
	QuadraticLearningRate = 0.0002
	// QuadraticLogInterval reports progress every thousandth epoch.
	QuadraticLogInterval = 1000
	// LinearLearningRate is the step size of the linear preset.
	LinearLearningRate = 0.1
	// LinearLogInterval reports progress every epoch.
	LinearLogInterval = 1
)

// TrainingConfig controls one call to Trainer.Train.
type TrainingConfig struct {
	// Epochs is the number of full passes over the samples.
	Epochs int
	// LearningRate scales every coefficient update.
	LearningRate float64
	// LogInterval gates telemetry: progress and epoch records are emitted only
	// for epochs where epoch % LogInterval == 0.
	LogInterval int
}

// QuadraticTrainingConfig returns the quadratic preset: learning rate 0.0002 and
// a log entry every 1000 epochs.
func QuadraticTrainingConfig(epochs int) TrainingConfig {
	return TrainingConfig{Epochs: epochs, LearningRate: QuadraticLearningRate, LogInterval: QuadraticLogInterval}
}

// LinearTrainingConfig returns the linear preset: learning rate 0.1 and a log
// entry every epoch.
func LinearTrainingConfig(epochs int) TrainingConfig {
	return TrainingConfig{Epochs: epochs, LearningRate: LinearLearningRate, LogInterval: LinearLogInterval}
}

// PresetConfig returns the preset for modelType.
func PresetConfig(modelType ModelType, epochs int) TrainingConfig {
	if modelType == ModelTypeLinear {
		return LinearTrainingConfig(epochs)
	}

	return QuadraticTrainingConfig(epochs)
}

// Validate reports ErrInvalidConfiguration when any field is out of range.
func (c TrainingConfig) Validate() error {
	if c.Epochs < 1 {
		return fmt.Errorf("%w: epochs must be at least 1, got %d", ErrInvalidConfiguration, c.Epochs)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate must be positive and finite, got %v", ErrInvalidConfiguration, c.LearningRate)
	}
	if c.LogInterval < 1 {
		return fmt.Errorf("%w: log interval must be at least 1, got %d", ErrInvalidConfiguration, c.LogInterval)
	}

	return nil
}
