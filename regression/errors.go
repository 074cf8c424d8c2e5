package regression

import "errors"

var (
	// ErrEmptyTrainingSet is returned when training or evaluation is given no samples.
	ErrEmptyTrainingSet = errors.New("empty training set")
	// ErrInvalidConfiguration is returned when a configuration value is out of range.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
