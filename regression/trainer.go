package regression

import (
	"fmt"

	"github.com/yarrumevets/helloai/internal/options"
	"github.com/yarrumevets/helloai/observe"
	"github.com/yarrumevets/helloai/sample"
)

// Trainer fits a curve to samples with per-sample stochastic gradient descent.
//
// A Trainer owns its coefficients. They are drawn once at construction and then
// only change inside Train, where every sample's update is visible to the next
// sample. Epochs accumulate across Train calls. A Trainer is not safe for
// concurrent use.
type Trainer struct {
	model    learner
	sink     observe.Sink
	observer PredictionObserver
	onEpoch  EpochHook
}

// TrainingResult summarizes one Train call.
type TrainingResult struct {
	// Epochs is the number of epochs run.
	Epochs int
	// History holds the mean squared error of every epoch, indexed by epoch.
	History []float64
	// FinalMSE is the last entry of History.
	FinalMSE float64
	// Coefficients are the coefficients after the last epoch.
	Coefficients []float64
}

// MSEAt returns the mean squared error recorded for epoch.
func (r *TrainingResult) MSEAt(epoch int) (float64, bool) {
	if epoch < 0 || epoch >= len(r.History) {
		return 0, false
	}

	return r.History[epoch], true
}

// NewTrainer creates a trainer for modelType and initializes its coefficients
// from the configured RandSource in declaration order.
//
// Parameters:
//   - modelType: ModelTypeQuadratic or ModelTypeLinear
//   - opts: Optional configuration (WithRandSource, WithSink, WithPredictionObserver, WithEpochHook)
//
// Returns:
//   - *Trainer: Trainer ready for Train and Predict
//   - error: Unknown model type or a rejected option
//
// Example:
//
//	trainer, err := regression.NewTrainer(regression.ModelTypeQuadratic,
//	    regression.WithRandSource(rand.New(rand.NewPCG(1, 2))),
//	)
func NewTrainer(modelType ModelType, opts ...TrainerOption) (*Trainer, error) {
	model := newEmptyLearner(modelType)
	if model == nil {
		return nil, fmt.Errorf("%w: unsupported model type %d", ErrInvalidConfiguration, int(modelType))
	}

	cfg := newTrainerConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	t := &Trainer{
		model:    model,
		sink:     cfg.sink,
		observer: cfg.observer,
		onEpoch:  cfg.onEpoch,
	}
	t.initialize(cfg.rnd)

	return t, nil
}

// NewQuadraticTrainer is shorthand for NewTrainer(ModelTypeQuadratic, opts...).
func NewQuadraticTrainer(opts ...TrainerOption) (*Trainer, error) {
	return NewTrainer(ModelTypeQuadratic, opts...)
}

// NewLinearTrainer is shorthand for NewTrainer(ModelTypeLinear, opts...).
func NewLinearTrainer(opts ...TrainerOption) (*Trainer, error) {
	return NewTrainer(ModelTypeLinear, opts...)
}

func (t *Trainer) initialize(rnd RandSource) {
	coeffs := make([]float64, len(t.model.coefficientNames()))
	for i := range coeffs {
		coeffs[i] = rnd.Float64()
	}
	// length always matches the learner
	_ = t.model.SetCoefficients(coeffs)
}

// Type returns the model type being trained.
func (t *Trainer) Type() ModelType {
	return t.model.Type()
}

// Coefficients returns a copy of the current coefficients.
func (t *Trainer) Coefficients() []float64 {
	return t.model.Coefficients()
}

// Formula renders the current equation.
func (t *Trainer) Formula() string {
	return t.model.Formula()
}

// Snapshot returns an independent estimator frozen at the current coefficients.
// Later training does not affect it.
func (t *Trainer) Snapshot() Estimator {
	est := newEmptyLearner(t.model.Type())
	_ = est.SetCoefficients(t.model.Coefficients())

	return est
}

// Train runs cfg.Epochs passes of per-sample gradient descent over samples.
//
// Each sample is predicted with the current coefficients, the error
// y - prediction is applied immediately, and its square is accumulated into the
// epoch's mean squared error. On epochs where epoch % cfg.LogInterval == 0 a
// progress record is emitted per sample before its update, followed by one epoch
// record carrying the MSE. The epoch hook, if any, runs after every epoch.
//
// Divergence is not an error: coefficients and MSE may become Inf or NaN.
//
// Returns ErrEmptyTrainingSet for no samples and ErrInvalidConfiguration for an
// invalid cfg, in both cases before any coefficient changes.
func (t *Trainer) Train(samples []sample.Sample, cfg TrainingConfig) (*TrainingResult, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := float64(len(samples))
	history := make([]float64, cfg.Epochs)
	for epoch := range cfg.Epochs {
		logged := epoch%cfg.LogInterval == 0

		var acc float64
		for _, s := range samples {
			prediction := t.model.Estimate(s.X)
			residual := s.Y - prediction
			if logged {
				t.sink.Emit(t.progressRecord(epoch, prediction, s.X, residual))
			}
			t.model.step(s.X, residual, cfg.LearningRate)
			acc += residual * residual
		}

		mse := acc / n
		history[epoch] = mse
		if logged {
			t.sink.Emit(observe.Record{
				Kind:   observe.KindEpoch,
				Epoch:  epoch,
				Fields: []observe.Field{observe.F("mse", mse)},
			})
		}
		if t.onEpoch != nil {
			t.onEpoch(epoch, mse)
		}
	}

	return &TrainingResult{
		Epochs:       cfg.Epochs,
		History:      history,
		FinalMSE:     history[len(history)-1],
		Coefficients: t.model.Coefficients(),
	}, nil
}

func (t *Trainer) progressRecord(epoch int, prediction, x, residual float64) observe.Record {
	names := t.model.coefficientNames()
	coeffs := t.model.Coefficients()

	fields := make([]observe.Field, 0, len(names)+3)
	fields = append(fields, observe.F("prediction", prediction), observe.F("x", x))
	for i, name := range names {
		fields = append(fields, observe.F(name, coeffs[i]))
	}
	fields = append(fields, observe.F("error", residual))

	return observe.Record{Kind: observe.KindProgress, Epoch: epoch, Fields: fields}
}

// Predict evaluates the current curve at x, reports (x, y) to the prediction
// observer and emits a prediction record. Coefficients are not changed.
func (t *Trainer) Predict(x float64) float64 {
	y := t.model.Estimate(x)
	if t.observer != nil {
		t.observer.ObservePrediction(x, y)
	}
	t.sink.Emit(observe.Record{
		Kind:   observe.KindPrediction,
		Fields: []observe.Field{observe.F("x", x), observe.F("y", y)},
	})

	return y
}
