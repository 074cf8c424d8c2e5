// Package regression fits low-order polynomials to samples with online
// stochastic gradient descent.
//
// Two models are supported:
//
//   - Quadratic: y = a·x² + b·x + c
//   - Linear: y = w·x + b
//
// # Training
//
// A Trainer draws its coefficients once from a uniform [0, 1) source and then
// updates them after every single sample:
//
//	err = y - prediction
//	a += rate · err · x²
//	b += rate · err · x
//	c += rate · err
//
// The mean squared error of each epoch is accumulated from the per-sample
// errors observed before each update, so it lags the coefficients by up to one
// epoch of movement.
//
//	samples := sample.Generate(1, 0, 0, 11)
//	trainer, err := regression.NewQuadraticTrainer(regression.WithSink(sink))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := trainer.Train(samples, regression.QuadraticTrainingConfig(5000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FinalMSE, trainer.Formula())
//
// # Learning Rate Presets
//
// QuadraticTrainingConfig uses a rate of 0.0002 and logs every 1000 epochs.
// LinearTrainingConfig uses 0.1 and logs every epoch. The quadratic rate is only
// stable while rate·x⁴ stays small, which holds for x up to about 12. Larger
// domains diverge, and divergence shows up as Inf or NaN coefficients rather
// than an error.
//
// # Telemetry
//
// Logged epochs emit one observe.KindProgress record per sample (fields
// prediction, x, the coefficients, error) followed by one observe.KindEpoch
// record (field mse). Every Predict call emits an observe.KindPrediction record
// (fields x, y) and notifies the PredictionObserver, which is how predictions
// reach a plot.
//
// # Evaluation
//
// Evaluate scores any Estimator against samples (MSE, RMSE, R²) without
// touching a trainer's observers.
package regression
