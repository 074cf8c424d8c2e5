// Package observe carries training telemetry out of the numeric core.
//
// The trainer never logs. It emits Record values to a Sink in the order they
// happen: progress records for individual samples, epoch records with the mean
// squared error, and prediction records for inference calls. Delivery is best
// effort; a sink that fails must not disturb training.
//
// Sinks provided here:
//
//   - Discard drops everything (the trainer's default).
//   - Recorder keeps records in memory, mostly for tests.
//   - SlogSink writes structured log/slog entries.
//   - TraceWriter buffers JSON lines and writes one compressed trace file on Close.
//   - Multi fans a record out to several sinks.
package observe
