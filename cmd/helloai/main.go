package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/google/uuid"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/yarrumevets/helloai"
	"github.com/yarrumevets/helloai/format"
	"github.com/yarrumevets/helloai/observe"
	"github.com/yarrumevets/helloai/plot"
	"github.com/yarrumevets/helloai/regression"
	"github.com/yarrumevets/helloai/sample"
)

type args struct {
	Epochs      int     `arg:"--epochs" default:"5000" help:"number of training epochs"`
	Samples     int     `arg:"--samples" default:"11" help:"number of training samples (x = 0..samples-1)"`
	A           float64 `arg:"--a" default:"1" help:"ground truth coefficient of x^2"`
	B           float64 `arg:"--b" default:"0" help:"ground truth coefficient of x"`
	C           float64 `arg:"--c" default:"0" help:"ground truth constant"`
	Mode        string  `arg:"--mode" default:"quadratic" help:"model to fit: quadratic or linear"`
	Seed        uint64  `arg:"--seed" default:"0" help:"seed for the initial coefficients (0 = time seeded)"`
	PlotLimit   int     `arg:"--plot-limit" default:"60" help:"upper bound (exclusive) of the plotted and predicted range"`
	PredictFrom int     `arg:"--predict-from" default:"11" help:"first x to predict after training"`
	PNG         string  `arg:"--png" help:"write the plot to this PNG file"`
	Trace       string  `arg:"--trace" help:"write a compressed JSONL trace to this file"`
	Compression string  `arg:"--compression" default:"zstd" help:"trace compression: none, zstd, s2 or lz4"`
	LogFormat   string  `arg:"--log-format" default:"text" help:"log format: text or json"`
	Progress    bool    `arg:"--progress" help:"show an epoch progress bar on stderr"`
}

func (args) Version() string {
	return "helloai 0.1.0"
}

func (args) Description() string {
	return `Fit a polynomial to samples of a known curve with stochastic gradient descent, then extrapolate.`
}

func main() {
	var args args
	p := arg.MustParse(&args)

	mode := regression.ModelTypeFromString(args.Mode)
	if mode == regression.ModelType(-1) {
		p.Fail(fmt.Sprintf("unknown mode %q", args.Mode))
	}
	ct, err := format.ParseCompressionType(args.Compression)
	if err != nil {
		p.Fail(err.Error())
	}

	runID := uuid.New().String()
	logger := newLogger(args.LogFormat).With("run", runID)

	cfg := helloai.Config{
		Epochs:      args.Epochs,
		SampleCount: args.Samples,
		A:           args.A,
		B:           args.B,
		C:           args.C,
		Mode:        mode,
		PlotLimit:   args.PlotLimit,
		PredictFrom: args.PredictFrom,
	}
	if err := cfg.Validate(); err != nil {
		p.Fail(err.Error())
	}

	if err := run(cfg, args, ct, runID, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(logFormat string) *slog.Logger {
	if logFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func run(cfg helloai.Config, args args, ct format.CompressionType, runID string, logger *slog.Logger) error {
	sinks := observe.Multi{observe.NewSlogSink(logger)}
	opts := []helloai.Option{}

	seed := args.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts = append(opts, helloai.WithRandSource(rand.New(rand.NewPCG(seed, seed>>1))))
	logger.Info("starting", "mode", cfg.Mode.String(), "epochs", cfg.Epochs, "samples", cfg.SampleCount, "seed", seed)

	var trace *observe.TraceWriter
	var traceFile *os.File
	if args.Trace != "" {
		f, err := os.Create(args.Trace)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		defer f.Close()

		fingerprint := sample.Fingerprint(sample.Generate(cfg.A, cfg.B, cfg.C, cfg.SampleCount))
		trace, err = observe.NewTraceWriter(f, observe.TraceHeader{
			RunID:       runID,
			Model:       cfg.Mode.String(),
			Fingerprint: fmt.Sprintf("%016x", fingerprint),
		}, ct)
		if err != nil {
			return err
		}
		traceFile = f
		sinks = append(sinks, trace)
	}
	opts = append(opts, helloai.WithSink(sinks))

	var canvas *plot.Canvas
	if args.PNG != "" {
		var err error
		canvas, err = plot.NewCanvas(plot.DefaultCanvasConfig())
		if err != nil {
			return err
		}
		opts = append(opts, helloai.WithSurface(canvas))
	}

	var bar *pb.ProgressBar
	if args.Progress {
		bar = pb.New(cfg.Epochs)
		bar.Output = os.Stderr
		bar.Start()
		opts = append(opts, helloai.WithEpochHook(func(int, float64) { bar.Increment() }))
	}

	report, err := helloai.Run(cfg, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Printf("ground truth: %s\n", report.GroundTruth)
	fmt.Printf("learned:      %s\n", report.Evaluation.Formula)
	fmt.Printf("final MSE:    %.6f\n", report.Training.FinalMSE)
	fmt.Println(report.Evaluation)
	for _, p := range report.Predictions {
		fmt.Printf("predict x=%g y=%.4f\n", p.X, p.Y)
	}

	if trace != nil {
		if err := trace.Close(); err != nil {
			return fmt.Errorf("failed to write trace: %w", err)
		}
		if err := traceFile.Sync(); err != nil {
			return fmt.Errorf("failed to sync trace: %w", err)
		}
		stats := trace.Stats()
		logger.Info("trace written",
			"path", args.Trace,
			"compression", stats.Algorithm.String(),
			"bytes", stats.CompressedSize,
			"ratio", stats.CompressionRatio(),
		)
	}

	if canvas != nil {
		if err := writePNG(args.PNG, canvas); err != nil {
			return err
		}
		logger.Info("plot written", "path", args.PNG, "plotted", canvas.Plotted(), "clipped", canvas.Clipped())
	}

	return nil
}

func writePNG(path string, canvas *plot.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create png: %w", err)
	}
	defer f.Close()

	if err := canvas.WritePNG(f); err != nil {
		return err
	}

	return f.Close()
}
