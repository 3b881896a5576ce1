package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/codeclean/config"
	"github.com/grovetools/codeclean/internal/display"
	"github.com/grovetools/codeclean/internal/lineio"
	"github.com/grovetools/codeclean/internal/telemetry"
	"github.com/grovetools/codeclean/internal/transform"
)

var ulogTransform = grovelogging.NewUnifiedLogger("codeclean.cmd.transform")

// transformFlags are shared by decode, squeeze and run.
type transformFlags struct {
	configFile   string
	onEmpty      string
	maxLineBytes int
	metricsFile  string
	logLevel     string
	quiet        bool
}

func (f *transformFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config-file", "", "YAML file with codeclean settings (layered over grove.yml)")
	cmd.Flags().StringVar(&f.onEmpty, "on-empty", "", "What to do with a line that has no binary digits: fail, skip or zero. Overrides config.")
	cmd.Flags().IntVar(&f.maxLineBytes, "max-line-bytes", 0, "Longest accepted input line in bytes, 0 for no limit. Overrides config.")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics to this file in Prometheus textfile format")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Level for per-line diagnostics on stderr. Overrides config.")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "Do not print the run summary")
}

// resolve loads the config and applies the flags that were set.
func (f *transformFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configFile)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("on-empty") {
		cfg.Transform.OnEmpty = f.onEmpty
	}
	if cmd.Flags().Changed("max-line-bytes") {
		cfg.Transform.MaxLineBytes = f.maxLineBytes
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	return cfg, cfg.Validate()
}

// runTransform applies the named transformation (or the configured default
// when name is empty) to args[0] and writes args[1].
func runTransform(cmd *cobra.Command, name string, args []string, f *transformFlags) error {
	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}

	if name == "" {
		name = cfg.Transform.Default
	}
	input, output := cfg.Transform.Input, cfg.Transform.Output
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}

	t, err := transform.New(name)
	if err != nil {
		return err
	}
	policy, err := lineio.ParseEmptyPolicy(cfg.Transform.OnEmpty)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	stats, runErr := lineio.TransformFile(ctx, input, output, t, lineio.Options{
		OnEmpty:      policy,
		MaxLineBytes: cfg.Transform.MaxLineBytes,
		Logger:       newLineLogger(cfg.LogLevel, name),
	})

	if cfg.MetricsFile != "" {
		rec := telemetry.NewRecorder()
		rec.Observe(stats, runErr)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil && runErr == nil {
			runErr = fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("%s %s -> %s: %w", name, input, output, runErr)
	}

	// A summary on stdout would end up inside the transformed stream.
	if f.quiet || output == lineio.StdioPath {
		return nil
	}
	ulogTransform.Info("Transform complete").
		Field("transform", name).
		Field("input", input).
		Field("output", output).
		Field("lines_read", stats.LinesRead).
		Field("lines_written", stats.LinesWritten).
		Field("lines_skipped", stats.LinesSkipped).
		Field("duration_ms", stats.Duration.Milliseconds()).
		Pretty(display.RunSummary(stats, input, output)).
		PrettyOnly().
		Log(ctx)
	return nil
}

func newLineLogger(level, transformName string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger.WithField("component", "codeclean.lineio."+transformName)
}
