package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"basket-reconciler/internal/config"
	"basket-reconciler/internal/diagnostic"
	"basket-reconciler/internal/pipeline"
)

// app holds what the persistent flags resolve to.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "basket-reconciler",
		Short: "Reconcile reinforcement basket labels with the coefficient dataset",
		Long: `basket-reconciler reads entity snapshots exported from a drawing and a
coefficient dataset (.xlsx, .csv or .db), and produces result tables and
annotation snapshots to import back into the drawing.

Existing output files are never overwritten; a numeric suffix is added.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and info diagnostics")

	root.AddCommand(
		newPairCmd(a),
		newCoefficientsCmd(a),
		newChaptersCmd(a),
		newWallsCmd(a),
		newConfigCmd(a),
	)

	return root
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		return err
	}

	res := config.Validate(cfg)
	if res.HasErrors() {
		return fmt.Errorf("invalid configuration: %w", res.Error())
	}

	logger, err := newLogger(cfg.Logging, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(stderr, "config warning: %s\n", w)
		logger.Warn("configuration warning", zap.String("key", w.Location), zap.String("message", w.Message))
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

func (a *app) options() pipeline.Options {
	return pipeline.Options{Config: a.cfg, Logger: a.logger}
}

// newLogger builds the production logger; verbose forces debug level.
func newLogger(cfg config.Logging, verbose bool) (*zap.Logger, error) {
	if !cfg.IsEnabled() && !verbose {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	if cfg.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, cfg.File)
	}

	return zc.Build()
}

// printReport writes the run summary and its diagnostics. Infos are shown
// only when verbose.
func printReport(w io.Writer, rep *pipeline.Report, verbose bool) {
	fmt.Fprintln(w, rep.Summary())

	for _, d := range rep.Diagnostics.All() {
		if d.Severity == diagnostic.DiagnosticInfo && !verbose {
			continue
		}

		fmt.Fprintf(w, "  %s: %s\n", d.Severity, d.String())
	}
}
