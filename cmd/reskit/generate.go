package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reskit/reskit/internal/cli/config"
	"github.com/reskit/reskit/internal/cli/ui"
	"github.com/reskit/reskit/internal/collector"
	"github.com/reskit/reskit/internal/pipeline"
)

var (
	generateVerbose bool
	generateNoColor bool
)

func init() {
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Show detailed pipeline tracing")
	generateCmd.Flags().BoolVar(&generateNoColor, "no-color", false, "Disable colored output")
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Generate resource accessors",
	Long:    "Collect the project's declared resources and rewrite the generated accessor file if it changed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// runGenerate performs one generation pass. Shared with the watch command.
func runGenerate() error {
	start := time.Now()
	opts := ui.Options{NoColor: generateNoColor}

	cfg, err := config.Load()
	if err != nil {
		ui.WriteError(os.Stderr, err, opts)
		return fmt.Errorf("generation failed")
	}

	out, err := pipeline.New(cfg, newCollector(cfg), newLogger()).Run()
	if err != nil {
		ui.WriteError(os.Stderr, err, opts)
		return fmt.Errorf("generation failed")
	}
	ui.WriteWarnings(os.Stderr, out.Warnings, opts)

	elapsed := time.Since(start)
	if out.Wrote || out.TestWrote {
		ui.WriteSuccess(os.Stdout, fmt.Sprintf("Generated %s in %.2fs", cfg.Output, elapsed.Seconds()), opts)
	} else {
		ui.WriteSuccess(os.Stdout, fmt.Sprintf("%s up to date (%.2fs)", cfg.Output, elapsed.Seconds()), opts)
	}
	return nil
}

func newCollector(cfg *config.Config) *collector.FS {
	return &collector.FS{
		Roots:          cfg.Resources,
		Ignore:         cfg.Ignore,
		SettingsKeys:   cfg.SettingsKeys,
		Configurations: cfg.Configurations,
	}
}

// newLogger returns a development logger under --verbose, a no-op logger
// otherwise.
func newLogger() *zap.Logger {
	if !generateVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
