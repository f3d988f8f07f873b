package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/roadworks/internal/config"
	"github.com/papapumpkin/roadworks/internal/inventory"
	"github.com/papapumpkin/roadworks/internal/report"
	"github.com/papapumpkin/roadworks/internal/tally"
)

// runReport decodes the whole inventory before rendering anything, so a bad
// row leaves stdout empty.
func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	segments, err := inventory.Read(cmd.InOrStdin(), cfg.Format())
	if err != nil {
		return fmt.Errorf("parsing inventory: %w", err)
	}
	logger.Debug("inventory decoded",
		zap.String("format", cfg.InputFormat),
		zap.Int("segments", len(segments)))

	t := tally.Fold(segments)
	logger.Debug("consumption accumulated",
		zap.Int("crystal", t.Crystal),
		zap.Int("metal_units", t.Metal.Units()),
		zap.Int("metal_amount", t.Metal.Total()),
		zap.Int("ceramic_units", t.Ceramic.Units()),
		zap.Int("ceramic_amount", t.Ceramic.Total()))

	if err := report.Render(cmd.OutOrStdout(), t); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// newLogger builds a console logger on stderr. Only warnings and errors are
// emitted unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}
