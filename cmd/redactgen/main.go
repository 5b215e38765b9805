// Command redactgen generates String methods that mask redacted fields.
//
// Typical use is a go:generate directive next to the annotated types:
//
//	//go:generate redactgen generate .
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/redacted/internal/config"
	"github.com/zoobzio/redacted/internal/runner"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "redactgen",
	Short: "Generate String methods that mask redacted struct fields",
	Long: `redactgen reads the Go package in each directory, finds struct types with
fields tagged redacted, and writes a <type>_redacted.go file declaring a
type that embeds the original and renders it with those fields masked.

Fields are marked by tag key only; the value is ignored:

  Password string ` + "`redacted:\"true\"`" + `

Run without a subcommand to generate the current directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = buildLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, []string{"."})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default .redactgen.yaml if present)")

	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate when sources change")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "yaml", "Output format: json or yaml")

	rootCmd.AddCommand(generateCmd, planCmd, checkCmd)
}

// buildLogger creates the zap logger from config.
func buildLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// newRunner builds a runner from the loaded config.
func newRunner() (*runner.Runner, error) {
	return runner.New(cfg, logger)
}

// dirsOrDefault returns args, or the current directory when empty.
func dirsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
