package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/redacted/internal/runner"
)

var watch bool

// generateCmd writes generated files
var generateCmd = &cobra.Command{
	Use:   "generate [dir...]",
	Short: "Write <type>_redacted.go files for annotated types",
	Long: `Generates one file per struct type with at least one redacted field.
Directories are processed concurrently. Files whose content is already
current are left untouched.

With --watch, the directories are regenerated on every source change until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, dirsOrDefault(args))
	},
}

func runGenerate(cmd *cobra.Command, dirs []string) error {
	r, err := newRunner()
	if err != nil {
		return err
	}

	if watch {
		return r.Watch(cmd.Context(), dirs, func(results []runner.Result, err error) {
			if err == nil {
				printResults(cmd, results)
			}
		})
	}

	results, err := r.Generate(cmd.Context(), dirs)
	if err != nil {
		return err
	}
	printResults(cmd, results)
	logger.Debug("generation complete", zap.Int("files", len(results)))
	return nil
}

func printResults(cmd *cobra.Command, results []runner.Result) {
	for _, res := range results {
		state := "unchanged"
		if res.Written {
			state = "wrote"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", state, res.Path, res.Type)
	}
}
