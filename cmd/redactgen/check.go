package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/redacted"
)

// checkCmd verifies generated files are current
var checkCmd = &cobra.Command{
	Use:   "check [dir...]",
	Short: "Fail when a generated file is missing or out of date",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		stale, err := r.Check(cmd.Context(), dirsOrDefault(args))
		if err != nil {
			return err
		}
		for _, s := range stale {
			fmt.Fprintf(cmd.OutOrStdout(), "stale %s (%s): %s\n", s.Path, s.Type, s.Reason)
		}
		if len(stale) > 0 {
			return fmt.Errorf("%d generated file(s): %w", len(stale), redacted.ErrStale)
		}
		return nil
	},
}
