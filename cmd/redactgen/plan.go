package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/redacted"
	"github.com/zoobzio/redacted/json"
	"github.com/zoobzio/redacted/yaml"
)

var planFormat string

// planCmd prints the classification of every struct type
var planCmd = &cobra.Command{
	Use:   "plan [dir]",
	Short: "Print how each field of each struct type would render",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := codecFor(planFormat)
		if err != nil {
			return err
		}

		r, err := newRunner()
		if err != nil {
			return err
		}
		plans, err := r.Plan(dirsOrDefault(args)[0])
		if err != nil {
			return err
		}

		out, err := redacted.Encode(codec, plans)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func codecFor(format string) (redacted.Codec, error) {
	switch format {
	case "json":
		return json.New(), nil
	case "yaml":
		return yaml.New(), nil
	default:
		return nil, fmt.Errorf("unknown format %q: want json or yaml", format)
	}
}
