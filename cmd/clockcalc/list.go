package main

import (
	"fmt"

	"github.com/b4shful/ClockCalc/pkg/planner"
	"github.com/spf13/cobra"
)

var (
	listTarget float64
	listMax    int
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the closest ADC configurations for a target sample rate",
		Long: `List the configurations closest to the target sample rate, ordered by
ascending error and then by descending clock frequency.

Example:
  clockcalc list --target 200000 --max 5`,
		RunE: runList,
	}

	cmd.Flags().Float64Var(&listTarget, "target", 0, "Target sample rate (Hz)")
	cmd.Flags().IntVar(&listMax, "max", 0, "Maximum number of results (default from config)")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	maxResults := listMax
	if maxResults <= 0 {
		maxResults = cfg.Search.MaxResults
	}

	results := planner.New(cfg).FindMultipleSettings(listTarget, maxResults)
	if len(results) == 0 {
		return planner.ErrNoCandidates
	}

	for i, s := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, s)
	}
	return nil
}
