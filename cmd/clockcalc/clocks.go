package main

import (
	"fmt"

	"github.com/b4shful/ClockCalc/pkg/clocktree"
	"github.com/spf13/cobra"
)

func clocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clocks",
		Short: "List all legal ADC kernel-clock frequencies",
		Long: `List every ADC kernel-clock frequency reachable through the chip's
clock tree, in descending order.`,
		RunE: runClocks,
	}
}

func runClocks(cmd *cobra.Command, _ []string) error {
	freqs := clocktree.Frequencies()

	fmt.Fprintf(cmd.OutOrStdout(), "%d legal ADC kernel-clock frequencies:\n", len(freqs))
	for _, f := range freqs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %12.4f MHz\n", f/1e6)
	}
	return nil
}
