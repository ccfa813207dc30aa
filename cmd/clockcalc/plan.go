package main

import (
	"fmt"

	"github.com/b4shful/ClockCalc/pkg/planner"
	"github.com/spf13/cobra"
)

var (
	planTarget float64
	planPolicy string
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Find the best ADC configuration for a target sample rate",
		Long: `Find the single ADC configuration whose achieved sample rate best
matches the target, under the chosen optimization policy.

Examples:
  # Closest match, favoring faster clocks among equals
  clockcalc plan --target 200000

  # Smallest error only
  clockcalc plan --target 200000 --policy delta

  # Fastest clock within 1.5x of the best achievable error
  clockcalc plan --target 200000 --policy highclock`,
		RunE: runPlan,
	}

	cmd.Flags().Float64Var(&planTarget, "target", 0, "Target sample rate (Hz)")
	cmd.Flags().StringVar(&planPolicy, "policy", "balanced", "Optimization policy: balanced, delta, highclock")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	policy, err := parsePolicy(planPolicy)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	best, err := planner.New(cfg).FindOptimalSettings(planTarget, policy)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), best)
	return nil
}

func parsePolicy(name string) (planner.Policy, error) {
	switch name {
	case "balanced":
		return planner.PolicyBalanced, nil
	case "delta":
		return planner.PolicyMinimizeDelta, nil
	case "highclock":
		return planner.PolicyPreferHighClock, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want balanced, delta or highclock)", name)
	}
}
