package main

import (
	"fmt"
	"os"

	"github.com/b4shful/ClockCalc/pkg/config"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "clockcalc",
		Short: "ADC clock and sampling-time calculator",
		Long: `ClockCalc computes the ADC kernel-clock frequencies reachable through
the microcontroller's PLL and prescaler topology and searches them, combined
with the allowed sampling times, for the configuration closest to a target
sample rate.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "clockcalc.yaml", "Configuration file path")

	rootCmd.AddCommand(clocksCmd())
	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration named by --config, falling back to
// defaults when the file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
