package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lnpv",
		Short: "Lifetime earnings impact engine for education-to-employment programs",
		Long: `lnpv estimates the lifetime net present value of two interventions -
RTE school vouchers and formal apprenticeships - across Indian regions,
genders, and locations.

It computes deterministic per-scenario baselines, tornado and two-way
sensitivity sweeps, Monte Carlo uncertainty bands, break-even program
costs, and a plausibility check battery over all of the above.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.lnpv/config.yaml)")
	rootCmd.PersistentFlags().String("params", "", "Parameter table CSV (default: shipped estimates)")
	rootCmd.PersistentFlags().String("output", "", "Directory for result CSVs")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newBaselineCmd(),
		newTornadoCmd(),
		newTwoWayCmd(),
		newMonteCarloCmd(),
		newBreakEvenCmd(),
		newValidateCmd(),
		newParamsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("lnpv version %s\n", version)
			}
		},
	}
}
