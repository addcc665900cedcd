package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/export"
	"github.com/openimpact/lnpv/internal/sensitivity"
)

func newTwoWayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twoway <x-parameter> <y-parameter>",
		Short: "Evaluate the LNPV over a two-parameter grid",
		Long: `Evaluate the metric over the Cartesian product of two parameters'
sensitivity ranges, for heatmap-style inspection of interactions.

With the minimum 3 points per axis the grid is {low, baseline, high},
so the deterministic baseline always appears as the center cell.

Examples:
  lnpv twoway p_formal_rte discount_rate
  lnpv twoway mincer_return test_score_to_years --points 5 --scenario RTE/South/female/urban`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")
			ivName, _ := cmd.Flags().GetString("intervention")
			scenarioKey, _ := cmd.Flags().GetString("scenario")
			points, _ := cmd.Flags().GetInt("points")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if points == 0 {
				points = rt.cfg.Sensitivity.GridPoints
			}

			metric, subject, err := rt.selectMetric(ivName, scenarioKey)
			if err != nil {
				return err
			}

			grid, err := sensitivity.TwoWay(rt.reg, args[0], args[1], points, metric)
			if err != nil {
				return fmt.Errorf("two-way sweep: %w", err)
			}
			rt.log.Debug("two-way grid computed", "subject", subject,
				"x", grid.XParameter, "y", grid.YParameter, "points", points)

			if csvOut {
				f, err := rt.resultFile("twoway.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteTwoWay(f, grid); err != nil {
					return err
				}
				rt.log.Info("wrote two-way table", "path", f.Name())
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"subject": subject,
					"grid":    grid,
				})
			}

			fmt.Printf("Two-way grid for %s:\n\n", subject)
			fmt.Printf("%24s", grid.YParameter+" ->")
			for _, yv := range grid.YValues {
				fmt.Printf("  %10.4g", yv)
			}
			fmt.Println()
			for i, xv := range grid.XValues {
				fmt.Printf("%-14s %9.4g", grid.XParameter, xv)
				for j := range grid.YValues {
					fmt.Printf("  %10s", lakh(grid.Values[i][j]))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().String("intervention", "rte", "Intervention to average over (rte or apprenticeship)")
	cmd.Flags().String("scenario", "", "Single scenario key instead of an intervention average")
	cmd.Flags().Int("points", 0, "Grid points per axis (default from config, minimum 3)")
	cmd.Flags().Bool("csv", false, "Write twoway.csv to the output directory")

	return cmd
}
