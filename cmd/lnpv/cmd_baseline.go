package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/export"
	"github.com/openimpact/lnpv/internal/model"
)

func newBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Compute deterministic LNPV for all 32 scenarios",
		Long: `Compute the lifetime net present value for every scenario in the
intervention x region x gender x location cross product, using the point
value of every parameter.

RTE scenarios additionally carry the placement/returns decomposition.

Examples:
  lnpv baseline
  lnpv baseline --json
  lnpv baseline --csv --output results/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			calc := model.NewCalculator(rt.reg, rt.modelConfig())
			results, err := calc.All(context.Background())
			if err != nil {
				return fmt.Errorf("computing baseline: %w", err)
			}

			for _, r := range results {
				rt.trace.Log(map[string]any{
					"event":              "baseline_scenario",
					"scenario":           r.Scenario.Key(),
					"lnpv":               r.LNPV,
					"p_formal_treatment": r.PFormalTreatment,
					"p_formal_control":   r.PFormalControl,
				})
			}
			rt.log.Debug("baseline computed", "scenarios", len(results))

			if csvOut {
				f, err := rt.resultFile("baseline.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteBaseline(f, results); err != nil {
					return err
				}
				rt.log.Info("wrote baseline table", "path", f.Name())
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"results": results,
					"count":   len(results),
				})
			}

			fmt.Printf("Baseline LNPV (%d scenarios):\n\n", len(results))
			var current model.Intervention
			for _, r := range results {
				if r.Scenario.Intervention != current {
					current = r.Scenario.Intervention
					fmt.Printf("%s:\n", current)
				}
				fmt.Printf("  %-28s %12s", scenarioLabel(r.Scenario), lakh(r.LNPV))
				if r.Scenario.Intervention == model.RTE {
					fmt.Printf("   (placement %s, returns %s)", lakh(r.PlacementEffect), lakh(r.MincerEffect))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().Bool("csv", false, "Write baseline.csv to the output directory")

	return cmd
}

func scenarioLabel(sc model.Scenario) string {
	return fmt.Sprintf("%s %s %s", sc.Region, sc.Location, sc.Gender)
}
