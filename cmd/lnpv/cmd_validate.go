package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/export"
	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/sensitivity"
	"github.com/openimpact/lnpv/internal/validate"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the plausibility check battery over a full analysis",
		Long: `Run the complete pipeline - baseline, Monte Carlo, break-even - and
check the outputs for plausibility:

  - All 32 scenarios present with finite, positive LNPVs in a credible band
  - South ranks highest and beats East within each intervention
  - The apprenticeship premium decays monotonically and halves at its half-life
  - The RTE placement/returns decomposition sums to the total
  - Monte Carlo medians sit near the deterministic baseline
  - Break-even arithmetic inverts exactly
  - Female/male LNPV ratios stay in a credible range

A failing check is reported, not fatal: the full battery always runs.

Examples:
  lnpv validate
  lnpv validate --json
  lnpv validate --iterations 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			mcCfg := sensitivity.MonteCarloConfig{
				Iterations: rt.cfg.MonteCarlo.Iterations,
				Seed:       rt.cfg.MonteCarlo.Seed,
				Workers:    rt.cfg.MonteCarlo.Workers,
			}
			if v, _ := cmd.Flags().GetInt("iterations"); v > 0 {
				mcCfg.Iterations = v
			}

			ctx := context.Background()
			calc := model.NewCalculator(rt.reg, rt.modelConfig())

			baseline, err := calc.All(ctx)
			if err != nil {
				return fmt.Errorf("computing baseline: %w", err)
			}
			rt.log.Debug("baseline computed", "scenarios", len(baseline))

			var mc []sensitivity.MonteCarloResult
			for _, iv := range model.Interventions() {
				res, err := sensitivity.MonteCarlo(ctx, rt.reg, string(iv),
					sensitivity.AverageLNPV(model.ScenariosFor(iv), rt.modelConfig()), mcCfg)
				if err != nil {
					return fmt.Errorf("monte carlo for %s: %w", iv, err)
				}
				mc = append(mc, res)
			}
			rt.log.Debug("monte carlo computed", "iterations", mcCfg.Iterations)

			var breakEven []sensitivity.BreakEvenRow
			for _, r := range baseline {
				rows, err := sensitivity.BreakEven(r.Scenario.Key(), r.LNPV, rt.cfg.Sensitivity.BCRTargets)
				if err != nil {
					return err
				}
				breakEven = append(breakEven, rows...)
			}

			curve, err := model.PremiumCurve(rt.reg)
			if err != nil {
				return fmt.Errorf("computing premium curve: %w", err)
			}
			halflife, err := rt.reg.Value("apprentice_decay_halflife")
			if err != nil {
				return err
			}

			report := validate.Run(validate.Inputs{
				Baseline:     baseline,
				MonteCarlo:   mc,
				BreakEven:    breakEven,
				PremiumCurve: curve,
				Halflife:     halflife,
			})

			if csvOut {
				f, err := rt.resultFile("validation.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteValidation(f, report); err != nil {
					return err
				}
				rt.log.Info("wrote validation table", "path", f.Name())
			}

			if jsonOut {
				if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
					return err
				}
			} else {
				printReport(report)
			}

			if !report.Passed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().Int("iterations", 0, "Monte Carlo draws for the check battery (default from config)")
	cmd.Flags().Bool("csv", false, "Write validation.csv to the output directory")

	return cmd
}

func printReport(report validate.Report) {
	fmt.Printf("Validation battery (%d checks):\n\n", len(report.Checks))
	for _, check := range report.Checks {
		glyph := "✓"
		if !check.Passed {
			glyph = "✗"
		}
		fmt.Printf("%s %s\n", glyph, check.Name)
		for _, cr := range check.Criteria {
			if cr.Passed {
				continue
			}
			fmt.Printf("    ✗ %s: got %s, want %s\n", cr.Name, cr.Observed, cr.Expected)
		}
	}
	fmt.Println()
	if report.Passed {
		fmt.Println("All checks passed.")
	} else {
		failed := 0
		for _, check := range report.Checks {
			if !check.Passed {
				failed++
			}
		}
		fmt.Printf("%d of %d checks failed.\n", failed, len(report.Checks))
	}
}
