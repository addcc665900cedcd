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
)

func newMonteCarloCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Simulate LNPV uncertainty bands per intervention",
		Long: `Resample every tier-1 and tier-2 parameter from its declared
distribution and aggregate the average LNPV per intervention over many
draws. Tier-3 parameters are measured data and stay fixed.

Runs are reproducible: the same seed gives the same statistics
regardless of worker count.

Examples:
  lnpv montecarlo
  lnpv montecarlo --iterations 10000 --seed 7
  lnpv montecarlo --scenario Apprenticeship/East/male/rural`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")
			scenarioKey, _ := cmd.Flags().GetString("scenario")

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
			if cmd.Flags().Changed("seed") {
				mcCfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
				mcCfg.Workers = v
			}

			ctx := context.Background()
			var results []sensitivity.MonteCarloResult

			if scenarioKey != "" {
				sc, err := parseScenario(scenarioKey)
				if err != nil {
					return err
				}
				res, err := sensitivity.MonteCarlo(ctx, rt.reg, sc.Key(),
					sensitivity.ScenarioLNPV(sc, rt.modelConfig()), mcCfg)
				if err != nil {
					return fmt.Errorf("monte carlo: %w", err)
				}
				results = append(results, res)
			} else {
				for _, iv := range model.Interventions() {
					res, err := sensitivity.MonteCarlo(ctx, rt.reg, string(iv),
						sensitivity.AverageLNPV(model.ScenariosFor(iv), rt.modelConfig()), mcCfg)
					if err != nil {
						return fmt.Errorf("monte carlo for %s: %w", iv, err)
					}
					results = append(results, res)
				}
			}

			for _, r := range results {
				rt.trace.Log(map[string]any{
					"event":      "monte_carlo",
					"subject":    r.Subject,
					"iterations": r.Iterations,
					"median":     r.Median,
					"p5":         r.P5,
					"p95":        r.P95,
				})
			}
			rt.log.Debug("monte carlo computed", "subjects", len(results), "iterations", mcCfg.Iterations, "seed", mcCfg.Seed)

			if csvOut {
				f, err := rt.resultFile("montecarlo.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteMonteCarlo(f, results); err != nil {
					return err
				}
				rt.log.Info("wrote monte carlo table", "path", f.Name())
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"results":    results,
					"iterations": mcCfg.Iterations,
					"seed":       mcCfg.Seed,
				})
			}

			fmt.Printf("Monte Carlo (%d iterations, seed %d):\n\n", mcCfg.Iterations, mcCfg.Seed)
			for _, r := range results {
				fmt.Printf("%s:\n", r.Subject)
				fmt.Printf("  median %s  mean %s  std %s\n", lakh(r.Median), lakh(r.Mean), lakh(r.Std))
				fmt.Printf("  90%% band [%s, %s]  50%% band [%s, %s]\n",
					lakh(r.P5), lakh(r.P95), lakh(r.P25), lakh(r.P75))
				fmt.Printf("  positive draws: %.1f%%\n\n", 100*r.FractionPositive)
			}
			return nil
		},
	}

	cmd.Flags().Int("iterations", 0, "Number of draws (default from config)")
	cmd.Flags().Int64("seed", 0, "Random seed (default from config)")
	cmd.Flags().Int("workers", 0, "Parallel workers (default from config)")
	cmd.Flags().String("scenario", "", "Single scenario key instead of intervention averages")
	cmd.Flags().Bool("csv", false, "Write montecarlo.csv to the output directory")

	return cmd
}
