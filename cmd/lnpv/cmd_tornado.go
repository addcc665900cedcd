package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/export"
	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/sensitivity"
)

func newTornadoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tornado",
		Short: "Rank parameters by one-way LNPV swing",
		Long: `Sweep each parameter to its low and high bound with everything else
fixed, and rank parameters by the absolute LNPV swing.

The default metric is the average LNPV over one intervention's 16
scenarios; --scenario narrows it to a single cell.

Examples:
  lnpv tornado --intervention rte
  lnpv tornado --scenario RTE/South/female/urban --top 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")
			ivName, _ := cmd.Flags().GetString("intervention")
			scenarioKey, _ := cmd.Flags().GetString("scenario")
			top, _ := cmd.Flags().GetInt("top")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			metric, subject, err := rt.selectMetric(ivName, scenarioKey)
			if err != nil {
				return err
			}

			rows, err := sensitivity.Tornado(rt.reg, nil, metric)
			if err != nil {
				return fmt.Errorf("tornado sweep: %w", err)
			}
			rt.log.Debug("tornado computed", "subject", subject, "parameters", len(rows))

			if csvOut {
				f, err := rt.resultFile("tornado.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteTornado(f, rows); err != nil {
					return err
				}
				rt.log.Info("wrote tornado table", "path", f.Name())
			}

			shown := rows
			if top > 0 && top < len(shown) {
				shown = shown[:top]
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"subject": subject,
					"results": shown,
					"count":   len(shown),
				})
			}

			fmt.Printf("Tornado for %s (baseline %s):\n\n", subject, lakh(rows[0].Baseline))
			for _, r := range shown {
				if r.Err != nil {
					fmt.Printf("   -. %-28s error: %v\n", r.Parameter, r.Err)
					continue
				}
				fmt.Printf("  %2d. %-28s swing %10s   [%s, %s]\n",
					r.Rank, r.Parameter, lakh(r.Swing), lakh(r.LowLNPV), lakh(r.HighLNPV))
			}
			return nil
		},
	}

	cmd.Flags().String("intervention", "rte", "Intervention to average over (rte or apprenticeship)")
	cmd.Flags().String("scenario", "", "Single scenario key instead of an intervention average")
	cmd.Flags().Int("top", 0, "Show only the N largest swings (0 = all)")
	cmd.Flags().Bool("csv", false, "Write tornado.csv to the output directory")

	return cmd
}

// selectMetric builds the figure-of-merit for sweeps: one scenario's LNPV
// when a key is given, otherwise the intervention average.
func (rt *runtime) selectMetric(ivName, scenarioKey string) (sensitivity.Metric, string, error) {
	if scenarioKey != "" {
		sc, err := parseScenario(scenarioKey)
		if err != nil {
			return nil, "", err
		}
		return sensitivity.ScenarioLNPV(sc, rt.modelConfig()), sc.Key(), nil
	}

	iv, err := parseIntervention(ivName)
	if err != nil {
		return nil, "", err
	}
	return sensitivity.AverageLNPV(model.ScenariosFor(iv), rt.modelConfig()), string(iv) + " average", nil
}
