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

func newBreakEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Derive maximum program cost per target benefit-cost ratio",
		Long: `For every scenario, derive the maximum per-participant program cost
that still clears each target benefit-cost ratio: max_cost = lnpv / bcr.

Examples:
  lnpv breakeven
  lnpv breakeven --bcr 1.5 --bcr 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			csvOut, _ := cmd.Flags().GetBool("csv")
			targets, _ := cmd.Flags().GetFloat64Slice("bcr")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if len(targets) == 0 {
				targets = rt.cfg.Sensitivity.BCRTargets
			}

			calc := model.NewCalculator(rt.reg, rt.modelConfig())
			results, err := calc.All(context.Background())
			if err != nil {
				return fmt.Errorf("computing baseline: %w", err)
			}

			var rows []sensitivity.BreakEvenRow
			for _, r := range results {
				scRows, err := sensitivity.BreakEven(r.Scenario.Key(), r.LNPV, targets)
				if err != nil {
					return err
				}
				rows = append(rows, scRows...)
			}
			rt.log.Debug("break-even computed", "rows", len(rows))

			if csvOut {
				f, err := rt.resultFile("breakeven.csv")
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteBreakEven(f, rows); err != nil {
					return err
				}
				rt.log.Info("wrote break-even table", "path", f.Name())
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"rows":    rows,
					"targets": targets,
					"count":   len(rows),
				})
			}

			fmt.Printf("Break-even program costs (targets %v):\n\n", targets)
			var current string
			for _, row := range rows {
				if row.Scenario != current {
					current = row.Scenario
					fmt.Printf("%s (LNPV %s):\n", row.Scenario, lakh(row.LNPV))
				}
				fmt.Printf("  BCR %.1f: max cost %s\n", row.TargetBCR, lakh(row.MaxCost))
			}
			return nil
		},
	}

	cmd.Flags().Float64Slice("bcr", nil, "Target benefit-cost ratios (default from config)")
	cmd.Flags().Bool("csv", false, "Write breakeven.csv to the output directory")

	return cmd
}
