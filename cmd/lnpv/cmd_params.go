package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/export"
	"github.com/openimpact/lnpv/internal/params"
)

func newParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show the active parameter table",
		Long: `Show every parameter in the active table: point value, sensitivity
bounds, uncertainty tier, sampling distribution, and source.

Use --export to write the table in the same CSV layout the engine loads,
so it can be edited and fed back in via --params.

Examples:
  lnpv params
  lnpv params --tier 1
  lnpv params --export custom.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			tier, _ := cmd.Flags().GetInt("tier")
			exportPath, _ := cmd.Flags().GetString("export")

			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if exportPath != "" {
				f, err := os.Create(exportPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", exportPath, err)
				}
				defer f.Close()
				if err := export.WriteParameters(f, rt.reg); err != nil {
					return err
				}
				rt.log.Info("wrote parameter table", "path", exportPath)
				return nil
			}

			var shown []params.Parameter
			if tier > 0 {
				shown = rt.reg.ByTier(tier)
			} else {
				for _, name := range rt.reg.Names() {
					p, err := rt.reg.Get(name)
					if err != nil {
						return err
					}
					shown = append(shown, p)
				}
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"parameters": shown,
					"count":      len(shown),
				})
			}

			if len(shown) == 0 {
				fmt.Println("No parameters match.")
				return nil
			}

			fmt.Printf("Parameters (%d):\n\n", len(shown))
			for _, p := range shown {
				fmt.Printf("%-28s %12g  [%g, %g]  tier %d  %s\n",
					p.Name, p.Value, p.Low, p.High, p.Tier, p.EffectiveDistribution())
				if p.Unit != "" || p.Source != "" {
					fmt.Printf("%28s %s", "", p.Unit)
					if p.Source != "" {
						fmt.Printf("  (%s)", p.Source)
					}
					fmt.Println()
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("tier", 0, "Show only one uncertainty tier (1-3)")
	cmd.Flags().String("export", "", "Write the table as CSV to this path")

	return cmd
}
