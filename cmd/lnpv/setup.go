package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openimpact/lnpv/internal/config"
	"github.com/openimpact/lnpv/internal/logging"
	"github.com/openimpact/lnpv/internal/model"
	"github.com/openimpact/lnpv/internal/params"
)

// runtime bundles everything a subcommand needs: resolved configuration,
// the parameter registry, and the loggers.
type runtime struct {
	cfg   *config.Config
	reg   *params.Registry
	log   *slog.Logger
	trace *logging.TraceLogger
}

// newRuntime resolves configuration (file, env, then flags) and loads the
// parameter table. Flags win over everything.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.LoadFromFile(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("params"); v != "" {
		cfg.Parameters.File = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output.Dir = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := params.Defaults()
	if cfg.Parameters.File != "" {
		reg, err = params.LoadFile(cfg.Parameters.File)
		if err != nil {
			return nil, fmt.Errorf("loading parameter table: %w", err)
		}
	}

	return &runtime{
		cfg:   cfg,
		reg:   reg,
		log:   logging.NewLogger(cfg.Logging.Level, os.Stderr),
		trace: logging.NewTraceLogger(cfg.Output.Dir, cfg.Logging.Level),
	}, nil
}

// close releases the trace log, if any.
func (rt *runtime) close() {
	rt.trace.Close()
}

// modelConfig maps the loaded configuration onto the calculator.
func (rt *runtime) modelConfig() model.Config {
	return model.Config{
		Regional:          model.DefaultRegionalAdjustments(),
		TrainingYear:      rt.cfg.Model.TrainingYear,
		WageFloorFraction: rt.cfg.Model.WageFloorFraction,
	}
}

// resultFile creates <output.dir>/<name> for a CSV writer.
func (rt *runtime) resultFile(name string) (*os.File, error) {
	if err := os.MkdirAll(rt.cfg.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(rt.cfg.Output.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

// parseIntervention accepts the canonical names case-insensitively, plus
// the short form "apprentice".
func parseIntervention(s string) (model.Intervention, error) {
	switch strings.ToLower(s) {
	case "rte":
		return model.RTE, nil
	case "apprenticeship", "apprentice":
		return model.Apprenticeship, nil
	}
	return "", fmt.Errorf("invalid intervention: %s (must be rte or apprenticeship)", s)
}

// parseScenario parses the canonical "intervention/region/gender/location"
// key, case-insensitively.
func parseScenario(key string) (model.Scenario, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 4 {
		return model.Scenario{}, fmt.Errorf("invalid scenario key: %s (want intervention/region/gender/location)", key)
	}

	iv, err := parseIntervention(parts[0])
	if err != nil {
		return model.Scenario{}, err
	}

	sc := model.Scenario{
		Intervention: iv,
		Region:       model.Region(title(parts[1])),
		Gender:       model.Gender(strings.ToLower(parts[2])),
		Location:     model.Location(strings.ToLower(parts[3])),
	}
	if err := sc.Validate(); err != nil {
		return model.Scenario{}, fmt.Errorf("invalid scenario key %s: %w", key, err)
	}
	return sc, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// lakh formats an INR amount in lakhs, the unit stakeholders read.
func lakh(v float64) string {
	return fmt.Sprintf("₹%.2fL", v/100000)
}
