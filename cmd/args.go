package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/liftmax/internal/batch"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

// parseSet reads the WEIGHT REPS positional arguments.
func parseSet(args []string) (weight, reps float64, err error) {
	weight, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Invalid weight %q", args[0])
	}
	reps, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Invalid reps %q", args[1])
	}
	return weight, reps, nil
}

// parseFormulaFlag accepts a formula tag, or "" / "average" for the average.
func parseFormulaFlag(s string) (onerm.Formula, error) {
	if s == "" || strings.EqualFold(strings.TrimSpace(s), batch.AverageLabel) {
		return "", nil
	}
	return onerm.ParseFormula(s)
}

// resolveDecimals prefers the --decimals flag over the config.
func resolveDecimals(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("decimals") {
		return flagValue
	}
	return cfg.Estimate.Decimals
}

// resolveFormula prefers the --formula flag over the config.
func resolveFormula(cmd *cobra.Command, flagValue string) (onerm.Formula, error) {
	if cmd.Flags().Changed("formula") {
		return parseFormulaFlag(flagValue)
	}
	return cfg.Formula()
}

func formulaLabel(f onerm.Formula) string {
	if f == "" {
		return batch.AverageLabel
	}
	return f.String()
}

// formatNumber prints v with exactly decimals places.
func formatNumber(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
