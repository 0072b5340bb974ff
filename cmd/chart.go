package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftmax/internal/chart"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

var (
	chartFormula     string
	chartPercentages string
	chartIncrement   float64
	chartDecimals    int
)

var chartCmd = &cobra.Command{
	Use:   "chart [weight] [reps]",
	Short: "Estimate a 1RM and print working loads at a range of percentages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, reps, err := parseSet(args)
		if err != nil {
			return err
		}
		formula, err := resolveFormula(cmd, chartFormula)
		if err != nil {
			return err
		}

		percentages := cfg.Chart.Percentages
		if cmd.Flags().Changed("percentages") {
			if percentages, err = parsePercentages(chartPercentages); err != nil {
				return err
			}
		}
		increment := cfg.Chart.Increment
		if cmd.Flags().Changed("increment") {
			increment = chartIncrement
		}

		decimals := resolveDecimals(cmd, chartDecimals)
		oneRM, err := onerm.OneRepMax(weight, reps, decimals, formula)
		if err != nil {
			return fmt.Errorf("failed to estimate 1RM: %w", err)
		}

		rows, err := chart.Build(oneRM, percentages, increment)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		unit := cfg.Estimate.Unit
		blue := color.New(color.FgBlue, color.Bold).SprintFunc()

		printBoxedHeader(out, "LOAD CHART")
		printMetric(out, "Estimated 1RM ("+formulaLabel(formula)+")", formatNumber(oneRM, decimals)+" "+unit)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-6s | %s\n", "%1RM", "Load ("+unit+")")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 22))
		// Plate rounded loads keep the precision of the increment.
		loadDecimals := decimals
		if increment > 0 {
			loadDecimals = decimalPlaces(increment)
		}
		for _, r := range rows {
			fmt.Fprintf(out, "  %s | %s\n", blue(fmt.Sprintf("%-6s", formatNumber(r.Percent, -1)+"%")), formatNumber(onerm.Round(r.Load, loadDecimals), loadDecimals))
		}
		return nil
	},
}

// decimalPlaces counts the digits after the point in the shortest form of v.
func decimalPlaces(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func parsePercentages(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("Invalid percentage %q", field)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("No percentages given")
	}
	return out, nil
}

func init() {
	chartCmd.Flags().StringVarP(&chartFormula, "formula", "f", "", "Formula to use (defaults to the configured one, or the average)")
	chartCmd.Flags().StringVarP(&chartPercentages, "percentages", "p", "", "Comma separated percentages of the 1RM, e.g. 90,80,70")
	chartCmd.Flags().IntVarP(&chartDecimals, "decimals", "d", onerm.DefaultDecimals, "Number of decimals to round the 1RM to")
	chartCmd.Flags().Float64VarP(&chartIncrement, "increment", "i", 0, "Round loads to this increment (0 disables rounding)")
	rootCmd.AddCommand(chartCmd)
}
