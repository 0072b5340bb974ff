package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

var compareDecimals int

var compareCmd = &cobra.Command{
	Use:   "compare [weight] [reps]",
	Short: "Show every formula's 1RM estimate side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, reps, err := parseSet(args)
		if err != nil {
			return err
		}
		decimals := resolveDecimals(cmd, compareDecimals)

		all, err := onerm.All(weight, reps, decimals)
		if err != nil {
			return fmt.Errorf("failed to compute formulas: %w", err)
		}
		average, err := onerm.OneRepMax(weight, reps, decimals, "")
		if err != nil {
			return fmt.Errorf("failed to compute average: %w", err)
		}

		out := cmd.OutOrStdout()
		unit := cfg.Estimate.Unit
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		printBoxedHeader(out, fmt.Sprintf("%s %s × %s", formatNumber(weight, -1), unit, formatNumber(reps, -1)))
		fmt.Fprintf(out, "  %-10s | %-14s | %s\n", "Formula", "1RM ("+unit+")", "Expression")
		fmt.Fprintln(out, "  "+strings.Repeat("─", 52))

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, f := range onerm.Formulas() {
			v := all[f]
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			fmt.Fprintf(out, "  %s | %-14s | %s\n",
				boldCyan(fmt.Sprintf("%-10s", f)), formatNumber(v, decimals), magenta(f.Expression()))
		}
		fmt.Fprintln(out)

		printMetric(out, "Average", formatNumber(average, decimals)+" "+unit)
		printMetric(out, "Spread", formatNumber(onerm.Round(hi-lo, decimals), decimals)+" "+unit)
		return nil
	},
}

func init() {
	compareCmd.Flags().IntVarP(&compareDecimals, "decimals", "d", onerm.DefaultDecimals, "Number of decimals to round to")
	rootCmd.AddCommand(compareCmd)
}
