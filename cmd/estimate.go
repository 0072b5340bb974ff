package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

var (
	estimateFormula  string
	estimateDecimals int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [weight] [reps]",
	Short: "Estimate a 1RM with one formula, or the average of all of them",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, reps, err := parseSet(args)
		if err != nil {
			return err
		}

		formula, err := resolveFormula(cmd, estimateFormula)
		if err != nil {
			return err
		}
		decimals := resolveDecimals(cmd, estimateDecimals)
		debugf("estimate: weight=%v reps=%v formula=%q decimals=%d", weight, reps, formula, decimals)

		oneRM, err := onerm.OneRepMax(weight, reps, decimals, formula)
		if err != nil {
			return fmt.Errorf("failed to estimate 1RM: %w", err)
		}

		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s %s\n",
			boldCyan("Estimated 1RM"), yellow(formulaLabel(formula)),
			formatNumber(oneRM, decimals), cfg.Estimate.Unit)
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFormula, "formula", "f", "", "Formula to use (epley, brzycki, lombardi, mayhew, oconner, wathan, landers or average)")
	estimateCmd.Flags().IntVarP(&estimateDecimals, "decimals", "d", onerm.DefaultDecimals, "Number of decimals to round to")
	rootCmd.AddCommand(estimateCmd)
}
