package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftmax/internal/batch"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

var (
	batchOutput   string
	batchFormula  string
	batchDecimals int
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Estimate the 1RM of every [[set]] in a TOML file and write a TOML report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lifts, err := batch.ReadFile(args[0])
		if err != nil {
			return err
		}

		formula, err := resolveFormula(cmd, batchFormula)
		if err != nil {
			return err
		}
		opts := batch.Options{
			Decimals: resolveDecimals(cmd, batchDecimals),
			Formula:  formula,
			Unit:     cfg.Estimate.Unit,
		}
		debugf("batch: %d sets from %s", len(lifts), args[0])

		report, err := batch.Run(lifts, opts)
		if err != nil {
			return fmt.Errorf("failed to estimate batch: %w", err)
		}

		if batchOutput == "" {
			return batch.Write(cmd.OutOrStdout(), report)
		}
		if err := batch.WriteFile(batchOutput, report); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Estimated %d sets, report %s written to %s\n", len(report.Estimates), report.ReportID, batchOutput)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write the report to this file instead of stdout")
	batchCmd.Flags().StringVarP(&batchFormula, "formula", "f", "", "Formula for sets that do not name one (defaults to the configured one, or the average)")
	batchCmd.Flags().IntVarP(&batchDecimals, "decimals", "d", onerm.DefaultDecimals, "Number of decimals to round to")
	rootCmd.AddCommand(batchCmd)
}
