package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftmax/onerm"
	"github.com/spf13/cobra"
)

var formulasCmd = &cobra.Command{
	Use:         "formulas",
	Short:       "List the supported 1RM formulas (w = weight, r = reps)",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, f := range onerm.Formulas() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s\n", boldGreen(fmt.Sprintf("%-9s", f)), f.Expression())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formulasCmd)
}
