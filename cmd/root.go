package cmd

import (
	"github.com/misterclayt0n/liftmax/internal/config"
	"github.com/spf13/cobra"
)

// skipConfig marks commands that run without loading the config file. They
// must work, or repair it, when the file is invalid.
const skipConfig = "liftmax/skip-config"

var (
	configPath string
	verbose    bool

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "liftmax",
	Short:         "Estimate one-rep maxes from submaximal sets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setDebug(verbose, cmd.ErrOrStderr())
		if cmd.Annotations[skipConfig] != "" {
			return nil
		}

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		debugf("config: decimals=%d formula=%q unit=%q", cfg.Estimate.Decimals, cfg.Estimate.Formula, cfg.Estimate.Unit)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ~/.config/liftmax/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
}
