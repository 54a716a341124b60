package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"frrconf/internal/clock"
	"frrconf/internal/config"
	"frrconf/internal/core"
	"frrconf/internal/logger"
)

var (
	// Global flags
	logLevel string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "frrconf",
	Short: "Edit sections of FRR router configuration files",
	Long: `frrconf locates sections of an FRR configuration by a start pattern and a
stop pattern and removes, replaces or inserts lines around them. Edits can be
given on the command line or as a YAML plan, reviewed as a diff and written back.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitConfig(); err != nil {
			return err
		}
		level := logLevel
		if level == "" {
			level = config.Current().LogLevel
		}
		if level != "" {
			logger.SetLevel(level)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.frrconf/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diffs")
}

// newEngine builds an engine journaling to the configured journal path.
func newEngine() *core.Engine {
	return core.NewEngine(core.NewFileJournalStore(config.Current().JournalPath), clock.RealClock{})
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
