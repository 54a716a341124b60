package cmd

import (
	"github.com/spf13/cobra"

	"frrconf/internal/plan"
)

var (
	insertOpts     applyFlags
	insertRequired bool
)

func init() {
	cmd := newInsertBeforeCmd()
	insertOpts.register(cmd)
	cmd.Flags().BoolVar(&insertRequired, "required", false, "fail when no line matches")
	rootCmd.AddCommand(cmd)
}

func newInsertBeforeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert-before <config_file> <pattern> <line>...",
		Short: "Insert lines before the first line matching a pattern",
		Long: `insert-before adds the given lines right before the first line that
matches pattern exactly.

Example:
  frrconf insert-before bgpd.conf 'line vty' 'router bgp 65000' '!' -w`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := plan.New(plan.Op{
				Kind:     plan.KindBefore,
				Before:   args[1],
				Addition: args[2:],
				Required: insertRequired,
			})
			return runApply(out(cmd), newEngine(), args[0], p, insertOpts)
		},
	}
}
