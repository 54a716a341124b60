package cmd

import (
	"github.com/spf13/cobra"

	"frrconf/internal/plan"
	"frrconf/pkg/frr"
)

var (
	removeOpts     applyFlags
	removeStop     string
	removeStopMark bool
	removeCount    int
	removeReplace  []string
	removeRequired bool
)

func init() {
	cmd := newRemoveCmd()
	removeOpts.register(cmd)
	cmd.Flags().StringVar(&removeStop, "stop", "", "pattern of the line ending the section (default from settings)")
	cmd.Flags().BoolVar(&removeStopMark, "remove-stop-mark", false, "also remove the line ending the section")
	cmd.Flags().IntVarP(&removeCount, "count", "n", 0, "maximum number of sections to edit (0 = all)")
	cmd.Flags().StringArrayVar(&removeReplace, "replace", nil, "replacement line, repeat for several lines")
	cmd.Flags().BoolVar(&removeRequired, "required", false, "fail when no section matches")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <config_file> <start_pattern>",
		Short: "Remove or replace the sections starting with a pattern",
		Long: `remove deletes every section whose first line matches start_pattern
exactly, up to the line matching --stop. With --replace the section is replaced.

Example:
  frrconf remove isisd.conf 'interface eth\d+' --remove-stop-mark
  frrconf remove isisd.conf 'router isis SR' --replace 'router isis SR' --replace ' is-type level-2' -w`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := plan.New(plan.Op{
				Kind: plan.KindModify,
				Edit: frr.Edit{
					Start:          args[1],
					Stop:           removeStop,
					Replacement:    removeReplace,
					RemoveStopMark: removeStopMark,
					Count:          removeCount,
				},
				Required: removeRequired,
			})
			return runApply(out(cmd), newEngine(), args[0], p, removeOpts)
		},
	}
}
