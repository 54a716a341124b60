package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"frrconf/internal/config"
	"frrconf/internal/rewrite"
	"frrconf/pkg/frr"
)

// previewWidth is the display width of the first line shown per block.
const previewWidth = 60

var blocksStop string

func init() {
	cmd := newBlocksCmd()
	cmd.Flags().StringVar(&blocksStop, "stop", "", "pattern of the line ending a block (default from settings)")
	rootCmd.AddCommand(cmd)
}

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks <config_file> <start_pattern>",
		Short: "List the blocks starting with a pattern",
		Long: `blocks prints the start and stop line of every block whose first line
matches start_pattern and that ends at a line matching --stop.

Example:
  frrconf blocks isisd.conf 'interface .*' --stop '!'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := blocksStop
			if stop == "" {
				stop = config.Current().StopPattern
			}
			return runBlocks(out(cmd), args[0], args[1], stop)
		},
	}
}

func runBlocks(w io.Writer, path, start, stop string) error {
	f, err := rewrite.ReadConfigFile(path)
	if err != nil {
		return err
	}
	lines := f.Config.Lines()
	blocks, err := frr.FindBlocks(lines, start, stop)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No blocks found.")
		return nil
	}
	for _, b := range blocks {
		fmt.Fprintf(w, "%4d-%-4d %s\n", b.Start+1, b.Stop+1, runewidth.Truncate(lines[b.Start], previewWidth, "…"))
	}
	return nil
}
