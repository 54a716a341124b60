package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"frrconf/internal/rewrite"
	"frrconf/pkg/frr"
)

var findFrom int

func init() {
	cmd := newFindCmd()
	cmd.Flags().IntVar(&findFrom, "from", 1, "first line to search, counting from 1")
	rootCmd.AddCommand(cmd)
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <config_file> <pattern>",
		Short: "List the lines matching a pattern exactly",
		Long: `find prints the line number and text of every line that matches
pattern in full.

Example:
  frrconf find bgpd.conf ' neighbor .* remote-as 65001'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(out(cmd), args[0], args[1], findFrom-1)
		},
	}
}

func runFind(w io.Writer, path, pattern string, startAt int) error {
	f, err := rewrite.ReadConfigFile(path)
	if err != nil {
		return err
	}
	lines := f.Config.Lines()
	idx, err := frr.FindElements(lines, pattern, startAt)
	if err != nil {
		return err
	}
	if len(idx) == 0 {
		fmt.Fprintln(w, "No matching lines.")
		return nil
	}
	for _, i := range idx {
		fmt.Fprintf(w, "%4d %s\n", i+1, lines[i])
	}
	return nil
}
