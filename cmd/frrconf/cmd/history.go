package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"frrconf/internal/core"
)

var historyJSON bool

func init() {
	cmd := newHistoryCmd()
	cmd.Flags().BoolVar(&historyJSON, "json", false, "print the runs as JSON")
	rootCmd.AddCommand(cmd)
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [config_file]",
		Short: "Show the runs recorded in the journal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runHistory(out(cmd), newEngine(), path, historyJSON)
		},
	}
}

func runHistory(w io.Writer, engine *core.Engine, path string, asJSON bool) error {
	runs, err := engine.History(path)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		status := "unchanged"
		if r.Written {
			status = "written"
		}
		fmt.Fprintf(w, "%s  %s  %-9s %3d  %s\n", r.ID, r.At.Local().Format(time.DateTime), status, r.Replacements(), r.File)
	}
	return nil
}
