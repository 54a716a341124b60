package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"frrconf/internal/config"
	"frrconf/internal/core"
	"frrconf/internal/diff"
	"frrconf/internal/gitutil"
	"frrconf/internal/plan"
	"frrconf/internal/state"
	"frrconf/internal/tui"
)

// applyFlags are shared by every command that edits a file.
type applyFlags struct {
	write     bool
	showDiff  bool
	review    bool
	backup    bool
	print     bool
	gitCommit bool
	planFile  string
}

func (f *applyFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&f.showDiff, "diff", true, "print a unified diff of the changes")
	cmd.Flags().BoolVar(&f.review, "review", false, "review the diff interactively before writing")
	cmd.Flags().BoolVar(&f.backup, "backup", false, "keep a copy of the previous file (suffix from settings)")
	cmd.Flags().BoolVar(&f.print, "print", false, "print the resulting configuration")
	cmd.Flags().BoolVar(&f.gitCommit, "git-commit", false, "commit the written file in its git work tree")
}

// reviewFn is replaced in tests.
var reviewFn = tui.Review

var applyOpts applyFlags

func init() {
	cmd := newApplyCmd()
	applyOpts.register(cmd)
	cmd.Flags().StringVarP(&applyOpts.planFile, "plan", "p", "", "YAML edit plan")
	_ = cmd.MarkFlagRequired("plan")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <config_file>",
		Short: "Apply a YAML edit plan to a configuration file",
		Long: `apply runs every edit of a plan, in order, against a configuration file.

Example:
  frrconf apply /etc/frr/isisd.conf --plan drop-eth0.yaml
  frrconf apply /etc/frr/isisd.conf --plan drop-eth0.yaml --review --backup`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Load(applyOpts.planFile)
			if err != nil {
				return err
			}
			return runApply(out(cmd), newEngine(), args[0], p, applyOpts)
		},
	}
}

// runApply prepares p against path, reports what it did and, depending on
// flags, reviews and writes the result.
func runApply(w io.Writer, engine *core.Engine, path string, p *plan.Plan, flags applyFlags) error {
	settings := config.Current()
	if p.DefaultStop == "" {
		p.DefaultStop = settings.StopPattern
	}
	opts := core.Options{
		PlanFile:    flags.planFile,
		DiffContext: settings.DiffContext,
	}
	if flags.backup {
		opts.BackupSuffix = settings.BackupSuffix
	}

	o, err := engine.Prepare(path, p, opts)
	if err != nil {
		return err
	}
	for _, r := range o.Results {
		fmt.Fprintf(w, "%s %q: %d\n", r.Kind, r.Pattern, r.Count)
	}
	if flags.showDiff && o.Diff != "" {
		fmt.Fprint(w, renderDiff(o.Diff))
	}
	if flags.print {
		fmt.Fprintln(w, o.File.Config.String())
	}

	write := flags.write
	if flags.review {
		decision, err := reviewFn(o.File.Path, o.Diff)
		if err != nil {
			return err
		}
		if decision != tui.DecisionAccepted {
			fmt.Fprintln(w, "changes discarded")
			return nil
		}
		write = true
	}
	if !write {
		return nil
	}

	run, err := engine.Commit(o, opts)
	if err != nil {
		return err
	}
	if !run.Written {
		fmt.Fprintf(w, "no changes to %s (run %s)\n", run.File, run.ID)
		return nil
	}
	fmt.Fprintf(w, "wrote %s (run %s)\n", run.File, run.ID)

	if flags.gitCommit || settings.GitCommit {
		return commitRun(w, run)
	}
	return nil
}

// commitRun records a written run in git.
func commitRun(w io.Writer, run state.Run) error {
	ctx := context.Background()
	top, err := gitutil.TopLevel(ctx, run.File)
	if err != nil {
		return err
	}
	hash, err := gitutil.CommitFile(ctx, run.File, commitMessage(run))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "committed %s in %s\n", hash, top)
	return nil
}

func commitMessage(run state.Run) string {
	parts := make([]string, 0, len(run.Results))
	for _, r := range run.Results {
		if r.Count > 0 {
			parts = append(parts, fmt.Sprintf("%s %q (%d)", r.Kind, r.Pattern, r.Count))
		}
	}
	return fmt.Sprintf("frrconf: %s\n\nrun %s\n", strings.Join(parts, ", "), run.ID)
}

func renderDiff(unified string) string {
	if noColor {
		return unified
	}
	return diff.Colorize(unified)
}
