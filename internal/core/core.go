// Package core ties plans, files, diffs and the journal together for the
// command line tool.
package core

import (
	"path/filepath"
	"strings"

	"github.com/samber/oops"

	"frrconf/internal/clock"
	"frrconf/internal/diff"
	"frrconf/internal/logger"
	"frrconf/internal/plan"
	"frrconf/internal/rewrite"
	"frrconf/internal/state"
)

var log = logger.GetLogger()

// Options controls how a plan is applied to a file.
type Options struct {
	// PlanFile is recorded in the journal, it is not read.
	PlanFile string
	// Write stores the result on disk and records it in the journal.
	Write bool
	// BackupSuffix, when set, keeps a copy of the previous file.
	BackupSuffix string
	// DiffContext is the number of context lines in Outcome.Diff.
	DiffContext int
}

// Outcome is a plan applied in memory to one file.
type Outcome struct {
	File    *rewrite.File
	Results []plan.Result
	Diff    string
}

// Changed reports whether the plan changed the configuration.
func (o *Outcome) Changed() bool {
	return o.File.Config.Changed()
}

// Engine applies plans and keeps the journal.
type Engine struct {
	journal JournalStore
	clock   clock.Clock
}

// NewEngine returns an Engine recording into journal with timestamps from clk.
func NewEngine(journal JournalStore, clk clock.Clock) *Engine {
	return &Engine{journal: journal, clock: clk}
}

// Prepare reads path and applies p to it in memory. Nothing is written.
func (e *Engine) Prepare(path string, p *plan.Plan, opts Options) (*Outcome, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to resolve %s", path)
	}
	f, err := rewrite.ReadConfigFile(abs)
	if err != nil {
		return nil, err
	}
	results, err := p.Apply(f.Config)
	if err != nil {
		return nil, oops.With("file", abs).Wrapf(err, "failed to apply plan to %s", path)
	}
	d, err := diff.Unified(f.Config, filepath.Base(abs), opts.DiffContext)
	if err != nil {
		return nil, err
	}

	log.WithFields(logger.Fields{
		"at":      "Prepare",
		"file":    abs,
		"ops":     len(p.Ops),
		"changed": f.Config.Changed(),
	}).Debug("plan applied in memory")
	return &Outcome{File: f, Results: results, Diff: d}, nil
}

// Commit writes o to disk when it changed anything and records the run in
// the journal either way.
func (e *Engine) Commit(o *Outcome, opts Options) (state.Run, error) {
	before := renderOriginal(o.File)
	after := string(o.File.Bytes())
	at := e.clock.Now()
	run := state.Run{
		ID:         state.RunID(o.File.Path, at, state.Hash(after)),
		File:       o.File.Path,
		PlanFile:   opts.PlanFile,
		At:         at,
		Results:    o.Results,
		BeforeHash: state.Hash(before),
		AfterHash:  state.Hash(after),
	}

	if o.Changed() {
		if err := rewrite.WriteConfigFile(o.File, opts.BackupSuffix); err != nil {
			return run, err
		}
		run.Written = true
	}
	if err := AppendRun(e.journal, run); err != nil {
		return run, oops.Wrapf(err, "failed to record run in journal")
	}

	log.WithFields(logger.Fields{
		"at":      "Commit",
		"id":      run.ID,
		"file":    run.File,
		"written": run.Written,
	}).Info("run recorded")
	return run, nil
}

// Apply prepares p against path and, with opts.Write, commits it.
func (e *Engine) Apply(path string, p *plan.Plan, opts Options) (*Outcome, error) {
	o, err := e.Prepare(path, p, opts)
	if err != nil {
		return nil, err
	}
	if opts.Write {
		if _, err := e.Commit(o, opts); err != nil {
			return o, err
		}
	}
	return o, nil
}

// History returns the journal, filtered to path when it is not empty.
func (e *Engine) History(path string) ([]state.Run, error) {
	runs, err := e.journal.Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return runs, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to resolve %s", path)
	}
	return RunsForFile(runs, abs), nil
}

func renderOriginal(f *rewrite.File) string {
	orig := f.Config.Original()
	text := strings.Join(orig, "\n")
	if f.TrailingNewline && len(orig) > 0 {
		text += "\n"
	}
	return text
}
