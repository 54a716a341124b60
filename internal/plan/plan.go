// Package plan reads edit plans: ordered lists of section edits kept in YAML
// next to the configuration they apply to.
package plan

import (
	"errors"
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"frrconf/internal/logger"
	"frrconf/pkg/frr"
)

var log = logger.GetLogger()

// ErrInvalidPlan is returned for plan entries that can't be turned into an edit.
var ErrInvalidPlan = errors.New("invalid plan")

// Kind names the editor operation an Op runs.
type Kind string

const (
	KindModify Kind = "modify"
	KindBefore Kind = "before"
)

// Op is one decoded plan entry.
type Op struct {
	Kind Kind
	// Edit is used by KindModify.
	Edit frr.Edit
	// Before and Addition are used by KindBefore.
	Before   string
	Addition []string
	// Required turns a zero result into frr.ErrSectionNotFound.
	Required bool
}

// Pattern returns the pattern that locates the op's section.
func (o Op) Pattern() string {
	if o.Kind == KindBefore {
		return o.Before
	}
	return o.Edit.Start
}

// Plan is an ordered list of ops.
type Plan struct {
	// DefaultStop replaces an empty stop pattern on modify ops.
	DefaultStop string
	Ops         []Op
}

// New builds a plan from ops already in hand, e.g. from command line flags.
func New(ops ...Op) *Plan {
	return &Plan{Ops: ops}
}

type document struct {
	Stop  string  `yaml:"stop"`
	Edits []entry `yaml:"edits"`
}

type entry struct {
	Modify         string `yaml:"modify"`
	Before         string `yaml:"before"`
	Stop           string `yaml:"stop"`
	Replacement    any    `yaml:"replacement"`
	Addition       any    `yaml:"addition"`
	RemoveStopMark bool   `yaml:"remove_stop_mark"`
	Count          int    `yaml:"count"`
	Required       bool   `yaml:"required"`
}

// Load reads and parses the plan file at path.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read plan %s", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, oops.With("plan", path).Wrapf(err, "failed to parse plan %s", path)
	}
	return p, nil
}

// Parse decodes a YAML plan.
func Parse(data []byte) (*Plan, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, oops.Wrapf(ErrInvalidPlan, "yaml: %s", err.Error())
	}

	p := &Plan{DefaultStop: doc.Stop, Ops: make([]Op, 0, len(doc.Edits))}
	for i, e := range doc.Edits {
		op, err := e.op()
		if err != nil {
			return nil, oops.With("edit", i).Wrapf(err, "edit %d", i+1)
		}
		p.Ops = append(p.Ops, op)
	}
	log.WithFields(logger.Fields{"at": "Parse", "ops": len(p.Ops)}).Debug("parsed plan")
	return p, nil
}

func (e entry) op() (Op, error) {
	switch {
	case e.Modify != "" && e.Before != "":
		return Op{}, oops.Wrapf(ErrInvalidPlan, "modify and before are mutually exclusive")
	case e.Modify != "":
		var replacement []string
		if e.Replacement != nil {
			lines, err := frr.ToLines(e.Replacement)
			if err != nil {
				return Op{}, oops.Wrapf(err, "replacement")
			}
			replacement = lines
		}
		if e.Count < 0 {
			return Op{}, oops.Wrapf(ErrInvalidPlan, "count must not be negative, got %d", e.Count)
		}
		return Op{
			Kind: KindModify,
			Edit: frr.Edit{
				Start:          e.Modify,
				Stop:           e.Stop,
				Replacement:    replacement,
				RemoveStopMark: e.RemoveStopMark,
				Count:          e.Count,
			},
			Required: e.Required,
		}, nil
	case e.Before != "":
		if e.Addition == nil {
			return Op{}, oops.Wrapf(ErrInvalidPlan, "before %q has no addition", e.Before)
		}
		lines, err := frr.ToLines(e.Addition)
		if err != nil {
			return Op{}, oops.Wrapf(err, "addition")
		}
		return Op{Kind: KindBefore, Before: e.Before, Addition: lines, Required: e.Required}, nil
	default:
		return Op{}, oops.Wrapf(ErrInvalidPlan, "either modify or before is required")
	}
}
