package plan

import (
	"github.com/samber/oops"

	"frrconf/internal/logger"
	"frrconf/pkg/frr"
)

// Result records what one op did.
type Result struct {
	Kind    Kind   `json:"kind"`
	Pattern string `json:"pattern"`
	// Count is the number of sections modified, or 1 when a before op
	// inserted its lines.
	Count int `json:"count"`
}

// Apply runs every op against cfg in order and stops at the first error.
// The results for ops that ran are returned alongside the error.
func (p *Plan) Apply(cfg *frr.Config) ([]Result, error) {
	results := make([]Result, 0, len(p.Ops))
	for i, op := range p.Ops {
		res, err := p.apply(cfg, op)
		if err != nil {
			return results, oops.With("op", i).Wrapf(err, "%s %q", op.Kind, op.Pattern())
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Plan) apply(cfg *frr.Config, op Op) (Result, error) {
	res := Result{Kind: op.Kind, Pattern: op.Pattern()}
	switch op.Kind {
	case KindModify:
		edit := op.Edit
		if edit.Stop == "" {
			edit.Stop = p.DefaultStop
		}
		n, err := cfg.ModifySection(edit)
		if err != nil {
			return res, err
		}
		res.Count = n
	case KindBefore:
		ok, err := cfg.AddBefore(op.Before, op.Addition)
		if err != nil {
			return res, err
		}
		if ok {
			res.Count = 1
		}
	default:
		return res, oops.Wrapf(ErrInvalidPlan, "unknown op kind %q", op.Kind)
	}

	log.WithFields(logger.Fields{
		"at":      "Apply",
		"kind":    res.Kind,
		"pattern": res.Pattern,
		"count":   res.Count,
	}).Debug("applied op")

	if op.Required {
		if err := frr.RequireFound(res.Count, res.Pattern); err != nil {
			return res, err
		}
	}
	return res, nil
}
