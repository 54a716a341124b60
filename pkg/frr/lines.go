package frr

import (
	"strings"

	"github.com/samber/oops"
)

// ToLines coerces v into a fresh slice of lines. A string is split on
// newlines, a []string is copied and a []any must hold only strings.
// Anything else, nil included, is ErrInvalidArgument.
func ToLines(v any) ([]string, error) {
	switch t := v.(type) {
	case string:
		return strings.Split(t, "\n"), nil
	case []string:
		return cloneLines(t), nil
	case []any:
		lines := make([]string, 0, len(t))
		for i, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, oops.With("index", i).Wrapf(ErrInvalidArgument, "line %d is %T, not a string", i, e)
			}
			lines = append(lines, s)
		}
		return lines, nil
	default:
		return nil, oops.Wrapf(ErrInvalidArgument, "expected a string or a list of lines, got %T", v)
	}
}

func cloneLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
