package frr

import (
	"slices"

	"github.com/samber/oops"

	"frrconf/internal/logger"
)

// DefaultStopPattern ends a section at the next line that starts with a
// non-blank character.
const DefaultStopPattern = `\S+`

// Edit describes one ModifySection call.
type Edit struct {
	// Start must match the whole first line of the section.
	Start string
	// Stop matches the line ending the section, from its first character.
	// Empty means DefaultStopPattern.
	Stop string
	// Replacement is inserted where the section began. Empty removes it.
	Replacement []string
	// RemoveStopMark also deletes the line that matched Stop.
	RemoveStopMark bool
	// Count limits the number of sections edited. Zero means all of them.
	Count int
}

// ModifySection removes every section described by e, up to e.Count, and
// puts e.Replacement in its place. It returns the number of sections
// edited; finding none is not an error.
//
// The search resumes right after each inserted replacement, so replacement
// lines are never matched as the start of a later section.
func (c *Config) ModifySection(e Edit) (int, error) {
	if e.Count < 0 {
		return 0, oops.With("count", e.Count).Wrapf(ErrInvalidArgument, "count must not be negative")
	}
	stopPattern := e.Stop
	if stopPattern == "" {
		stopPattern = DefaultStopPattern
	}
	start, err := compileExact(e.Start)
	if err != nil {
		return 0, err
	}
	stop, err := compilePrefix(stopPattern)
	if err != nil {
		return 0, err
	}

	log.WithFields(logger.Fields{
		"at":               "ModifySection",
		"start":            e.Start,
		"stop":             stopPattern,
		"remove_stop_mark": e.RemoveStopMark,
		"count":            e.Count,
	}).Debug("modifying sections")

	replaced := 0
	next := 0
	for e.Count == 0 || replaced < e.Count {
		b, ok := findFirstBlock(c.lines, start, stop, next)
		if !ok {
			break
		}
		end := b.Stop
		if e.RemoveStopMark {
			end++
		}
		for i := b.Start; i < end; i++ {
			log.WithFields(logger.Fields{"at": "ModifySection", "line": i, "text": c.lines[i]}).Debug("remove")
		}
		c.lines = slices.Delete(c.lines, b.Start, end)
		if len(e.Replacement) > 0 {
			c.lines = slices.Insert(c.lines, b.Start, e.Replacement...)
			for i, line := range e.Replacement {
				log.WithFields(logger.Fields{"at": "ModifySection", "line": b.Start + i, "text": line}).Debug("insert")
			}
		}
		next = b.Start + len(e.Replacement)
		replaced++
	}

	log.WithFields(logger.Fields{"at": "ModifySection", "replaced": replaced}).Debug("done")
	return replaced, nil
}

// AddBefore inserts addition immediately before the first line that matches
// pattern over its whole length. It reports false, changing nothing, when
// no line matches.
func (c *Config) AddBefore(pattern string, addition []string) (bool, error) {
	at, err := FindFirstElement(c.lines, pattern, 0)
	if err != nil {
		return false, err
	}
	if at == NotFound {
		return false, nil
	}
	c.lines = slices.Insert(c.lines, at, addition...)
	log.WithFields(logger.Fields{"at": "AddBefore", "line": at, "added": len(addition)}).Debug("inserted")
	return true, nil
}
