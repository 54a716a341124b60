package state

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"frrconf/internal/plan"
)

// Run is the journal record of one plan applied to one configuration file.
// It is serialized as JSON between invocations.
type Run struct {
	ID         string        `json:"id"`
	File       string        `json:"file"`
	PlanFile   string        `json:"plan_file,omitempty"`
	At         time.Time     `json:"at"`
	Results    []plan.Result `json:"results"`
	BeforeHash string        `json:"before_hash"`
	AfterHash  string        `json:"after_hash"`
	Written    bool          `json:"written"`
}

// Changed reports whether the run produced a different configuration.
func (r *Run) Changed() bool {
	return r.BeforeHash != r.AfterHash
}

// Replacements sums the section counts of every result.
func (r *Run) Replacements() int {
	total := 0
	for _, res := range r.Results {
		total += res.Count
	}
	return total
}

// Hash returns the hex sha256 of a rendered configuration.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// RunID derives a short identifier from the file, the time and the result.
func RunID(file string, at time.Time, afterHash string) string {
	return Hash(file + "|" + at.UTC().Format(time.RFC3339Nano) + "|" + afterHash)[:12]
}
