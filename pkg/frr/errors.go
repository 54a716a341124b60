package frr

import (
	"errors"

	"github.com/samber/oops"
)

var (
	// ErrInvalidArgument is returned for input that is neither text nor a
	// sequence of lines, and for out of range edit parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPattern is returned when a pattern fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrSectionNotFound marks a section that was expected to exist but did
	// not. The editor itself never returns it; see RequireFound.
	ErrSectionNotFound = errors.New("configuration section not found")
)

// RequireFound turns a zero result from ModifySection (or a false result
// from AddBefore, passed as 0) into ErrSectionNotFound.
func RequireFound(n int, pattern string) error {
	if n > 0 {
		return nil
	}
	return oops.With("pattern", pattern).Wrapf(ErrSectionNotFound, "no section matches %q", pattern)
}
