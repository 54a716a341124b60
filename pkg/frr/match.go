package frr

import (
	"regexp"

	"github.com/samber/oops"
)

// compilePrefix compiles pattern so that it must match from the first
// character of a line. Whatever follows the match is ignored.
func compilePrefix(pattern string) (*regexp.Regexp, error) {
	return compile(`^(?:` + pattern + `)`, pattern)
}

// compileExact compiles pattern so that it must cover the whole line.
func compileExact(pattern string) (*regexp.Regexp, error) {
	return compile(`^(?:`+pattern+`)$`, pattern)
}

// compile checks pattern on its own first so that unbalanced groups can't
// pair up with the anchoring group around it.
func compile(expr, pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, oops.With("pattern", pattern).Wrapf(ErrInvalidPattern, "compile %q: %s", pattern, err.Error())
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, oops.With("pattern", pattern).Wrapf(ErrInvalidPattern, "compile %q: %s", pattern, err.Error())
	}
	return re, nil
}

// MatchLine reports whether pattern matches line starting at its first
// character. Callers wanting a full-line match end-anchor the pattern.
func MatchLine(line, pattern string) (bool, error) {
	re, err := compilePrefix(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(line), nil
}
