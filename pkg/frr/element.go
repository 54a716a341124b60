package frr

import "frrconf/internal/logger"

// NotFound is returned by FindFirstElement when no line matches.
const NotFound = -1

// FindFirstElement returns the absolute index of the first line at or
// after startAt that matches pattern over its whole length, or NotFound.
func FindFirstElement(lines []string, pattern string, startAt int) (int, error) {
	re, err := compileExact(pattern)
	if err != nil {
		return NotFound, err
	}
	for i := clamp(startAt, len(lines)); i < len(lines); i++ {
		if re.MatchString(lines[i]) {
			log.WithFields(logger.Fields{"at": "FindFirstElement", "line": i, "text": lines[i]}).Debug("found element")
			return i, nil
		}
	}
	log.WithFields(logger.Fields{"at": "FindFirstElement", "pattern": pattern}).Debug("no element matched")
	return NotFound, nil
}

// FindElements returns the absolute indices of every line at or after
// startAt that matches pattern over its whole length.
func FindElements(lines []string, pattern string, startAt int) ([]int, error) {
	re, err := compileExact(pattern)
	if err != nil {
		return nil, err
	}
	found := []int{}
	for i := clamp(startAt, len(lines)); i < len(lines); i++ {
		if re.MatchString(lines[i]) {
			found = append(found, i)
		}
	}
	return found, nil
}
