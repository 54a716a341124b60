package frr

import (
	"regexp"

	"frrconf/internal/logger"
)

var log = logger.GetLogger()

// Block is a located section: Start is the index of the line matching the
// start pattern, Stop the index of the first later line matching the stop
// pattern. Both are absolute indices into the scanned lines.
type Block struct {
	Start int
	Stop  int
}

// Len is the number of lines from Start up to, but not including, Stop.
func (b Block) Len() int {
	return b.Stop - b.Start
}

// FindFirstBlock scans lines from startAt for the first line matching the
// start pattern, then for the first later line matching the stop pattern.
// Both patterns are anchored at the start of the line only. ok is false
// when either line is missing; a partial block is never returned.
func FindFirstBlock(lines []string, startPattern, stopPattern string, startAt int) (Block, bool, error) {
	start, err := compilePrefix(startPattern)
	if err != nil {
		return Block{}, false, err
	}
	stop, err := compilePrefix(stopPattern)
	if err != nil {
		return Block{}, false, err
	}
	b, ok := findFirstBlock(lines, start, stop, startAt)
	return b, ok, nil
}

// FindBlocks returns every block in lines, in order. Blocks are half-open,
// so the search for the next block resumes at the previous stop mark, which
// may itself start the next block.
func FindBlocks(lines []string, startPattern, stopPattern string) ([]Block, error) {
	start, err := compilePrefix(startPattern)
	if err != nil {
		return nil, err
	}
	stop, err := compilePrefix(stopPattern)
	if err != nil {
		return nil, err
	}

	blocks := []Block{}
	next := 0
	for {
		b, ok := findFirstBlock(lines, start, stop, next)
		if !ok {
			return blocks, nil
		}
		blocks = append(blocks, b)
		next = b.Stop
	}
}

func findFirstBlock(lines []string, start, stop *regexp.Regexp, startAt int) (Block, bool) {
	startAt = clamp(startAt, len(lines))
	log.WithFields(logger.Fields{
		"at":       "findFirstBlock",
		"start":    start.String(),
		"stop":     stop.String(),
		"start_at": startAt,
	}).Debug("searching for block")

	seekingStart := true
	b := Block{}
	for i := startAt; i < len(lines); i++ {
		line := lines[i]
		if seekingStart {
			if !start.MatchString(line) {
				continue
			}
			b.Start = i
			seekingStart = false
			log.WithFields(logger.Fields{"at": "findFirstBlock", "line": i, "text": line}).Debug("found start")
			continue
		}
		if !stop.MatchString(line) {
			continue
		}
		b.Stop = i
		log.WithFields(logger.Fields{"at": "findFirstBlock", "line": i, "text": line}).Debug("found stop")
		return b, true
	}

	log.WithFields(logger.Fields{
		"at":          "findFirstBlock",
		"found_start": !seekingStart,
	}).Debug("no complete block")
	return Block{}, false
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
