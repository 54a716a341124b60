// Package rewrite moves configurations between disk and frr.Config.
package rewrite

import (
	"bufio"
	"bytes"
	"os"

	"github.com/samber/oops"

	"frrconf/internal/logger"
	"frrconf/pkg/frr"
)

var log = logger.GetLogger()

// maxLineSize bounds a single configuration line.
const maxLineSize = 1024 * 1024

// File is a configuration read from disk.
type File struct {
	Path   string
	Config *frr.Config
	// TrailingNewline records whether the file ended in a newline, so
	// that writing it back doesn't add or drop one.
	TrailingNewline bool
	Mode            os.FileMode
}

// ReadConfigFile reads path line by line into a Config. Carriage returns
// at line ends are dropped.
func ReadConfigFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to stat config file %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read config file %s", path)
	}

	lines, err := splitLines(content)
	if err != nil {
		return nil, oops.Wrapf(err, "error reading config file %s", path)
	}

	log.WithFields(logger.Fields{"at": "ReadConfigFile", "path": path, "lines": len(lines)}).Debug("read config")
	return &File{
		Path:            path,
		Config:          frr.FromLines(lines),
		TrailingNewline: bytes.HasSuffix(content, []byte("\n")),
		Mode:            info.Mode().Perm(),
	}, nil
}

func splitLines(content []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Bytes renders the working copy of f as it would be written.
func (f *File) Bytes() []byte {
	out := f.Config.String()
	if f.TrailingNewline && f.Config.Len() > 0 {
		out += "\n"
	}
	return []byte(out)
}

// WriteConfigFile writes the working copy of f back to f.Path. With a
// non-empty backupSuffix the file currently on disk is first copied to
// f.Path+backupSuffix.
func WriteConfigFile(f *File, backupSuffix string) error {
	if backupSuffix != "" {
		current, err := os.ReadFile(f.Path)
		if err != nil {
			return oops.Wrapf(err, "failed to read %s for backup", f.Path)
		}
		backup := f.Path + backupSuffix
		if err := os.WriteFile(backup, current, f.Mode); err != nil {
			return oops.Wrapf(err, "failed to write backup %s", backup)
		}
		log.WithFields(logger.Fields{"at": "WriteConfigFile", "backup": backup}).Debug("wrote backup")
	}

	if err := os.WriteFile(f.Path, f.Bytes(), f.Mode); err != nil {
		return oops.Wrapf(err, "failed to write updated config file %s", f.Path)
	}
	log.WithFields(logger.Fields{"at": "WriteConfigFile", "path": f.Path, "lines": f.Config.Len()}).Debug("wrote config")
	return nil
}
