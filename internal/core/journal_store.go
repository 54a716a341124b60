package core

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"

	"frrconf/internal/state"
)

// JournalStore abstracts journal persistence for testability.
type JournalStore interface {
	Load() ([]state.Run, error)
	Save([]state.Run) error
}

// FileJournalStore implements JournalStore using a JSON file.
type FileJournalStore struct {
	File string
}

func NewFileJournalStore(file string) *FileJournalStore {
	return &FileJournalStore{File: file}
}

// Load returns no runs, and no error, when the journal doesn't exist yet.
func (fs *FileJournalStore) Load() ([]state.Run, error) {
	runs := []state.Run{}
	f, err := os.Open(fs.File)
	if errors.Is(err, os.ErrNotExist) {
		return runs, nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "failed to open journal %s", fs.File)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&runs); err != nil && !errors.Is(err, io.EOF) {
		return nil, oops.Wrapf(err, "failed to decode journal %s", fs.File)
	}
	return runs, nil
}

// Save replaces the journal through a temporary file in the same directory.
func (fs *FileJournalStore) Save(runs []state.Run) error {
	if err := os.MkdirAll(filepath.Dir(fs.File), 0o755); err != nil {
		return oops.Wrapf(err, "failed to create journal directory")
	}
	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return oops.Wrapf(err, "failed to encode journal")
	}
	f, err := os.CreateTemp(filepath.Dir(fs.File), filepath.Base(fs.File)+".*.tmp")
	if err != nil {
		return oops.Wrapf(err, "failed to create journal %s", fs.File)
	}
	tmp := f.Name()
	_, err = f.Write(append(data, '\n'))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return oops.Wrapf(err, "failed to write journal %s", fs.File)
	}
	if err := os.Rename(tmp, fs.File); err != nil {
		os.Remove(tmp)
		return oops.Wrapf(err, "failed to replace journal %s", fs.File)
	}
	return nil
}

// InMemoryJournalStore implements JournalStore for testing (no disk I/O).
type InMemoryJournalStore struct {
	mu   sync.Mutex
	runs []state.Run
}

func NewInMemoryJournalStore() *InMemoryJournalStore {
	return &InMemoryJournalStore{}
}

func (ms *InMemoryJournalStore) Load() ([]state.Run, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	// Return a copy to avoid mutation
	cpy := make([]state.Run, len(ms.runs))
	copy(cpy, ms.runs)
	return cpy, nil
}

func (ms *InMemoryJournalStore) Save(runs []state.Run) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cpy := make([]state.Run, len(runs))
	copy(cpy, runs)
	ms.runs = cpy
	return nil
}

// AppendRun adds run to the end of the journal held by store.
func AppendRun(store JournalStore, run state.Run) error {
	runs, err := store.Load()
	if err != nil {
		return err
	}
	return store.Save(append(runs, run))
}

// RunsForFile filters runs down to those that touched file. An empty file
// keeps every run.
func RunsForFile(runs []state.Run, file string) []state.Run {
	if file == "" {
		return runs
	}
	out := []state.Run{}
	for _, r := range runs {
		if r.File == file {
			out = append(out, r)
		}
	}
	return out
}
