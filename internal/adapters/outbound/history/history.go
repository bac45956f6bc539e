// Package history persists per-URL score history under the user cache dir.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aeoscan/aeoscan/internal/domain"
)

const historyFile = "history.json"

// FileHistory implements domain.HistoryStore using JSON file storage.
type FileHistory struct {
	dir string
}

// New creates a FileHistory rooted at the user cache dir.
func New() (*FileHistory, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	return &FileHistory{dir: filepath.Join(base, "aeoscan")}, nil
}

// NewAt creates a FileHistory rooted at an explicit directory (used by tests).
func NewAt(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

// Save appends one entry to the history file.
func (h *FileHistory) Save(entry domain.ScoreEntry) error {
	entries, err := h.load()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(h.dir, historyFile), data, 0644)
}

// Load returns the history entries for one normalized URL, oldest first.
func (h *FileHistory) Load(url string) ([]domain.ScoreEntry, error) {
	entries, err := h.load()
	if err != nil {
		return nil, err
	}
	key := domain.NormalizeURL(url)
	var matched []domain.ScoreEntry
	for _, e := range entries {
		if e.URL == key {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (h *FileHistory) load() ([]domain.ScoreEntry, error) {
	data, err := os.ReadFile(filepath.Join(h.dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
