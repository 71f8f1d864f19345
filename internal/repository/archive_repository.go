package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"newschat/internal/model"
)

const timestampLayout = "2006-01-02 15:04:05"

// ArchiveRepository persists search records as one human-readable JSON
// file. Every append reads the whole file back, adds one record and
// rewrites it; the mutex serializes concurrent appends so none are lost.
type ArchiveRepository struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewArchiveRepository(path string) *ArchiveRepository {
	return &ArchiveRepository{path: path, now: time.Now}
}

// Append adds one record with the current wall-clock timestamp.
func (r *ArchiveRepository) Append(keyword string, articles []model.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	records = append(records, model.SearchRecord{
		Keyword:   keyword,
		Timestamp: r.now().Format(timestampLayout),
		Articles:  articles,
	})

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	return writeFileAtomic(r.path, data)
}

// LoadAll returns every saved record in append order. Read failures are
// logged and swallowed: a missing or unreadable file reads as an empty
// archive.
func (r *ArchiveRepository) LoadAll() []model.SearchRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *ArchiveRepository) load() []model.SearchRecord {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read archive file, treating as empty", "path", r.path, "error", err)
		}
		return nil
	}

	var records []model.SearchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("failed to parse archive file, treating as empty", "path", r.path, "error", err)
		return nil
	}
	return records
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a truncated archive behind.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
