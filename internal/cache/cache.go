// Package cache persists fetched summaries on disk, one JSON file per
// date, and serves them back while they are fresh. Every failure mode is
// a cache miss: the pipeline must never fail because the cache did.
package cache

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

// TTL is the fixed validity window of a cache entry, measured against the
// entry file's modification time.
const TTL = time.Hour

// Store is a file-backed summary cache keyed by date (YYYY-MM-DD).
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first Put. A nil logger disables logging.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{dir: dir, logger: logger}
}

// Get returns the cached summary for date, or ok=false when the entry is
// absent, older than TTL, or unreadable. Read errors are logged, never
// surfaced.
func (s *Store) Get(date string) (*wakatime.Summary, bool) {
	path := s.entryPath(date)

	fi, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("cache stat failed", "path", path, "error", err)
		}
		return nil, false
	}
	if time.Since(fi.ModTime()) > TTL {
		s.logger.Debug("cache entry expired", "date", date, "age", time.Since(fi.ModTime()))
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("cache read failed", "path", path, "error", err)
		return nil, false
	}

	var sum wakatime.Summary
	if err := json.Unmarshal(data, &sum); err != nil {
		s.logger.Warn("cache entry corrupt", "path", path, "error", err)
		return nil, false
	}

	return &sum, true
}

// Put writes the summary for date, overwriting any prior entry. Writes are
// best-effort: failures are logged and swallowed so a broken cache cannot
// abort a fetch that already succeeded.
func (s *Store) Put(date string, sum *wakatime.Summary) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.logger.Warn("cache dir creation failed", "dir", s.dir, "error", err)
		return
	}

	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		s.logger.Warn("cache marshal failed", "date", date, "error", err)
		return
	}

	path := s.entryPath(date)
	if err := os.WriteFile(path, data, 0644); err != nil {
		s.logger.Warn("cache write failed", "path", path, "error", err)
	}
}

func (s *Store) entryPath(date string) string {
	return filepath.Join(s.dir, date+".json")
}
