// Package note locates daily notes in a Markdown vault and merges the
// rendered box into them.
package note

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// datePlaceholder in the note pattern is substituted with the normalized
// request date before glob compilation.
const datePlaceholder = "{date}"

// Store resolves the daily note for a date inside a notes directory.
// Filenames are matched with a glob pattern such as "{date}.md" or
// "*{date}*.md"; anything fancier than locating a YYYY-MM-DD substring
// (locale-specific note titles, custom date formats) belongs to the
// caller, which hands in the normalized date.
type Store struct {
	dir     string
	pattern string
	logger  *slog.Logger
}

// NewStore creates a store over dir using pattern to match note
// filenames. A nil logger disables logging.
func NewStore(dir, pattern string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{dir: dir, pattern: pattern, logger: logger}
}

// Resolve returns the path and current content of the daily note for date
// (YYYY-MM-DD). When no filename matches, a blank note named
// "<date>.md" is created and returned.
func (s *Store) Resolve(date string) (string, string, error) {
	g, err := glob.Compile(strings.ReplaceAll(s.pattern, datePlaceholder, date))
	if err != nil {
		return "", "", fmt.Errorf("note: invalid pattern %q: %w", s.pattern, err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil && !os.IsNotExist(err) {
		return "", "", fmt.Errorf("note: reading notes dir %s: %w", s.dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !g.Match(e.Name()) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("note: reading %s: %w", path, err)
		}
		return path, string(data), nil
	}

	return s.create(date)
}

// Write persists content to path, replacing the previous note text.
func (s *Store) Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("note: writing %s: %w", path, err)
	}
	return nil
}

func (s *Store) create(date string) (string, string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", "", fmt.Errorf("note: creating notes dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, date+".md")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return "", "", fmt.Errorf("note: creating %s: %w", path, err)
	}
	s.logger.Info("created blank daily note", "path", path)
	return path, "", nil
}
