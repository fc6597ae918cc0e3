// Package summary decides whether a day's summary is served from the
// local cache or fetched live, and reports which one happened.
package summary

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

// Fetcher retrieves a summary from the remote service.
type Fetcher interface {
	Fetch(ctx context.Context, date string) (*wakatime.Summary, error)
}

// Cache serves and stores summaries locally. Get reports a miss for
// absent, stale, or unreadable entries; Put is best-effort.
type Cache interface {
	Get(date string) (*wakatime.Summary, bool)
	Put(date string, sum *wakatime.Summary)
}

// Service orchestrates the cache-aware fetch.
type Service struct {
	fetcher Fetcher
	cache   Cache
	logger  *slog.Logger
}

// NewService creates a summary service. A nil logger disables logging.
func NewService(f Fetcher, c Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{fetcher: f, cache: c, logger: logger}
}

// Get returns the summary for date (YYYY-MM-DD). fromCache reports the
// provenance of the result. With force set the cache is skipped entirely
// and the fresh result overwrites it. A cache hit never touches the
// network; a miss fetches once, persists on success, and surfaces the
// fetch error otherwise. Concurrent calls for the same date are allowed
// to race: fetches are idempotent and cache writes are last-write-wins.
func (s *Service) Get(ctx context.Context, date string, force bool) (*wakatime.Summary, bool, error) {
	if !force {
		if cached, ok := s.cache.Get(date); ok {
			s.logger.Debug("summary served from cache", "date", date)
			return cached, true, nil
		}
	}

	sum, err := s.fetcher.Fetch(ctx, date)
	if err != nil {
		return nil, false, fmt.Errorf("summary: fetch for %s: %w", date, err)
	}

	s.cache.Put(date, sum)
	s.logger.Debug("fetched fresh summary", "date", date, "forced", force)
	return sum, false, nil
}
