package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/note"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/render"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

// SummaryProvider yields the summary for a date, from cache or live.
type SummaryProvider interface {
	Get(ctx context.Context, date string, force bool) (*wakatime.Summary, bool, error)
}

// NoteStore resolves and persists the daily note for a date.
type NoteStore interface {
	Resolve(date string) (path, content string, err error)
	Write(path, content string) error
}

// Runner orchestrates the summary -> render -> merge pipeline. It holds
// no scheduling state; when to run is entirely the caller's decision.
type Runner struct {
	summaries SummaryProvider
	notes     NoteStore
	maxRows   int
	logger    *slog.Logger
}

func New(summaries SummaryProvider, notes NoteStore, maxRows int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		summaries: summaries,
		notes:     notes,
		maxRows:   maxRows,
		logger:    logger,
	}
}

// Run updates the daily note for date (YYYY-MM-DD). force bypasses the
// summary cache. Each stage completes before the next begins; nothing in
// here is parallelized or retried.
func (r *Runner) Run(ctx context.Context, date string, force bool) error {
	sum, fromCache, err := r.summaries.Get(ctx, date, force)
	if err != nil {
		return fmt.Errorf("runner: summary for %s: %w", date, err)
	}
	if fromCache {
		r.logger.Info("summary served from cache", "date", date)
	} else {
		r.logger.Info("fetched fresh summary", "date", date)
	}

	box := render.Render(sum, r.maxRows)

	path, content, err := r.notes.Resolve(date)
	if err != nil {
		return fmt.Errorf("runner: resolving note for %s: %w", date, err)
	}

	merged := note.Merge(content, box)
	if merged == content {
		r.logger.Info("note already up to date", "path", path)
		return nil
	}

	if err := r.notes.Write(path, merged); err != nil {
		return fmt.Errorf("runner: writing note %s: %w", path, err)
	}
	r.logger.Info("updated daily note", "path", path)
	return nil
}
