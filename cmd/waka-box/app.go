package main

import (
	"log/slog"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/cache"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/config"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/note"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/runner"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/summary"
	"github.com/shimajima-eiji/obsidian-waka-box/internal/wakatime"
)

// app wires the pipeline from configuration. Scheduling state (cron,
// signals) stays with the command that owns it; everything below here is
// stateless between runs.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	summaries *summary.Service
	runner    *runner.Runner
}

func buildApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel)

	client := wakatime.NewClient(cfg.APIKey, cfg.APIURL)
	store := cache.NewStore(cfg.CacheDir, logger)
	summaries := summary.NewService(client, store, logger)
	notes := note.NewStore(cfg.NotesDir, cfg.NotePattern, logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		summaries: summaries,
		runner:    runner.New(summaries, notes, cfg.MaxRows, logger),
	}, nil
}
