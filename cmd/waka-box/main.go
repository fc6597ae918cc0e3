package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "waka-box",
	Short: "Keep a WakaTime coding-time box in your daily notes",
	Long: `waka-box fetches your daily coding summary from WakaTime, caches it
locally, renders it as a fixed-width bar-chart box, and merges the box
into the matching daily note of a Markdown vault. Re-running replaces
the previous box in place.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
}

func main() {
	// A .env next to the binary is optional sugar for WAKATIME_API_KEY;
	// real environment variables always win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// resolveDate validates an explicit --date flag, defaulting to today.
func resolveDate(flagDate string) (string, error) {
	if flagDate == "" {
		return config.Today(), nil
	}
	if _, err := time.Parse("2006-01-02", flagDate); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", flagDate)
	}
	return flagDate, nil
}
