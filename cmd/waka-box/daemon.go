package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/shimajima-eiji/obsidian-waka-box/internal/config"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run on a cron schedule until interrupted",
	RunE:  runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if a.cfg.RunOnStart {
		if err := a.runner.Run(ctx, config.Today(), false); err != nil {
			a.logger.Error("initial run failed", "error", err)
		}
	}

	c := cron.New()
	// Each tick targets the current date, so the box follows the day
	// rollover without restarting the daemon.
	_, err = c.AddFunc(a.cfg.Schedule, func() {
		if err := a.runner.Run(ctx, config.Today(), false); err != nil {
			a.logger.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	a.logger.Info("daemon started", "schedule", a.cfg.Schedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	a.logger.Info("shutting down", "signal", sig.String())

	cancel()
	c.Stop()
	return nil
}
