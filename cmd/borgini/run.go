package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/borgini/borgini/internal/notify"
	"github.com/borgini/borgini/internal/services/runner"
)

func runBackup(cmd *cobra.Command, args []string) error {
	data := profileData()
	notifier := notify.New(profileName, os.Stderr)
	printer := newPrinter(data)

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	runnerSvc := runner.New(log.Logger, data, notifier, printer, dryRun)
	if err := runnerSvc.Run(ctx); err != nil {
		log.Error().Err(err).Msg("backup failed")
		return err
	}
	return nil
}
