package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/scheduler"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/server"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, notification worker and scheduled jobs",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := openDatabase(true)
	if err != nil {
		return err
	}
	defer database.Close()

	rdb, err := openRedis(ctx)
	if err != nil {
		return err
	}

	publisher, err := openPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	notifier := notify.New(rdb, notify.SMTPMailer{
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
	})
	defer notifier.Close()

	svcs := server.NewServices(server.Deps{
		DB:        database,
		Redis:     rdb,
		Config:    cfg,
		Notifier:  notifier,
		Publisher: publisher,
	})

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	go notifier.Start(workerCtx)
	logger.Info("notification worker started", "queued", notifier.QueueLength(ctx))

	jobs := scheduler.New(schedulerConfig(), svcs.Plans, svcs.Memberships, notifier)
	if err := jobs.Start(workerCtx); err != nil {
		return err
	}

	srv := server.New(cfg, database, svcs)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	jobs.Stop(shutdownCtx)
	cancelWorker()

	logger.Info("server stopped")
	return nil
}

func schedulerConfig() scheduler.Config {
	return scheduler.Config{
		SweepSchedule:     cfg.SweepSchedule,
		ReminderSchedule:  cfg.ReminderSchedule,
		ReminderDaysAhead: cfg.ReminderDaysAhead,
		Currency:          cfg.Currency,
	}
}
