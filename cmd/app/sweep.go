package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/notify"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/scheduler"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/server"
)

var sendReminders bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Apply late fees and expire memberships once, then exit",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().BoolVar(&sendReminders, "reminders", false, "also queue due-date and expiry reminders")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	database, err := openDatabase(false)
	if err != nil {
		return err
	}
	defer database.Close()

	// Notices go to the queue so the running server's worker delivers them.
	var notifier notify.Notifier = notify.Nop{}
	rdb, err := openRedis(ctx)
	if err != nil {
		logger.Warn("redis unavailable, notices will be dropped", "error", err)
	} else {
		q := notify.New(rdb, nil)
		defer q.Close()
		notifier = q
	}

	publisher, err := openPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	svcs := server.NewServices(server.Deps{
		DB:        database,
		Redis:     rdb,
		Config:    cfg,
		Notifier:  notifier,
		Publisher: publisher,
	})
	jobs := scheduler.New(schedulerConfig(), svcs.Plans, svcs.Memberships, notifier)

	res, err := jobs.RunSweep(ctx, time.Now())
	if err != nil {
		return err
	}
	cmd.Printf("overdue installments: %d, expired memberships: %d\n", res.Overdue, res.Expired)

	if sendReminders {
		rem, err := jobs.SendReminders(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("installment reminders: %d, expiry notices: %d\n", rem.Installments, rem.Expiring)
	}
	return nil
}
