package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/config"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/events"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "gym",
	Short:         "Gym management back office",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, !cfg.IsProduction())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sweepCmd)
}

// @title Gym Back Office API
// @version 1.0
// @description Members, memberships, installments, payments, staff, sessions and check-ins.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openDatabase(migrate bool) (*sqlx.DB, error) {
	logger.Info("connecting to database")
	database, err := db.Connect(cfg.DatabaseURL, db.Pool{
		MaxOpen:     cfg.DBMaxOpenConns,
		MaxIdle:     cfg.DBMaxIdleConns,
		MaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if migrate {
		if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
			database.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied", "path", cfg.MigrationsPath)
	}
	return database, nil
}

func openRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return rdb, nil
}

// openPublisher returns a no-op publisher when no broker is configured.
func openPublisher() (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, domain events disabled")
		return events.Nop{}, nil
	}
	return events.Connect(cfg.AMQPURL, 5, 2*time.Second)
}
