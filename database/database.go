package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docyo/internal/config"
	"docyo/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 50
	maxIdleConns    = 10
	connMaxLifetime = time.Hour
	connMaxIdleTime = 15 * time.Minute
)

// ConnectDatabase opens the pooled postgres connection and verifies it with a ping.
func ConnectDatabase(ctx context.Context, cfg config.DBConfig) (*gorm.DB, error) {
	queryLogger := gormlogger.New(
		slog.NewLogLogger(logger.GetLogger().Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 queryLogger,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_open_conns", maxOpenConns,
		"max_idle_conns", maxIdleConns,
	)
	return db, nil
}

// MonitorDBConnections logs pool pressure every interval until ctx is cancelled.
func MonitorDBConnections(ctx context.Context, db *gorm.DB, interval time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("Connection monitor disabled", "error", err)
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				if stats.InUse > maxOpenConns*3/4 {
					logger.Warn("DB connection pool under pressure",
						"in_use", stats.InUse,
						"idle", stats.Idle,
						"open", stats.OpenConnections,
					)
				}
			}
		}
	}()
}

// Ping reports whether the database answers a trivial query.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	var result int
	return sqlDB.QueryRowContext(ctx, "SELECT 1").Scan(&result)
}
