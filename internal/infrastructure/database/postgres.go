package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/config"
	"library-backend/pkg/logger"
)

// PostgresDB wraps the pgx connection pool and its lifecycle.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *config.DatabaseConfig
}

const (
	connectMaxRetries = 3
	connectRetryDelay = 2 * time.Second
	connectTimeout    = 10 * time.Second
)

func NewPostgresDB(cfg *config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

func (db *PostgresDB) buildConnectionString() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		db.Config.User,
		db.Config.Password,
		db.Config.Host,
		db.Config.Port,
		db.Config.Database,
		db.Config.SSLMode,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(db.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(db.Config.MaxConns)
	poolConfig.MinConns = int32(db.Config.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	return poolConfig, nil
}

// Connect establishes the pool with retry and exponential backoff.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolConfig, err := db.configurePool()
	if err != nil {
		return err
	}

	var pool *pgxpool.Pool
	var lastErr error
	delay := connectRetryDelay

	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		pool, lastErr = pgxpool.NewWithConfig(ctx, poolConfig)
		if lastErr == nil {
			if lastErr = pool.Ping(ctx); lastErr == nil {
				db.Pool = pool
				return nil
			}
			pool.Close()
		}

		logger.Warn("Database connection failed, retrying", map[string]interface{}{
			"attempt": attempt,
			"error":   lastErr.Error(),
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", connectMaxRetries, lastErr)
}

func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
