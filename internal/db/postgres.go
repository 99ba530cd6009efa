package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpbridge/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the pool. Unless DATABASE_URL already names a search_path,
// every connection resolves unqualified tables in the configured schema.
func Connect(ctx context.Context, config *types.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if _, ok := poolConfig.ConnConfig.RuntimeParams["search_path"]; !ok {
		ident, err := schemaIdentifier(config.DatabaseSchema)
		if err != nil {
			return nil, err
		}
		poolConfig.ConnConfig.RuntimeParams["search_path"] = ident
	}

	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.MaxConnLifetime = 45 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// schemaIdentifier quotes schema for use in SQL and in the search_path
// startup parameter.
func schemaIdentifier(schema string) (string, error) {
	schema = strings.TrimSpace(schema)
	if schema == "" {
		return "", fmt.Errorf("database schema is empty")
	}

	return pgx.Identifier{schema}.Sanitize(), nil
}
