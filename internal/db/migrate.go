package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the schema, tables and views if they do not exist yet. It
// is safe to run repeatedly. All statements share one connection so the
// search_path set here is the one the DDL runs under, whatever the pool's
// connection string says.
func Migrate(ctx context.Context, pool *pgxpool.Pool, schema string) error {
	ident, err := schemaIdentifier(schema)
	if err != nil {
		return err
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	for _, stmt := range migrationStatements(ident) {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema %s: %w", schema, err)
		}
	}

	return nil
}

func migrationStatements(ident string) []string {
	return []string{
		"CREATE SCHEMA IF NOT EXISTS " + ident,
		"SET search_path TO " + ident,
		schemaSQL,
	}
}
