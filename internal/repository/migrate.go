package repository

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

// Migrate создает таблицы, если их еще нет
func Migrate(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, schema)
	return err
}
