package postgres

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose"
)

const MigrationsDir = "./internal/adapter/postgres/migrations"

func Migrate(db *sql.DB, dir string) error {
	const op = "postgres.Migrate"

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
