package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrUserExists      error = errors.New("username or email already exists")
	ErrUserNotFound    error = errors.New("user not found")
	ErrLeagueNotFound  error = errors.New("league not found")
	ErrAlreadyInLeague error = errors.New("user is already in the league")
	ErrLeagueFull      error = errors.New("league is full")
	ErrNotInLeague     error = errors.New("user is not in the league")
)

//go:embed migrations/*.sql
var migrations embed.FS

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	if err := runMigrations(connString); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// Migrations run over a separate database/sql connection because goose
// wants one, the pgx pool is used for everything else.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
