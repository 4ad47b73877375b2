package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetUser(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created, updated
					FROM users WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	u, err := scanUser(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %d: %w", id, err)
	}
	return u, nil
}

func (db *postgresDB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, created, updated
					FROM users WHERE username=@username`

	args := pgx.NamedArgs{
		"username": username,
	}
	u, err := scanUser(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user %s: %w", username, err)
	}
	return u, nil
}

func (db *postgresDB) SaveUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (
		username,
		email,
		password_hash
	) VALUES (
		@username,
		@email,
		@passwordHash
	) RETURNING id, created`

	args := pgx.NamedArgs{
		"username":     u.Username,
		"email":        u.Email,
		"passwordHash": u.PasswordHash,
	}

	var created pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query, args).Scan(&u.ID, &created)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("error inserting user (%s): %w", u.Username, err)
	}
	u.Created = created.Time

	return nil
}

func (db *postgresDB) DeleteUser(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var result model.User
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Username,
		&result.Email,
		&result.PasswordHash,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
