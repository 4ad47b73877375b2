package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) AddLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO leagues (
		name,
		admin_id,
		max_teams,
		is_public,
		draft_time,
		scoring_type,
		participants
	) VALUES (
		@name,
		@adminID,
		@maxTeams,
		@isPublic,
		@draftTime,
		@scoringType,
		@participants
	) RETURNING id, created`

	args := pgx.NamedArgs{
		"name":     l.Name,
		"adminID":  l.AdminID,
		"maxTeams": l.MaxTeams,
		"isPublic": l.Public,
		"draftTime": pgtype.Timestamptz{
			Time:  l.DraftTime,
			Valid: true,
		},
		"scoringType":  string(l.Scoring),
		"participants": l.Participants,
	}

	var created pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query, args).Scan(&l.ID, &created)
	if err != nil {
		return fmt.Errorf("error inserting league (%s): %w", l.Name, err)
	}
	l.Created = created.Time

	return nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int64) (*model.League, error) {
	const query = `SELECT id, name, admin_id, max_teams, is_public, draft_time,
						scoring_type, participants, draft_order, created, updated
					FROM leagues WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	l, err := scanLeague(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error) {
	const query = `SELECT id, name, admin_id, max_teams, is_public, draft_time,
						scoring_type, participants, draft_order, created, updated
					FROM leagues
					WHERE is_public OR @viewerID = ANY(participants)
					ORDER BY draft_time`

	args := pgx.NamedArgs{
		"viewerID": viewerID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}

	return results, rows.Err()
}

func (db *postgresDB) UpdateLeague(ctx context.Context, l *model.League) error {
	const query = `UPDATE leagues
		SET name=@name,
			max_teams=@maxTeams,
			is_public=@isPublic,
			draft_time=@draftTime,
			scoring_type=@scoringType,
			updated=@updated
		WHERE id=@id`

	args := pgx.NamedArgs{
		"id":       l.ID,
		"name":     l.Name,
		"maxTeams": l.MaxTeams,
		"isPublic": l.Public,
		"draftTime": pgtype.Timestamptz{
			Time:  l.DraftTime,
			Valid: true,
		},
		"scoringType": string(l.Scoring),
		"updated":     db.updatedNow(),
	}

	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating league (%d): %w", l.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) DeleteLeague(ctx context.Context, id int64) error {
	const query = `DELETE FROM leagues WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error deleting league %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

// The membership guards live in the WHERE clause so that two
// concurrent joins cannot both take the last seat. A rejected
// statement affects zero rows and the league is re-read to report
// which guard failed.
func (db *postgresDB) AddLeagueParticipant(ctx context.Context, id, userID int64) error {
	const query = `UPDATE leagues
					SET participants=array_append(participants, @userID),
						draft_order=NULL,
						updated=@updated
					WHERE id=@id
						AND NOT participants @> ARRAY[@userID]::BIGINT[]
						AND cardinality(participants) < max_teams`

	args := pgx.NamedArgs{
		"id":      id,
		"userID":  userID,
		"updated": db.updatedNow(),
	}
	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error adding participant %d to league %d: %w", userID, id, err)
	}
	if ct.RowsAffected() == 0 {
		l, err := db.GetLeague(ctx, id)
		if err != nil {
			return err
		}
		if l.HasParticipant(userID) {
			return ErrAlreadyInLeague
		}
		return ErrLeagueFull
	}
	return nil
}

func (db *postgresDB) RemoveLeagueParticipant(ctx context.Context, id, userID int64) error {
	const query = `UPDATE leagues
					SET participants=array_remove(participants, @userID),
						draft_order=NULL,
						updated=@updated
					WHERE id=@id
						AND participants @> ARRAY[@userID]::BIGINT[]`

	args := pgx.NamedArgs{
		"id":      id,
		"userID":  userID,
		"updated": db.updatedNow(),
	}
	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error removing participant %d from league %d: %w", userID, id, err)
	}
	if ct.RowsAffected() == 0 {
		if _, err := db.GetLeague(ctx, id); err != nil {
			return err
		}
		return ErrNotInLeague
	}
	return nil
}

func (db *postgresDB) SetDraftOrder(ctx context.Context, id int64, order []int64) error {
	const query = `UPDATE leagues SET draft_order=@draftOrder, updated=@updated WHERE id=@id`

	args := pgx.NamedArgs{
		"id":         id,
		"draftOrder": order,
		"updated":    db.updatedNow(),
	}
	ct, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error setting draft order for league %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) updatedNow() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var result model.League
	var scoring string
	var draftTime, created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.AdminID,
		&result.MaxTeams,
		&result.Public,
		&draftTime,
		&scoring,
		&result.Participants,
		&result.DraftOrder,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Scoring = model.ScoringType(scoring)
	result.DraftTime = draftTime.Time
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}
