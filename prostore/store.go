package prostore

import (
	"context"
	"errors"

	"github.com/YassineAssim23/eFantasyREPO/model"
)

var (
	// ErrInvalidID means the given ID is not a valid hex ObjectID.
	ErrInvalidID   error = errors.New("invalid pro player id")
	ErrProNotFound error = errors.New("pro player not found")
	ErrProExists   error = errors.New("pro player already exists")
)

// Store holds the pro player documents. Pro players live in MongoDB
// rather than Postgres because the stats feed's columns vary between
// exports and the documents are schemaless.
type Store interface {
	GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error)
	GetProPlayerByGamertag(ctx context.Context, gamertag string) (*model.ProPlayer, error)
	// InsertProPlayer stores a new pro player and returns the hex form
	// of the generated ObjectID.
	InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error)
	// UpsertProPlayer inserts or replaces the stats for the player with
	// the same gamertag. Used by the periodic stats ingest.
	UpsertProPlayer(ctx context.Context, p *model.ProPlayer) error
	ListProPlayers(ctx context.Context) ([]model.ProPlayer, error)
}
