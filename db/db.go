package db

import (
	"context"

	"github.com/YassineAssim23/eFantasyREPO/model"
)

type DB interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// SaveUser inserts a new user and fills in the generated ID and
	// created time. A duplicate username or email returns ErrUserExists.
	SaveUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id int64) error

	// AddLeague inserts a new league and fills in the generated ID and
	// created time.
	AddLeague(ctx context.Context, l *model.League) error
	GetLeague(ctx context.Context, id int64) (*model.League, error)
	// ListLeagues returns the leagues visible to viewerID, ordered by
	// their draft time, soonest first. Public leagues are visible to
	// everyone, private leagues only to their participants. A viewerID
	// of 0 means an anonymous caller.
	ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error)
	UpdateLeague(ctx context.Context, l *model.League) error
	DeleteLeague(ctx context.Context, id int64) error
	// AddLeagueParticipant appends userID to the league's participants
	// and clears the draft order in a single guarded statement, so
	// concurrent joins cannot push a league past max_teams. Returns
	// ErrAlreadyInLeague or ErrLeagueFull when the guard rejects it.
	AddLeagueParticipant(ctx context.Context, id, userID int64) error
	// RemoveLeagueParticipant removes userID from the participants and
	// clears the draft order. Returns ErrNotInLeague when the user is
	// not a member.
	RemoveLeagueParticipant(ctx context.Context, id, userID int64) error
	// SetDraftOrder stores the draft order for a league. A nil order
	// clears it.
	SetDraftOrder(ctx context.Context, id int64, order []int64) error
}
