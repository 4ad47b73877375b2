package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/auth"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/YassineAssim23/eFantasyREPO/prostore"
	"github.com/YassineAssim23/eFantasyREPO/statsfeed"
	"github.com/itbasis/go-clock"
)

var (
	// ErrValidation wraps all bad-input errors so the web layer can map
	// them to a 400 without inspecting messages.
	ErrValidation = errors.New("invalid request")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLeagueAdmin     = errors.New("only the league admin can do that")
	ErrLeagueFull         = errors.New("league is full")
	ErrAlreadyJoined      = errors.New("already a member of the league")
	ErrNotInLeague        = errors.New("not a member of the league")
	ErrPrivateLeague      = errors.New("league is private")
	ErrAdminCannotLeave   = errors.New("the league admin cannot leave the league")
	ErrDraftStarted       = errors.New("the draft has already started")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Register creates a new user with a hashed password. The web layer
	// only lets guests call this.
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// Login verifies the credentials and returns a signed session token.
	// An unknown username and a wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, username, password string) (string, error)
	// ValidateToken returns the user ID a session token was issued for.
	ValidateToken(token string) (int64, error)
	// GetUser looks a user up by ID if idOrName is numeric, otherwise by
	// username.
	GetUser(ctx context.Context, idOrName string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateLeague(ctx context.Context, adminID int64, name string, maxTeams int, public bool, draftTime time.Time, scoring string) (*model.League, error)
	GetLeague(ctx context.Context, id int64) (*model.League, error)
	// ListLeagues returns the leagues viewerID may see: public leagues
	// plus the private ones the viewer participates in. A viewerID of 0
	// means an anonymous caller, who only sees public leagues.
	ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error)
	UpdateLeague(ctx context.Context, userID, leagueID int64, upd *model.LeagueUpdate) (*model.League, error)
	DeleteLeague(ctx context.Context, userID, leagueID int64) error
	JoinLeague(ctx context.Context, leagueID, userID int64) (*model.League, error)
	// InviteToLeague lets the admin add another user directly, which is
	// the only way into a private league.
	InviteToLeague(ctx context.Context, leagueID, adminID, inviteeID int64) (*model.League, error)
	LeaveLeague(ctx context.Context, leagueID, userID int64) (*model.League, error)
	// GenerateDraftOrder stores a random permutation of the league's
	// participants. Only the admin can do it, and only before the draft.
	GenerateDraftOrder(ctx context.Context, leagueID, userID int64) (*model.League, error)

	GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error)
	ListProPlayers(ctx context.Context) ([]model.ProPlayer, error)
	InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error)
	InsertProPlayers(ctx context.Context, pros []model.ProPlayer) ([]string, error)
	// UpdateProPlayers pulls the latest stats export from the feed and
	// upserts every player in it.
	UpdateProPlayers(ctx context.Context) error
	RunPeriodicStatsUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	pros   prostore.Store
	feed   statsfeed.Client
	tokens *auth.TokenManager
}

func New(clock clock.Clock, db db.DB, pros prostore.Store, feed statsfeed.Client, tokens *auth.TokenManager) (C, error) {
	c := &controller{
		clock:  clock,
		db:     db,
		pros:   pros,
		feed:   feed,
		tokens: tokens,
	}
	return c, nil
}
