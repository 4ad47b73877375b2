package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := c.Called(ctx, username, email, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}

	return u, args.Error(1)
}

func (c *C) Login(ctx context.Context, username, password string) (string, error) {
	args := c.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (c *C) ValidateToken(token string) (int64, error) {
	args := c.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

func (c *C) GetUser(ctx context.Context, idOrName string) (*model.User, error) {
	args := c.Called(ctx, idOrName)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}

	return u, args.Error(1)
}

func (c *C) DeleteUser(ctx context.Context, id int64) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) CreateLeague(ctx context.Context, adminID int64, name string, maxTeams int, public bool, draftTime time.Time, scoring string) (*model.League, error) {
	args := c.Called(ctx, adminID, name, maxTeams, public, draftTime, scoring)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int64) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error) {
	args := c.Called(ctx, viewerID)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) UpdateLeague(ctx context.Context, userID, leagueID int64, upd *model.LeagueUpdate) (*model.League, error) {
	args := c.Called(ctx, userID, leagueID, upd)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) DeleteLeague(ctx context.Context, userID, leagueID int64) error {
	args := c.Called(ctx, userID, leagueID)
	return args.Error(0)
}

func (c *C) JoinLeague(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	args := c.Called(ctx, leagueID, userID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) InviteToLeague(ctx context.Context, leagueID, adminID, inviteeID int64) (*model.League, error) {
	args := c.Called(ctx, leagueID, adminID, inviteeID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) LeaveLeague(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	args := c.Called(ctx, leagueID, userID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) GenerateDraftOrder(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	args := c.Called(ctx, leagueID, userID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error) {
	args := c.Called(ctx, id)

	var p *model.ProPlayer
	if args.Get(0) != nil {
		p = args.Get(0).(*model.ProPlayer)
	}

	return p, args.Error(1)
}

func (c *C) ListProPlayers(ctx context.Context) ([]model.ProPlayer, error) {
	args := c.Called(ctx)

	var res []model.ProPlayer
	if args.Get(0) != nil {
		res = args.Get(0).([]model.ProPlayer)
	}

	return res, args.Error(1)
}

func (c *C) InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error) {
	args := c.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (c *C) InsertProPlayers(ctx context.Context, pros []model.ProPlayer) ([]string, error) {
	args := c.Called(ctx, pros)

	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}

	return ids, args.Error(1)
}

func (c *C) UpdateProPlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicStatsUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
