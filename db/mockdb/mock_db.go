package mockdb

import (
	"context"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := db.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) SaveUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}

func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AddLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) GetLeague(ctx context.Context, id int64) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error) {
	args := db.Called(ctx, viewerID)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) UpdateLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) DeleteLeague(ctx context.Context, id int64) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AddLeagueParticipant(ctx context.Context, id, userID int64) error {
	args := db.Called(ctx, id, userID)
	return args.Error(0)
}

func (db *DB) RemoveLeagueParticipant(ctx context.Context, id, userID int64) error {
	args := db.Called(ctx, id, userID)
	return args.Error(0)
}

func (db *DB) SetDraftOrder(ctx context.Context, id int64, order []int64) error {
	args := db.Called(ctx, id, order)
	return args.Error(0)
}
