package mockstore

import (
	"context"

	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (s *Store) GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error) {
	args := s.Called(ctx, id)

	var p *model.ProPlayer
	if args.Get(0) != nil {
		p = args.Get(0).(*model.ProPlayer)
	}
	return p, args.Error(1)
}

func (s *Store) GetProPlayerByGamertag(ctx context.Context, gamertag string) (*model.ProPlayer, error) {
	args := s.Called(ctx, gamertag)

	var p *model.ProPlayer
	if args.Get(0) != nil {
		p = args.Get(0).(*model.ProPlayer)
	}
	return p, args.Error(1)
}

func (s *Store) InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error) {
	args := s.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (s *Store) UpsertProPlayer(ctx context.Context, p *model.ProPlayer) error {
	args := s.Called(ctx, p)
	return args.Error(0)
}

func (s *Store) ListProPlayers(ctx context.Context) ([]model.ProPlayer, error) {
	args := s.Called(ctx)

	var r []model.ProPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ProPlayer)
	}
	return r, args.Error(1)
}
