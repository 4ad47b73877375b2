package testutils

import (
	"context"
	"log"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/containers"
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/YassineAssim23/eFantasyREPO/prostore"
	"github.com/itbasis/go-clock"
)

var (
	ProFaker = &model.ProPlayer{
		Gamertag: "Faker",
		Team:     "T1",
		Region:   model.REGION_LCK,
		Country:  "KR",
		Stats: map[string]string{
			model.StatKDA:         "5.4",
			model.StatCSPerMin:    "8.9",
			model.StatVisionScore: "1.1",
			model.StatWinRate:     "62%",
		},
	}
	ProCaps = &model.ProPlayer{
		Gamertag: "Caps",
		Team:     "G2 Esports",
		Region:   model.REGION_LEC,
		Country:  "DK",
		Stats: map[string]string{
			model.StatKDA:         "4.1",
			model.StatCSPerMin:    "8.6",
			model.StatVisionScore: "1.0",
			model.StatWinRate:     "58%",
		},
	}
	ProKnight = &model.ProPlayer{
		Gamertag: "Knight",
		Team:     "BLG",
		Region:   model.REGION_LPL,
		Country:  "CN",
		Stats: map[string]string{
			model.StatKDA:         "6.0",
			model.StatCSPerMin:    "9.2",
			model.StatVisionScore: "0.9",
			model.StatWinRate:     "71%",
		},
	}
)

type TestStore struct {
	container *containers.MongoContainer
	Store     prostore.Store
	Clock     *clock.Mock
}

func NewTestStore() *TestStore {
	container := containers.NewMongoContainer()

	mock := clock.NewMock()
	mock.Set(time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := prostore.New(ctx, container.ConnectionString(), "efantasy", "pro_players", mock)
	if err != nil {
		log.Fatalf("error connecting to mongo in test container: %v", err)
	}

	if err := InsertTestProPlayers(store); err != nil {
		log.Fatalf("error populating mongo in test container: %v", err)
	}

	return &TestStore{
		container: container,
		Store:     store,
		Clock:     mock,
	}
}

func (s *TestStore) Shutdown() {
	s.container.Shutdown()
}

// InsertTestProPlayers saves the test pros and fills in their generated IDs.
func InsertTestProPlayers(store prostore.Store) error {
	pros := []*model.ProPlayer{
		ProFaker,
		ProCaps,
		ProKnight,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range pros {
		id, err := store.InsertProPlayer(ctx, p)
		if err != nil {
			return err
		}
		p.ID = id
	}

	return nil
}
