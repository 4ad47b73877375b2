package testutils

import (
	"context"
	"log"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/auth"
	"github.com/YassineAssim23/eFantasyREPO/containers"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/itbasis/go-clock"
)

// TestPassword is the plaintext password every test user is created with.
const TestPassword = "correct-horse-battery"

var (
	Doublelift = &model.User{
		Username: "doublelift",
		Email:    "doublelift@example.com",
	}
	Bjergsen = &model.User{
		Username: "bjergsen",
		Email:    "bjergsen@example.com",
	}
	Sneaky = &model.User{
		Username: "sneaky",
		Email:    "sneaky@example.com",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()

	mock := clock.NewMock()
	mock.Set(time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC))

	db, err := db.New(context.Background(), container.ConnectionString(), mock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestUsers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     mock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestUsers saves the test users and fills in their generated IDs.
func InsertTestUsers(db db.DB) error {
	users := []*model.User{
		Doublelift,
		Bjergsen,
		Sneaky,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, u := range users {
		if u.PasswordHash == "" {
			hash, err := auth.HashPassword(TestPassword)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}

		if err := db.SaveUser(ctx, u); err != nil {
			return err
		}
	}

	return nil
}
