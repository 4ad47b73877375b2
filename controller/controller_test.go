package controller

import (
	"testing"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/auth"
	"github.com/YassineAssim23/eFantasyREPO/db/mockdb"
	"github.com/YassineAssim23/eFantasyREPO/prostore/mockstore"
	"github.com/YassineAssim23/eFantasyREPO/statsfeed/mockfeed"
	"github.com/itbasis/go-clock"
)

// testTime is the time all controller tests run at.
var testTime = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

type testMocks struct {
	clock *clock.Mock
	db    *mockdb.DB
	pros  *mockstore.Store
	feed  *mockfeed.Client
}

func newTestController(t *testing.T) (C, *testMocks) {
	t.Helper()

	m := &testMocks{
		clock: clock.NewMock(),
		db:    &mockdb.DB{},
		pros:  &mockstore.Store{},
		feed:  &mockfeed.Client{},
	}
	m.clock.Set(testTime)

	tokens, err := auth.NewTokenManager("controller-test-secret", m.clock)
	if err != nil {
		t.Fatalf("error creating token manager: %v", err)
	}

	ctrl, err := New(m.clock, m.db, m.pros, m.feed, tokens)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl, m
}

func errorsEqual(e1, e2 error) bool {
	if e1 == nil && e2 == nil {
		return true
	}
	if (e1 != nil && e2 == nil) || (e1 == nil && e2 != nil) {
		return false
	}
	return e1.Error() == e2.Error()
}
