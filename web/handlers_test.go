package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/controller"
	"github.com/YassineAssim23/eFantasyREPO/controller/mockcontroller"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/YassineAssim23/eFantasyREPO/prostore"
	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"
)

const testAdminPassword = "pa55word"

// newTestRouter builds the full router around a mock controller so the
// tests exercise the real middleware chain.
func newTestRouter(ctrl controller.C) http.Handler {
	return getRouter(ctrl, render.New(), testAdminPassword)
}

func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Result()
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		user := &model.User{ID: 7, Username: "doublelift", Email: "dl@example.com"}
		ctrl.On("Register", mock.Anything, "doublelift", "dl@example.com", "hunter2hunter2").Return(user, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/register",
			`{"username":"doublelift","email":"dl@example.com","password":"hunter2hunter2"}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var got model.User
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if got.ID != user.ID || got.Username != user.Username {
			t.Errorf("unexpected user in response: %+v", got)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("duplicate user is a conflict", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("Register", mock.Anything, "doublelift", "dl@example.com", "hunter2hunter2").Return(nil, db.ErrUserExists)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/register",
			`{"username":"doublelift","email":"dl@example.com","password":"hunter2hunter2"}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusConflict {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("validation error is a bad request", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("Register", mock.Anything, "dl", "dl@example.com", "hunter2hunter2").Return(nil, controller.ErrValidation)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/register",
			`{"username":"dl","email":"dl@example.com","password":"hunter2hunter2"}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("signed in users get a 403", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/register",
			`{"username":"doublelift","email":"dl@example.com","password":"hunter2hunter2"}`, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("Login", mock.Anything, "doublelift", "hunter2hunter2").Return("a-signed-token", nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/login",
			`{"username":"doublelift","password":"hunter2hunter2"}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var got tokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if got.Token != "a-signed-token" {
			t.Errorf("unexpected token in response: %q", got.Token)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("Login", mock.Anything, "doublelift", "wrong").Return("", controller.ErrInvalidCredentials)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/login",
			`{"username":"doublelift","password":"wrong"}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("expired token still counts as a guest", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "stale-token").Return(int64(0), controller.ErrInvalidCredentials)
		ctrl.On("Login", mock.Anything, "doublelift", "hunter2hunter2").Return("a-signed-token", nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/login",
			`{"username":"doublelift","password":"hunter2hunter2"}`, "stale-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})
}

func TestGetUserHandler(t *testing.T) {
	user := &model.User{ID: 7, Username: "doublelift", Email: "dl@example.com"}

	tests := map[string]struct {
		idOrName   string
		user       *model.User
		err        error
		wantStatus int
	}{
		"by id":       {idOrName: "7", user: user, wantStatus: http.StatusOK},
		"by username": {idOrName: "doublelift", user: user, wantStatus: http.StatusOK},
		"not found":   {idOrName: "nobody", err: db.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("GetUser", mock.Anything, tc.idOrName).Return(tc.user, tc.err)

			resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/users/"+tc.idOrName, "", "")
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("unexpected status code. Got: %d, wanted: %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	user := &model.User{ID: 7, Username: "doublelift"}

	t.Run("delete own account", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("GetUser", mock.Anything, "doublelift").Return(user, nil)
		ctrl.On("DeleteUser", mock.Anything, int64(7)).Return(nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodDelete, "/users/doublelift", "", "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("cannot delete another user", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(8), nil)
		ctrl.On("GetUser", mock.Anything, "doublelift").Return(user, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodDelete, "/users/doublelift", "", "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	})

	t.Run("no token", func(t *testing.T) {
		ctrl := &mockcontroller.C{}

		resp := doRequest(t, newTestRouter(ctrl), http.MethodDelete, "/users/doublelift", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})
}

func TestLeagueHandlers(t *testing.T) {
	draftTime := time.Date(2024, 8, 10, 18, 0, 0, 0, time.UTC)
	league := &model.League{
		ID:           42,
		Name:         "Worlds Watchers",
		AdminID:      7,
		MaxTeams:     10,
		Public:       true,
		DraftTime:    draftTime,
		Scoring:      model.SCORING_STANDARD,
		Participants: []int64{7},
	}

	t.Run("create", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("CreateLeague", mock.Anything, int64(7), "Worlds Watchers", 10, true, draftTime, "standard").Return(league, nil)

		body := `{"name":"Worlds Watchers","max_teams":10,"is_public":true,"draft_time":"2024-08-10T18:00:00Z","scoring_type":"standard"}`
		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/", body, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("create requires auth", func(t *testing.T) {
		ctrl := &mockcontroller.C{}

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/", `{}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertNotCalled(t, "CreateLeague", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("list as guest", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ListLeagues", mock.Anything, int64(0)).Return([]model.League{*league}, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/leagues/", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("list while signed in", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("ListLeagues", mock.Anything, int64(7)).Return([]model.League{*league}, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/leagues/", "", "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("list with a stale token is still a guest", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "stale-token").Return(int64(0), controller.ErrInvalidCredentials)
		ctrl.On("ListLeagues", mock.Anything, int64(0)).Return([]model.League{*league}, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/leagues/", "", "stale-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("get", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("GetLeague", mock.Anything, int64(42)).Return(league, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/leagues/42", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var got model.League
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if got.ID != league.ID || got.Name != league.Name {
			t.Errorf("unexpected league in response: %+v", got)
		}
	})

	t.Run("get missing league", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("GetLeague", mock.Anything, int64(99)).Return(nil, db.ErrLeagueNotFound)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/leagues/99", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("join full league", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(9), nil)
		ctrl.On("JoinLeague", mock.Anything, int64(42), int64(9)).Return(nil, controller.ErrLeagueFull)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/42/join", "", "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusConflict {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("invite", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("InviteToLeague", mock.Anything, int64(42), int64(7), int64(9)).Return(league, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/42/invite", `{"user_id":9}`, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("invite by non-admin", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(9), nil)
		ctrl.On("InviteToLeague", mock.Anything, int64(42), int64(9), int64(11)).Return(nil, controller.ErrNotLeagueAdmin)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/42/invite", `{"user_id":11}`, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("invite requires auth", func(t *testing.T) {
		ctrl := &mockcontroller.C{}

		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/leagues/42/invite", `{"user_id":9}`, "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
		ctrl.AssertNotCalled(t, "InviteToLeague", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete by non-admin", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(9), nil)
		ctrl.On("DeleteLeague", mock.Anything, int64(9), int64(42)).Return(controller.ErrNotLeagueAdmin)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodDelete, "/leagues/42", "", "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})
}

func TestProHandlers(t *testing.T) {
	pro := &model.ProPlayer{ID: "66aa00000000000000000001", Gamertag: "Faker", Team: "T1"}

	t.Run("get", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("GetProPlayer", mock.Anything, pro.ID).Return(pro, nil)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/pros/"+pro.ID, "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("GetProPlayer", mock.Anything, "not-hex").Return(nil, prostore.ErrInvalidID)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/pros/not-hex", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("missing pro", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("GetProPlayer", mock.Anything, "66aa00000000000000000099").Return(nil, prostore.ErrProNotFound)

		resp := doRequest(t, newTestRouter(ctrl), http.MethodGet, "/pros/66aa00000000000000000099", "", "")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}
	})

	t.Run("batch insert reports partial progress", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("InsertProPlayers", mock.Anything, mock.Anything).
			Return([]string{"66aa00000000000000000001"}, fmt.Errorf("error inserting pro player %q: %w", "Faker", prostore.ErrProExists))

		body := `[{"gamertag":"Faker"},{"gamertag":"Caps"}]`
		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/pros/batch", body, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusConflict {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var got struct {
			Error    string   `json:"error"`
			Inserted []string `json:"inserted"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(got.Inserted) != 1 {
			t.Errorf("expected one inserted id, got %v", got.Inserted)
		}
	})

	t.Run("batch insert validation failure is a bad request", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("ValidateToken", "valid-token").Return(int64(7), nil)
		ctrl.On("InsertProPlayers", mock.Anything, mock.Anything).
			Return([]string{"66aa00000000000000000001"}, fmt.Errorf("error inserting pro player %q: %w", "", controller.ErrValidation))

		body := `[{"gamertag":"Faker"},{"gamertag":""}]`
		resp := doRequest(t, newTestRouter(ctrl), http.MethodPost, "/pros/batch", body, "valid-token")
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
		}

		var got struct {
			Error    string   `json:"error"`
			Inserted []string `json:"inserted"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(got.Inserted) != 1 {
			t.Errorf("expected one inserted id, got %v", got.Inserted)
		}
	})
}

func TestAdminUpdatePros(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := &mockcontroller.C{}
		ctrl.On("UpdateProPlayers", mock.Anything).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/pros/update", nil)
		req.SetBasicAuth("admin", testAdminPassword)

		rr := httptest.NewRecorder()
		newTestRouter(ctrl).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("unexpected status code. Got: %d", rr.Code)
		}
		ctrl.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := &mockcontroller.C{}

		req := httptest.NewRequest(http.MethodPost, "/admin/pros/update", nil)
		req.SetBasicAuth("admin", "not-the-password")

		rr := httptest.NewRecorder()
		newTestRouter(ctrl).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("unexpected status code. Got: %d", rr.Code)
		}
		ctrl.AssertNotCalled(t, "UpdateProPlayers", mock.Anything)
	})
}
