package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/controller"
	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/YassineAssim23/eFantasyREPO/prostore"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// errorStatus maps the controller's sentinel errors to HTTP statuses.
// Anything unrecognized is a 500 with a generic message so internal
// details never leak to clients.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, controller.ErrValidation) || errors.Is(err, prostore.ErrInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, controller.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, controller.ErrNotLeagueAdmin) || errors.Is(err, controller.ErrPrivateLeague):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, db.ErrUserNotFound) ||
		errors.Is(err, db.ErrLeagueNotFound) ||
		errors.Is(err, prostore.ErrProNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, db.ErrUserExists) ||
		errors.Is(err, prostore.ErrProExists) ||
		errors.Is(err, controller.ErrLeagueFull) ||
		errors.Is(err, controller.ErrAlreadyJoined) ||
		errors.Is(err, controller.ErrNotInLeague) ||
		errors.Is(err, controller.ErrAdminCannotLeave) ||
		errors.Is(err, controller.ErrDraftStarted):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func renderError(render *render.Render, w http.ResponseWriter, err error) {
	status, msg := errorStatus(err)
	render.JSON(w, status, errorResponse{Error: msg})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: error parsing request body", controller.ErrValidation)
	}
	return nil
}

func registerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		u, err := ctrl.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusCreated, u)
	}
}

func loginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeBody(r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		token, err := ctrl.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			renderError(render, w, err)
			return
		}

		render.JSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

// Sessions are stateless tokens, so signout is just a well-known spot
// for clients to discard theirs. It only confirms the token was valid.
func signoutHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "signed out"})
	}
}

func getUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := ctrl.GetUser(r.Context(), chi.URLParam(r, "idOrName"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, u)
	}
}

func deleteUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := ctrl.GetUser(r.Context(), chi.URLParam(r, "idOrName"))
		if err != nil {
			renderError(render, w, err)
			return
		}

		// Users can only delete their own account.
		if u.ID != authedUser(r) {
			render.JSON(w, http.StatusForbidden, errorResponse{Error: "cannot delete another user's account"})
			return
		}

		if err := ctrl.DeleteUser(r.Context(), u.ID); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type leagueRequest struct {
	Name      string    `json:"name"`
	MaxTeams  int       `json:"max_teams"`
	Public    bool      `json:"is_public"`
	DraftTime time.Time `json:"draft_time"`
	Scoring   string    `json:"scoring_type"`
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context(), authedUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func createLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leagueRequest
		if err := decodeBody(r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.CreateLeague(r.Context(), authedUser(r), req.Name, req.MaxTeams, req.Public, req.DraftTime, req.Scoring)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, l)
	}
}

func updateLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		var req leagueRequest
		if err := decodeBody(r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		upd := &model.LeagueUpdate{
			Name:      req.Name,
			MaxTeams:  req.MaxTeams,
			Public:    req.Public,
			DraftTime: req.DraftTime,
			Scoring:   model.ParseScoringType(req.Scoring),
		}

		l, err := ctrl.UpdateLeague(r.Context(), authedUser(r), id, upd)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func deleteLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		if err := ctrl.DeleteLeague(r.Context(), authedUser(r), id); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func joinLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.JoinLeague(r.Context(), id, authedUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func inviteLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		var req struct {
			UserID int64 `json:"user_id"`
		}
		if err := decodeBody(r, &req); err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.InviteToLeague(r.Context(), id, authedUser(r), req.UserID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func leaveLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.LeaveLeague(r.Context(), id, authedUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func draftOrderHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leagueID(r)
		if err != nil {
			renderError(render, w, err)
			return
		}

		l, err := ctrl.GenerateDraftOrder(r.Context(), id, authedUser(r))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func leagueID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "leagueID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing league id", controller.ErrValidation)
	}
	return id, nil
}

func listProsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pros, err := ctrl.ListProPlayers(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, pros)
	}
}

func getProHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetProPlayer(r.Context(), chi.URLParam(r, "proID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func insertProHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.ProPlayer
		if err := decodeBody(r, &p); err != nil {
			renderError(render, w, err)
			return
		}

		id, err := ctrl.InsertProPlayer(r.Context(), &p)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func insertProsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pros []model.ProPlayer
		if err := decodeBody(r, &pros); err != nil {
			renderError(render, w, err)
			return
		}

		ids, err := ctrl.InsertProPlayers(r.Context(), pros)
		if err != nil {
			// Inserts stop at the first failure, report what made it in.
			status, msg := errorStatus(err)
			render.JSON(w, status, map[string]any{
				"error":    msg,
				"inserted": ids,
			})
			return
		}
		render.JSON(w, http.StatusCreated, map[string]any{"ids": ids})
	}
}

func forceUpdateProsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdateProPlayers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating pro players: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "pro player update completed successfully")
	}
}
