package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/YassineAssim23/eFantasyREPO/controller"
	"github.com/unrolled/render"
)

type contextKey string

const userIDKey contextKey = "userID"

// bearerToken extracts the token from an "Authorization: Bearer ..."
// header. It returns "" when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// requireAuth rejects requests without a valid session token and puts
// the authenticated user's ID on the request context.
func requireAuth(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}

			userID, err := ctrl.ValidateToken(token)
			if err != nil {
				render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// guestOnly rejects requests that carry a valid session token. Signed
// in users have no business registering or logging in again.
func guestOnly(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if _, err := ctrl.ValidateToken(token); err == nil {
					render.JSON(w, http.StatusForbidden, errorResponse{Error: "already signed in"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// identify is requireAuth's non-rejecting sibling. It stores the user
// ID when a valid token is present and lets everyone else through as a
// guest. Used on routes whose response depends on who is asking but
// that are open to anonymous callers.
func identify(ctrl controller.C) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if userID, err := ctrl.ValidateToken(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// authedUser returns the user ID requireAuth stored on the context.
func authedUser(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}
