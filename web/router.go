package web

import (
	"time"

	"github.com/YassineAssim23/eFantasyREPO/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, adminPassword string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	// Registration and login are only for guests. A request carrying a
	// valid session token gets a 403 instead.
	r.Group(func(r chi.Router) {
		r.Use(guestOnly(ctrl, render))
		r.Post("/register", registerHandler(ctrl, render))
		r.Post("/login", loginHandler(ctrl, render))
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth(ctrl, render))
		r.Post("/signout", signoutHandler(render))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/{idOrName}", getUserHandler(ctrl, render))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(ctrl, render))
			r.Delete("/{idOrName}", deleteUserHandler(ctrl, render))
		})
	})

	r.Route("/leagues", func(r chi.Router) {
		// The listing depends on who is asking: signed in users also
		// see the private leagues they are in.
		r.With(identify(ctrl)).Get("/", listLeaguesHandler(ctrl, render))
		r.Get("/{leagueID:\\d+}", getLeagueHandler(ctrl, render))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(ctrl, render))
			r.Post("/", createLeagueHandler(ctrl, render))
			r.Put("/{leagueID:\\d+}", updateLeagueHandler(ctrl, render))
			r.Delete("/{leagueID:\\d+}", deleteLeagueHandler(ctrl, render))
			r.Post("/{leagueID:\\d+}/join", joinLeagueHandler(ctrl, render))
			r.Post("/{leagueID:\\d+}/invite", inviteLeagueHandler(ctrl, render))
			r.Post("/{leagueID:\\d+}/leave", leaveLeagueHandler(ctrl, render))
			r.Post("/{leagueID:\\d+}/draft-order", draftOrderHandler(ctrl, render))
		})
	})

	r.Route("/pros", func(r chi.Router) {
		r.Get("/", listProsHandler(ctrl, render))
		r.Get("/{proID}", getProHandler(ctrl, render))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth(ctrl, render))
			r.Post("/", insertProHandler(ctrl, render))
			r.Post("/batch", insertProsHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("efantasy", map[string]string{"admin": adminPassword}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/pros/update", forceUpdateProsHandler(ctrl, render))
	})

	return r
}
