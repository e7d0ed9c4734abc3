package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"

	"github.com/bcheye/fantasy-foundry/controller"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)

	// The 10s timeout is applied per route group rather than globally: a
	// context deadline can only shrink, so a router-wide timeout would cap
	// the sync routes no matter what they set for themselves.
	r.Route("/api", func(r chi.Router) {
		r.Route("/sync", func(r chi.Router) {
			// Sync requests talk to the upstream FPL API and can take a
			// while, especially the league fan-outs. Individual fetches
			// carry their own timeouts.
			r.Use(middleware.Timeout(5 * time.Minute))

			r.Post("/bootstrap", syncBootstrapHandler(ctrl, render))
			r.Post("/user/{entryID:\\d+}", syncUserHandler(ctrl, render))
			r.Post("/history/{entryID:\\d+}", syncHistoryHandler(ctrl, render))
			r.Post("/leagues/{entryID:\\d+}", syncLeaguesHandler(ctrl, render))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))

			r.Get("/players", listPlayersHandler(ctrl, render))
			r.Get("/top_performing_players", topPlayersHandler(ctrl, render))
			r.Get("/gameweeks/{entryID:\\d+}", gameweekHistoryHandler(ctrl, render))
			r.Get("/overview/{entryID:\\d+}", overviewHandler(ctrl, render))
			r.Get("/minileagues/{entryID:\\d+}", miniLeaguesHandler(ctrl, render))
		})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))

		r.Post("/signup", signupHandler(ctrl, render))
		r.Post("/login", loginHandler(ctrl, render))
	})

	return r
}
