package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nba-shotchart-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
)

const playerRoute = "/players/{" + handlers.PlayerParam + "}"

// NewRouter registers the API routes. admin may be nil, in which case no admin routes are mounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	router := chi.NewRouter()

	router.NotFound(handler.NotFound)
	router.MethodNotAllowed(handler.MethodNotAllowed)

	router.Use(func(next nethttp.Handler) nethttp.Handler {
		return middleware.LoggingMiddleware(logger, recorder, next)
	})
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)
	router.Get("/seasons", handler.Seasons)
	router.Get("/court", handler.Court)

	router.Get("/players", handler.Players)
	router.Get(playerRoute, handler.Player)
	router.Get(playerRoute+"/shots", handler.Shots)
	router.Get(playerRoute+"/zones", handler.Zones)
	router.Get(playerRoute+"/scouting", handler.Scouting)
	router.Get(playerRoute+"/gamelog", handler.GameLog)
	router.Get(playerRoute+"/career", handler.Career)

	if admin != nil {
		router.Post("/admin/cache/purge", admin.PurgeCache)
	}

	return router
}
