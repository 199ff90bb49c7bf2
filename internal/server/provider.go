package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/config"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers/nbastats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture", "":
		return fixture.New()
	case "nbastats":
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.NBAStats.BaseURL,
			Timeout: cfg.NBAStats.Timeout,
			Season:  cfg.DefaultSeason(),
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
