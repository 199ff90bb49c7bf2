package providers

import (
	"context"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// PlayerResolver lists players and looks up a single player's profile.
type PlayerResolver interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
	FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error)
}

// ShotSource fetches every field-goal attempt a player took in a season.
// Season ids look like "2024-25".
type ShotSource interface {
	FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error)
}

// GameLogSource fetches a player's regular-season game log.
type GameLogSource interface {
	FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error)
}

// CareerSource fetches per-season averages across a career.
type CareerSource interface {
	FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerResolver
	ShotSource
	GameLogSource
	CareerSource
}
