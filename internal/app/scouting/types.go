package scouting

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/analytics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// ShotPoint is a shot with its display result label.
type ShotPoint struct {
	shots.Shot
	Result string `json:"result"`
}

// ShotChart is a player's season of attempts.
// TeamID is taken from the first shot, matching the team the player started the season with.
type ShotChart struct {
	Player      players.Player `json:"player"`
	Season      string         `json:"season"`
	TeamID      int            `json:"teamId"`
	TeamLogoURL string         `json:"teamLogoUrl,omitempty"`
	TotalShots  int            `json:"totalShots"`
	MadeShots   int            `json:"madeShots"`
	Shots       []ShotPoint    `json:"shots"`
}

// ZoneReport is the zone efficiency table in display order.
type ZoneReport struct {
	Player     players.Player       `json:"player"`
	Season     string               `json:"season"`
	TotalShots int                  `json:"totalShots"`
	Zones      []analytics.ZoneStat `json:"zones"`
}

// Report is the composite scouting report for a player season.
type Report struct {
	Player               players.Player           `json:"player"`
	Season               string                   `json:"season"`
	Report               analytics.ScoutingReport `json:"report"`
	InsufficientSections []string                 `json:"insufficientSections"`
}

// GameLog is a season's games newest first plus season totals.
type GameLog struct {
	Player  players.Player          `json:"player"`
	Season  string                  `json:"season"`
	Summary analytics.SeasonSummary `json:"summary"`
	Games   gamelogs.Log            `json:"games"`
}

// Career is a player's per-season averages, newest first.
type Career struct {
	Player  players.Player           `json:"player"`
	Seasons []players.SeasonAverages `json:"seasons"`
}
