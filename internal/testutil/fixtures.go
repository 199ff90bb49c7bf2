package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// SampleSeason is the season the fixtures describe.
const SampleSeason = "2024-25"

// SamplePlayers returns an active and an inactive player.
func SamplePlayers() []players.Player {
	return []players.Player{
		{ID: 2544, FullName: "LeBron James", IsActive: true, TeamID: 1610612747, Position: "Forward"},
		{ID: 977, FullName: "Kobe Bryant", TeamID: 1610612747, Position: "Guard"},
	}
}

// SampleShots returns 26 attempts: 12 rim attempts on the left (9 made), 12 above-the-break
// threes on the right (3 made) and 2 centerline mid-range attempts (1 made).
func SampleShots() []shots.Shot {
	out := make([]shots.Shot, 0, 26)
	add := func(n, makes int, basic, area string, shotType shots.ShotType, x, y int) {
		for i := 0; i < n; i++ {
			out = append(out, shots.Shot{
				GameID:    "0022400061",
				GameDate:  "2024-10-22",
				TeamID:    1610612747,
				Period:    1 + i%4,
				LocationX: x,
				LocationY: y,
				Made:      i < makes,
				ZoneBasic: basic,
				ZoneArea:  area,
				ShotType:  shotType,
			})
		}
	}
	add(12, 9, shots.ZoneRestrictedArea, shots.AreaCenter, shots.TwoPointFieldGoal, -10, 10)
	add(12, 3, shots.ZoneAboveBreak3, shots.AreaCenter, shots.ThreePointFieldGoal, 10, 250)
	add(2, 1, shots.ZoneMidRange, shots.AreaCenter, shots.TwoPointFieldGoal, 0, 150)
	return out
}

// SampleGameLog returns three games in ascending date order scoring 20, 22 and 24 points.
func SampleGameLog() gamelogs.Log {
	day := time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC)
	return gamelogs.Log{
		{GameID: "0022400061", GameDate: day, Matchup: "LAL vs. MIN", Result: "W", Points: 20, FGM: 8, FGA: 16},
		{GameID: "0022400075", GameDate: day.AddDate(0, 0, 2), Matchup: "LAL vs. PHX", Result: "W", Points: 22, FGM: 8, FGA: 15},
		{GameID: "0022400090", GameDate: day.AddDate(0, 0, 4), Matchup: "LAL @ SAC", Result: "L", Points: 24, FGM: 9, FGA: 18},
	}
}

// SampleCareer returns career rows in ascending season order.
func SampleCareer() []players.SeasonAverages {
	return []players.SeasonAverages{
		{SeasonID: "2022-23", TeamAbbreviation: "LAL", GamesPlayed: 55, Points: 28.9},
		{SeasonID: "2023-24", TeamAbbreviation: "LAL", GamesPlayed: 71, Points: 25.7},
		{SeasonID: "2024-25", TeamAbbreviation: "LAL", GamesPlayed: 70, Points: 24.4},
	}
}
