package analytics

import (
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// zoneShots builds attempts in one zone with the first `makes` marked made.
func zoneShots(basic, area string, shotType shots.ShotType, attempts, makes int) []shots.Shot {
	out := make([]shots.Shot, 0, attempts)
	for i := 0; i < attempts; i++ {
		out = append(out, shots.Shot{
			ZoneBasic: basic,
			ZoneArea:  area,
			ShotType:  shotType,
			Made:      i < makes,
		})
	}
	return out
}

// sideShots builds attempts at a fixed x location.
func sideShots(x, attempts, makes int) []shots.Shot {
	out := make([]shots.Shot, 0, attempts)
	for i := 0; i < attempts; i++ {
		out = append(out, shots.Shot{LocationX: x, LocationY: 100, Made: i < makes})
	}
	return out
}

func pointsLog(points ...int) gamelogs.Log {
	start := time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC)
	log := make(gamelogs.Log, 0, len(points))
	for i, p := range points {
		log = append(log, gamelogs.Entry{GameDate: start.AddDate(0, 0, i), Points: p})
	}
	return log
}

func concat(groups ...[]shots.Shot) []shots.Shot {
	var out []shots.Shot
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
