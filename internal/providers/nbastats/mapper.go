package nbastats

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/timeutil"
)

const shotDateLayout = "20060102"

func mapPlayer(r row) players.Player {
	id := r.int("PERSON_ID")
	return players.Player{
		ID:          id,
		FullName:    r.str("DISPLAY_FIRST_LAST"),
		IsActive:    r.active("ROSTERSTATUS"),
		TeamID:      r.int("TEAM_ID"),
		HeadshotURL: players.HeadshotURL(id),
	}
}

func mapPlayerInfo(r row) players.Player {
	p := mapPlayer(r)
	p.Position = r.str("POSITION")
	return p
}

func mapShot(r row) shots.Shot {
	return shots.Shot{
		GameID:       r.str("GAME_ID"),
		GameDate:     shotDate(r.str("GAME_DATE")),
		TeamID:       r.int("TEAM_ID"),
		Period:       r.int("PERIOD"),
		ActionType:   r.str("ACTION_TYPE"),
		LocationX:    r.int("LOC_X"),
		LocationY:    r.int("LOC_Y"),
		Made:         shots.MadeFromFlag(r.int("SHOT_MADE_FLAG")),
		ZoneBasic:    r.str("SHOT_ZONE_BASIC"),
		ZoneArea:     r.str("SHOT_ZONE_AREA"),
		ZoneRange:    r.str("SHOT_ZONE_RANGE"),
		ShotType:     shots.ShotType(r.str("SHOT_TYPE")),
		DistanceFeet: r.float("SHOT_DISTANCE"),
	}
}

// shotDate normalizes 20241022 to 2024-10-22, passing unknown forms through.
func shotDate(raw string) string {
	if t, err := time.Parse(shotDateLayout, raw); err == nil {
		return timeutil.FormatDate(t)
	}
	return raw
}

func mapGameLogEntry(r row) (gamelogs.Entry, error) {
	date, err := timeutil.ParseGameDate(r.str("GAME_DATE"))
	if err != nil {
		return gamelogs.Entry{}, fmt.Errorf("nbastats: game %s: %w", r.str("GAME_ID"), err)
	}
	return gamelogs.Entry{
		GameID:   r.str("GAME_ID"),
		GameDate: date,
		Matchup:  r.str("MATCHUP"),
		Result:   r.str("WL"),
		Minutes:  r.float("MIN"),
		Points:   r.int("PTS"),
		Rebounds: r.int("REB"),
		Assists:  r.int("AST"),
		FGM:      r.int("FGM"),
		FGA:      r.int("FGA"),
		FG3M:     r.int("FG3M"),
		FG3A:     r.int("FG3A"),
		FTM:      r.int("FTM"),
		FTA:      r.int("FTA"),
	}, nil
}

func mapSeasonAverages(r row) players.SeasonAverages {
	return players.SeasonAverages{
		SeasonID:         r.str("SEASON_ID"),
		TeamID:           r.int("TEAM_ID"),
		TeamAbbreviation: r.str("TEAM_ABBREVIATION"),
		PlayerAge:        r.float("PLAYER_AGE"),
		GamesPlayed:      r.int("GP"),
		GamesStarted:     r.int("GS"),
		Minutes:          r.float("MIN"),
		Points:           r.float("PTS"),
		Rebounds:         r.float("REB"),
		Assists:          r.float("AST"),
		Steals:           r.float("STL"),
		Blocks:           r.float("BLK"),
		Turnovers:        r.float("TOV"),
		FGPct:            r.float("FG_PCT"),
		FG3Pct:           r.float("FG3_PCT"),
		FTPct:            r.float("FT_PCT"),
	}
}
