package fixture

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/court"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/timeutil"
)

const (
	gamesPerSeason = 60
	careerSeasons  = 6
)

// profile shapes the generated data for one fixture player.
type profile struct {
	player      players.Player
	shotsPerGm  int
	ppg         float64
	ppgSpread   float64
	leftBonus   float64
	rightBonus  float64
	zoneWeights []int // indexed like zoneTemplates
}

var profiles = []profile{
	{
		player:      players.Player{ID: 2544, FullName: "LeBron James", IsActive: true, TeamID: 1610612747, Position: "Forward"},
		shotsPerGm:  18,
		ppg:         25.5,
		ppgSpread:   5,
		leftBonus:   0.08,
		zoneWeights: []int{30, 12, 14, 3, 3, 25, 0},
	},
	{
		player:      players.Player{ID: 201939, FullName: "Stephen Curry", IsActive: true, TeamID: 1610612744, Position: "Guard"},
		shotsPerGm:  20,
		ppg:         27,
		ppgSpread:   11,
		rightBonus:  0.06,
		zoneWeights: []int{14, 6, 10, 5, 5, 45, 1},
	},
	{
		player:      players.Player{ID: 203999, FullName: "Nikola Jokic", IsActive: true, TeamID: 1610612743, Position: "Center"},
		shotsPerGm:  17,
		ppg:         26,
		ppgSpread:   3,
		zoneWeights: []int{35, 25, 20, 2, 2, 12, 0},
	},
	{
		player:      players.Player{ID: 977, FullName: "Kobe Bryant", IsActive: false, Position: "Guard"},
		shotsPerGm:  21,
		ppg:         25,
		ppgSpread:   8,
		zoneWeights: []int{18, 10, 40, 3, 3, 20, 0},
	},
}

// Provider serves deterministic players, shots, game logs and career rows for local runs and tests.
// The same player and season always produce the same data.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchPlayers returns the fixture roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, 0, len(profiles))
	for _, prof := range profiles {
		out = append(out, withHeadshot(prof.player, false))
	}
	return out, nil
}

// FetchPlayerInfo returns a fixture player with position.
func (p *Provider) FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error) {
	_ = ctx
	prof, err := lookup(playerID)
	if err != nil {
		return players.Player{}, err
	}
	return withHeadshot(prof.player, true), nil
}

// FetchShots generates a season of shots for the player.
func (p *Provider) FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error) {
	_ = ctx
	prof, err := lookup(playerID)
	if err != nil {
		return nil, err
	}
	start, err := timeutil.SeasonStartYear(season)
	if err != nil {
		return nil, err
	}

	rng := seeded(playerID, start, 1)
	opener := seasonOpener(start)
	out := make([]shots.Shot, 0, gamesPerSeason*prof.shotsPerGm)
	for g := 0; g < gamesPerSeason; g++ {
		id := gameID(start, playerID, g)
		date := timeutil.FormatDate(opener.AddDate(0, 0, 2*g))
		for i := 0; i < prof.shotsPerGm; i++ {
			out = append(out, prof.shot(rng, id, date, i))
		}
	}
	return out, nil
}

// FetchGameLog generates a season of games, newest first like the upstream feed.
func (p *Provider) FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error) {
	_ = ctx
	prof, err := lookup(playerID)
	if err != nil {
		return nil, err
	}
	start, err := timeutil.SeasonStartYear(season)
	if err != nil {
		return nil, err
	}

	rng := seeded(playerID, start, 2)
	opener := seasonOpener(start)
	out := make(gamelogs.Log, 0, gamesPerSeason)
	for g := gamesPerSeason - 1; g >= 0; g-- {
		out = append(out, prof.game(rng, gameID(start, playerID, g), opener.AddDate(0, 0, 2*g)))
	}
	return out, nil
}

// FetchCareer returns per-game averages for the seasons leading up to the current one.
func (p *Provider) FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error) {
	_ = ctx
	prof, err := lookup(playerID)
	if err != nil {
		return nil, err
	}

	last := p.now().Year()
	if p.now().Month() < time.October {
		last--
	}
	if !prof.player.IsActive {
		last = 2015
	}

	out := make([]players.SeasonAverages, 0, careerSeasons)
	for i := careerSeasons - 1; i >= 0; i-- {
		year := last - i
		rng := seeded(playerID, year, 3)
		gp := 55 + rng.Intn(27)
		out = append(out, players.SeasonAverages{
			SeasonID:     fmt.Sprintf("%d-%02d", year, (year+1)%100),
			TeamID:       prof.player.TeamID,
			PlayerAge:    float64(24 + careerSeasons - i),
			GamesPlayed:  gp,
			GamesStarted: gp,
			Minutes:      round1(32 + rng.Float64()*4),
			Points:       round1(prof.ppg + rng.NormFloat64()*1.5),
			Rebounds:     round1(4 + rng.Float64()*6),
			Assists:      round1(3 + rng.Float64()*6),
			Steals:       round1(0.6 + rng.Float64()),
			Blocks:       round1(0.2 + rng.Float64()*0.8),
			Turnovers:    round1(2 + rng.Float64()*2),
			FGPct:        round3(0.44 + rng.Float64()*0.1),
			FG3Pct:       round3(0.33 + rng.Float64()*0.08),
			FTPct:        round3(0.72 + rng.Float64()*0.18),
		})
	}
	return out, nil
}

func lookup(playerID int) (profile, error) {
	for _, prof := range profiles {
		if prof.player.ID == playerID {
			return prof, nil
		}
	}
	return profile{}, fmt.Errorf("fixture: player %d: %w", playerID, providers.ErrPlayerNotFound)
}

func withHeadshot(p players.Player, withPosition bool) players.Player {
	p.HeadshotURL = players.HeadshotURL(p.ID)
	if !withPosition {
		p.Position = ""
	}
	return p
}

func seeded(playerID, year, stream int) *rand.Rand {
	return rand.New(rand.NewSource(int64(playerID)*100000 + int64(year)*10 + int64(stream)))
}

func seasonOpener(startYear int) time.Time {
	return time.Date(startYear, time.October, 22, 0, 0, 0, 0, time.UTC)
}

func gameID(startYear, playerID, game int) string {
	return fmt.Sprintf("002%02d%05d", startYear%100, (playerID%100)*100+game+1)
}

func (prof profile) shot(rng *rand.Rand, id, date string, i int) shots.Shot {
	tmpl := zoneTemplates[pickWeighted(rng, prof.zoneWeights)]
	x, y := tmpl.place(rng)

	makePct := tmpl.makePct
	switch court.SideOf(x) {
	case court.SideLeft:
		makePct += prof.leftBonus
	case court.SideRight:
		makePct += prof.rightBonus
	}

	dist := court.DistanceFromHoop(x, y)
	return shots.Shot{
		GameID:       id,
		GameDate:     date,
		TeamID:       prof.player.TeamID,
		Period:       1 + i*4/prof.shotsPerGm,
		ActionType:   tmpl.action,
		LocationX:    x,
		LocationY:    y,
		Made:         rng.Float64() < makePct,
		ZoneBasic:    tmpl.basic,
		ZoneArea:     areaFor(tmpl.basic, x),
		ZoneRange:    rangeFor(tmpl.basic, dist),
		ShotType:     tmpl.shotType,
		DistanceFeet: math.Round(dist / 10),
	}
}

func (prof profile) game(rng *rand.Rand, id string, date time.Time) gamelogs.Entry {
	pts := int(math.Max(0, math.Round(prof.ppg+rng.NormFloat64()*prof.ppgSpread)))
	fg3a := 3 + rng.Intn(8)
	fg3m := rng.Intn(fg3a + 1)
	fta := 2 + rng.Intn(8)
	ftm := fta - rng.Intn(3)
	if ftm < 0 {
		ftm = 0
	}
	fgm := (pts - ftm - fg3m) / 2
	if fgm < fg3m {
		fgm = fg3m
	}
	result := "W"
	if rng.Intn(2) == 0 {
		result = "L"
	}
	return gamelogs.Entry{
		GameID:   id,
		GameDate: date,
		Matchup:  "FIX vs. OPP",
		Result:   result,
		Minutes:  float64(28 + rng.Intn(12)),
		Points:   pts,
		Rebounds: 2 + rng.Intn(10),
		Assists:  1 + rng.Intn(10),
		FGM:      fgm,
		FGA:      fgm + 5 + rng.Intn(8),
		FG3M:     fg3m,
		FG3A:     fg3a,
		FTM:      ftm,
		FTA:      fta,
	}
}

func pickWeighted(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	n := rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
