package analytics

import (
	"sort"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
)

// SeasonSummary totals and averages a game log.
type SeasonSummary struct {
	Games       int     `json:"games"`
	PointsPG    float64 `json:"pointsPerGame"`
	ReboundsPG  float64 `json:"reboundsPerGame"`
	AssistsPG   float64 `json:"assistsPerGame"`
	FGPct       float64 `json:"fgPct"`
	FG3Pct      float64 `json:"fg3Pct"`
	FTPct       float64 `json:"ftPct"`
	TotalPoints int     `json:"totalPoints"`
}

// SummarizeSeason computes per-game averages and shooting splits from makes/attempts totals.
func SummarizeSeason(log gamelogs.Log) SeasonSummary {
	var (
		s                            SeasonSummary
		reb, ast                     int
		fgm, fga, f3m, f3a, ftm, fta int
	)
	s.Games = len(log)
	for _, e := range log {
		s.TotalPoints += e.Points
		reb += e.Rebounds
		ast += e.Assists
		fgm += e.FGM
		fga += e.FGA
		f3m += e.FG3M
		f3a += e.FG3A
		ftm += e.FTM
		fta += e.FTA
	}
	s.PointsPG = ratio(s.TotalPoints, s.Games)
	s.ReboundsPG = ratio(reb, s.Games)
	s.AssistsPG = ratio(ast, s.Games)
	s.FGPct = ratio(fgm, fga)
	s.FG3Pct = ratio(f3m, f3a)
	s.FTPct = ratio(ftm, fta)
	return s
}

// SortByDateDesc returns a copy of the log with the most recent game first.
func SortByDateDesc(log gamelogs.Log) gamelogs.Log {
	out := make(gamelogs.Log, len(log))
	copy(out, log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GameDate.After(out[j].GameDate)
	})
	return out
}
