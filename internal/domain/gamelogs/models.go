package gamelogs

import "time"

// Entry is one game of a player's season log.
type Entry struct {
	GameID   string    `json:"gameId"`
	GameDate time.Time `json:"gameDate"`
	Matchup  string    `json:"matchup"`
	Result   string    `json:"result"`
	Minutes  float64   `json:"minutes"`
	Points   int       `json:"points"`
	Rebounds int       `json:"rebounds"`
	Assists  int       `json:"assists"`
	FGM      int       `json:"fgm"`
	FGA      int       `json:"fga"`
	FG3M     int       `json:"fg3m"`
	FG3A     int       `json:"fg3a"`
	FTM      int       `json:"ftm"`
	FTA      int       `json:"fta"`
}

// Log is a season's worth of entries.
type Log []Entry

// Points returns the per-game points in log order.
func (l Log) Points() []float64 {
	out := make([]float64, len(l))
	for i, e := range l {
		out[i] = float64(e.Points)
	}
	return out
}
