package players

import "fmt"

const (
	headshotURLFmt = "https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png"
	teamLogoURLFmt = "https://cdn.nba.com/logos/nba/%d/global/L/logo.svg"
)

// Player is the normalized player identity used to key provider lookups.
type Player struct {
	ID          int    `json:"id"`
	FullName    string `json:"fullName"`
	IsActive    bool   `json:"isActive"`
	TeamID      int    `json:"teamId"`
	Position    string `json:"position,omitempty"`
	HeadshotURL string `json:"headshotUrl"`
}

// HeadshotURL builds the CDN headshot URL for a player id.
func HeadshotURL(id int) string {
	return fmt.Sprintf(headshotURLFmt, id)
}

// TeamLogoURL builds the CDN logo URL for a team id; zero means no team.
func TeamLogoURL(teamID int) string {
	if teamID == 0 {
		return ""
	}
	return fmt.Sprintf(teamLogoURLFmt, teamID)
}

// SeasonAverages is one regular-season row of per-game career stats.
type SeasonAverages struct {
	SeasonID         string  `json:"seasonId"`
	TeamID           int     `json:"teamId"`
	TeamAbbreviation string  `json:"teamAbbreviation"`
	PlayerAge        float64 `json:"playerAge"`
	GamesPlayed      int     `json:"gamesPlayed"`
	GamesStarted     int     `json:"gamesStarted"`
	Minutes          float64 `json:"minutes"`
	Points           float64 `json:"points"`
	Rebounds         float64 `json:"rebounds"`
	Assists          float64 `json:"assists"`
	Steals           float64 `json:"steals"`
	Blocks           float64 `json:"blocks"`
	Turnovers        float64 `json:"turnovers"`
	FGPct            float64 `json:"fgPct"`
	FG3Pct           float64 `json:"fg3Pct"`
	FTPct            float64 `json:"ftPct"`
}
