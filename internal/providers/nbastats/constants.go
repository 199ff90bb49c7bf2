package nbastats

import "time"

const (
	providerName       = "nbastats"
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultHTTPTimeout = 15 * time.Second
	defaultSeason      = "2025-26"
	leagueID           = "00"
	seasonTypeRegular  = "Regular Season"
	maxErrorBody       = 512
)

const (
	endpointAllPlayers = "commonallplayers"
	endpointPlayerInfo = "commonplayerinfo"
	endpointShotChart  = "shotchartdetail"
	endpointGameLog    = "playergamelog"
	endpointCareer     = "playercareerstats"
)

const (
	setAllPlayers = "CommonAllPlayers"
	setPlayerInfo = "CommonPlayerInfo"
	setShotChart  = "Shot_Chart_Detail"
	setGameLog    = "PlayerGameLog"
	setCareer     = "SeasonTotalsRegularSeason"
)

// stats.nba.com rejects requests that do not look like they come from nba.com.
var defaultHeaders = map[string]string{
	"Accept":             "application/json, text/plain, */*",
	"Accept-Language":    "en-US,en;q=0.9",
	"Origin":             "https://www.nba.com",
	"Referer":            "https://www.nba.com/",
	"User-Agent":         "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
	"x-nba-stats-origin": "stats",
	"x-nba-stats-token":  "true",
}
