package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	// Season scopes the all-players listing; ids outside it are still resolvable.
	Season string
}

// Client fetches player, shot, game log and career tables and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	season     string
	now        func() time.Time
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	season := cfg.Season
	if season == "" {
		season = defaultSeason
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		season:     season,
		now:        time.Now,
	}
}

// FetchPlayers returns every player in the league history listing.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueID)
	params.Set("Season", c.season)
	params.Set("IsOnlyCurrentSeason", "0")

	rows, err := c.fetchTable(ctx, endpointAllPlayers, setAllPlayers, params)
	if err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapPlayer(r))
	}
	return out, nil
}

// FetchPlayerInfo returns a player's profile, including position.
func (c *Client) FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("LeagueID", leagueID)

	rows, err := c.fetchTable(ctx, endpointPlayerInfo, setPlayerInfo, params)
	if err != nil {
		return players.Player{}, err
	}
	if len(rows) == 0 {
		return players.Player{}, fmt.Errorf("nbastats: player %d: %w", playerID, providers.ErrPlayerNotFound)
	}
	return mapPlayerInfo(rows[0]), nil
}

// FetchShots returns every field-goal attempt for the player's regular season.
func (c *Client) FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error) {
	rows, err := c.fetchTable(ctx, endpointShotChart, setShotChart, shotChartParams(playerID, season))
	if err != nil {
		return nil, err
	}
	out := make([]shots.Shot, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapShot(r))
	}
	return out, nil
}

// FetchGameLog returns the player's regular-season games in upstream order.
func (c *Client) FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", seasonTypeRegular)
	params.Set("LeagueID", leagueID)

	rows, err := c.fetchTable(ctx, endpointGameLog, setGameLog, params)
	if err != nil {
		return nil, err
	}
	out := make(gamelogs.Log, 0, len(rows))
	for _, r := range rows {
		entry, err := mapGameLogEntry(r)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// FetchCareer returns per-game regular-season averages, one row per season and team.
func (c *Client) FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error) {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("PerMode", "PerGame")
	params.Set("LeagueID", leagueID)

	rows, err := c.fetchTable(ctx, endpointCareer, setCareer, params)
	if err != nil {
		return nil, err
	}
	out := make([]players.SeasonAverages, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapSeasonAverages(r))
	}
	return out, nil
}

func shotChartParams(playerID int, season string) url.Values {
	params := url.Values{}
	params.Set("PlayerID", strconv.Itoa(playerID))
	params.Set("TeamID", "0")
	params.Set("Season", season)
	params.Set("SeasonType", seasonTypeRegular)
	params.Set("ContextMeasure", "FGA")
	params.Set("LeagueID", leagueID)
	for _, key := range []string{
		"DateFrom", "DateTo", "GameID", "GameSegment", "Location", "Outcome", "Position",
		"RookieYear", "SeasonSegment", "VsConference", "VsDivision", "PlayerPosition",
	} {
		params.Set(key, "")
	}
	for _, key := range []string{"LastNGames", "Month", "OpponentTeamID", "Period"} {
		params.Set(key, "0")
	}
	return params
}

func (c *Client) fetchTable(ctx context.Context, endpoint, set string, params url.Values) ([]row, error) {
	payload, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	rs, err := payload.table(set)
	if err != nil {
		return nil, err
	}
	return rs.rows(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return statsResponse{}, err
	}
	req.URL.RawQuery = params.Encode()
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statsResponse{}, fmt.Errorf("nbastats: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return statsResponse{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "nbastats: " + endpoint + " rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statsResponse{}, fmt.Errorf("nbastats: %s: unexpected status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return statsResponse{}, fmt.Errorf("nbastats: %s: decode: %w", endpoint, err)
	}
	return payload, nil
}
