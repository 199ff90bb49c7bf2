package nbastats

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

var _ providers.DataProvider = (*Client)(nil)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://stats.test/stats/",
		HTTPClient: &http.Client{Transport: rt},
		Season:     "2024-25",
	})
}

func TestFetchShotsHitsEndpointAndMapsRows(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/stats/shotchartdetail" {
			t.Fatalf("expected shotchartdetail path, got %s", req.URL.Path)
		}
		q := req.URL.Query()
		if q.Get("PlayerID") != "2544" || q.Get("Season") != "2024-25" || q.Get("ContextMeasure") != "FGA" || q.Get("TeamID") != "0" {
			t.Fatalf("unexpected query %s", req.URL.RawQuery)
		}
		if q.Get("SeasonType") != "Regular Season" {
			t.Fatalf("expected regular season, got %q", q.Get("SeasonType"))
		}
		if req.Header.Get("Referer") == "" || req.Header.Get("User-Agent") == "" {
			t.Fatalf("expected browser headers to be set")
		}
		return jsonResponse(http.StatusOK, `{
			"resource": "shotchartdetail",
			"resultSets": [
				{
					"name": "Shot_Chart_Detail",
					"headers": ["GRID_TYPE","GAME_ID","GAME_EVENT_ID","PLAYER_ID","TEAM_ID","PERIOD","ACTION_TYPE","SHOT_TYPE","SHOT_ZONE_BASIC","SHOT_ZONE_AREA","SHOT_ZONE_RANGE","SHOT_DISTANCE","LOC_X","LOC_Y","SHOT_ATTEMPTED_FLAG","SHOT_MADE_FLAG","GAME_DATE"],
					"rowSet": [
						["Shot Chart Detail","0022400061",7,2544,1610612747,1,"Driving Layup Shot","2PT Field Goal","Restricted Area","Center(C)","Less Than 8 ft.",1,-4,12,1,1,"20241022"],
						["Shot Chart Detail","0022400061",30,2544,1610612747,2,"Jump Shot","3PT Field Goal","Left Corner 3","Left Side(L)","24+ ft.",22,-222,15,1,0,"20241022"]
					]
				},
				{"name": "LeagueAverages", "headers": [], "rowSet": []}
			]
		}`), nil
	})

	got, err := newTestClient(rt).FetchShots(context.Background(), 2544, "2024-25")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 shots, got %d", len(got))
	}
	first := got[0]
	if first.GameID != "0022400061" || first.GameDate != "2024-10-22" || first.TeamID != 1610612747 {
		t.Fatalf("unexpected identity fields %+v", first)
	}
	if !first.Made || first.LocationX != -4 || first.LocationY != 12 || first.ZoneBasic != shots.ZoneRestrictedArea || first.ZoneArea != shots.AreaCenter {
		t.Fatalf("unexpected shot %+v", first)
	}
	second := got[1]
	if second.Made || second.ShotType != shots.ThreePointFieldGoal || second.ZoneBasic != shots.ZoneLeftCorner3 || second.DistanceFeet != 22 {
		t.Fatalf("unexpected shot %+v", second)
	}
}

func TestFetchPlayersMapsRosterStatus(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/stats/commonallplayers" || req.URL.Query().Get("IsOnlyCurrentSeason") != "0" {
			t.Fatalf("unexpected request %s", req.URL.String())
		}
		return jsonResponse(http.StatusOK, `{"resultSets":[{"name":"CommonAllPlayers",
			"headers":["PERSON_ID","DISPLAY_LAST_COMMA_FIRST","DISPLAY_FIRST_LAST","ROSTERSTATUS","FROM_YEAR","TO_YEAR","TEAM_ID"],
			"rowSet":[[2544,"James, LeBron","LeBron James",1,"2003","2024",1610612747],[76003,"Abdul-Jabbar, Kareem","Kareem Abdul-Jabbar",0,"1969","1988",0]]}]}`), nil
	})

	got, err := newTestClient(rt).FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 players, got %d", len(got))
	}
	if got[0].ID != 2544 || got[0].FullName != "LeBron James" || !got[0].IsActive || got[0].TeamID != 1610612747 {
		t.Fatalf("unexpected player %+v", got[0])
	}
	if got[0].HeadshotURL != "https://cdn.nba.com/headshots/nba/latest/1040x760/2544.png" {
		t.Fatalf("unexpected headshot %s", got[0].HeadshotURL)
	}
	if got[1].IsActive {
		t.Fatalf("expected retired player inactive")
	}
}

func TestFetchPlayerInfoReadsPosition(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"resultSets":[{"name":"CommonPlayerInfo",
			"headers":["PERSON_ID","FIRST_NAME","LAST_NAME","DISPLAY_FIRST_LAST","POSITION","ROSTERSTATUS","TEAM_ID"],
			"rowSet":[[201939,"Stephen","Curry","Stephen Curry","Guard","Active",1610612744]]}]}`), nil
	})

	got, err := newTestClient(rt).FetchPlayerInfo(context.Background(), 201939)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got.Position != "Guard" || !got.IsActive || got.FullName != "Stephen Curry" {
		t.Fatalf("unexpected player %+v", got)
	}
}

func TestFetchPlayerInfoEmptyIsNotFound(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"resultSets":[{"name":"CommonPlayerInfo","headers":["PERSON_ID"],"rowSet":[]}]}`), nil
	})

	_, err := newTestClient(rt).FetchPlayerInfo(context.Background(), 1)
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFetchGameLogParsesDates(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("SeasonType") != "Regular Season" {
			t.Fatalf("expected regular season game log")
		}
		return jsonResponse(http.StatusOK, `{"resultSets":[{"name":"PlayerGameLog",
			"headers":["SEASON_ID","Player_ID","Game_ID","GAME_DATE","MATCHUP","WL","MIN","FGM","FGA","FG3M","FG3A","FTM","FTA","REB","AST","PTS"],
			"rowSet":[["22024",2544,"0022400061","OCT 22, 2024","LAL vs. MIN","W",35,6,13,1,4,3,4,5,5,16]]}]}`), nil
	})

	got, err := newTestClient(rt).FetchGameLog(context.Background(), 2544, "2024-25")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.GameID != "0022400061" || !e.GameDate.Equal(time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected identity %+v", e)
	}
	if e.Points != 16 || e.Rebounds != 5 || e.Assists != 5 || e.FGA != 13 || e.Result != "W" || e.Minutes != 35 {
		t.Fatalf("unexpected stats %+v", e)
	}
}

func TestFetchGameLogRejectsBadDate(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"resultSets":[{"name":"PlayerGameLog","headers":["Game_ID","GAME_DATE"],"rowSet":[["g1","someday"]]}]}`), nil
	})
	if _, err := newTestClient(rt).FetchGameLog(context.Background(), 1, "2024-25"); err == nil {
		t.Fatalf("expected date parse error")
	}
}

func TestFetchCareerUsesPerGameRegularSeason(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("PerMode") != "PerGame" {
			t.Fatalf("expected per game averages")
		}
		return jsonResponse(http.StatusOK, `{"resultSets":[
			{"name":"SeasonTotalsRegularSeason",
			 "headers":["PLAYER_ID","SEASON_ID","LEAGUE_ID","TEAM_ID","TEAM_ABBREVIATION","PLAYER_AGE","GP","GS","MIN","FGM","FGA","FG_PCT","FG3M","FG3A","FG3_PCT","FTM","FTA","FT_PCT","OREB","DREB","REB","AST","STL","BLK","TOV","PF","PTS"],
			 "rowSet":[[2544,"2023-24","00",1610612747,"LAL",39.0,71,71,35.3,9.6,17.9,0.54,2.1,5.1,0.41,4.3,5.7,0.75,0.9,6.4,7.3,8.3,1.3,0.5,3.2,1.1,25.7]]},
			{"name":"SeasonTotalsPostSeason","headers":[],"rowSet":[]}
		]}`), nil
	})

	got, err := newTestClient(rt).FetchCareer(context.Background(), 2544)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 season, got %d", len(got))
	}
	row := got[0]
	if row.SeasonID != "2023-24" || row.TeamAbbreviation != "LAL" || row.GamesPlayed != 71 || row.Points != 25.7 || row.FGPct != 0.54 {
		t.Fatalf("unexpected career row %+v", row)
	}
}

func TestClientMapsRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := newTestClient(rt).FetchCareer(context.Background(), 1)
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests || rlErr.RetryAfter != 7*time.Second || rlErr.Provider != "nbastats" {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
}

func TestClientReportsUnexpectedStatusAndMissingSet(t *testing.T) {
	status := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "oops"), nil
	})
	if _, err := newTestClient(status).FetchPlayers(context.Background()); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}

	missing := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"resultSets":[]}`), nil
	})
	if _, err := newTestClient(missing).FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected missing result set error")
	}

	broken := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{not json`), nil
	})
	if _, err := newTestClient(broken).FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}

	transport := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})
	if _, err := newTestClient(transport).FetchPlayers(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}
