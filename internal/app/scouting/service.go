package scouting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/preston-bernstein/nba-shotchart-service/internal/analytics"
	appplayers "github.com/preston-bernstein/nba-shotchart-service/internal/app/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/cache"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// ErrDataUnavailable wraps upstream failures; the caller sees no partial analytics.
var ErrDataUnavailable = errors.New("data unavailable")

// Service resolves players, fetches their data and runs the analytics engines.
type Service struct {
	directory *appplayers.Service
	provider  providers.DataProvider
	cache     cache.Cache
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// NewService wires the provider (typically cache-wrapped) into the analytics pipeline.
// c may be nil, in which case Purge is a no-op.
func NewService(provider providers.DataProvider, c cache.Cache, rec *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		directory: appplayers.NewService(provider),
		provider:  provider,
		cache:     c,
		metrics:   rec,
		logger:    logger,
	}
}

// Players lists players sorted by name.
func (s *Service) Players(ctx context.Context, activeOnly bool) ([]players.Player, error) {
	list, err := s.directory.Players(ctx, activeOnly)
	if err != nil {
		return nil, unavailable("players", err)
	}
	return list, nil
}

// Player resolves ref to a full profile including position.
func (s *Service) Player(ctx context.Context, ref string) (players.Player, error) {
	p, err := s.directory.Profile(ctx, ref)
	if err != nil {
		return players.Player{}, unavailable("player", err)
	}
	return p, nil
}

// ShotChart returns every attempt with its display result and the season's team.
func (s *Service) ShotChart(ctx context.Context, ref, season string) (ShotChart, error) {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return ShotChart{}, err
	}
	attempts, err := s.provider.FetchShots(ctx, p.ID, season)
	if err != nil {
		return ShotChart{}, unavailable("shots", err)
	}

	chart := ShotChart{
		Player:     p,
		Season:     season,
		TotalShots: len(attempts),
		Shots:      make([]ShotPoint, 0, len(attempts)),
	}
	if len(attempts) > 0 {
		chart.TeamID = attempts[0].TeamID
		chart.TeamLogoURL = players.TeamLogoURL(chart.TeamID)
	}
	for _, shot := range attempts {
		if shot.Made {
			chart.MadeShots++
		}
		chart.Shots = append(chart.Shots, ShotPoint{Shot: shot, Result: shot.Result()})
	}
	return chart, nil
}

// ZoneEfficiency returns per-zone shooting sorted by FG% for display.
func (s *Service) ZoneEfficiency(ctx context.Context, ref, season string) (ZoneReport, error) {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return ZoneReport{}, err
	}
	attempts, err := s.provider.FetchShots(ctx, p.ID, season)
	if err != nil {
		return ZoneReport{}, unavailable("shots", err)
	}
	return ZoneReport{
		Player:     p,
		Season:     season,
		TotalShots: len(attempts),
		Zones:      analytics.SortByEfficiency(analytics.ComputeZoneEfficiency(attempts)),
	}, nil
}

// ScoutingReport builds the composite report from the season's shots and game log.
// Both fetches run concurrently; either failing fails the whole report.
func (s *Service) ScoutingReport(ctx context.Context, ref, season string) (Report, error) {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return Report{}, err
	}

	var (
		wg       sync.WaitGroup
		attempts []shots.Shot
		log      gamelogs.Log
		shotErr  error
		logErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		attempts, shotErr = s.provider.FetchShots(ctx, p.ID, season)
	}()
	go func() {
		defer wg.Done()
		log, logErr = s.provider.FetchGameLog(ctx, p.ID, season)
	}()
	wg.Wait()

	if shotErr != nil {
		return Report{}, unavailable("shots", shotErr)
	}
	if logErr != nil {
		return Report{}, unavailable("gamelog", logErr)
	}

	report := analytics.BuildScoutingReport(attempts, log)
	s.recordSections(ctx, p, season, report)
	missing := report.InsufficientSections()
	if missing == nil {
		missing = []string{}
	}
	return Report{
		Player:               p,
		Season:               season,
		Report:               report,
		InsufficientSections: missing,
	}, nil
}

// GameLog returns the season's games newest first with season totals.
func (s *Service) GameLog(ctx context.Context, ref, season string) (GameLog, error) {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return GameLog{}, err
	}
	log, err := s.provider.FetchGameLog(ctx, p.ID, season)
	if err != nil {
		return GameLog{}, unavailable("gamelog", err)
	}
	return GameLog{
		Player:  p,
		Season:  season,
		Summary: analytics.SummarizeSeason(log),
		Games:   analytics.SortByDateDesc(log),
	}, nil
}

// Career returns per-season averages, newest season first.
func (s *Service) Career(ctx context.Context, ref string) (Career, error) {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return Career{}, err
	}
	rows, err := s.provider.FetchCareer(ctx, p.ID)
	if err != nil {
		return Career{}, unavailable("career", err)
	}
	sorted := append([]players.SeasonAverages(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SeasonID > sorted[j].SeasonID
	})
	return Career{Player: p, Seasons: sorted}, nil
}

// Warm pre-fetches everything the API serves for one player and season.
func (s *Service) Warm(ctx context.Context, ref, season string) error {
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if _, err := s.provider.FetchPlayerInfo(ctx, p.ID); err != nil {
		return unavailable("player", err)
	}
	if _, err := s.provider.FetchShots(ctx, p.ID, season); err != nil {
		return unavailable("shots", err)
	}
	if _, err := s.provider.FetchGameLog(ctx, p.ID, season); err != nil {
		return unavailable("gamelog", err)
	}
	if _, err := s.provider.FetchCareer(ctx, p.ID); err != nil {
		return unavailable("career", err)
	}
	return nil
}

// Purge drops cached entries. An empty ref clears everything; a season narrows a player purge
// to that season's shots and game log.
func (s *Service) Purge(ctx context.Context, ref, season string) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	if ref == "" {
		return s.cache.Purge(ctx, "")
	}
	p, err := s.resolve(ctx, ref)
	if err != nil {
		return 0, err
	}
	if season == "" {
		return s.cache.Purge(ctx, cache.PlayerPrefix(p.ID))
	}

	removed := 0
	for _, key := range []string{cache.ShotsKey(p.ID, season), cache.GameLogKey(p.ID, season)} {
		n, err := s.cache.Purge(ctx, key)
		if err != nil {
			return removed, err
		}
		removed += n
	}
	return removed, nil
}

func (s *Service) resolve(ctx context.Context, ref string) (players.Player, error) {
	p, err := s.directory.Resolve(ctx, ref)
	if err != nil {
		return players.Player{}, unavailable("players", err)
	}
	return p, nil
}

func (s *Service) recordSections(ctx context.Context, p players.Player, season string, report analytics.ScoutingReport) {
	logger := logging.FromContext(ctx, s.logger)
	for _, section := range report.Sections() {
		ok := section.Status == analytics.StatusOK
		s.metrics.RecordReportSection(section.Section, ok)
		if !ok && logger != nil {
			logger.Debug("scouting section insufficient",
				slog.Int(logging.FieldPlayerID, p.ID),
				slog.String(logging.FieldSeason, season),
				slog.String(logging.FieldSection, section.Section),
			)
		}
	}
}

// unavailable passes resolution misses through and marks everything else as an upstream failure.
func unavailable(what string, err error) error {
	if errors.Is(err, providers.ErrPlayerNotFound) || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrDataUnavailable, what, err)
}
