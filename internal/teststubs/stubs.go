package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// StubProvider is a test double for providers.DataProvider.
// Each Fetch* method returns the configured data and error while counting calls.
type StubProvider struct {
	Players []players.Player
	Shots   []shots.Shot
	GameLog gamelogs.Log
	Career  []players.SeasonAverages

	Err        error
	PlayersErr error
	InfoErr    error
	ShotsErr   error
	GameLogErr error
	CareerErr  error

	Calls       atomic.Int32
	PlayerCalls atomic.Int32
	InfoCalls   atomic.Int32
	ShotCalls   atomic.Int32
	LogCalls    atomic.Int32
	CareerCalls atomic.Int32
	Notify      chan struct{}

	notifyOnce sync.Once
}

func (s *StubProvider) touch(counter *atomic.Int32) {
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	s.Calls.Add(1)
	counter.Add(1)
}

func (s *StubProvider) errFor(specific error) error {
	if specific != nil {
		return specific
	}
	return s.Err
}

// FetchPlayers returns the configured players.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.touch(&s.PlayerCalls)
	if err := s.errFor(s.PlayersErr); err != nil {
		return nil, err
	}
	return s.Players, nil
}

// FetchPlayerInfo returns the configured player with a matching id.
func (s *StubProvider) FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error) {
	_ = ctx
	s.touch(&s.InfoCalls)
	if err := s.errFor(s.InfoErr); err != nil {
		return players.Player{}, err
	}
	for _, p := range s.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return players.Player{ID: playerID}, nil
}

// FetchShots returns the configured shots.
func (s *StubProvider) FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error) {
	_, _, _ = ctx, playerID, season
	s.touch(&s.ShotCalls)
	if err := s.errFor(s.ShotsErr); err != nil {
		return nil, err
	}
	return s.Shots, nil
}

// FetchGameLog returns the configured game log.
func (s *StubProvider) FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error) {
	_, _, _ = ctx, playerID, season
	s.touch(&s.LogCalls)
	if err := s.errFor(s.GameLogErr); err != nil {
		return nil, err
	}
	return s.GameLog, nil
}

// FetchCareer returns the configured career rows.
func (s *StubProvider) FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error) {
	_, _ = ctx, playerID
	s.touch(&s.CareerCalls)
	if err := s.errFor(s.CareerErr); err != nil {
		return nil, err
	}
	return s.Career, nil
}
