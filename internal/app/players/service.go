package players

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// Service resolves player references against the provider's player list.
type Service struct {
	source providers.PlayerResolver
}

// NewService constructs a Service backed by a PlayerResolver.
func NewService(source providers.PlayerResolver) *Service {
	return &Service{source: source}
}

// Players returns players sorted by full name, optionally only active ones.
func (s *Service) Players(ctx context.Context, activeOnly bool) ([]players.Player, error) {
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(all))
	for _, p := range all {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, withHeadshot(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}

// Resolve maps a numeric id or a full name to a player.
// Names match exactly first, then case-insensitively when that match is unique.
func (s *Service) Resolve(ctx context.Context, ref string) (players.Player, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return players.Player{}, fmt.Errorf("empty player reference: %w", providers.ErrPlayerNotFound)
	}
	all, err := s.list(ctx)
	if err != nil {
		return players.Player{}, err
	}

	if id, convErr := strconv.Atoi(ref); convErr == nil {
		for _, p := range all {
			if p.ID == id {
				return withHeadshot(p), nil
			}
		}
		return players.Player{}, fmt.Errorf("player %d: %w", id, providers.ErrPlayerNotFound)
	}

	var folded []players.Player
	for _, p := range all {
		if p.FullName == ref {
			return withHeadshot(p), nil
		}
		if strings.EqualFold(p.FullName, ref) {
			folded = append(folded, p)
		}
	}
	if len(folded) == 1 {
		return withHeadshot(folded[0]), nil
	}
	return players.Player{}, fmt.Errorf("player %q: %w", ref, providers.ErrPlayerNotFound)
}

// Profile resolves ref and enriches it with the detailed profile (position).
func (s *Service) Profile(ctx context.Context, ref string) (players.Player, error) {
	p, err := s.Resolve(ctx, ref)
	if err != nil {
		return players.Player{}, err
	}
	info, err := s.source.FetchPlayerInfo(ctx, p.ID)
	if err != nil {
		return players.Player{}, err
	}
	if info.Position != "" {
		p.Position = info.Position
	}
	if info.TeamID != 0 {
		p.TeamID = info.TeamID
	}
	return p, nil
}

func (s *Service) list(ctx context.Context) ([]players.Player, error) {
	if s == nil || s.source == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return s.source.FetchPlayers(ctx)
}

func withHeadshot(p players.Player) players.Player {
	if p.HeadshotURL == "" {
		p.HeadshotURL = players.HeadshotURL(p.ID)
	}
	return p
}
