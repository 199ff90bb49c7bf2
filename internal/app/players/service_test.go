package players

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
	"github.com/preston-bernstein/nba-shotchart-service/internal/teststubs"
)

func newDirectory() (*teststubs.StubProvider, *Service) {
	stub := &teststubs.StubProvider{
		Players: []players.Player{
			{ID: 3, FullName: "Zach Zed", IsActive: true},
			{ID: 1, FullName: "Aaron Able", IsActive: false},
			{ID: 2, FullName: "Mike Middle", IsActive: true, Position: "Guard"},
			{ID: 4, FullName: "Sam Same", IsActive: true},
			{ID: 5, FullName: "SAM SAME", IsActive: false},
		},
	}
	return stub, NewService(stub)
}

func TestPlayersSortedAndFiltered(t *testing.T) {
	_, svc := newDirectory()

	all, err := svc.Players(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(all) != 5 || all[0].FullName != "Aaron Able" || all[len(all)-1].FullName != "Zach Zed" {
		t.Fatalf("expected all players sorted by name, got %+v", all)
	}

	active, _ := svc.Players(context.Background(), true)
	if len(active) != 3 {
		t.Fatalf("expected 3 active players, got %d", len(active))
	}
	for _, p := range active {
		if !p.IsActive || p.HeadshotURL == "" {
			t.Fatalf("unexpected active player %+v", p)
		}
	}
}

func TestResolveByIDAndName(t *testing.T) {
	_, svc := newDirectory()
	ctx := context.Background()

	if p, err := svc.Resolve(ctx, "2"); err != nil || p.FullName != "Mike Middle" {
		t.Fatalf("expected id lookup, got %+v err=%v", p, err)
	}
	if p, err := svc.Resolve(ctx, " Zach Zed "); err != nil || p.ID != 3 {
		t.Fatalf("expected exact name lookup, got %+v err=%v", p, err)
	}
	if p, err := svc.Resolve(ctx, "mike middle"); err != nil || p.ID != 2 {
		t.Fatalf("expected unique case-insensitive match, got %+v err=%v", p, err)
	}
	if p, err := svc.Resolve(ctx, "SAM SAME"); err != nil || p.ID != 5 {
		t.Fatalf("expected exact match to win over folded matches, got %+v err=%v", p, err)
	}

	for _, ref := range []string{"sam same", "99", "Nobody", ""} {
		if _, err := svc.Resolve(ctx, ref); !errors.Is(err, providers.ErrPlayerNotFound) {
			t.Fatalf("expected not found for %q, got %v", ref, err)
		}
	}
}

func TestProfileAddsPosition(t *testing.T) {
	stub, svc := newDirectory()
	p, err := svc.Profile(context.Background(), "Mike Middle")
	if err != nil || p.Position != "Guard" {
		t.Fatalf("expected position from profile, got %+v err=%v", p, err)
	}
	if stub.InfoCalls.Load() != 1 {
		t.Fatalf("expected one profile fetch")
	}

	stub.InfoErr = errors.New("upstream down")
	if _, err := svc.Profile(context.Background(), "2"); err == nil {
		t.Fatalf("expected profile error")
	}
}

func TestServicePropagatesListErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&teststubs.StubProvider{PlayersErr: boom})
	if _, err := svc.Players(context.Background(), true); !errors.Is(err, boom) {
		t.Fatalf("expected list error, got %v", err)
	}

	var empty *Service
	if _, err := empty.Resolve(context.Background(), "1"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
