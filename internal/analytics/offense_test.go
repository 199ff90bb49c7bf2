package analytics

import (
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

func TestRankZonesRequiresMoreThanFiveAttempts(t *testing.T) {
	in := concat(
		zoneShots(shots.ZoneMidRange, shots.AreaLeft, shots.TwoPointFieldGoal, 5, 5),
		zoneShots(shots.ZoneMidRange, shots.AreaRight, shots.TwoPointFieldGoal, 3, 0),
	)
	got := RankZones(in)
	if got.Status != StatusInsufficient {
		t.Fatalf("expected insufficient status, got %s", got.Status)
	}
	if len(got.Best) != 0 || len(got.Worst) != 0 {
		t.Fatalf("expected empty rankings, got %+v", got)
	}
	if got.TotalZones != 2 || got.QualifiedZones != 0 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if got.Message == "" {
		t.Fatalf("expected insufficiency message")
	}
}

func TestRankZonesOrdersBestAndWorst(t *testing.T) {
	in := concat(
		zoneShots(shots.ZoneRestrictedArea, shots.AreaCenter, shots.TwoPointFieldGoal, 10, 7),
		zoneShots(shots.ZoneMidRange, shots.AreaLeft, shots.TwoPointFieldGoal, 10, 3),
		zoneShots(shots.ZoneMidRange, shots.AreaRight, shots.TwoPointFieldGoal, 8, 4),
		zoneShots(shots.ZoneAboveBreak3, shots.AreaCenter, shots.ThreePointFieldGoal, 20, 8),
		zoneShots(shots.ZoneLeftCorner3, shots.AreaLeft, shots.ThreePointFieldGoal, 4, 4),
	)
	got := RankZones(in)
	if got.Status != StatusOK || got.QualifiedZones != 4 {
		t.Fatalf("unexpected status %+v", got)
	}
	if len(got.Best) != 3 || len(got.Worst) != 3 {
		t.Fatalf("expected top and bottom three, got %d/%d", len(got.Best), len(got.Worst))
	}
	for i := 1; i < len(got.Best); i++ {
		if got.Best[i-1].FGPct < got.Best[i].FGPct {
			t.Fatalf("best not descending: %+v", got.Best)
		}
		if got.Worst[i-1].FGPct > got.Worst[i].FGPct {
			t.Fatalf("worst not ascending: %+v", got.Worst)
		}
	}
	if got.Best[0].ZoneBasic != shots.ZoneRestrictedArea {
		t.Fatalf("expected restricted area first, got %s", got.Best[0].ZoneName)
	}
	if got.Worst[0].ZoneName != "Mid-Range - Left Side(L)" {
		t.Fatalf("expected left mid-range coldest, got %s", got.Worst[0].ZoneName)
	}
	for _, z := range append(got.Best, got.Worst...) {
		if z.ZoneBasic == shots.ZoneLeftCorner3 {
			t.Fatalf("unqualified zone ranked: %+v", z)
		}
	}
}

func TestRankZonesTieBreaksOnVolume(t *testing.T) {
	in := concat(
		zoneShots(shots.ZoneMidRange, shots.AreaLeft, shots.TwoPointFieldGoal, 6, 3),
		zoneShots(shots.ZoneMidRange, shots.AreaRight, shots.TwoPointFieldGoal, 12, 6),
	)
	got := RankZones(in)
	if got.Best[0].Attempts != 12 {
		t.Fatalf("expected higher-volume zone first in best, got %+v", got.Best)
	}
	if got.Worst[0].Attempts != 12 {
		t.Fatalf("expected higher-volume zone first in worst, got %+v", got.Worst)
	}
}

func TestRankZonesFewerThanThreeQualified(t *testing.T) {
	in := zoneShots(shots.ZoneMidRange, shots.AreaLeft, shots.TwoPointFieldGoal, 6, 2)
	got := RankZones(in)
	if len(got.Best) != 1 || len(got.Worst) != 1 {
		t.Fatalf("expected single-entry rankings, got %+v", got)
	}
}
