package analytics

import (
	"testing"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
)

func TestSummarizeSeason(t *testing.T) {
	log := gamelogs.Log{
		{Points: 30, Rebounds: 10, Assists: 4, FGM: 10, FGA: 20, FG3M: 2, FG3A: 5, FTM: 8, FTA: 10},
		{Points: 20, Rebounds: 6, Assists: 6, FGM: 8, FGA: 20, FG3M: 2, FG3A: 5, FTM: 2, FTA: 2},
	}
	got := SummarizeSeason(log)
	if got.Games != 2 || got.TotalPoints != 50 {
		t.Fatalf("unexpected totals %+v", got)
	}
	if got.PointsPG != 25 || got.ReboundsPG != 8 || got.AssistsPG != 5 {
		t.Fatalf("unexpected averages %+v", got)
	}
	if got.FGPct != 0.45 || got.FG3Pct != 0.4 {
		t.Fatalf("unexpected shooting splits %+v", got)
	}
	if got.FTPct != 10.0/12.0 {
		t.Fatalf("unexpected ft pct %f", got.FTPct)
	}
}

func TestSummarizeSeasonEmpty(t *testing.T) {
	got := SummarizeSeason(nil)
	if got.Games != 0 || got.PointsPG != 0 || got.FGPct != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestSortByDateDesc(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 11, day, 0, 0, 0, 0, time.UTC) }
	log := gamelogs.Log{{GameDate: d(1)}, {GameDate: d(5)}, {GameDate: d(3)}}
	got := SortByDateDesc(log)
	if !got[0].GameDate.Equal(d(5)) || !got[2].GameDate.Equal(d(1)) {
		t.Fatalf("unexpected order %+v", got)
	}
	if !log[0].GameDate.Equal(d(1)) {
		t.Fatalf("expected input untouched")
	}
}
