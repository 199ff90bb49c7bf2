package testutil

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/app/scouting"
	"github.com/preston-bernstein/nba-shotchart-service/internal/cache"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
	"github.com/preston-bernstein/nba-shotchart-service/internal/teststubs"
)

// NewSampleProvider returns a stub provider preloaded with the sample fixtures.
func NewSampleProvider() *teststubs.StubProvider {
	return &teststubs.StubProvider{
		Players: SamplePlayers(),
		Shots:   SampleShots(),
		GameLog: SampleGameLog(),
		Career:  SampleCareer(),
	}
}

// NewScoutingService builds a scouting service over provider with an in-memory cache.
func NewScoutingService(provider *teststubs.StubProvider) (*scouting.Service, *cache.MemoryCache, *metrics.Recorder) {
	mem := cache.NewMemoryCache()
	rec := metrics.NewRecorder()
	return scouting.NewService(provider, mem, rec, nil), mem, rec
}
