package config

import "time"

// NBAStatsConfig controls how we talk to the stats.nba.com API.
type NBAStatsConfig struct {
	BaseURL string
	Timeout time.Duration
	RPS     int
	Burst   int
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		RPS:     intEnvOrDefault(envStatsRPS, defaultStatsRPS),
		Burst:   intEnvOrDefault(envStatsBurst, defaultStatsBurst),
	}
}
