package config

import "time"

// WarmerConfig lists players to pre-fetch into the cache on an interval.
// The warmer is disabled when Players is empty.
type WarmerConfig struct {
	Players  []string
	Season   string
	Interval time.Duration
}

// Enabled reports whether any players are configured for warming.
func (w WarmerConfig) Enabled() bool {
	return len(w.Players) > 0
}

func loadWarmer(seasons []string) WarmerConfig {
	season := ""
	if len(seasons) > 0 {
		season = seasons[0]
	}
	return WarmerConfig{
		Players:  listEnvOrDefault(envWarmPlayers, nil),
		Season:   envOrDefault(envWarmSeason, season),
		Interval: durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
	}
}
