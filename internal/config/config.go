package config

import "slices"

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	AdminToken string
	Seasons    []string
	NBAStats   NBAStatsConfig
	Cache      CacheConfig
	Warmer     WarmerConfig
	Metrics    MetricsConfig
	Log        LogConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	seasons := seasonsEnvOrDefault(envSeasons, defaultSeasons)
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		AdminToken: envOrDefault(envAdminToken, ""),
		Seasons:    seasons,
		NBAStats:   loadNBAStats(),
		Cache:      loadCache(),
		Warmer:     loadWarmer(seasons),
		Metrics:    loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// DefaultSeason is the newest configured season.
func (c Config) DefaultSeason() string {
	if len(c.Seasons) == 0 {
		return ""
	}
	return c.Seasons[0]
}

// HasSeason reports whether season is one of the configured seasons.
func (c Config) HasSeason(season string) bool {
	return slices.Contains(c.Seasons, season)
}
