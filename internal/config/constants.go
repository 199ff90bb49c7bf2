package config

import "time"

const (
	envPort          = "PORT"
	envProvider      = "PROVIDER"
	envStatsBaseURL  = "NBA_STATS_BASE_URL"
	envStatsTimeout  = "NBA_STATS_TIMEOUT"
	envStatsRPS      = "NBA_STATS_RPS"
	envStatsBurst    = "NBA_STATS_BURST"
	envCacheBackend  = "CACHE_BACKEND"
	envCacheDSN      = "CACHE_DSN"
	envCachePlayers  = "CACHE_PLAYERS_TTL"
	envCacheData     = "CACHE_DATA_TTL"
	envSeasons       = "SEASONS"
	envWarmPlayers   = "WARM_PLAYERS"
	envWarmSeason    = "WARM_SEASON"
	envWarmInterval  = "WARM_INTERVAL"
	envAdminToken    = "ADMIN_TOKEN"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	defaultPort      = "4000"
	defaultProvider  = "fixture"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	defaultStatsTimeout = 15 * Duration(time.Second)

	// stats.nba.com throttles aggressively; one request per second with a small burst stays clear of it.
	defaultStatsRPS   = 1
	defaultStatsBurst = 2

	defaultCacheBackend = "memory"
	defaultCacheDSN     = "data/cache.db"
	defaultPlayersTTL   = 7 * 24 * Duration(time.Hour)
	defaultDataTTL      = 6 * Duration(time.Hour)
	defaultWarmInterval = 6 * Duration(time.Hour)

	defaultMetricsPort = "9090"
	defaultServiceName = "nba-shotchart-service"
)

// defaultSeasons is the closed set of selectable seasons, newest first.
var defaultSeasons = []string{"2025-26", "2024-25", "2023-24", "2022-23", "2021-22", "2020-21", "2019-20"}
