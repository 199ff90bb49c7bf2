package config

import "time"

// CacheConfig selects the cache backend and entry lifetimes.
type CacheConfig struct {
	Backend    string
	DSN        string
	PlayersTTL time.Duration
	DataTTL    time.Duration
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:    envOrDefault(envCacheBackend, defaultCacheBackend),
		DSN:        envOrDefault(envCacheDSN, defaultCacheDSN),
		PlayersTTL: durationEnvOrDefault(envCachePlayers, defaultPlayersTTL),
		DataTTL:    durationEnvOrDefault(envCacheData, defaultDataTTL),
	}
}
