package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.NBAStats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default stats base url %s, got %s", defaultStatsBaseURL, cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != 15*time.Second || cfg.NBAStats.RPS != 1 || cfg.NBAStats.Burst != 2 {
		t.Fatalf("unexpected stats defaults %+v", cfg.NBAStats)
	}
	if cfg.Cache.Backend != "memory" || cfg.Cache.PlayersTTL != 168*time.Hour || cfg.Cache.DataTTL != 6*time.Hour {
		t.Fatalf("unexpected cache defaults %+v", cfg.Cache)
	}
	if !reflect.DeepEqual(cfg.Seasons, defaultSeasons) {
		t.Fatalf("expected default seasons, got %v", cfg.Seasons)
	}
	if cfg.DefaultSeason() != "2025-26" {
		t.Fatalf("expected newest season as default, got %s", cfg.DefaultSeason())
	}
	if cfg.Warmer.Enabled() {
		t.Fatalf("expected warmer disabled without players")
	}
	if cfg.Warmer.Season != "2025-26" || cfg.Warmer.Interval != 6*time.Hour {
		t.Fatalf("unexpected warmer defaults %+v", cfg.Warmer)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "nbastats")
	t.Setenv(envStatsBaseURL, "http://example.com/stats")
	t.Setenv(envStatsRPS, "3")
	t.Setenv(envCacheBackend, "sqlite")
	t.Setenv(envCacheDSN, "/tmp/cache.db")
	t.Setenv(envCacheData, "30m")
	t.Setenv(envSeasons, "2023-24, 2022-23")
	t.Setenv(envWarmPlayers, "2544, Stephen Curry")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" || cfg.Provider != "nbastats" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.NBAStats.BaseURL != "http://example.com/stats" || cfg.NBAStats.RPS != 3 {
		t.Fatalf("unexpected stats overrides %+v", cfg.NBAStats)
	}
	if cfg.Cache.Backend != "sqlite" || cfg.Cache.DSN != "/tmp/cache.db" || cfg.Cache.DataTTL != 30*time.Minute {
		t.Fatalf("unexpected cache overrides %+v", cfg.Cache)
	}
	if !reflect.DeepEqual(cfg.Seasons, []string{"2023-24", "2022-23"}) {
		t.Fatalf("unexpected seasons %v", cfg.Seasons)
	}
	if !cfg.HasSeason("2022-23") || cfg.HasSeason("2025-26") {
		t.Fatalf("expected season membership to follow override")
	}
	if !reflect.DeepEqual(cfg.Warmer.Players, []string{"2544", "Stephen Curry"}) || cfg.Warmer.Season != "2023-24" {
		t.Fatalf("unexpected warmer %+v", cfg.Warmer)
	}
	if cfg.AdminToken != "secret" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected admin/log overrides %+v", cfg)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envCacheData, "not-a-duration")
	t.Setenv(envWarmInterval, "0s")
	t.Setenv(envStatsBurst, "-1")
	t.Setenv(envSeasons, "2024,latest")

	cfg := Load()

	if cfg.Cache.DataTTL != defaultDataTTL {
		t.Fatalf("expected default data ttl on invalid value, got %s", cfg.Cache.DataTTL)
	}
	if cfg.Warmer.Interval != defaultWarmInterval {
		t.Fatalf("expected default warm interval on non-positive value, got %s", cfg.Warmer.Interval)
	}
	if cfg.NBAStats.Burst != defaultStatsBurst {
		t.Fatalf("expected default burst, got %d", cfg.NBAStats.Burst)
	}
	if !reflect.DeepEqual(cfg.Seasons, defaultSeasons) {
		t.Fatalf("expected malformed seasons to fall back, got %v", cfg.Seasons)
	}
}
