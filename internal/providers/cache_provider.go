package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-shotchart-service/internal/cache"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/metrics"
)

// Cached payload kinds, used as the metrics label.
const (
	KindPlayers = "players"
	KindPlayer  = "player"
	KindShots   = "shots"
	KindGameLog = "gamelog"
	KindCareer  = "career"
)

const cachingName = "cache"

// CacheTTLs controls entry lifetimes; the player list changes far less often than per-season data.
type CacheTTLs struct {
	Players time.Duration
	Data    time.Duration
}

// cachingProvider serves repeat calls from the cache and stores fresh results.
// Cache read/write failures are logged and treated as misses so the upstream stays the source of truth.
type cachingProvider struct {
	inner   DataProvider
	cache   cache.Cache
	ttls    CacheTTLs
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewCachingProvider wraps inner with a read-through cache.
func NewCachingProvider(inner DataProvider, c cache.Cache, ttls CacheTTLs, rec *metrics.Recorder, logger *slog.Logger) DataProvider {
	return &cachingProvider{
		inner:   inner,
		cache:   c,
		ttls:    ttls,
		metrics: rec,
		logger:  logger,
	}
}

func (p *cachingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return cached(ctx, p, KindPlayers, cache.PlayersKey(), p.ttls.Players, func(ctx context.Context) ([]players.Player, error) {
		return p.inner.FetchPlayers(ctx)
	})
}

func (p *cachingProvider) FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error) {
	return cached(ctx, p, KindPlayer, cache.PlayerInfoKey(playerID), p.ttls.Players, func(ctx context.Context) (players.Player, error) {
		return p.inner.FetchPlayerInfo(ctx, playerID)
	})
}

func (p *cachingProvider) FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error) {
	return cached(ctx, p, KindShots, cache.ShotsKey(playerID, season), p.ttls.Data, func(ctx context.Context) ([]shots.Shot, error) {
		return p.inner.FetchShots(ctx, playerID, season)
	})
}

func (p *cachingProvider) FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error) {
	return cached(ctx, p, KindGameLog, cache.GameLogKey(playerID, season), p.ttls.Data, func(ctx context.Context) (gamelogs.Log, error) {
		return p.inner.FetchGameLog(ctx, playerID, season)
	})
}

func (p *cachingProvider) FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error) {
	return cached(ctx, p, KindCareer, cache.CareerKey(playerID), p.ttls.Data, func(ctx context.Context) ([]players.SeasonAverages, error) {
		return p.inner.FetchCareer(ctx, playerID)
	})
}

func cached[T any](ctx context.Context, p *cachingProvider, kind, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.inner == nil {
		return zero, ErrProviderUnavailable
	}
	if p.cache == nil {
		return fetch(ctx)
	}

	if raw, ok, err := p.cache.Get(ctx, key); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache read failed",
			slog.String(logging.FieldCacheKey, key), slog.Any("err", err))
	} else if ok {
		var out T
		if err := json.Unmarshal(raw, &out); err != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache entry undecodable",
				slog.String(logging.FieldCacheKey, key), slog.Any("err", err))
		} else {
			p.metrics.RecordCacheLookup(kind, true)
			return out, nil
		}
	}
	p.metrics.RecordCacheLookup(kind, false)

	out, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache encode failed",
			slog.String(logging.FieldCacheKey, key), slog.Any("err", err))
		return out, nil
	}
	if err := p.cache.Set(ctx, key, raw, ttl); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, cachingName, "cache write failed",
			slog.String(logging.FieldCacheKey, key), slog.Any("err", err))
	}
	return out, nil
}
