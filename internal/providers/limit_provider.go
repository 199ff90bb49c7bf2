package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/players"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

const (
	defaultRequestsPerSecond = 1
	defaultBurst             = 1
	rateLimitedName          = "rate-limited"
)

// rateLimitedProvider wraps a DataProvider with a token bucket shared by every call.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that allows at most rps calls per second with the given burst.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next DataProvider, rps float64, burst int, logger *slog.Logger) DataProvider {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "provider unavailable", slog.String("op", op))
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, rateLimitedName, "rate-limited fetch canceled", slog.String("op", op))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, rateLimitedName, "rate-limited provider fetch", slog.String("op", op))
	return nil
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := p.wait(ctx, "players"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchPlayerInfo(ctx context.Context, playerID int) (players.Player, error) {
	if err := p.wait(ctx, "player_info"); err != nil {
		return players.Player{}, err
	}
	return p.next.FetchPlayerInfo(ctx, playerID)
}

func (p *rateLimitedProvider) FetchShots(ctx context.Context, playerID int, season string) ([]shots.Shot, error) {
	if err := p.wait(ctx, "shots"); err != nil {
		return nil, err
	}
	return p.next.FetchShots(ctx, playerID, season)
}

func (p *rateLimitedProvider) FetchGameLog(ctx context.Context, playerID int, season string) (gamelogs.Log, error) {
	if err := p.wait(ctx, "gamelog"); err != nil {
		return nil, err
	}
	return p.next.FetchGameLog(ctx, playerID, season)
}

func (p *rateLimitedProvider) FetchCareer(ctx context.Context, playerID int) ([]players.SeasonAverages, error) {
	if err := p.wait(ctx, "career"); err != nil {
		return nil, err
	}
	return p.next.FetchCareer(ctx, playerID)
}
