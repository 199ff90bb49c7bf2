package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache stores serialized provider responses keyed by player/season.
// A miss is reported as ok == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Purge removes every entry whose key starts with prefix; an empty prefix clears the cache.
	Purge(ctx context.Context, prefix string) (int, error)
}

// PlayersKey is the key for the full player list.
func PlayersKey() string {
	return "players:all"
}

// PlayerPrefix covers every entry cached for one player.
func PlayerPrefix(playerID int) string {
	return fmt.Sprintf("player:%d:", playerID)
}

// PlayerInfoKey is the key for a player's profile.
func PlayerInfoKey(playerID int) string {
	return PlayerPrefix(playerID) + "info"
}

// ShotsKey is the key for a player's season shot chart.
func ShotsKey(playerID int, season string) string {
	return PlayerPrefix(playerID) + "shots:" + season
}

// GameLogKey is the key for a player's season game log.
func GameLogKey(playerID int, season string) string {
	return PlayerPrefix(playerID) + "gamelog:" + season
}

// CareerKey is the key for a player's career averages.
func CareerKey(playerID int) string {
	return PlayerPrefix(playerID) + "career"
}
