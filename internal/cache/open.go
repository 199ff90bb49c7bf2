package cache

import (
	"context"
	"fmt"
)

// Open builds the configured cache backend and a closer for it.
func Open(ctx context.Context, backend, dsn string) (Cache, func() error, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemoryCache(), func() error { return nil }, nil
	case BackendSQLite, BackendPostgres:
		c, err := OpenSQL(ctx, backend, dsn)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	default:
		return nil, nil, fmt.Errorf("cache: unknown backend %q", backend)
	}
}
