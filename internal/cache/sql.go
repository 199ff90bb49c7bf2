package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type dialect struct {
	driver    string
	valueType string
	numbered  bool
}

var dialects = map[string]dialect{
	BackendSQLite:   {driver: "sqlite", valueType: "BLOB"},
	BackendPostgres: {driver: "postgres", valueType: "BYTEA", numbered: true},
}

// SQLCache persists entries in a single table so cached data survives restarts.
type SQLCache struct {
	db      *sql.DB
	dialect dialect
	now     func() time.Time
}

// OpenSQL connects to the backend and ensures the cache table exists.
func OpenSQL(ctx context.Context, backend, dsn string) (*SQLCache, error) {
	d, ok := dialects[backend]
	if !ok {
		return nil, fmt.Errorf("cache: unsupported sql backend %q", backend)
	}
	if dsn == "" {
		return nil, errors.New("cache: dsn required")
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", backend, err)
	}
	if backend == BackendSQLite {
		db.SetMaxOpenConns(1)
	}

	c := &SQLCache{db: db, dialect: d, now: time.Now}
	if err := c.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *SQLCache) migrate(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cache_entries (
		cache_key TEXT PRIMARY KEY,
		value %s NOT NULL,
		expires_at BIGINT NOT NULL
	)`, c.dialect.valueType)
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("cache: migrate: %w", err)
	}
	return nil
}

// Get returns the stored value when it has not expired.
func (c *SQLCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var (
		value     []byte
		expiresAt int64
	)
	row := c.db.QueryRowContext(ctx, c.rebind(`SELECT value, expires_at FROM cache_entries WHERE cache_key = ?`), key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if expiresAt > 0 && c.now().UnixMilli() >= expiresAt {
		return nil, false, c.Delete(ctx, key)
	}
	return value, true, nil
}

// Set upserts value under key; a non-positive ttl never expires.
func (c *SQLCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = c.now().Add(ttl).UnixMilli()
	}
	query := c.rebind(`INSERT INTO cache_entries (cache_key, value, expires_at) VALUES (?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`)
	if _, err := c.db.ExecContext(ctx, query, key, value, expiresAt); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Delete removes a single key.
func (c *SQLCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, c.rebind(`DELETE FROM cache_entries WHERE cache_key = ?`), key); err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}

// Purge removes all keys sharing prefix.
func (c *SQLCache) Purge(ctx context.Context, prefix string) (int, error) {
	// Exact, case-sensitive prefix match; _ and % in keys are literal.
	query := `DELETE FROM cache_entries WHERE substr(cache_key, 1, length(CAST(? AS TEXT))) = ?`
	res, err := c.db.ExecContext(ctx, c.rebind(query), prefix, prefix)
	if err != nil {
		return 0, fmt.Errorf("cache: purge %q: %w", prefix, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache: purge %q: %w", prefix, err)
	}
	return int(n), nil
}

// Close releases the underlying connection pool.
func (c *SQLCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// rebind rewrites ? placeholders to $n for dialects that number them.
func (c *SQLCache) rebind(query string) string {
	if !c.dialect.numbered {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
