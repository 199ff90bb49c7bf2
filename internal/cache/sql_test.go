package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T) *SQLCache {
	t.Helper()
	c, err := OpenSQL(context.Background(), BackendSQLite, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSQLCacheRoundTrip(t *testing.T) {
	c := openTestSQLite(t)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Set(ctx, "k", []byte(`{"a":1}`), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Set(ctx, "k", []byte(`{"a":2}`), time.Hour); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != `{"a":2}` {
		t.Fatalf("expected upserted value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestSQLCacheExpiry(t *testing.T) {
	c := openTestSQLite(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	now = now.Add(2 * time.Minute)
	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected expired miss, got ok=%v err=%v", ok, err)
	}
}

func TestSQLCachePurge(t *testing.T) {
	c := openTestSQLite(t)
	ctx := context.Background()
	_ = c.Set(ctx, ShotsKey(7, "2024-25"), []byte("a"), 0)
	_ = c.Set(ctx, CareerKey(7), []byte("b"), 0)
	_ = c.Set(ctx, ShotsKey(8, "2024-25"), []byte("c"), 0)

	n, err := c.Purge(ctx, PlayerPrefix(7))
	if err != nil || n != 2 {
		t.Fatalf("expected 2 purged, got %d err=%v", n, err)
	}
	if _, ok, _ := c.Get(ctx, ShotsKey(8, "2024-25")); !ok {
		t.Fatalf("expected other player's entry to survive")
	}
}

func TestPurgeTreatsPrefixLiterallyOnEveryBackend(t *testing.T) {
	backends := map[string]Cache{
		BackendMemory: NewMemoryCache(),
		BackendSQLite: openTestSQLite(t),
	}
	for name, c := range backends {
		ctx := context.Background()
		for _, key := range []string{"ab_c", "abXc", "AB_d", "ab%e", "abcd"} {
			if err := c.Set(ctx, key, []byte("v"), 0); err != nil {
				t.Fatalf("%s: set %s: %v", name, key, err)
			}
		}

		n, err := c.Purge(ctx, "ab_")
		if err != nil || n != 1 {
			t.Fatalf("%s: expected only ab_c purged, got %d err=%v", name, n, err)
		}
		n, err = c.Purge(ctx, "ab%")
		if err != nil || n != 1 {
			t.Fatalf("%s: expected only ab%%e purged, got %d err=%v", name, n, err)
		}
		for _, key := range []string{"abXc", "AB_d", "abcd"} {
			if _, ok, _ := c.Get(ctx, key); !ok {
				t.Fatalf("%s: expected %s to survive", name, key)
			}
		}

		n, err = c.Purge(ctx, "")
		if err != nil || n != 3 {
			t.Fatalf("%s: expected empty prefix to purge the rest, got %d err=%v", name, n, err)
		}
	}
}

func TestOpenSQLRejectsUnknownBackend(t *testing.T) {
	if _, err := OpenSQL(context.Background(), "mysql", "dsn"); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
	if _, err := OpenSQL(context.Background(), BackendSQLite, ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestRebindNumbersPlaceholdersForPostgres(t *testing.T) {
	c := &SQLCache{dialect: dialects[BackendPostgres]}
	got := c.rebind("SELECT a FROM t WHERE x = ? AND y = ?")
	if got != "SELECT a FROM t WHERE x = $1 AND y = $2" {
		t.Fatalf("unexpected rebind %q", got)
	}
	lite := &SQLCache{dialect: dialects[BackendSQLite]}
	if q := lite.rebind("x = ?"); q != "x = ?" {
		t.Fatalf("expected sqlite query unchanged, got %q", q)
	}
}

func TestOpenMemoryBackend(t *testing.T) {
	c, closeFn, err := Open(context.Background(), "", "")
	if err != nil || c == nil || closeFn == nil {
		t.Fatalf("expected memory cache, got %v %v", c, err)
	}
	if _, ok := c.(*MemoryCache); !ok {
		t.Fatalf("expected *MemoryCache, got %T", c)
	}
	if _, _, err := Open(context.Background(), "redis", ""); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
