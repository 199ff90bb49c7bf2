package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-shotchart-service/internal/cache"
	"github.com/preston-bernstein/nba-shotchart-service/internal/testutil"
)

func newAdmin(token string) (*AdminHandler, *cache.MemoryCache) {
	svc, mem, _ := testutil.NewScoutingService(testutil.NewSampleProvider())
	ctx := context.Background()
	_ = mem.Set(ctx, cache.PlayersKey(), []byte("[]"), 0)
	_ = mem.Set(ctx, cache.ShotsKey(2544, "2024-25"), []byte("[]"), 0)
	_ = mem.Set(ctx, cache.GameLogKey(2544, "2024-25"), []byte("[]"), 0)
	_ = mem.Set(ctx, cache.CareerKey(2544), []byte("[]"), 0)
	return NewAdminHandler(svc, testSeasons, token, nil), mem
}

func purgeRequest(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminPurgeRequiresAuth(t *testing.T) {
	h, mem := newAdmin("secret")
	for _, token := range []string{"", "wrong"} {
		rr := serve(h.PurgeCache, purgeRequest("/admin/cache/purge", token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if mem.Len() != 4 {
		t.Fatalf("expected cache untouched by unauthorized calls")
	}
}

func TestAdminPurgeDisabledWithoutToken(t *testing.T) {
	h, _ := newAdmin("")
	rr := serve(h.PurgeCache, purgeRequest("/admin/cache/purge", "anything"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminPurgeScopes(t *testing.T) {
	h, mem := newAdmin("secret")

	rr := serve(h.PurgeCache, purgeRequest("/admin/cache/purge?player=2544&season=2024-25", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Status string `json:"status"`
		Purged int    `json:"purged"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Status != "ok" || resp.Purged != 2 || mem.Len() != 2 {
		t.Fatalf("expected season purge of 2 entries, got %+v (len %d)", resp, mem.Len())
	}

	rr = serve(h.PurgeCache, purgeRequest("/admin/cache/purge?player=LeBron%20James", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Purged != 1 || mem.Len() != 1 {
		t.Fatalf("expected player purge of the career entry, got %+v (len %d)", resp, mem.Len())
	}

	rr = serve(h.PurgeCache, purgeRequest("/admin/cache/purge", "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if mem.Len() != 0 {
		t.Fatalf("expected full purge, %d entries left", mem.Len())
	}
}

func TestAdminPurgeValidatesQuery(t *testing.T) {
	h, mem := newAdmin("secret")

	rr := serve(h.PurgeCache, purgeRequest("/admin/cache/purge?season=2024-25", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = serve(h.PurgeCache, purgeRequest("/admin/cache/purge?player=2544&season=1999-00", "secret"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = serve(h.PurgeCache, purgeRequest("/admin/cache/purge?player=Nobody", "secret"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	if mem.Len() != 4 {
		t.Fatalf("expected cache untouched by rejected purges")
	}
}
