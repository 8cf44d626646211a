package search

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	errx "github.com/seasonal-storefront/server/internal/core/error"
)

func newRecentStore(t *testing.T) (*RedisRecentSearches, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRecentSearches(rdb, 5, time.Hour), mr
}

func TestRecentSearches_MostRecentFirstAndDeduplicated(t *testing.T) {
	store, mr := newRecentStore(t)
	ctx := context.Background()

	for _, term := range []string{"mug", "lamp", "mug", "  ", "jacket"} {
		if err := store.Add(ctx, "u1", term); err != nil {
			t.Fatalf("Add(%q): %v", term, err)
		}
	}

	got, err := store.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if diff := cmp.Diff([]string{"jacket", "mug", "lamp"}, got); diff != "" {
		t.Fatalf("terms (-want +got):\n%s", diff)
	}
	if ttl := mr.TTL("recent-searches:u1"); ttl <= 0 {
		t.Fatalf("ttl not set: %v", ttl)
	}
}

func TestRecentSearches_CappedAtLimit(t *testing.T) {
	store, _ := newRecentStore(t)
	ctx := context.Background()

	for _, term := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		if err := store.Add(ctx, "u1", term); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, _ := store.List(ctx, "u1")
	if diff := cmp.Diff([]string{"g", "f", "e", "d", "c"}, got); diff != "" {
		t.Fatalf("terms (-want +got):\n%s", diff)
	}
}

func TestRecentSearches_ClearAndIsolation(t *testing.T) {
	store, _ := newRecentStore(t)
	ctx := context.Background()

	_ = store.Add(ctx, "u1", "mug")
	_ = store.Add(ctx, "u2", "vase")

	if err := store.Clear(ctx, "u1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := store.List(ctx, "u1")
	if err != nil || len(got) != 0 {
		t.Fatalf("u1 after clear = %v, %v", got, err)
	}
	other, _ := store.List(ctx, "u2")
	if diff := cmp.Diff([]string{"vase"}, other); diff != "" {
		t.Fatalf("u2 (-want +got):\n%s", diff)
	}
}

func TestRecentSearches_RedisDown(t *testing.T) {
	store, mr := newRecentStore(t)
	mr.Close()

	err := store.Add(context.Background(), "u1", "mug")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if got := errx.StatusOf(err); got != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", got)
	}
}
