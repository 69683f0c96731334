package repository

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Set("k", "v", time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Fatalf("expected hit with %q, got %q (%v)", "v", val, ok)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestMemoryCache_StaleEntriesIgnored(t *testing.T) {
	now := time.Now()
	cache := NewMemoryCacheWithClock(func() time.Time { return now })

	if err := cache.Set("k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("entry should still be fresh")
	}

	now = now.Add(2 * time.Second)
	if _, ok := cache.Get("k"); ok {
		t.Fatal("entry should be stale")
	}

	// la siguiente escritura reemplaza la entrada vencida
	if err := cache.Set("k", "v2", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok := cache.Get("k")
	if !ok || val != "v2" {
		t.Fatalf("expected refreshed entry, got %q (%v)", val, ok)
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	cache := NewMemoryCacheWithClock(func() time.Time { return now })

	if err := cache.Set("k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	now = now.Add(1000 * time.Hour)
	if _, ok := cache.Get("k"); !ok {
		t.Fatal("zero-ttl entry should not expire")
	}
}
