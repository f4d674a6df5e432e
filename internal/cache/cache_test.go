package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadMissOnEmptyStore(t *testing.T) {
	c := New[payload](NewMemoryStore(), "test", time.Hour)
	if _, hit := c.Read(context.Background()); hit {
		t.Error("Expected miss on empty store")
	}
}

func TestWriteThenReadWithinTTL(t *testing.T) {
	c := New[payload](NewMemoryStore(), "test", time.Hour)
	ctx := context.Background()

	want := payload{Name: "haberler", Count: 3}
	c.Write(ctx, want)

	got, hit := c.Read(ctx)
	if !hit {
		t.Fatal("Expected hit after write")
	}
	if got != want {
		t.Errorf("Round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestReadAfterTTLIsMissEvenIfEntryPresent(t *testing.T) {
	// The store keeps entries well past the cache TTL, so expiry must come
	// from the envelope timestamp, not the backend.
	store := NewMemoryStore()
	c := New[payload](store, "test", time.Minute)
	ctx := context.Background()

	c.Write(ctx, payload{Name: "eski"})

	if _, found, _ := store.Get(ctx, "test"); !found {
		t.Fatal("Expected entry physically present in store")
	}

	c.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, hit := c.Read(ctx); hit {
		t.Error("Expected miss after TTL elapsed")
	}
}

func TestWriteOverwritesSlot(t *testing.T) {
	c := New[payload](NewMemoryStore(), "test", time.Hour)
	ctx := context.Background()

	c.Write(ctx, payload{Name: "ilk"})
	c.Write(ctx, payload{Name: "son"})

	got, hit := c.Read(ctx)
	if !hit || got.Name != "son" {
		t.Errorf("Expected last write to win, got %+v (hit=%v)", got, hit)
	}
}

func TestInvalidateDropsSlot(t *testing.T) {
	c := New[payload](NewMemoryStore(), "test", time.Hour)
	ctx := context.Background()

	c.Write(ctx, payload{Name: "x"})
	c.Invalidate(ctx)

	if _, hit := c.Read(ctx); hit {
		t.Error("Expected miss after invalidate")
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	store.Set(ctx, "test", "{not json", 0)

	c := New[payload](store, "test", time.Hour)
	if _, hit := c.Read(ctx); hit {
		t.Error("Expected miss for corrupt entry")
	}
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}
func (failingStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("storage full")
}
func (failingStore) Del(ctx context.Context, key string) error { return errors.New("storage gone") }
func (failingStore) Close() error                              { return nil }

func TestStorageFailuresDegradeToAlwaysFetch(t *testing.T) {
	c := New[payload](failingStore{}, "test", time.Hour)
	ctx := context.Background()

	// None of these may panic or surface an error to the caller.
	c.Write(ctx, payload{Name: "x"})
	c.Invalidate(ctx)
	if _, hit := c.Read(ctx); hit {
		t.Error("Expected miss when storage is unavailable")
	}
}

func TestMemoryStoreHonorsItsOwnTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, found, _ := store.Get(ctx, "k"); found {
		t.Error("Expected expired entry to be treated as absent")
	}
}
