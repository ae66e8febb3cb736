package strongs

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/versewall/versewall/pkg/cache"
)

var sampleTexts = []string{"{H1}{H1}{H2}", "{H1}{H3}"}

func supplier(calls *int) func() ([]string, error) {
	return func() ([]string, error) {
		*calls++
		return sampleTexts, nil
	}
}

func TestLoadOrBuildRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	store := NewStore(c, nil)
	key := Key{SourcePath: "/data/asvs.sqlite", SourceMTime: 1234, TopN: 1}

	calls := 0
	first, err := store.LoadOrBuild(ctx, key, supplier(&calls))
	if err != nil {
		t.Fatalf("first LoadOrBuild: %v", err)
	}
	if first.Provenance() != ProvenanceAuto {
		t.Errorf("first call provenance = %s, want auto", first.Provenance())
	}
	if calls != 1 {
		t.Errorf("supplier called %d times, want 1", calls)
	}

	second, err := store.LoadOrBuild(ctx, key, supplier(&calls))
	if err != nil {
		t.Fatalf("second LoadOrBuild: %v", err)
	}
	if second.Provenance() != ProvenanceCache {
		t.Errorf("second call provenance = %s, want cache", second.Provenance())
	}
	if calls != 1 {
		t.Errorf("supplier called %d times after warm start, want 1", calls)
	}
	if !reflect.DeepEqual(first.IDs(), second.IDs()) {
		t.Errorf("cached ids %v differ from computed ids %v", second.IDs(), first.IDs())
	}
}

func TestLoadOrBuildInvalidatesOnChangedIdentity(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	store := NewStore(c, nil)
	key := Key{SourcePath: "/data/asvs.sqlite", SourceMTime: 1234, TopN: 1}

	calls := 0
	if _, err := store.LoadOrBuild(ctx, key, supplier(&calls)); err != nil {
		t.Fatalf("LoadOrBuild: %v", err)
	}

	// A changed mtime forces a recompute even though the file exists.
	stale := key
	stale.SourceMTime = 5678
	got, err := store.LoadOrBuild(ctx, stale, supplier(&calls))
	if err != nil {
		t.Fatalf("LoadOrBuild after mtime change: %v", err)
	}
	if got.Provenance() != ProvenanceAuto {
		t.Errorf("provenance after mtime change = %s, want auto", got.Provenance())
	}
	if calls != 2 {
		t.Errorf("supplier called %d times, want 2", calls)
	}

	// A changed topN does the same.
	wider := key
	wider.TopN = 2
	got, err = store.LoadOrBuild(ctx, wider, supplier(&calls))
	if err != nil {
		t.Fatalf("LoadOrBuild after topN change: %v", err)
	}
	if got.Provenance() != ProvenanceAuto {
		t.Errorf("provenance after topN change = %s, want auto", got.Provenance())
	}
}

func TestLoadOrBuildSupplierError(t *testing.T) {
	store := NewStore(cache.NewNullCache(), nil)
	key := Key{SourcePath: "x", SourceMTime: 1, TopN: 5}
	boom := errors.New("db gone")
	_, err := store.LoadOrBuild(context.Background(), key, func() ([]string, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped supplier error", err)
	}
}

func TestLoadOrBuildWriteFailureIsNonFatal(t *testing.T) {
	// NullCache accepts writes silently; failingCache rejects them.
	store := NewStore(failingCache{}, nil)
	key := Key{SourcePath: "x", SourceMTime: 1, TopN: 1}
	stop, err := store.LoadOrBuild(context.Background(), key, func() ([]string, error) {
		return sampleTexts, nil
	})
	if err != nil {
		t.Fatalf("LoadOrBuild should survive a cache write failure: %v", err)
	}
	if !stop.Contains("H1") {
		t.Error("in-memory result should still be usable")
	}
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (failingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return errors.New("disk full")
}

func (failingCache) Delete(ctx context.Context, key string) error { return nil }
func (failingCache) Close() error                                 { return nil }
