package strongs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/versewall/versewall/pkg/cache"
)

// Key identifies the source a stoplist was computed from. A cached
// stoplist is valid only if every field matches exactly.
type Key struct {
	SourcePath  string
	SourceMTime int64 // unix nanoseconds of the source file
	TopN        int
}

// KeyForFile builds a Key from the source file's current modification time.
func KeyForFile(path string, topN int) (Key, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Key{}, fmt.Errorf("stat stoplist source: %w", err)
	}
	return Key{SourcePath: path, SourceMTime: info.ModTime().UnixNano(), TopN: topN}, nil
}

// record is the persisted cache payload.
type record struct {
	SourcePath  string   `json:"source_path"`
	SourceMTime int64    `json:"source_mtime"`
	TopN        int      `json:"top_n"`
	IDs         []string `json:"ids"`
}

// Store loads stoplists through a persistent cache, recomputing when the
// cached record no longer matches the source identity.
type Store struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewStore creates a stoplist store on the given cache backend.
// A nil logger silences write-failure warnings.
func NewStore(c cache.Cache, logger *log.Logger) *Store {
	return &Store{cache: c, logger: logger}
}

// LoadOrBuild returns the stoplist for key. A cached record matching the
// key exactly is returned verbatim with provenance "cache". Otherwise the
// texts supplier is invoked, the stoplist computed, and the result written
// back to the cache; a failed write is logged and ignored since it only
// costs a recompute on the next cold start.
func (s *Store) LoadOrBuild(ctx context.Context, key Key, texts func() ([]string, error)) (*Stoplist, error) {
	ck := cacheKey(key.SourcePath)

	if data, hit, err := s.cache.Get(ctx, ck); err == nil && hit {
		var rec record
		if json.Unmarshal(data, &rec) == nil &&
			rec.SourcePath == key.SourcePath &&
			rec.SourceMTime == key.SourceMTime &&
			rec.TopN == key.TopN {
			return NewStoplist(rec.IDs, rec.TopN, ProvenanceCache), nil
		}
	}

	all, err := texts()
	if err != nil {
		return nil, fmt.Errorf("read stoplist source texts: %w", err)
	}
	stop := Build(all, key.TopN)

	rec := record{
		SourcePath:  key.SourcePath,
		SourceMTime: key.SourceMTime,
		TopN:        key.TopN,
		IDs:         stop.IDs(),
	}
	data, err := json.Marshal(rec)
	if err == nil {
		err = s.cache.Set(ctx, ck, data, 0)
	}
	if err != nil && s.logger != nil {
		s.logger.Warnf("stoplist cache write failed: %v", err)
	}
	return stop, nil
}

// Invalidate drops the cached stoplist for a source path.
func (s *Store) Invalidate(ctx context.Context, sourcePath string) error {
	return s.cache.Delete(ctx, cacheKey(sourcePath))
}

func cacheKey(sourcePath string) string {
	return "stoplist:" + cache.Hash([]byte(sourcePath))
}
