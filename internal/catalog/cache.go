package catalog

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache domains. Each domain's key space is disjoint because the domain name
// prefixes every key.
const (
	domainMovieDetail   = "movie-detail"
	domainPersonDetail  = "person-detail"
	domainMovieCredits  = "movie-credits"
	domainPersonCredits = "person-credits"
	domainMovieVideos   = "movie-videos"
	domainMovieKeywords = "movie-keywords"
	domainGenreList     = "genre-list"
	domainSearch        = "search-results"
	domainPageMeta      = "page-metadata"
	domainRoleInfo      = "role-info"
)

// entry is one cached value. Valid while now - fetchedAt < ttl.
type entry struct {
	data      any
	fetchedAt time.Time
	ttl       time.Duration
}

func (e entry) valid(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// coordinator combines a capacity-bounded LRU store with single-flight
// request deduplication. At most one upstream call per key is in flight;
// late arrivers await the same call. Failed calls are never stored, so a
// failure doesn't poison later attempts.
type coordinator struct {
	store *lru.Cache[string, entry]
	group singleflight.Group
}

func newCoordinator(capacity int) *coordinator {
	store, err := lru.New[string, entry](capacity)
	if err != nil {
		// lru.New only fails on capacity <= 0.
		panic(fmt.Sprintf("catalog: bad cache capacity %d", capacity))
	}
	return &coordinator{store: store}
}

func (c *coordinator) lookup(key string) (any, bool) {
	e, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	if !e.valid(time.Now()) {
		c.store.Remove(key)
		return nil, false
	}
	return e.data, true
}

func (c *coordinator) put(key string, data any, ttl time.Duration) {
	c.store.Add(key, entry{data: data, fetchedAt: time.Now(), ttl: ttl})
}

// fetchCached returns the cached value for (domain, key) if still valid,
// otherwise fetches it through the coordinator's single-flight group and
// caches the result with the given TTL. A generic function rather than a
// method because Go methods cannot introduce type parameters.
func fetchCached[T any](ctx context.Context, c *coordinator, domain, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	cacheKey := domain + ":" + key

	if data, ok := c.lookup(cacheKey); ok {
		if v, ok := data.(T); ok {
			return v, nil
		}
	}

	data, err, _ := c.group.Do(cacheKey, func() (any, error) {
		// A call that finished while we queued may have filled the cache.
		if data, ok := c.lookup(cacheKey); ok {
			return data, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.put(cacheKey, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return data.(T), nil
}
