package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_LookupPut(t *testing.T) {
	c := newCoordinator(16)

	_, ok := c.lookup("movie-detail:550")
	assert.False(t, ok, "empty cache should miss")

	c.put("movie-detail:550", "fight club", time.Hour)

	got, ok := c.lookup("movie-detail:550")
	require.True(t, ok)
	assert.Equal(t, "fight club", got)

	_, ok = c.lookup("movie-detail:551")
	assert.False(t, ok, "different key should miss")
}

func TestCoordinator_Expiry(t *testing.T) {
	c := newCoordinator(16)

	c.put("search-results:movie:dune", "page", 10*time.Millisecond)

	_, ok := c.lookup("search-results:movie:dune")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.lookup("search-results:movie:dune")
	assert.False(t, ok, "should miss after TTL")
}

func TestCoordinator_CapacityEviction(t *testing.T) {
	c := newCoordinator(2)

	c.put("a", 1, time.Hour)
	c.put("b", 2, time.Hour)
	c.put("c", 3, time.Hour)

	_, ok := c.lookup("a")
	assert.False(t, ok, "oldest entry should be evicted at capacity")
	_, ok = c.lookup("c")
	assert.True(t, ok)
}

func TestFetchCached_HitSkipsFetch(t *testing.T) {
	c := newCoordinator(16)
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	}

	v, err := fetchCached(context.Background(), c, domainMovieDetail, "550", time.Hour, fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = fetchCached(context.Background(), c, domainMovieDetail, "550", time.Hour, fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "second call should be a cache hit")
}

func TestFetchCached_DomainsAreDisjoint(t *testing.T) {
	c := newCoordinator(16)

	_, err := fetchCached(context.Background(), c, domainMovieDetail, "550", time.Hour, func(ctx context.Context) (string, error) {
		return "detail", nil
	})
	require.NoError(t, err)

	v, err := fetchCached(context.Background(), c, domainMovieCredits, "550", time.Hour, func(ctx context.Context) (string, error) {
		return "credits", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "credits", v, "same key in another domain must not collide")
}

func TestFetchCached_CoalescesConcurrentFetches(t *testing.T) {
	c := newCoordinator(16)
	var calls atomic.Int32

	fetch := func(ctx context.Context) (int, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return 7, nil
	}

	const n = 25
	var wg sync.WaitGroup
	results := make([]int, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := fetchCached(context.Background(), c, domainGenreList, "movie", time.Hour, fetch)
			assert.NoError(t, err)
			results[i] = v
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent callers should share one upstream call")
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestFetchCached_ErrorNotCached(t *testing.T) {
	c := newCoordinator(16)
	calls := 0
	wantErr := errors.New("upstream down")

	fetch := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, wantErr
		}
		return 99, nil
	}

	_, err := fetchCached(context.Background(), c, domainMovieDetail, "1", time.Hour, fetch)
	assert.ErrorIs(t, err, wantErr)

	v, err := fetchCached(context.Background(), c, domainMovieDetail, "1", time.Hour, fetch)
	require.NoError(t, err, "a failed call must not poison later attempts")
	assert.Equal(t, 99, v)
	assert.Equal(t, 2, calls)
}

func TestNewCoordinator_BadCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { newCoordinator(0) })
}
