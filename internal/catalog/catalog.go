// Package catalog implements the catalog access and discovery engine: cached
// access to the TMDB catalog, filtered discovery with progressive fallback,
// random sampling across paginated lists, and collection insights.
package catalog

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_store.go -package=mocks CollectionStore

// CollectionStore resolves collection membership to catalog movie id sets.
// Results are plain id sets used for inclusion and exclusion filtering.
type CollectionStore interface {
	// MovieIDsIn returns the movie ids belonging to the given collections.
	MovieIDsIn(ctx context.Context, userID int64, collectionIDs []int64) ([]int, error)

	// AllMovieIDs returns every movie id across all collections owned by the user.
	AllMovieIDs(ctx context.Context, userID int64) ([]int, error)
}

// Cache TTLs per domain.
const (
	genreTTL           = 24 * time.Hour
	creditsTTL         = time.Hour
	detailTTL          = 30 * time.Minute
	searchTTL          = 5 * time.Minute
	defaultPageMetaTTL = 5 * time.Minute
)

const (
	defaultCacheCapacity = 2048
	defaultBatchSize     = 5
	defaultInsightsBatch = 10
	defaultMaxRetries    = 10
)

// Service is the discovery engine. It owns the cache coordinator and routes
// every upstream call through it when the call is eligible for caching.
type Service struct {
	client *tmdb.Client
	store  CollectionStore
	cache  *coordinator
	log    *slog.Logger

	pageMetaTTL   time.Duration
	batchSize     int
	insightsBatch int
	maxRetries    int
	randInt       func(n int) int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log.With("component", "catalog")
	}
}

// WithCacheCapacity bounds the number of entries each cache domain holds.
func WithCacheCapacity(n int) Option {
	return func(s *Service) {
		s.cache = newCoordinator(n)
	}
}

// WithPageMetadataTTL sets how long cached page metadata stays valid.
func WithPageMetadataTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.pageMetaTTL = ttl
	}
}

// WithBatchSize sets the per-batch concurrency for role filtering.
func WithBatchSize(n int) Option {
	return func(s *Service) {
		s.batchSize = n
	}
}

// WithMaxRetries caps the bounded retry loops (random actor, history exclusion).
func WithMaxRetries(n int) Option {
	return func(s *Service) {
		s.maxRetries = n
	}
}

// New creates a discovery engine on top of a TMDB client and a collection
// store. The store may be nil when collection-membership filtering and
// insights-by-user are not needed.
func New(client *tmdb.Client, store CollectionStore, opts ...Option) *Service {
	s := &Service{
		client:        client,
		store:         store,
		cache:         newCoordinator(defaultCacheCapacity),
		pageMetaTTL:   defaultPageMetaTTL,
		batchSize:     defaultBatchSize,
		insightsBatch: defaultInsightsBatch,
		maxRetries:    defaultMaxRetries,
		randInt:       rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) debug(msg string, args ...any) {
	if s.log != nil {
		s.log.Debug(msg, args...)
	}
}
