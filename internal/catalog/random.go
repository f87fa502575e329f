package catalog

import (
	"context"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

// Upstream caps paginated results at 500 pages regardless of total_results.
const maxUpstreamPages = 500

// pageMeta is the cached (totalPages, firstPageItems) pair for one paginated
// query, keyed by endpoint and parameter hash. Caching it avoids re-fetching
// page 1 when a later invocation picks a different random page.
type pageMeta[T any] struct {
	TotalPages int
	FirstPage  []T
}

// randomFromPages picks an approximately uniform random item across a
// paginated result set with at most two upstream calls: one (cached) for page
// metadata and at most one for the randomly chosen page. Pages other than the
// first are fetched fresh so repeated picks stay random as the upstream set
// shifts.
func randomFromPages[T any](ctx context.Context, s *Service, key string, fetch func(ctx context.Context, page int) ([]T, int, error)) (*T, error) {
	meta, err := fetchCached(ctx, s.cache, domainPageMeta, key, s.pageMetaTTL, func(ctx context.Context) (pageMeta[T], error) {
		items, totalPages, err := fetch(ctx, 1)
		if err != nil {
			return pageMeta[T]{}, err
		}
		return pageMeta[T]{TotalPages: totalPages, FirstPage: items}, nil
	})
	if err != nil {
		return nil, err
	}

	if meta.TotalPages == 0 || len(meta.FirstPage) == 0 {
		return nil, ErrNoResults
	}

	totalPages := min(meta.TotalPages, maxUpstreamPages)
	if totalPages == 1 {
		return pickRandom(s, meta.FirstPage), nil
	}

	page := s.randInt(totalPages) + 1
	if page == 1 {
		return pickRandom(s, meta.FirstPage), nil
	}

	items, _, err := fetch(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		// A page inside the advertised range came back empty; the first
		// page is a known-good sample source.
		return pickRandom(s, meta.FirstPage), nil
	}
	return pickRandom(s, items), nil
}

func pickRandom[T any](s *Service, items []T) *T {
	return &items[s.randInt(len(items))]
}

// RandomMovie picks a random movie from the popular list.
func (s *Service) RandomMovie(ctx context.Context) (*tmdb.MovieListItem, error) {
	return s.RandomMovieFromList(ctx, tmdb.ListPopular)
}

// RandomMovieFromList picks a random movie from a named source list.
func (s *Service) RandomMovieFromList(ctx context.Context, list tmdb.List) (*tmdb.MovieListItem, error) {
	return randomFromPages(ctx, s, "list:"+string(list), func(ctx context.Context, page int) ([]tmdb.MovieListItem, int, error) {
		p, err := s.client.MovieList(ctx, list, tmdb.Options{Page: page})
		if err != nil {
			return nil, 0, err
		}
		return p.Results, p.TotalPages, nil
	})
}

// randomDiscoveredMovie picks a random movie from a discover query.
func (s *Service) randomDiscoveredMovie(ctx context.Context, criteria DiscoverCriteria) (*tmdb.MovieListItem, error) {
	params := buildDiscoverParams(criteria, false)
	return randomFromPages(ctx, s, "discover:"+params.Encode(), func(ctx context.Context, page int) ([]tmdb.MovieListItem, int, error) {
		p, err := s.client.DiscoverMovies(ctx, params, tmdb.Options{Page: page})
		if err != nil {
			return nil, 0, err
		}
		return p.Results, p.TotalPages, nil
	})
}

// RandomPerson picks a random person from the popular people list.
func (s *Service) RandomPerson(ctx context.Context) (*tmdb.PersonListItem, error) {
	return randomFromPages(ctx, s, "people:popular", func(ctx context.Context, page int) ([]tmdb.PersonListItem, int, error) {
		p, err := s.client.PopularPeople(ctx, tmdb.Options{Page: page})
		if err != nil {
			return nil, 0, err
		}
		return p.Results, p.TotalPages, nil
	})
}

// RandomActorFromList picks a random cast member from a random movie in a
// named source list. Movies with empty casts are skipped, tracking seen movie
// ids so no movie is tried twice, until the retry budget runs out.
func (s *Service) RandomActorFromList(ctx context.Context, list tmdb.List) (*tmdb.CastMember, error) {
	seen := make(map[int]bool)

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		movie, err := s.RandomMovieFromList(ctx, list)
		if err != nil {
			return nil, err
		}
		if seen[movie.ID] {
			continue
		}
		seen[movie.ID] = true

		credits, err := s.movieCredits(ctx, movie.ID)
		if err != nil {
			s.debug("credits fetch failed during actor sampling", "movie_id", movie.ID, "error", err)
			continue
		}
		if len(credits.Cast) > 0 {
			return pickRandom(s, credits.Cast), nil
		}
	}

	return nil, ErrNoActorsFound
}
