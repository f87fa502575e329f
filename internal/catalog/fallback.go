package catalog

import (
	"context"
	"errors"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

// Preferences is the caller's input to suggest and shuffle queries. Positive
// inclusion dimensions (moods, keywords, crew, cast, genres, era) are relaxed
// progressively when an exact match yields nothing; everything under "strict"
// survives into every fallback variant untouched.
type Preferences struct {
	Moods      []string
	Era        string
	Genres     []int
	CastIDs    []int
	CrewIDs    []int
	KeywordIDs []int

	// Strict dimensions, never relaxed. See strictDimensions.
	YearRange       *IntRange
	RuntimeRange    *IntRange
	PopularityRange *FloatRange
	MinVoteAverage  float64
	MinVoteCount    int
	WatchProviders  string
	OriginCountries []string
	ExcludeGenres   []int
	ExcludeCastIDs  []int
	ExcludeCrewIDs  []int

	// Collection-membership filters, strict, applied to results after each
	// variant because the upstream can't see our collections.
	UserID             int64
	InCollections      []int64
	NotInAnyCollection bool

	// Ids already in the caller's history or selection set; excluded from
	// every pick.
	ExcludeMovieIDs []int
}

// strictDimensions is the single classification of which preference
// dimensions relaxation must never touch. Every variant is built through
// this table, and both SuggestMovie and ShuffleMovie go through the same
// variant builder, so the two paths cannot drift apart.
var strictDimensions = []struct {
	name  string
	apply func(p Preferences, c *DiscoverCriteria)
}{
	{"explicit-year-range", func(p Preferences, c *DiscoverCriteria) {
		if p.YearRange != nil {
			c.YearRange = p.YearRange
		}
	}},
	{"runtime-bounds", func(p Preferences, c *DiscoverCriteria) {
		c.RuntimeRange = p.RuntimeRange
	}},
	{"minimum-rating", func(p Preferences, c *DiscoverCriteria) {
		c.MinVoteAverage = p.MinVoteAverage
		c.MinVoteCount = p.MinVoteCount
	}},
	{"popularity-level", func(p Preferences, c *DiscoverCriteria) {
		c.PopularityRange = p.PopularityRange
	}},
	{"watch-providers", func(p Preferences, c *DiscoverCriteria) {
		c.WatchProviders = p.WatchProviders
	}},
	{"origin-countries", func(p Preferences, c *DiscoverCriteria) {
		c.OriginCountries = p.OriginCountries
	}},
	{"explicit-exclusions", func(p Preferences, c *DiscoverCriteria) {
		c.ExcludeGenres = p.ExcludeGenres
		c.ExcludeCastIDs = p.ExcludeCastIDs
		c.ExcludeCrewIDs = p.ExcludeCrewIDs
	}},
}

// dims selects which relaxable dimensions a variant keeps.
type dims uint8

const (
	withMoods dims = 1 << iota
	withCrew
	withCast
	withGenres
	withEra
)

// criteria builds a DiscoverCriteria holding the selected relaxable
// dimensions plus every strict dimension.
func (p Preferences) criteria(d dims) DiscoverCriteria {
	var c DiscoverCriteria
	if d&withMoods != 0 {
		c.KeywordIDs = append(resolveMoods(p.Moods), p.KeywordIDs...)
	}
	if d&withCrew != 0 {
		c.CrewIDs = p.CrewIDs
	}
	if d&withCast != 0 {
		c.CastIDs = p.CastIDs
	}
	if d&withGenres != 0 {
		c.Genres = p.Genres
	}
	// An explicit year range is strict and owns the year dimension; the
	// era-derived range only applies when no explicit range is set.
	if d&withEra != 0 && p.YearRange == nil {
		c.YearRange = resolveEra(p.Era)
	}
	for _, dim := range strictDimensions {
		dim.apply(p, &c)
	}
	return c
}

// queryVariant is one relaxed discover attempt.
type queryVariant struct {
	criteria    DiscoverCriteria
	singleValue bool
}

// fallbackVariants builds the ordered list of query variants, most to least
// specific: drop mood/keyword filters, then crew, then cast, then reduce
// multi-genre to one, then era years, ending with genre-only and year-only.
// Variants whose parameter sets duplicate an earlier one are dropped,
// preserving first-seen order.
func fallbackVariants(p Preferences) []queryVariant {
	var out []queryVariant
	seen := make(map[string]bool)
	add := func(c DiscoverCriteria, single bool) {
		key := buildDiscoverParams(c, single).Encode()
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, queryVariant{criteria: c, singleValue: single})
	}

	add(p.criteria(withMoods|withCrew|withCast|withGenres|withEra), false)
	add(p.criteria(withCrew|withCast|withGenres|withEra), false)
	add(p.criteria(withCast|withGenres|withEra), false)

	genreEra := p.criteria(withGenres | withEra)
	add(genreEra, false)
	if shouldRelax(genreEra) {
		add(genreEra, true)
	}

	add(p.criteria(withGenres), true)
	add(p.criteria(withEra), false)

	return out
}

// findWithFallback tries each variant in order and returns the first
// non-empty result set after collection and history filtering, or
// ErrNoResults when every variant comes up empty.
func (s *Service) findWithFallback(ctx context.Context, p Preferences) ([]tmdb.MovieListItem, error) {
	include, exclude, err := s.collectionFilter(ctx, p)
	if err != nil {
		return nil, err
	}
	for _, id := range p.ExcludeMovieIDs {
		if exclude == nil {
			exclude = make(map[int]bool)
		}
		exclude[id] = true
	}

	for i, v := range fallbackVariants(p) {
		page, err := s.client.DiscoverMovies(ctx, buildDiscoverParams(v.criteria, v.singleValue), tmdb.Options{})
		if err != nil {
			return nil, err
		}
		results := filterResults(page.Results, include, exclude)
		if len(results) > 0 {
			s.debug("fallback variant matched", "variant", i, "results", len(results))
			return results, nil
		}
	}
	return nil, ErrNoResults
}

// SuggestMovie picks a movie matching the preferences, relaxing inclusion
// filters step by step. When every variant is empty it degrades to a random
// popular movie outside the caller's history instead of failing.
func (s *Service) SuggestMovie(ctx context.Context, p Preferences) (*tmdb.MovieListItem, error) {
	results, err := s.findWithFallback(ctx, p)
	if err == nil {
		return pickRandom(s, results), nil
	}
	if !errors.Is(err, ErrNoResults) {
		return nil, err
	}
	s.debug("all fallback variants empty, degrading to popular pick")
	return s.randomExcluding(ctx, p)
}

// ShuffleMovie is SuggestMovie's hard-failing sibling: same variants, same
// strictness rules, but an exhausted fallback surfaces ErrNoResults instead
// of degrading to an unfiltered pick.
func (s *Service) ShuffleMovie(ctx context.Context, p Preferences) (*tmdb.MovieListItem, error) {
	results, err := s.findWithFallback(ctx, p)
	if err != nil {
		return nil, err
	}
	return pickRandom(s, results), nil
}

// randomExcluding samples popular movies until one outside the exclusion set
// appears. When the retry budget runs out any pick, even a duplicate, is
// accepted to guarantee forward progress.
func (s *Service) randomExcluding(ctx context.Context, p Preferences) (*tmdb.MovieListItem, error) {
	_, exclude, err := s.collectionFilter(ctx, p)
	if err != nil {
		return nil, err
	}
	if exclude == nil {
		exclude = make(map[int]bool)
	}
	for _, id := range p.ExcludeMovieIDs {
		exclude[id] = true
	}

	for attempt := 0; ; attempt++ {
		movie, err := s.RandomMovie(ctx)
		if err != nil {
			return nil, err
		}
		if !exclude[movie.ID] || attempt >= s.maxRetries {
			return movie, nil
		}
	}
}

// collectionFilter resolves the preference's collection membership filters
// into an inclusion set and an exclusion set of movie ids.
func (s *Service) collectionFilter(ctx context.Context, p Preferences) (include, exclude map[int]bool, err error) {
	if s.store == nil || p.UserID == 0 {
		return nil, nil, nil
	}
	if len(p.InCollections) > 0 {
		ids, err := s.store.MovieIDsIn(ctx, p.UserID, p.InCollections)
		if err != nil {
			return nil, nil, err
		}
		include = idSet(ids)
	}
	if p.NotInAnyCollection {
		ids, err := s.store.AllMovieIDs(ctx, p.UserID)
		if err != nil {
			return nil, nil, err
		}
		exclude = idSet(ids)
	}
	return include, exclude, nil
}

func filterResults(items []tmdb.MovieListItem, include, exclude map[int]bool) []tmdb.MovieListItem {
	if include == nil && len(exclude) == 0 {
		return items
	}
	var out []tmdb.MovieListItem
	for _, item := range items {
		if include != nil && !include[item.ID] {
			continue
		}
		if exclude[item.ID] {
			continue
		}
		out = append(out, item)
	}
	return out
}

func idSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
