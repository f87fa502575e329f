package catalog

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/flickpick/pkg/titlematch"
	"github.com/vmunix/flickpick/pkg/tmdb"
)

// GetMovie fetches a movie with its videos and credits merged in. The three
// sub-requests run concurrently; a failed videos or credits fetch degrades to
// an empty list rather than failing the whole call.
func (s *Service) GetMovie(ctx context.Context, id int) (*tmdb.Movie, error) {
	var (
		detail  *tmdb.Movie
		videos  []tmdb.Video
		credits *tmdb.Credits
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = s.movieDetails(gctx, id)
		return err
	})
	g.Go(func() error {
		v, err := s.movieVideos(gctx, id)
		if err != nil {
			s.debug("videos fetch failed, continuing without", "movie_id", id, "error", err)
			return nil
		}
		videos = v
		return nil
	})
	g.Go(func() error {
		c, err := s.movieCredits(gctx, id)
		if err != nil {
			s.debug("credits fetch failed, continuing without", "movie_id", id, "error", err)
			return nil
		}
		credits = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := *detail
	merged.Videos = videos
	if credits != nil {
		merged.Cast = credits.Cast
		merged.Crew = credits.Crew
	}
	return &merged, nil
}

// SearchMovies searches movies by free text. Default-option searches are
// served from the search-results cache; caller-customized options change the
// result shape, so those are always fetched fresh.
func (s *Service) SearchMovies(ctx context.Context, query string, opts tmdb.Options) (*tmdb.MoviePage, error) {
	if !opts.IsDefault() {
		return s.client.SearchMovies(ctx, query, opts)
	}
	return fetchCached(ctx, s.cache, domainSearch, "movie:"+query, searchTTL, func(ctx context.Context) (*tmdb.MoviePage, error) {
		return s.client.SearchMovies(ctx, query, opts)
	})
}

// SearchPeople searches people by free text, cached like SearchMovies.
func (s *Service) SearchPeople(ctx context.Context, query string, opts tmdb.Options) (*tmdb.PersonPage, error) {
	if !opts.IsDefault() {
		return s.client.SearchPeople(ctx, query, opts)
	}
	return fetchCached(ctx, s.cache, domainSearch, "person:"+query, searchTTL, func(ctx context.Context) (*tmdb.PersonPage, error) {
		return s.client.SearchPeople(ctx, query, opts)
	})
}

// SearchKeywords searches keyword tags by free text.
func (s *Service) SearchKeywords(ctx context.Context, query string, opts tmdb.Options) (*tmdb.KeywordPage, error) {
	if !opts.IsDefault() {
		return s.client.SearchKeywords(ctx, query, opts)
	}
	return fetchCached(ctx, s.cache, domainSearch, "keyword:"+query, searchTTL, func(ctx context.Context) (*tmdb.KeywordPage, error) {
		return s.client.SearchKeywords(ctx, query, opts)
	})
}

// DiscoverMovies runs a filtered discover query from typed criteria.
func (s *Service) DiscoverMovies(ctx context.Context, criteria DiscoverCriteria, opts tmdb.Options) (*tmdb.MoviePage, error) {
	return s.client.DiscoverMovies(ctx, buildDiscoverParams(criteria, false), opts)
}

// MovieList fetches one page of a predefined list (trending, popular, ...).
func (s *Service) MovieList(ctx context.Context, list tmdb.List, opts tmdb.Options) (*tmdb.MoviePage, error) {
	return s.client.MovieList(ctx, list, opts)
}

// Genres returns the full genre list, cached for a day.
func (s *Service) Genres(ctx context.Context) ([]tmdb.Genre, error) {
	return fetchCached(ctx, s.cache, domainGenreList, "movie", genreTTL, func(ctx context.Context) ([]tmdb.Genre, error) {
		return s.client.Genres(ctx)
	})
}

// MovieKeywords returns the keyword tags for a movie, cached.
func (s *Service) MovieKeywords(ctx context.Context, id int) ([]tmdb.Keyword, error) {
	return fetchCached(ctx, s.cache, domainMovieKeywords, strconv.Itoa(id), creditsTTL, func(ctx context.Context) ([]tmdb.Keyword, error) {
		list, err := s.client.MovieKeywords(ctx, id)
		if err != nil {
			return nil, err
		}
		return list.Keywords, nil
	})
}

// FindMovieByTitle searches for a movie by title and returns the closest
// match by normalized similarity, or ErrNoResults when nothing matches.
func (s *Service) FindMovieByTitle(ctx context.Context, title string) (*tmdb.MovieListItem, error) {
	page, err := s.SearchMovies(ctx, title, tmdb.Options{})
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNoResults
	}

	candidates := make([]string, len(page.Results))
	for i, m := range page.Results {
		candidates[i] = m.Title
	}
	match := titlematch.Best(title, candidates)
	if match.Confidence == titlematch.ConfidenceNone {
		// Nothing close; fall back to the upstream's own ranking.
		return &page.Results[0], nil
	}
	return &page.Results[match.Index], nil
}

func (s *Service) movieDetails(ctx context.Context, id int) (*tmdb.Movie, error) {
	return fetchCached(ctx, s.cache, domainMovieDetail, strconv.Itoa(id), detailTTL, func(ctx context.Context) (*tmdb.Movie, error) {
		return s.client.MovieDetails(ctx, id)
	})
}

func (s *Service) movieCredits(ctx context.Context, id int) (*tmdb.Credits, error) {
	return fetchCached(ctx, s.cache, domainMovieCredits, strconv.Itoa(id), creditsTTL, func(ctx context.Context) (*tmdb.Credits, error) {
		return s.client.MovieCredits(ctx, id)
	})
}

func (s *Service) movieVideos(ctx context.Context, id int) ([]tmdb.Video, error) {
	return fetchCached(ctx, s.cache, domainMovieVideos, strconv.Itoa(id), detailTTL, func(ctx context.Context) ([]tmdb.Video, error) {
		list, err := s.client.MovieVideos(ctx, id)
		if err != nil {
			return nil, err
		}
		return list.Results, nil
	})
}
