package catalog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

func handleMovie550(t *testing.T, f *fakeCatalog) {
	f.handleJSON("/3/movie/550", tmdb.Movie{
		ID:          550,
		Title:       "Fight Club",
		ReleaseDate: "1999-10-15",
		Runtime:     139,
		VoteAverage: 8.4,
		Genres:      []tmdb.Genre{{ID: 18, Name: "Drama"}},
	})
	f.handleJSON("/3/movie/550/videos", tmdb.VideoList{
		ID:      550,
		Results: []tmdb.Video{{Key: "abc123", Site: "YouTube", Type: "Trailer", Official: true}},
	})
	f.handleJSON("/3/movie/550/credits", tmdb.Credits{
		ID:   550,
		Cast: []tmdb.CastMember{{ID: 819, Name: "Edward Norton", Character: "The Narrator"}},
		Crew: []tmdb.CrewMember{{ID: 7467, Name: "David Fincher", Job: "Director", Department: "Directing"}},
	})
}

func TestGetMovie_MergesDetailVideosCredits(t *testing.T) {
	f := newFakeCatalog(t)
	handleMovie550(t, f)

	s := newTestService(t, f)

	movie, err := s.GetMovie(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	require.Len(t, movie.Videos, 1)
	assert.Equal(t, "abc123", movie.Videos[0].Key)
	require.Len(t, movie.Cast, 1)
	assert.Equal(t, "Edward Norton", movie.Cast[0].Name)
	require.Len(t, movie.Crew, 1)
	assert.Equal(t, "Director", movie.Crew[0].Job)
}

func TestGetMovie_VideosFailureDegrades(t *testing.T) {
	f := newFakeCatalog(t)
	handleMovie550(t, f)
	f.handleError("/3/movie/550/videos", http.StatusInternalServerError)

	s := newTestService(t, f)

	movie, err := s.GetMovie(context.Background(), 550)
	require.NoError(t, err, "failed videos fetch must not fail the call")
	assert.Empty(t, movie.Videos)
	assert.NotEmpty(t, movie.Cast, "credits still merged")
}

func TestGetMovie_DetailFailureFails(t *testing.T) {
	f := newFakeCatalog(t)

	s := newTestService(t, f)

	_, err := s.GetMovie(context.Background(), 99999999)
	assert.ErrorIs(t, err, tmdb.ErrNotFound)
}

func TestGetMovie_SubRequestsCached(t *testing.T) {
	f := newFakeCatalog(t)
	handleMovie550(t, f)

	s := newTestService(t, f)

	_, err := s.GetMovie(context.Background(), 550)
	require.NoError(t, err)
	_, err = s.GetMovie(context.Background(), 550)
	require.NoError(t, err)

	assert.Equal(t, 1, f.callCount("/3/movie/550"))
	assert.Equal(t, 1, f.callCount("/3/movie/550/videos"))
	assert.Equal(t, 1, f.callCount("/3/movie/550/credits"))
}

func TestSearchMovies_DefaultOptionsCached(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/search/movie", tmdb.MoviePage{
		Page: 1, TotalPages: 1, TotalResults: 1,
		Results: []tmdb.MovieListItem{{ID: 27205, Title: "Inception"}},
	})

	s := newTestService(t, f)

	_, err := s.SearchMovies(context.Background(), "inception", tmdb.Options{})
	require.NoError(t, err)
	_, err = s.SearchMovies(context.Background(), "inception", tmdb.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, f.callCount("/3/search/movie"), "default-option search served from cache")

	_, err = s.SearchMovies(context.Background(), "inception", tmdb.Options{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, f.callCount("/3/search/movie"), "custom options bypass the cache")
}

func TestGenres_Cached(t *testing.T) {
	f := newFakeCatalog(t)
	f.handle("/3/genre/movie/list", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"}]}`))
	})

	s := newTestService(t, f)

	genres, err := s.Genres(context.Background())
	require.NoError(t, err)
	require.Len(t, genres, 1)

	_, err = s.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.callCount("/3/genre/movie/list"))
}

func TestMovieKeywords(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/movie/550/keywords", tmdb.KeywordList{
		ID:       550,
		Keywords: []tmdb.Keyword{{ID: 818, Name: "based on novel or book"}},
	})

	s := newTestService(t, f)

	keywords, err := s.MovieKeywords(context.Background(), 550)
	require.NoError(t, err)
	require.Len(t, keywords, 1)
	assert.Equal(t, 818, keywords[0].ID)
}

func TestFindMovieByTitle(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/search/movie", tmdb.MoviePage{
		Page: 1, TotalPages: 1, TotalResults: 3,
		Results: []tmdb.MovieListItem{
			{ID: 604, Title: "The Matrix Reloaded"},
			{ID: 603, Title: "The Matrix"},
			{ID: 605, Title: "The Matrix Revolutions"},
		},
	})

	s := newTestService(t, f)

	movie, err := s.FindMovieByTitle(context.Background(), "matrix")
	require.NoError(t, err)
	assert.Equal(t, 603, movie.ID, "closest normalized title wins over upstream order")
}

func TestFindMovieByTitle_NoCloseMatchUsesUpstreamRanking(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/search/movie", tmdb.MoviePage{
		Page: 1, TotalPages: 1, TotalResults: 1,
		Results: []tmdb.MovieListItem{{ID: 289, Title: "Casablanca"}},
	})

	s := newTestService(t, f)

	movie, err := s.FindMovieByTitle(context.Background(), "zzzzqqqq")
	require.NoError(t, err)
	assert.Equal(t, 289, movie.ID)
}

func TestFindMovieByTitle_NoResults(t *testing.T) {
	f := newFakeCatalog(t)
	f.handleJSON("/3/search/movie", tmdb.MoviePage{Page: 1, TotalPages: 1})

	s := newTestService(t, f)

	_, err := s.FindMovieByTitle(context.Background(), "nothing matches this")
	assert.ErrorIs(t, err, ErrNoResults)
}
