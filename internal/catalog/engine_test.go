package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/flickpick/internal/catalog"
	"github.com/vmunix/flickpick/internal/catalog/mocks"
	"github.com/vmunix/flickpick/pkg/tmdb"
)

// newEngine wires a Service to a mocked collection store and a stub discover
// endpoint that always returns the given movies.
func newEngine(t *testing.T, store catalog.CollectionStore, discoverResults []tmdb.MovieListItem, movieHandlers map[string]any) *catalog.Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v, ok := movieHandlers[r.URL.Path]; ok {
			_ = json.NewEncoder(w).Encode(v)
			return
		}
		if r.URL.Path == "/3/discover/movie" {
			_ = json.NewEncoder(w).Encode(tmdb.MoviePage{
				Page: 1, TotalPages: 1, TotalResults: len(discoverResults),
				Results: discoverResults,
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_message":"not found"}`))
	}))
	t.Cleanup(server.Close)

	client := tmdb.NewClient("test-token", tmdb.WithBaseURL(server.URL))
	s := catalog.New(client, store)
	s.SetRandInt(func(n int) int { return 0 })
	return s
}

func TestShuffleMovie_NotInAnyCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCollectionStore(ctrl)
	store.EXPECT().AllMovieIDs(gomock.Any(), int64(7)).Return([]int{100}, nil)

	s := newEngine(t, store, []tmdb.MovieListItem{
		{ID: 100, Title: "Already Collected"},
		{ID: 200, Title: "New To Me"},
	}, nil)

	movie, err := s.ShuffleMovie(context.Background(), catalog.Preferences{
		Genres:             []int{28},
		UserID:             7,
		NotInAnyCollection: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, movie.ID)
}

func TestShuffleMovie_InCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCollectionStore(ctrl)
	store.EXPECT().MovieIDsIn(gomock.Any(), int64(7), []int64{3}).Return([]int{300}, nil)

	s := newEngine(t, store, []tmdb.MovieListItem{
		{ID: 200, Title: "Not In Collection"},
		{ID: 300, Title: "In Collection"},
	}, nil)

	movie, err := s.ShuffleMovie(context.Background(), catalog.Preferences{
		Genres:        []int{28},
		UserID:        7,
		InCollections: []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, 300, movie.ID)
}

func TestShuffleMovie_CollectionFilterSkippedWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCollectionStore(ctrl)
	// No EXPECT calls: a zero user id must not touch the store.

	s := newEngine(t, store, []tmdb.MovieListItem{{ID: 200, Title: "Any"}}, nil)

	movie, err := s.ShuffleMovie(context.Background(), catalog.Preferences{
		Genres:             []int{28},
		NotInAnyCollection: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, movie.ID)
}

func TestUserCollectionInsights_AllCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCollectionStore(ctrl)
	store.EXPECT().AllMovieIDs(gomock.Any(), int64(7)).Return([]int{1}, nil)

	s := newEngine(t, store, nil, map[string]any{
		"/3/movie/1": tmdb.Movie{ID: 1, ReleaseDate: "2001-12-19", Runtime: 178,
			Genres: []tmdb.Genre{{ID: 14, Name: "Fantasy"}}},
		"/3/movie/1/credits":  tmdb.Credits{},
		"/3/movie/1/keywords": tmdb.KeywordList{ID: 1},
	})

	insights, err := s.UserCollectionInsights(context.Background(), 7, nil, catalog.InsightsOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, insights.TotalMovies)
	require.Len(t, insights.Genres, 1)
	assert.Equal(t, "Fantasy", insights.Genres[0].Name)
}

func TestUserCollectionInsights_SpecificCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCollectionStore(ctrl)
	store.EXPECT().MovieIDsIn(gomock.Any(), int64(7), []int64{2, 3}).Return(nil, nil)

	s := newEngine(t, store, nil, nil)

	insights, err := s.UserCollectionInsights(context.Background(), 7, []int64{2, 3}, catalog.InsightsOptions{})
	require.NoError(t, err)
	assert.Zero(t, insights.TotalMovies)
}
