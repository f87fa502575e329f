package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDiscoverParams(t *testing.T) {
	c := DiscoverCriteria{
		Genres:          []int{28, 12},
		ExcludeGenres:   []int{27},
		CastIDs:         []int{500},
		ExcludeCastIDs:  []int{4724},
		CrewIDs:         []int{525},
		KeywordIDs:      []int{9715, 4565},
		YearRange:       &IntRange{Min: 1990, Max: 1999},
		RuntimeRange:    &IntRange{Min: 80, Max: 150},
		PopularityRange: &FloatRange{Min: 10, Max: 500},
		MinVoteAverage:  7.5,
		MinVoteCount:    200,
		OriginCountries: []string{"US", "GB"},
		WatchProviders:  "8",
	}

	v := buildDiscoverParams(c, false)

	assert.Equal(t, "28,12", v.Get("with_genres"))
	assert.Equal(t, "27", v.Get("without_genres"))
	assert.Equal(t, "500", v.Get("with_cast"))
	assert.Equal(t, "4724", v.Get("without_cast"))
	assert.Equal(t, "525", v.Get("with_crew"))
	assert.Equal(t, "9715,4565", v.Get("with_keywords"))
	assert.Equal(t, "1990-01-01", v.Get("primary_release_date.gte"))
	assert.Equal(t, "1999-12-31", v.Get("primary_release_date.lte"))
	assert.Equal(t, "80", v.Get("with_runtime.gte"))
	assert.Equal(t, "150", v.Get("with_runtime.lte"))
	assert.Equal(t, "10", v.Get("popularity.gte"))
	assert.Equal(t, "500", v.Get("popularity.lte"))
	assert.Equal(t, "7.5", v.Get("vote_average.gte"))
	assert.Equal(t, "200", v.Get("vote_count.gte"))
	assert.Equal(t, "US,GB", v.Get("with_origin_country"))
	assert.Equal(t, "8", v.Get("with_watch_providers"))
}

func TestBuildDiscoverParams_Empty(t *testing.T) {
	v := buildDiscoverParams(DiscoverCriteria{}, false)
	assert.Empty(t, v, "empty criteria should build no parameters")
}

func TestBuildDiscoverParams_SingleValue(t *testing.T) {
	c := DiscoverCriteria{
		Genres:         []int{28, 12, 878},
		CastIDs:        []int{500, 1245},
		KeywordIDs:     []int{9715, 4565},
		ExcludeGenres:  []int{27, 99},
		ExcludeCastIDs: []int{4724, 5000},
	}

	v := buildDiscoverParams(c, true)

	assert.Equal(t, "28", v.Get("with_genres"), "inclusion reduced to first id")
	assert.Equal(t, "500", v.Get("with_cast"))
	assert.Equal(t, "9715", v.Get("with_keywords"))
	assert.Equal(t, "27,99", v.Get("without_genres"), "exclusions are never reduced")
	assert.Equal(t, "4724,5000", v.Get("without_cast"))
}

func TestShouldRelax(t *testing.T) {
	assert.False(t, shouldRelax(DiscoverCriteria{}))
	assert.False(t, shouldRelax(DiscoverCriteria{Genres: []int{28}}))
	assert.True(t, shouldRelax(DiscoverCriteria{Genres: []int{28, 12}}))
	assert.True(t, shouldRelax(DiscoverCriteria{CastIDs: []int{1, 2}}))
	assert.True(t, shouldRelax(DiscoverCriteria{KeywordIDs: []int{1, 2}}))
	assert.False(t, shouldRelax(DiscoverCriteria{ExcludeGenres: []int{27, 99}}),
		"exclusions don't trigger single-value relaxation")
}

func TestResolveMoods(t *testing.T) {
	ids := resolveMoods([]string{"romantic", "no-such-mood"})
	assert.Equal(t, moodKeywords["romantic"], ids, "unknown moods are dropped")

	assert.Nil(t, resolveMoods(nil))
}

func TestResolveEra(t *testing.T) {
	r := resolveEra("90s")
	assert.Equal(t, &IntRange{Min: 1990, Max: 1999}, r)

	assert.Nil(t, resolveEra("stone-age"))
}
