package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// IntRange is an inclusive [Min, Max] bound.
type IntRange struct {
	Min, Max int
}

// FloatRange is an inclusive [Min, Max] bound.
type FloatRange struct {
	Min, Max float64
}

// DiscoverCriteria is the union of every filterable discover dimension.
// All fields are optional; an all-empty criteria set yields an unfiltered
// query. Built fresh per query attempt, never mutated.
type DiscoverCriteria struct {
	Genres        []int
	ExcludeGenres []int

	CastIDs        []int
	ExcludeCastIDs []int
	CrewIDs        []int
	ExcludeCrewIDs []int

	KeywordIDs []int

	YearRange       *IntRange
	RuntimeRange    *IntRange
	PopularityRange *FloatRange

	MinVoteAverage float64
	MinVoteCount   int

	OriginCountries []string
	WatchProviders  string
}

// buildDiscoverParams translates criteria into upstream discover query
// parameters. Multi-value fields are comma-joined (AND semantics upstream).
// When useSingleValue is set, only the first element of each multi-value
// inclusion field is kept, a deliberate relaxation used by fallback search.
func buildDiscoverParams(c DiscoverCriteria, useSingleValue bool) url.Values {
	v := url.Values{}

	setIDs := func(key string, ids []int, single bool) {
		if len(ids) == 0 {
			return
		}
		if single {
			ids = ids[:1]
		}
		v.Set(key, joinIDs(ids))
	}

	setIDs("with_genres", c.Genres, useSingleValue)
	setIDs("without_genres", c.ExcludeGenres, false)
	setIDs("with_cast", c.CastIDs, useSingleValue)
	setIDs("without_cast", c.ExcludeCastIDs, false)
	setIDs("with_crew", c.CrewIDs, useSingleValue)
	setIDs("without_crew", c.ExcludeCrewIDs, false)
	setIDs("with_keywords", c.KeywordIDs, useSingleValue)

	if c.YearRange != nil {
		v.Set("primary_release_date.gte", fmt.Sprintf("%04d-01-01", c.YearRange.Min))
		v.Set("primary_release_date.lte", fmt.Sprintf("%04d-12-31", c.YearRange.Max))
	}
	if c.RuntimeRange != nil {
		v.Set("with_runtime.gte", strconv.Itoa(c.RuntimeRange.Min))
		v.Set("with_runtime.lte", strconv.Itoa(c.RuntimeRange.Max))
	}
	if c.PopularityRange != nil {
		v.Set("popularity.gte", formatFloat(c.PopularityRange.Min))
		v.Set("popularity.lte", formatFloat(c.PopularityRange.Max))
	}
	if c.MinVoteAverage > 0 {
		v.Set("vote_average.gte", formatFloat(c.MinVoteAverage))
	}
	if c.MinVoteCount > 0 {
		v.Set("vote_count.gte", strconv.Itoa(c.MinVoteCount))
	}
	if len(c.OriginCountries) > 0 {
		v.Set("with_origin_country", strings.Join(c.OriginCountries, ","))
	}
	if c.WatchProviders != "" {
		v.Set("with_watch_providers", c.WatchProviders)
	}

	return v
}

// shouldRelax reports whether a single-value fallback variant would differ
// from the full-criteria variant, i.e. whether any multi-value inclusion
// field holds more than one element.
func shouldRelax(c DiscoverCriteria) bool {
	return len(c.Genres) > 1 || len(c.CastIDs) > 1 || len(c.CrewIDs) > 1 || len(c.KeywordIDs) > 1
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
