package catalog

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

// InsightCount is one entity's frequency across a collection.
type InsightCount struct {
	ID    int
	Name  string
	Count int
}

// CollectionInsights is the aggregate statistics computed over the movies in
// a collection. Derived data, recomputed per request.
type CollectionInsights struct {
	TotalMovies        int
	Genres             []InsightCount // all genres, most frequent first
	TopKeywords        []InsightCount
	TopActors          []InsightCount
	TopCrew            []InsightCount
	YearRange          *IntRange
	AverageRuntime     *float64
	AverageVoteAverage *float64
}

// InsightsOptions sizes the top-N lists. Zero values take the defaults.
type InsightsOptions struct {
	TopPeople   int // default 10
	TopKeywords int // default 20
}

// Crew roles counted by the aggregator.
var insightsCrewJobs = map[string]bool{
	"Director":   true,
	"Writer":     true,
	"Screenplay": true,
	"Story":      true,
	"Producer":   true,
}

// movieFacts is everything the aggregator needs from one movie. A movie with
// any failed sub-fetch is skipped whole; no partial-entity aggregation.
type movieFacts struct {
	ok       bool
	genres   []tmdb.Genre
	keywords []tmdb.Keyword
	cast     []tmdb.CastMember
	crew     []tmdb.CrewMember
	year     int
	runtime  int
	rating   float64
}

// CollectionInsights aggregates genre, keyword, cast and crew frequencies
// plus year/runtime/rating summaries over the given movies. Fetches run in
// batches of ten, concurrent within a batch. This is a reporting feature and
// fails soft: fetch failures skip the movie, and an empty or fully-failed
// collection yields an all-empty result.
func (s *Service) CollectionInsights(ctx context.Context, movieIDs []int, opts InsightsOptions) *CollectionInsights {
	if opts.TopPeople == 0 {
		opts.TopPeople = 10
	}
	if opts.TopKeywords == 0 {
		opts.TopKeywords = 20
	}

	facts := make([]movieFacts, len(movieIDs))
	for start := 0; start < len(movieIDs); start += s.insightsBatch {
		end := min(start+s.insightsBatch, len(movieIDs))

		p := pool.New().WithMaxGoroutines(end - start)
		for i := start; i < end; i++ {
			p.Go(func() {
				facts[i] = s.movieFacts(ctx, movieIDs[i])
			})
		}
		p.Wait()
	}

	genres := make(map[int]*InsightCount)
	keywords := make(map[int]*InsightCount)
	actors := make(map[int]*InsightCount)
	crew := make(map[int]*InsightCount)

	insights := &CollectionInsights{}
	var runtimeSum, runtimeN, ratingN int
	var ratingSum float64

	for _, f := range facts {
		if !f.ok {
			continue
		}
		insights.TotalMovies++

		for _, g := range f.genres {
			bump(genres, g.ID, g.Name)
		}
		for _, k := range f.keywords {
			bump(keywords, k.ID, k.Name)
		}
		for _, c := range f.cast {
			bump(actors, c.ID, c.Name)
		}
		for _, c := range f.crew {
			if insightsCrewJobs[c.Job] || crewDepartments[c.Department] {
				bump(crew, c.ID, c.Name)
			}
		}

		if f.year > 0 {
			if insights.YearRange == nil {
				insights.YearRange = &IntRange{Min: f.year, Max: f.year}
			} else {
				insights.YearRange.Min = min(insights.YearRange.Min, f.year)
				insights.YearRange.Max = max(insights.YearRange.Max, f.year)
			}
		}
		if f.runtime > 0 {
			runtimeSum += f.runtime
			runtimeN++
		}
		if f.rating > 0 {
			ratingSum += f.rating
			ratingN++
		}
	}

	insights.Genres = rankCounts(genres, 0)
	insights.TopKeywords = rankCounts(keywords, opts.TopKeywords)
	insights.TopActors = rankCounts(actors, opts.TopPeople)
	insights.TopCrew = rankCounts(crew, opts.TopPeople)

	if runtimeN > 0 {
		avg := float64(runtimeSum) / float64(runtimeN)
		insights.AverageRuntime = &avg
	}
	if ratingN > 0 {
		avg := ratingSum / float64(ratingN)
		insights.AverageVoteAverage = &avg
	}
	return insights
}

// UserCollectionInsights resolves the user's collections to movie ids and
// aggregates over them. An empty collectionIDs list means every collection
// the user owns.
func (s *Service) UserCollectionInsights(ctx context.Context, userID int64, collectionIDs []int64, opts InsightsOptions) (*CollectionInsights, error) {
	var (
		ids []int
		err error
	)
	if len(collectionIDs) == 0 {
		ids, err = s.store.AllMovieIDs(ctx, userID)
	} else {
		ids, err = s.store.MovieIDsIn(ctx, userID, collectionIDs)
	}
	if err != nil {
		return nil, err
	}
	return s.CollectionInsights(ctx, ids, opts), nil
}

func (s *Service) movieFacts(ctx context.Context, id int) movieFacts {
	detail, err := s.movieDetails(ctx, id)
	if err != nil {
		s.debug("insights: detail fetch failed, skipping movie", "movie_id", id, "error", err)
		return movieFacts{}
	}
	credits, err := s.movieCredits(ctx, id)
	if err != nil {
		s.debug("insights: credits fetch failed, skipping movie", "movie_id", id, "error", err)
		return movieFacts{}
	}
	keywords, err := s.MovieKeywords(ctx, id)
	if err != nil {
		s.debug("insights: keywords fetch failed, skipping movie", "movie_id", id, "error", err)
		return movieFacts{}
	}
	return movieFacts{
		ok:       true,
		genres:   detail.Genres,
		keywords: keywords,
		cast:     credits.Cast,
		crew:     credits.Crew,
		year:     detail.Year(),
		runtime:  detail.Runtime,
		rating:   detail.VoteAverage,
	}
}

func bump(counts map[int]*InsightCount, id int, name string) {
	if c, ok := counts[id]; ok {
		c.Count++
		return
	}
	counts[id] = &InsightCount{ID: id, Name: name, Count: 1}
}

// rankCounts sorts by count descending with id ascending on ties, so equal
// inputs always produce identical orderings. A limit of 0 keeps everything.
func rankCounts(counts map[int]*InsightCount, limit int) []InsightCount {
	out := make([]InsightCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
