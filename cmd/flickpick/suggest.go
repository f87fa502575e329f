package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/internal/catalog"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [flags]",
	Short: "Suggest a movie matching your preferences",
	Long: `Suggest a movie matching your preferences.

Filters relax step by step when nothing matches exactly: moods and
keywords go first, then crew, cast, extra genres, and era. Explicit
year ranges, runtime bounds, rating thresholds, and exclusions are
never relaxed. If nothing matches at all, suggest falls back to a
popular movie you haven't excluded; shuffle fails instead.

Examples:
  flickpick suggest --mood feel-good --genres 35
  flickpick suggest --era 90s --cast 6193 --min-rating 7
  flickpick shuffle --genres 27 --years 1978-1982`,
	RunE: runSuggestCmd,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [flags]",
	Short: "Like suggest, but fails when nothing matches",
	RunE:  runSuggestCmd,
}

func init() {
	rootCmd.AddCommand(suggestCmd, shuffleCmd)
	for _, cmd := range []*cobra.Command{suggestCmd, shuffleCmd} {
		cmd.Flags().StringSlice("mood", nil, "Moods: feel-good, romantic, dark, mind-bending, adrenaline, scary, epic, tearjerker")
		cmd.Flags().String("era", "", "Era: golden-age, 60s ... 2010s, modern")
		cmd.Flags().String("genres", "", "Genre ids, comma separated")
		cmd.Flags().String("cast", "", "Cast person ids")
		cmd.Flags().String("crew", "", "Crew person ids")
		cmd.Flags().String("keywords", "", "Keyword ids")
		cmd.Flags().String("years", "", "Strict release year range, e.g. 2010-2020")
		cmd.Flags().String("runtime", "", "Strict runtime range in minutes")
		cmd.Flags().Float64("min-rating", 0, "Strict minimum vote average")
		cmd.Flags().Int("min-votes", 0, "Strict minimum vote count")
		cmd.Flags().String("providers", "", "Strict watch provider ids")
		cmd.Flags().String("exclude-genres", "", "Genre ids to exclude")
		cmd.Flags().String("exclude", "", "Movie ids already seen")
		cmd.Flags().Int64("user", 0, "User id for collection filters")
		cmd.Flags().String("in-collections", "", "Only movies in these collection ids")
		cmd.Flags().Bool("unseen", false, "Only movies in none of the user's collections")
	}
}

func runSuggestCmd(cmd *cobra.Command, args []string) error {
	p, err := preferencesFromFlags(cmd)
	if err != nil {
		return err
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	var pick func() error
	ctx := cmd.Context()
	if cmd.Name() == "shuffle" {
		pick = func() error {
			movie, err := a.engine.ShuffleMovie(ctx, *p)
			if err != nil {
				return err
			}
			printMovieItem(movie)
			return nil
		}
	} else {
		pick = func() error {
			movie, err := a.engine.SuggestMovie(ctx, *p)
			if err != nil {
				return err
			}
			printMovieItem(movie)
			return nil
		}
	}

	if err := pick(); err != nil {
		if errors.Is(err, catalog.ErrNoResults) {
			fmt.Println("Nothing matches those preferences")
			return nil
		}
		return err
	}
	return nil
}

func preferencesFromFlags(cmd *cobra.Command) (*catalog.Preferences, error) {
	var p catalog.Preferences
	var err error

	p.Moods, _ = cmd.Flags().GetStringSlice("mood")
	p.Era, _ = cmd.Flags().GetString("era")

	idFlags := []struct {
		name string
		dst  *[]int
	}{
		{"genres", &p.Genres},
		{"cast", &p.CastIDs},
		{"crew", &p.CrewIDs},
		{"keywords", &p.KeywordIDs},
		{"exclude-genres", &p.ExcludeGenres},
		{"exclude", &p.ExcludeMovieIDs},
	}
	for _, f := range idFlags {
		raw, _ := cmd.Flags().GetString(f.name)
		if *f.dst, err = parseIDList(raw); err != nil {
			return nil, fmt.Errorf("--%s: %w", f.name, err)
		}
	}

	years, _ := cmd.Flags().GetString("years")
	if p.YearRange, err = parseIntRange(years); err != nil {
		return nil, fmt.Errorf("--years: %w", err)
	}
	runtime, _ := cmd.Flags().GetString("runtime")
	if p.RuntimeRange, err = parseIntRange(runtime); err != nil {
		return nil, fmt.Errorf("--runtime: %w", err)
	}
	p.MinVoteAverage, _ = cmd.Flags().GetFloat64("min-rating")
	p.MinVoteCount, _ = cmd.Flags().GetInt("min-votes")
	p.WatchProviders, _ = cmd.Flags().GetString("providers")

	p.UserID, _ = cmd.Flags().GetInt64("user")
	p.NotInAnyCollection, _ = cmd.Flags().GetBool("unseen")
	inCollections, _ := cmd.Flags().GetString("in-collections")
	if inCollections != "" {
		ids, err := parseIDList(inCollections)
		if err != nil {
			return nil, fmt.Errorf("--in-collections: %w", err)
		}
		for _, id := range ids {
			p.InCollections = append(p.InCollections, int64(id))
		}
	}
	if (len(p.InCollections) > 0 || p.NotInAnyCollection) && p.UserID == 0 {
		return nil, errors.New("collection filters need --user")
	}

	return &p, nil
}
