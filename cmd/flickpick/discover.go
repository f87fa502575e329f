package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/internal/catalog"
	"github.com/vmunix/flickpick/pkg/tmdb"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [flags]",
	Short: "Discover movies by structured filters",
	Long: `Discover movies by structured filters.

Examples:
  flickpick discover --genres 28,12 --years 2015-2020
  flickpick discover --cast 6193 --min-rating 7
  flickpick discover --keywords 10051 --runtime 90-120`,
	RunE: runDiscoverCmd,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().String("genres", "", "Genre ids, comma separated (AND)")
	discoverCmd.Flags().String("exclude-genres", "", "Genre ids to exclude")
	discoverCmd.Flags().String("cast", "", "Cast person ids")
	discoverCmd.Flags().String("crew", "", "Crew person ids")
	discoverCmd.Flags().String("keywords", "", "Keyword ids")
	discoverCmd.Flags().String("years", "", "Release year range, e.g. 2010-2020")
	discoverCmd.Flags().String("runtime", "", "Runtime range in minutes, e.g. 90-120")
	discoverCmd.Flags().Float64("min-rating", 0, "Minimum vote average")
	discoverCmd.Flags().Int("min-votes", 0, "Minimum vote count")
	discoverCmd.Flags().String("countries", "", "Origin countries, comma separated")
	discoverCmd.Flags().String("providers", "", "Watch provider ids")
	discoverCmd.Flags().Int("page", 0, "Result page")
}

func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	page, _ := cmd.Flags().GetInt("page")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := a.engine.DiscoverMovies(cmd.Context(), *criteria, tmdb.Options{Page: page})
	if err != nil {
		return fmt.Errorf("discover failed: %w", err)
	}
	printMoviePage(result)
	return nil
}

func criteriaFromFlags(cmd *cobra.Command) (*catalog.DiscoverCriteria, error) {
	var c catalog.DiscoverCriteria
	var err error

	idFlags := []struct {
		name string
		dst  *[]int
	}{
		{"genres", &c.Genres},
		{"exclude-genres", &c.ExcludeGenres},
		{"cast", &c.CastIDs},
		{"crew", &c.CrewIDs},
		{"keywords", &c.KeywordIDs},
	}
	for _, f := range idFlags {
		raw, _ := cmd.Flags().GetString(f.name)
		if *f.dst, err = parseIDList(raw); err != nil {
			return nil, fmt.Errorf("--%s: %w", f.name, err)
		}
	}

	years, _ := cmd.Flags().GetString("years")
	if c.YearRange, err = parseIntRange(years); err != nil {
		return nil, fmt.Errorf("--years: %w", err)
	}
	runtime, _ := cmd.Flags().GetString("runtime")
	if c.RuntimeRange, err = parseIntRange(runtime); err != nil {
		return nil, fmt.Errorf("--runtime: %w", err)
	}

	c.MinVoteAverage, _ = cmd.Flags().GetFloat64("min-rating")
	c.MinVoteCount, _ = cmd.Flags().GetInt("min-votes")

	countries, _ := cmd.Flags().GetString("countries")
	if countries != "" {
		c.OriginCountries = splitTrimmed(countries)
	}
	c.WatchProviders, _ = cmd.Flags().GetString("providers")

	return &c, nil
}
