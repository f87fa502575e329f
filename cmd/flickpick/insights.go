package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/internal/catalog"
)

var insightsCmd = &cobra.Command{
	Use:   "insights [flags] [movie-id]...",
	Short: "Aggregate statistics over a set of movies",
	Long: `Aggregate genre, keyword, cast and crew statistics over a set of
movies, given either explicit movie ids or a user's collections.

Examples:
  flickpick insights 550 680 807
  flickpick insights --user 1
  flickpick insights --user 1 --collections 2,3`,
	RunE: runInsightsCmd,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().Int64("user", 0, "Aggregate over this user's collections")
	insightsCmd.Flags().String("collections", "", "Collection ids, comma separated (with --user)")
	insightsCmd.Flags().Int("top", 0, "Top-N size for people lists")
}

func runInsightsCmd(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetInt64("user")
	topN, _ := cmd.Flags().GetInt("top")
	opts := catalog.InsightsOptions{TopPeople: topN}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	var insights *catalog.CollectionInsights
	if userID != 0 {
		raw, _ := cmd.Flags().GetString("collections")
		ids, err := parseIDList(raw)
		if err != nil {
			return fmt.Errorf("--collections: %w", err)
		}
		collectionIDs := make([]int64, len(ids))
		for i, id := range ids {
			collectionIDs[i] = int64(id)
		}
		insights, err = a.engine.UserCollectionInsights(ctx, userID, collectionIDs, opts)
		if err != nil {
			return fmt.Errorf("insights failed: %w", err)
		}
	} else {
		if len(args) == 0 {
			return fmt.Errorf("need movie ids or --user")
		}
		movieIDs := make([]int, len(args))
		for i, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("bad movie id %q", arg)
			}
			movieIDs[i] = id
		}
		insights = a.engine.CollectionInsights(ctx, movieIDs, opts)
	}

	if jsonOutput {
		printJSON(insights)
		return nil
	}

	fmt.Printf("%d movies\n", insights.TotalMovies)
	if insights.YearRange != nil {
		fmt.Printf("years %d-%d\n", insights.YearRange.Min, insights.YearRange.Max)
	}
	if insights.AverageRuntime != nil {
		fmt.Printf("average runtime %.0f min\n", *insights.AverageRuntime)
	}
	if insights.AverageVoteAverage != nil {
		fmt.Printf("average rating %.1f\n", *insights.AverageVoteAverage)
	}
	printCounts := func(label string, counts []catalog.InsightCount) {
		if len(counts) == 0 {
			return
		}
		fmt.Println(label + ":")
		for _, c := range counts {
			fmt.Printf("  %3d  %s\n", c.Count, c.Name)
		}
	}
	printCounts("genres", insights.Genres)
	printCounts("keywords", insights.TopKeywords)
	printCounts("actors", insights.TopActors)
	printCounts("crew", insights.TopCrew)
	return nil
}
