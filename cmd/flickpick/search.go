package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <query>...",
	Short: "Search the catalog",
	Long: `Search the catalog for movies, people or keywords.

Examples:
  flickpick search heat
  flickpick search --type person "michael mann"
  flickpick search --type keyword heist`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("type", "movie", "What to search: movie, person or keyword")
	searchCmd.Flags().Int("page", 0, "Result page")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	kind, _ := cmd.Flags().GetString("type")
	page, _ := cmd.Flags().GetInt("page")

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()
	opts := tmdb.Options{Page: page}

	switch kind {
	case "movie":
		result, err := a.engine.SearchMovies(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		printMoviePage(result)
	case "person":
		result, err := a.engine.SearchPeople(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(result)
			return nil
		}
		for i, p := range result.Results {
			fmt.Printf("%2d. %s (%s)  [id %d]\n", i+1, p.Name, p.KnownForDepartment, p.ID)
		}
	case "keyword":
		result, err := a.engine.SearchKeywords(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if jsonOutput {
			printJSON(result)
			return nil
		}
		for i, k := range result.Results {
			fmt.Printf("%2d. %s  [id %d]\n", i+1, k.Name, k.ID)
		}
	default:
		return fmt.Errorf("unknown search type %q", kind)
	}
	return nil
}
