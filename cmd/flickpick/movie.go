package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie <id | title>...",
	Short: "Show a movie with its trailers and credits",
	Long: `Show a movie with its trailers and credits.

Examples:
  flickpick movie 550
  flickpick movie The Matrix`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMovieCmd,
}

func init() {
	rootCmd.AddCommand(movieCmd)
}

func runMovieCmd(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()
	ctx := cmd.Context()

	id, err := strconv.Atoi(args[0])
	if err != nil {
		// Not numeric: treat the args as a title.
		title := strings.Join(args, " ")
		match, err := a.engine.FindMovieByTitle(ctx, title)
		if err != nil {
			return fmt.Errorf("find %q: %w", title, err)
		}
		id = match.ID
	}

	movie, err := a.engine.GetMovie(ctx, id)
	if err != nil {
		return fmt.Errorf("get movie %d: %w", id, err)
	}

	if jsonOutput {
		printJSON(movie)
		return nil
	}

	fmt.Printf("%s (%d)\n", movie.Title, movie.Year())
	if movie.Tagline != "" {
		fmt.Println(movie.Tagline)
	}
	fmt.Printf("rating %.1f (%d votes), %d min\n", movie.VoteAverage, movie.VoteCount, movie.Runtime)
	if len(movie.Genres) > 0 {
		names := make([]string, len(movie.Genres))
		for i, g := range movie.Genres {
			names[i] = g.Name
		}
		fmt.Println("genres:", strings.Join(names, ", "))
	}
	if movie.Overview != "" {
		fmt.Println()
		fmt.Println(movie.Overview)
	}
	for _, v := range movie.Videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			fmt.Printf("trailer: https://youtu.be/%s\n", v.Key)
			break
		}
	}
	if len(movie.Cast) > 0 {
		fmt.Println()
		for i, c := range movie.Cast {
			if i == 5 {
				break
			}
			fmt.Printf("  %s as %s\n", c.Name, c.Character)
		}
	}
	return nil
}
