package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/pkg/tmdb"
)

var lists = map[string]tmdb.List{
	"trending":    tmdb.ListTrending,
	"now-playing": tmdb.ListNowPlaying,
	"popular":     tmdb.ListPopular,
	"top-rated":   tmdb.ListTopRated,
	"upcoming":    tmdb.ListUpcoming,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random movie",
	Long: `Pick a random movie from a source list.

Examples:
  flickpick random
  flickpick random --from top-rated`,
	RunE: runRandomCmd,
}

var randomActorCmd = &cobra.Command{
	Use:   "random-actor",
	Short: "Pick a random actor from a random movie",
	RunE:  runRandomActorCmd,
}

var randomPersonCmd = &cobra.Command{
	Use:   "random-person",
	Short: "Pick a random popular person",
	RunE:  runRandomPersonCmd,
}

func init() {
	rootCmd.AddCommand(randomCmd, randomActorCmd, randomPersonCmd)
	randomCmd.Flags().String("from", "popular", "Source list: trending, now-playing, popular, top-rated, upcoming")
	randomActorCmd.Flags().String("from", "popular", "Source list for the movie pick")
}

func sourceList(cmd *cobra.Command) (tmdb.List, error) {
	name, _ := cmd.Flags().GetString("from")
	list, ok := lists[name]
	if !ok {
		return "", fmt.Errorf("unknown list %q", name)
	}
	return list, nil
}

func runRandomCmd(cmd *cobra.Command, args []string) error {
	list, err := sourceList(cmd)
	if err != nil {
		return err
	}
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	movie, err := a.engine.RandomMovieFromList(cmd.Context(), list)
	if err != nil {
		return fmt.Errorf("random pick failed: %w", err)
	}
	printMovieItem(movie)
	return nil
}

func runRandomActorCmd(cmd *cobra.Command, args []string) error {
	list, err := sourceList(cmd)
	if err != nil {
		return err
	}
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	actor, err := a.engine.RandomActorFromList(cmd.Context(), list)
	if err != nil {
		return fmt.Errorf("random actor failed: %w", err)
	}
	if jsonOutput {
		printJSON(actor)
		return nil
	}
	fmt.Printf("%s as %s  [id %d]\n", actor.Name, actor.Character, actor.ID)
	return nil
}

func runRandomPersonCmd(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	person, err := a.engine.RandomPerson(cmd.Context())
	if err != nil {
		return fmt.Errorf("random person failed: %w", err)
	}
	if jsonOutput {
		printJSON(person)
		return nil
	}
	fmt.Printf("%s (%s)  [id %d]\n", person.Name, person.KnownForDepartment, person.ID)
	return nil
}
