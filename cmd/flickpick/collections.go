package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage movie collections",
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create --user <id> <name>",
	Short: "Create a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		id, err := a.store.Create(cmd.Context(), userID, args[0])
		if err != nil {
			return fmt.Errorf("create collection: %w", err)
		}
		fmt.Printf("created collection %q [id %d]\n", args[0], id)
		return nil
	},
}

var collectionsListCmd = &cobra.Command{
	Use:   "list --user <id>",
	Short: "List a user's collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		cols, err := a.store.List(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("list collections: %w", err)
		}
		if jsonOutput {
			printJSON(cols)
			return nil
		}
		if len(cols) == 0 {
			fmt.Println("No collections")
			return nil
		}
		for _, c := range cols {
			fmt.Printf("%3d  %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var collectionsAddCmd = &cobra.Command{
	Use:   "add --user <id> <collection-id> <movie-id>",
	Short: "Add a movie to a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return collectionMovieOp(cmd, args, "add")
	},
}

var collectionsRemoveCmd = &cobra.Command{
	Use:   "remove --user <id> <collection-id> <movie-id>",
	Short: "Remove a movie from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return collectionMovieOp(cmd, args, "remove")
	},
}

func collectionMovieOp(cmd *cobra.Command, args []string, op string) error {
	userID, _ := cmd.Flags().GetInt64("user")
	collectionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("bad collection id %q", args[0])
	}
	movieID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad movie id %q", args[1])
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	if op == "add" {
		err = a.store.AddMovie(cmd.Context(), userID, collectionID, movieID)
	} else {
		err = a.store.RemoveMovie(cmd.Context(), userID, collectionID, movieID)
	}
	if err != nil {
		return fmt.Errorf("%s movie: %w", op, err)
	}
	fmt.Printf("movie %d %s collection %d\n", movieID, map[string]string{"add": "added to", "remove": "removed from"}[op], collectionID)
	return nil
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(collectionsCreateCmd, collectionsListCmd, collectionsAddCmd, collectionsRemoveCmd)
	for _, cmd := range []*cobra.Command{collectionsCreateCmd, collectionsListCmd, collectionsAddCmd, collectionsRemoveCmd} {
		cmd.Flags().Int64("user", 0, "User id")
		_ = cmd.MarkFlagRequired("user")
	}
}
