package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vmunix/flickpick/internal/catalog"
	"github.com/vmunix/flickpick/pkg/tmdb"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printMovieItem(m *tmdb.MovieListItem) {
	if jsonOutput {
		printJSON(m)
		return
	}
	fmt.Printf("%s (%d)  rating %.1f  [id %d]\n", m.Title, m.Year(), m.VoteAverage, m.ID)
	if m.Overview != "" {
		fmt.Println(m.Overview)
	}
}

func printMoviePage(page *tmdb.MoviePage) {
	if jsonOutput {
		printJSON(page)
		return
	}
	if len(page.Results) == 0 {
		fmt.Println("No results")
		return
	}
	for i, m := range page.Results {
		fmt.Printf("%2d. %s (%d)  rating %.1f  [id %d]\n", i+1, m.Title, m.Year(), m.VoteAverage, m.ID)
	}
	fmt.Printf("page %d of %d (%d results)\n", page.Page, page.TotalPages, page.TotalResults)
}

// parseIDList parses "28,12" into []int.
func parseIDList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseIntRange parses "2010-2020" into an inclusive range.
func parseIntRange(s string) (*catalog.IntRange, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("bad range %q, want MIN-MAX", s)
	}
	minV, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return nil, fmt.Errorf("bad range %q: %w", s, err)
	}
	maxV, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return nil, fmt.Errorf("bad range %q: %w", s, err)
	}
	return &catalog.IntRange{Min: minV, Max: maxV}, nil
}
