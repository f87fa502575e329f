// Package collections persists user movie collections and answers the
// set-membership queries the discovery engine filters by.
package collections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// ErrNotFound indicates the requested collection doesn't exist.
var ErrNotFound = errors.New("collection not found")

// Collection is one named movie collection owned by a user.
type Collection struct {
	ID     int64
	UserID int64
	Name   string
}

// Store provides access to collection data.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the collections database at path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create creates a collection for the user and returns its id.
func (s *Store) Create(ctx context.Context, userID int64, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO collections (user_id, name) VALUES (?, ?)", userID, name)
	if err != nil {
		return 0, fmt.Errorf("create collection: %w", err)
	}
	return res.LastInsertId()
}

// List returns every collection the user owns, in creation order.
func (s *Store) List(ctx context.Context, userID int64) ([]Collection, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name FROM collections WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var out []Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddMovie adds a movie to a collection the user owns. Adding a movie twice
// is a no-op.
func (s *Store) AddMovie(ctx context.Context, userID, collectionID int64, movieID int) error {
	if err := s.checkOwner(ctx, userID, collectionID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO collection_movies (collection_id, movie_id) VALUES (?, ?)",
		collectionID, movieID)
	if err != nil {
		return fmt.Errorf("add movie: %w", err)
	}
	return nil
}

// RemoveMovie removes a movie from a collection the user owns.
func (s *Store) RemoveMovie(ctx context.Context, userID, collectionID int64, movieID int) error {
	if err := s.checkOwner(ctx, userID, collectionID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM collection_movies WHERE collection_id = ? AND movie_id = ?",
		collectionID, movieID)
	if err != nil {
		return fmt.Errorf("remove movie: %w", err)
	}
	return nil
}

// MovieIDsIn returns the distinct movie ids in the given collections owned by
// the user.
func (s *Store) MovieIDsIn(ctx context.Context, userID int64, collectionIDs []int64) ([]int, error) {
	if len(collectionIDs) == 0 {
		return nil, nil
	}
	placeholders := strings.Repeat("?,", len(collectionIDs))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(collectionIDs)+1)
	args = append(args, userID)
	for _, id := range collectionIDs {
		args = append(args, id)
	}

	query := fmt.Sprintf(`SELECT DISTINCT cm.movie_id
		FROM collection_movies cm
		JOIN collections c ON c.id = cm.collection_id
		WHERE c.user_id = ? AND cm.collection_id IN (%s)
		ORDER BY cm.movie_id`, placeholders)

	return s.queryIDs(ctx, query, args...)
}

// AllMovieIDs returns the distinct movie ids across every collection the
// user owns.
func (s *Store) AllMovieIDs(ctx context.Context, userID int64) ([]int, error) {
	return s.queryIDs(ctx, `SELECT DISTINCT cm.movie_id
		FROM collection_movies cm
		JOIN collections c ON c.id = cm.collection_id
		WHERE c.user_id = ?
		ORDER BY cm.movie_id`, userID)
}

func (s *Store) queryIDs(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movie ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan movie id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) checkOwner(ctx context.Context, userID, collectionID int64) error {
	var owner int64
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id FROM collections WHERE id = ?", collectionID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && owner != userID) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("check collection owner: %w", err)
	}
	return nil
}
