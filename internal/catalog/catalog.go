// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a searchable SQLite snapshot of a story manifest.
// Each Replace rebuilds the snapshot from the manifest; nothing is merged
// across runs.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/storybook/pkg/types"
)

// defaultLimit bounds Search when the caller passes no limit.
const defaultLimit = 20

// Catalog is an open story snapshot database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stories (
			position INTEGER PRIMARY KEY,
			id INTEGER NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			image TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stories_id ON stories(id)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace swaps the catalog contents for stories in a single transaction.
// Manifest order is kept in the position column.
func (c *Catalog) Replace(ctx context.Context, stories []types.Story) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stories`); err != nil {
		return fmt.Errorf("clearing stories: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO stories (position, id, title, author, image, content) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range stories {
		if _, err := stmt.ExecContext(ctx, i, s.ID, s.Title, s.Author, s.Image, s.Content); err != nil {
			return fmt.Errorf("inserting story %d: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing stories: %w", err)
	}
	return nil
}

// All returns every story in manifest order.
func (c *Catalog) All(ctx context.Context) ([]types.Story, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, author, image, content FROM stories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying stories: %w", err)
	}
	return scanStories(rows)
}

// Search returns stories whose title, author, or content contains query,
// in manifest order. A limit of zero or less uses the default of 20.
func (c *Catalog) Search(ctx context.Context, query string, limit int) ([]types.Story, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	pattern := "%" + escapeLike(query) + "%"

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, author, image, content FROM stories
		WHERE title LIKE ? ESCAPE '\' OR author LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'
		ORDER BY position
		LIMIT ?`,
		pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching stories: %w", err)
	}
	return scanStories(rows)
}

func scanStories(rows *sql.Rows) ([]types.Story, error) {
	defer rows.Close()

	stories := []types.Story{}
	for rows.Next() {
		var s types.Story
		if err := rows.Scan(&s.ID, &s.Title, &s.Author, &s.Image, &s.Content); err != nil {
			return nil, fmt.Errorf("scanning story: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stories: %w", err)
	}
	return stories, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes query match literally inside a LIKE pattern.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
