// sqlite_store.go holds the SQLite page table the search service scans.
//
// This is the only file that imports the SQLite driver. Searches only read;
// ingest replaces a file's pages inside one transaction so a concurrent scan
// sees either the old or the new pages of that file.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"iter"

	// Register sqlite driver
	_ "modernc.org/sqlite"

	"github.com/gcbaptista/pdf-phrase-search/model"
	"github.com/gcbaptista/pdf-phrase-search/services"
)

const schema = `
CREATE TABLE IF NOT EXISTS pages (
	file    TEXT    NOT NULL,
	page    INTEGER NOT NULL,
	content TEXT    NOT NULL,
	PRIMARY KEY (file, page)
);`

// SQLiteStore implements PageSource and PageWriter over a pages table.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ services.PageSource = (*SQLiteStore)(nil)
	_ services.PageWriter = (*SQLiteStore)(nil)
)

// Open opens the SQLite database file at path. The caller should call Close
// on the returned store.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// WAL lets searches keep reading while an ingest run writes.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Init creates the pages table if it doesn't exist.
func (s *SQLiteStore) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Pages yields every stored page in insertion (rowid) order. Each call opens
// its own cursor, closed when iteration ends.
func (s *SQLiteStore) Pages(ctx context.Context) iter.Seq2[model.Page, error] {
	return func(yield func(model.Page, error) bool) {
		rows, err := s.db.QueryContext(ctx, `SELECT file, page, content FROM pages ORDER BY rowid`)
		if err != nil {
			yield(model.Page{}, fmt.Errorf("query pages: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var p model.Page
			if err := rows.Scan(&p.File, &p.Page, &p.Text); err != nil {
				yield(model.Page{}, fmt.Errorf("scan page: %w", err))
				return
			}
			if !yield(p, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(model.Page{}, fmt.Errorf("iterate pages: %w", err))
		}
	}
}

// WritePages replaces every stored page of file with pages in one transaction.
func (s *SQLiteStore) WritePages(ctx context.Context, file string, pages []model.Page) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pages WHERE file = ?`, file); err != nil {
		return fmt.Errorf("delete pages of %s: %w", file, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO pages (file, page, content) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pages {
		if _, err := stmt.ExecContext(ctx, file, p.Page, p.Text); err != nil {
			return fmt.Errorf("insert page %d of %s: %w", p.Page, file, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored pages and distinct files.
func (s *SQLiteStore) Count(ctx context.Context) (pages int, files int, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT file) FROM pages`).Scan(&pages, &files)
	if err != nil {
		return 0, 0, fmt.Errorf("count pages: %w", err)
	}
	return pages, files, nil
}
