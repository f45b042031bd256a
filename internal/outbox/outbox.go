// Package outbox keeps digests that could not be delivered. A failed SMTP
// send must not throw the run's output away, so the rendered digest is
// recorded in a small sqlite database and exported as a browsable HTML file
// next to it.
package outbox

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"jobdigest/internal/digest"
)

type Store struct {
	db  *sql.DB
	dir string
}

// Open creates or opens <dir>/outbox.db and migrates it.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, "outbox.db")
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("outbox migrate: %w", err)
	}

	return &Store{db: db, dir: dir}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS digests (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  generated_at TEXT NOT NULL,
  subject TEXT NOT NULL,
  html TEXT NOT NULL,
  body_text TEXT NOT NULL,
  job_count INTEGER NOT NULL,
  delivery_error TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}
	return tx.Commit()
}

// Save records one undelivered digest and writes its HTML beside the
// database so the run's output can be opened directly. Returns the path of
// the exported file.
func (s *Store) Save(ctx context.Context, d *digest.Rendered, generatedAt time.Time, jobCount int, deliveryErr error) (string, error) {
	reason := ""
	if deliveryErr != nil {
		reason = deliveryErr.Error()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO digests (generated_at, subject, html, body_text, job_count, delivery_error, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		generatedAt.UTC().Format(time.RFC3339),
		d.Subject,
		d.HTML,
		d.Text,
		jobCount,
		reason,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("outbox insert: %w", err)
	}

	name := fmt.Sprintf("digest-%s.html", generatedAt.UTC().Format("20060102-150405"))
	path := filepath.Join(s.dir, name)
	if err := writeFileAtomic(path, []byte(d.HTML)); err != nil {
		return "", fmt.Errorf("outbox export: %w", err)
	}
	return path, nil
}

// Pending returns how many digests are waiting in the outbox.
func (s *Store) Pending(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM digests;`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("outbox count: %w", err)
	}
	return n, nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a half-exported digest behind.
func writeFileAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
