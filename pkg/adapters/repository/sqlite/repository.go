package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/ito/pkg/core/domain"
	"github.com/wadjakorntonsri/ito/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

type SQLiteRepository struct {
	db *sql.DB
}

// Open returns a bounded connection pool for dbURL. Remote libsql URLs use the
// Turso driver, everything else is a local SQLite database.
func Open(dbURL string, maxOpenConns int) (*sql.DB, error) {
	driverName, dsn := "sqlite", dbURL
	if isRemote(dbURL) {
		driverName = "libsql"
	} else {
		var err error
		if dsn, err = localDSN(dbURL); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxOpenConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func isRemote(dbURL string) bool {
	for _, prefix := range []string{"libsql://", "wss://", "https://"} {
		if strings.HasPrefix(dbURL, prefix) {
			return true
		}
	}
	return false
}

func isMemory(dbURL string) bool {
	return dbURL == ":memory:" || strings.Contains(dbURL, "mode=memory")
}

// localDSN creates the parent directory of a file database and appends the
// pragmas every connection in the pool needs.
func localDSN(dbURL string) (string, error) {
	if isMemory(dbURL) {
		return dbURL, nil
	}

	path := strings.TrimPrefix(dbURL, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create database directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(dbURL, "?") {
		sep = "&"
	}
	return dbURL + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
}

// NewSQLiteRepository wraps an open pool and creates the schema if needed
func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &SQLiteRepository{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		alias TEXT NOT NULL,
		target_url TEXT NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_links_alias ON links (alias);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, alias, target_url FROM links ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.Alias, &l.TargetURL); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over links: %w", err)
	}
	return links, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, alias, targetURL string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO links (alias, target_url) VALUES (?, ?) RETURNING id`,
		alias, targetURL,
	).Scan(&id)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, domain.ErrDuplicateAlias
		}
		return 0, fmt.Errorf("failed to insert link: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) FindByAlias(ctx context.Context, alias string) (*domain.Link, error) {
	var link domain.Link
	err := r.db.QueryRowContext(ctx,
		`SELECT id, alias, target_url FROM links WHERE alias = ?`,
		alias,
	).Scan(&link.ID, &link.Alias, &link.TargetURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch link: %w", err)
	}
	return &link, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Ensure interface compliance
var _ ports.LinkRepository = (*SQLiteRepository)(nil)
