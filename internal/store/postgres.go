package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/akbarovs/uybaho/pkg/types"
)

// PostgresStore implements Store using pgxpool (connection-pooled
// PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool     *pgxpool.Pool
	maxSaved int
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// maxSaved caps the saved-properties list; values below 1 fall back to 10.
func NewPostgresStore(ctx context.Context, connString string, maxSaved int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if maxSaved < 1 {
		maxSaved = 10
	}

	return &PostgresStore{pool: pool, maxSaved: maxSaved}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveProperty inserts a saved property, enforcing the list cap inside a
// transaction so concurrent saves cannot overshoot it.
func (s *PostgresStore) SaveProperty(ctx context.Context, sp *domain.SavedProperty) error {
	listingJSON, err := json.Marshal(sp.Listing)
	if err != nil {
		return fmt.Errorf("marshaling listing: %w", err)
	}
	analysisJSON, err := json.Marshal(sp.Analysis)
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, queryLockSaved); err != nil {
		return fmt.Errorf("locking saved properties: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, queryCountSaved).Scan(&count); err != nil {
		return fmt.Errorf("counting saved properties: %w", err)
	}
	if count >= s.maxSaved {
		return ErrLimitReached
	}

	args := pgx.NamedArgs{
		"id":       sp.ID,
		"listing":  listingJSON,
		"analysis": analysisJSON,
	}
	if err := tx.QueryRow(ctx, queryInsertSaved, args).Scan(&sp.CreatedAt); err != nil {
		return fmt.Errorf("inserting saved property: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetSaved retrieves a saved property by id.
func (s *PostgresStore) GetSaved(ctx context.Context, id string) (*domain.SavedProperty, error) {
	sp := &domain.SavedProperty{}
	if err := scanSaved(s.pool.QueryRow(ctx, queryGetSaved, id), sp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying saved property: %w", err)
	}
	return sp, nil
}

// ListSaved returns all saved properties, newest first.
func (s *PostgresStore) ListSaved(ctx context.Context) ([]domain.SavedProperty, error) {
	rows, err := s.pool.Query(ctx, queryListSaved)
	if err != nil {
		return nil, fmt.Errorf("querying saved properties: %w", err)
	}
	defer rows.Close()

	var saved []domain.SavedProperty
	for rows.Next() {
		var sp domain.SavedProperty
		if err := scanSaved(rows, &sp); err != nil {
			return nil, fmt.Errorf("scanning saved property: %w", err)
		}
		saved = append(saved, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating saved properties: %w", err)
	}

	return saved, nil
}

// DeleteSaved removes a saved property by id.
func (s *PostgresStore) DeleteSaved(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteSaved, id)
	if err != nil {
		return fmt.Errorf("deleting saved property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountSaved returns the number of saved properties.
func (s *PostgresStore) CountSaved(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountSaved).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting saved properties: %w", err)
	}
	return count, nil
}

// DeleteOlderThan removes saved properties created before the cutoff.
func (s *PostgresStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteSavedOlderThan, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning saved properties: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSaved(row rowScanner, sp *domain.SavedProperty) error {
	var listingJSON, analysisJSON []byte
	if err := row.Scan(&sp.ID, &listingJSON, &analysisJSON, &sp.CreatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(listingJSON, &sp.Listing); err != nil {
		return fmt.Errorf("unmarshaling listing: %w", err)
	}
	if err := json.Unmarshal(analysisJSON, &sp.Analysis); err != nil {
		return fmt.Errorf("unmarshaling analysis: %w", err)
	}
	return nil
}
