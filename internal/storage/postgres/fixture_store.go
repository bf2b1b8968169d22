package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// FixtureStore persists one ingestion result per month as a jsonb document,
// keyed by the first day of the period. Writes are last-write-wins upserts;
// entries are replaced wholesale, never patched.
type FixtureStore struct {
	db *sqlx.DB
}

func NewFixtureStore(db *sqlx.DB) *FixtureStore {
	return &FixtureStore{db: db}
}

func (s *FixtureStore) Get(ctx context.Context, period time.Time) ([]domain.MatchRecord, bool, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw,
		`SELECT data FROM fixture_months WHERE period = $1`, period)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var matches []domain.MatchRecord
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, false, fmt.Errorf("decode cached fixtures: %w", err)
	}
	if matches == nil {
		matches = []domain.MatchRecord{}
	}
	return matches, true, nil
}

func (s *FixtureStore) Save(ctx context.Context, period time.Time, matches []domain.MatchRecord) error {
	if matches == nil {
		matches = []domain.MatchRecord{}
	}
	data, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("encode fixtures: %w", err)
	}

	query := `
		INSERT INTO fixture_months (period, data)
		VALUES ($1, $2)
		ON CONFLICT (period) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = now()`

	_, err = s.db.ExecContext(ctx, query, period, data)
	return err
}

// HasAsset reports whether any cached record references the filename in its
// teamIcon or leagueIcon field. Used by the images endpoint to decide whether
// a missing file is worth re-resolving.
func (s *FixtureStore) HasAsset(ctx context.Context, filename string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM fixture_months, jsonb_array_elements(data) AS m
			WHERE m->>'teamIcon' = $1 OR m->>'leagueIcon' = $1
		)`

	var found bool
	err := s.db.GetContext(ctx, &found, query, filename)
	return found, err
}
