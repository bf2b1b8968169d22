package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/tehchosen1/sporting-calendar/internal/assets"
	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// FixtureSource fetches and parses the remote fixture listing and provides
// per-match venue enrichment.
type FixtureSource interface {
	ID() string
	FetchFixtures(ctx context.Context, month, year int) (*domain.FixturePage, error)
	Venue(ctx context.Context, raw *domain.RawMatch) (string, error)
}

// AssetResolver materializes remote crest/badge URLs as local files with
// deterministic names.
type AssetResolver interface {
	Resolve(ctx context.Context, remoteURL, canonicalName string, kind assets.Kind) (string, error)
}

// FixtureStore persists one ingestion result per month/year period.
type FixtureStore interface {
	Get(ctx context.Context, period time.Time) ([]domain.MatchRecord, bool, error)
	Save(ctx context.Context, period time.Time, matches []domain.MatchRecord) error
	HasAsset(ctx context.Context, filename string) (bool, error)
}
