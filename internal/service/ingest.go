package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/tehchosen1/sporting-calendar/internal/assets"
	"github.com/tehchosen1/sporting-calendar/internal/config"
	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// ErrInvalidPeriod is returned for month/year values outside the calendar.
var ErrInvalidPeriod = errors.New("invalid period")

// IngestService coordinates the fixture pipeline: cache lookup, page fetch
// and parse, per-record venue enrichment and asset resolution, and the final
// chronological ordering served to callers.
type IngestService struct {
	source   FixtureSource
	resolver AssetResolver
	store    FixtureStore
	club     config.ClubConfig
	logger   *slog.Logger
}

func NewIngestService(
	source FixtureSource,
	resolver AssetResolver,
	store FixtureStore,
	club config.ClubConfig,
	logger *slog.Logger,
) *IngestService {
	return &IngestService{
		source:   source,
		resolver: resolver,
		store:    store,
		club:     club,
		logger:   logger.With("source", source.ID()),
	}
}

// Fixtures returns the cached ingestion result for the period, ingesting and
// persisting it first on a cache miss. Concurrent misses for the same period
// may both ingest; the store's upsert is last-write-wins, which converges
// because ingestion output per period is idempotent in effect.
func (s *IngestService) Fixtures(ctx context.Context, month, year int) ([]domain.MatchRecord, error) {
	if month < 1 || month > 12 || year < 1900 || year > 2200 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidPeriod, month, year)
	}
	period := domain.Period(month, year)

	cached, ok, err := s.store.Get(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("read fixture cache: %w", err)
	}
	if ok {
		s.logger.Debug("cache hit", "period", period.Format("2006-01"), "matches", len(cached))
		return cached, nil
	}

	matches, err := s.ingest(ctx, month, year)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, period, matches); err != nil {
		return nil, fmt.Errorf("save fixture cache: %w", err)
	}
	return matches, nil
}

// HasAsset reports whether any cached record references the given filename.
func (s *IngestService) HasAsset(ctx context.Context, filename string) (bool, error) {
	return s.store.HasAsset(ctx, filename)
}

func (s *IngestService) ingest(ctx context.Context, month, year int) ([]domain.MatchRecord, error) {
	startTime := time.Now()
	stats := domain.IngestStats{Month: month, Year: year}

	page, err := s.source.FetchFixtures(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	stats.Rows = page.Stats

	// The tracked club is seeded first; opponents dedupe by name with the
	// first-seen crest winning.
	teamIcons := map[string]string{}
	teams := []domain.TeamEntity{{Name: s.club.Name, Logo: s.resolveAsset(ctx, page.ClubCrest, s.club.Name, assets.KindTeam, &stats)}}
	teamIcons[s.club.Name] = teams[0].Logo

	matches := make([]domain.MatchRecord, 0, len(page.Matches))
	for i := range page.Matches {
		raw := &page.Matches[i]

		icon, seen := teamIcons[raw.Opponent]
		if !seen {
			icon = s.resolveAsset(ctx, raw.OpponentCrest, raw.Opponent, assets.KindTeam, &stats)
			teamIcons[raw.Opponent] = icon
			teams = append(teams, domain.TeamEntity{Name: raw.Opponent, Logo: icon})
		}

		venue, err := s.source.Venue(ctx, raw)
		if err != nil {
			stats.EnrichFailures++
			s.logger.Warn("venue enrichment failed",
				"opponent", raw.Opponent,
				"detail_url", raw.DetailURL,
				"error", err,
			)
		}

		leagueIcon := s.resolveAsset(ctx, raw.LeagueIcon, raw.LeagueName, assets.KindLeague, &stats)

		homeTeam, awayTeam := raw.Opponent, s.club.Name
		if raw.Ground == domain.GroundHome {
			homeTeam, awayTeam = s.club.Name, raw.Opponent
		}

		matches = append(matches, domain.MatchRecord{
			Date:       raw.Date,
			Time:       raw.Time,
			HomeTeam:   homeTeam,
			AwayTeam:   awayTeam,
			TeamIcon:   icon,
			Result:     domain.ResultUnplayed,
			LeagueName: raw.LeagueName,
			LeagueIcon: leagueIcon,
			Stadium:    venue,
			Jornada:    raw.Jornada,
		})
	}

	// Single authoritative ordering guarantee: ascending by date then time.
	kickoffs := make([]time.Time, len(matches))
	for i := range page.Matches {
		kickoffs[i] = page.Matches[i].KickoffAt
	}
	sortByKickoff(matches, kickoffs)

	stats.Teams = len(teams)
	stats.Duration = time.Since(startTime)
	s.logger.Info("ingestion completed",
		"period", fmt.Sprintf("%04d-%02d", year, month),
		"rows_total", stats.Rows.TotalRows,
		"rows_retained", stats.Rows.Retained,
		"rows_skipped", stats.Rows.Skipped,
		"skip_reasons", stats.Rows.Reasons,
		"teams", stats.Teams,
		"assets_missed", stats.AssetsMissed,
		"enrich_failures", stats.EnrichFailures,
		"duration", stats.Duration,
	)

	return matches, nil
}

// sortByKickoff orders records ascending by kickoff instant, keeping the
// parser's document order for equal kickoffs.
func sortByKickoff(matches []domain.MatchRecord, kickoffs []time.Time) {
	idx := make([]int, len(matches))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return kickoffs[idx[a]].Before(kickoffs[idx[b]])
	})
	sorted := make([]domain.MatchRecord, len(matches))
	for i, j := range idx {
		sorted[i] = matches[j]
	}
	copy(matches, sorted)
}

// resolveAsset resolves one crest or badge, degrading to the missing-asset
// marker (empty reference) when every tier fails.
func (s *IngestService) resolveAsset(ctx context.Context, remoteURL, name string, kind assets.Kind, stats *domain.IngestStats) string {
	filename, err := s.resolver.Resolve(ctx, remoteURL, name, kind)
	if err != nil {
		stats.AssetsMissed++
		s.logger.Warn("asset unresolved", "name", name, "url", remoteURL, "error", err)
		return ""
	}
	return filename
}
