package domain

import "time"

// SkipReason classifies why a fixture row was excluded by the parser. Skipped
// rows are expected, not exceptional; they are tallied for diagnostics only.
type SkipReason string

const (
	SkipNoOpponent    SkipReason = "no opponent"
	SkipNoDate        SkipReason = "no date"
	SkipBadDate       SkipReason = "bad date"
	SkipHasResult     SkipReason = "has result"
	SkipNoTime        SkipReason = "no time"
	SkipTimeTBD       SkipReason = "time is TBD"
	SkipNoLink        SkipReason = "no match link"
	SkipOutsidePeriod SkipReason = "outside period"
)

// SkipStats accumulates the parser's row accounting for one page.
type SkipStats struct {
	TotalRows int
	Retained  int
	Skipped   int
	Reasons   map[SkipReason]int
}

func NewSkipStats() SkipStats {
	return SkipStats{Reasons: make(map[SkipReason]int)}
}

func (s *SkipStats) Skip(reason SkipReason) {
	s.Skipped++
	s.Reasons[reason]++
}

// IngestStats holds per-run diagnostics for one ingestion. Observability
// output only, not part of the read contract.
type IngestStats struct {
	Month          int
	Year           int
	Rows           SkipStats
	Teams          int
	AssetsMissed   int
	EnrichFailures int
	Duration       time.Duration
}
