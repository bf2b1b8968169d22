package domain

import "time"

// Sentinel values carried over the wire. An empty icon field means the asset
// could not be resolved and the client renders without an image.
const (
	ResultUnplayed = "-"
	TimeTBD        = "TBD"
	VenueTBD       = "TBD"
)

// Ground describes which side of the fixture the tracked club plays on.
type Ground int

const (
	GroundHome Ground = iota
	GroundAway
	GroundNeutral
)

// MatchRecord is one normalized fixture as served by the read API. Records are
// created during ingestion and immutable once cached; a re-ingestion replaces
// the whole month entry rather than updating records in place.
type MatchRecord struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	TeamIcon   string `json:"teamIcon"`
	Result     string `json:"result"`
	LeagueName string `json:"leagueName"`
	LeagueIcon string `json:"leagueIcon"`
	Stadium    string `json:"stadium"`
	Jornada    string `json:"jornada"`
}

// TeamEntity identifies a team seen during one ingestion run. Unique by name;
// the first-seen crest wins, later duplicates are discarded.
type TeamEntity struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// RawMatch is the parser's output for one retained fixture row, before asset
// resolution and venue enrichment.
type RawMatch struct {
	Date          string
	Time          string
	Ground        Ground
	Opponent      string
	OpponentCrest string
	LeagueName    string
	LeagueIcon    string
	Jornada       string
	DetailURL     string
	KickoffAt     time.Time
}

// FixturePage is everything extracted from one fixtures-listing page.
type FixturePage struct {
	Matches   []RawMatch
	ClubCrest string
	Stats     SkipStats
}
