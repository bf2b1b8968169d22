package zerozero

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// Fixture table cell positions on the listing page. TD 0 is an expander
// column and TD 5 an empty spacer, neither carries data.
const (
	cellDate     = 1
	cellTime     = 2
	cellLocation = 3
	cellOpponent = 4
	cellResult   = 6
	cellLeague   = 7
	cellJornada  = 8
)

// Parser extracts raw match rows from fixture-listing markup. It never
// fetches anything itself; callers hand it an already-built document, which
// is also what makes it testable from string fixtures.
type Parser struct {
	clubName     string
	siteBase     string
	cdnBase      string
	defaultCrest string
	logger       *slog.Logger
}

func NewParser(clubName, siteBase, cdnBase, defaultCrest string, logger *slog.Logger) *Parser {
	return &Parser{
		clubName:     clubName,
		siteBase:     siteBase,
		cdnBase:      cdnBase,
		defaultCrest: defaultCrest,
		logger:       logger.With("component", "parser"),
	}
}

// Parse walks the fixture rows and returns the retained raw matches for the
// requested month and year, in document order, together with skip accounting.
// A row is retained only when the opponent, date and detail link are present,
// the result is still the unplayed sentinel and the kickoff time is decided.
func (p *Parser) Parse(doc *goquery.Document, month, year int) *domain.FixturePage {
	page := &domain.FixturePage{
		ClubCrest: p.clubCrest(doc),
		Stats:     domain.NewSkipStats(),
	}

	doc.Find("tr.parent").Each(func(_ int, row *goquery.Selection) {
		page.Stats.TotalRows++
		tds := row.Find("td")

		date := text(tds.Eq(cellDate))
		kickoff := text(tds.Eq(cellTime))
		location := text(tds.Eq(cellLocation))

		opponentImg := tds.Eq(cellOpponent).Find("img").First()
		opponent := strings.TrimSpace(opponentImg.AttrOr("alt", ""))
		if opponent == "" {
			opponent = text(tds.Eq(cellOpponent).Find("a").First())
		}
		crest := p.crestURL(opponentImg.AttrOr("src", ""))

		resultCell := tds.Eq(cellResult)
		result := text(resultCell)
		detailLink := strings.TrimSpace(resultCell.Find("a").First().AttrOr("href", ""))

		leagueCell := tds.Eq(cellLeague)
		leagueName := text(leagueCell)
		leagueIcon := p.siteURL(leagueCell.Find("img").First().AttrOr("src", ""))

		jornada := text(tds.Eq(cellJornada))

		switch {
		case opponent == "":
			page.Stats.Skip(domain.SkipNoOpponent)
			return
		case date == "":
			page.Stats.Skip(domain.SkipNoDate)
			return
		case result != domain.ResultUnplayed:
			page.Stats.Skip(domain.SkipHasResult)
			return
		case kickoff == "":
			page.Stats.Skip(domain.SkipNoTime)
			return
		case kickoff == domain.TimeTBD:
			page.Stats.Skip(domain.SkipTimeTBD)
			return
		case detailLink == "":
			page.Stats.Skip(domain.SkipNoLink)
			return
		}

		day, err := domain.ParseMatchDate(date)
		if err != nil {
			page.Stats.Skip(domain.SkipBadDate)
			return
		}
		if int(day.Month()) != month || day.Year() != year {
			page.Stats.Skip(domain.SkipOutsidePeriod)
			return
		}

		page.Stats.Retained++
		page.Matches = append(page.Matches, domain.RawMatch{
			Date:          date,
			Time:          kickoff,
			Ground:        ground(location),
			Opponent:      opponent,
			OpponentCrest: crest,
			LeagueName:    orUnknown(leagueName),
			LeagueIcon:    leagueIcon,
			Jornada:       jornada,
			DetailURL:     p.siteURL(detailLink),
			KickoffAt:     domain.Kickoff(day, kickoff),
		})
	})

	return page
}

// clubCrest looks for the tracked club's own crest on the fixtures page;
// the configured default URL covers pages where it is missing.
func (p *Parser) clubCrest(doc *goquery.Document) string {
	crest := p.defaultCrest
	club := strings.ToLower(p.clubName)
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt := strings.ToLower(img.AttrOr("alt", ""))
		src := img.AttrOr("src", "")
		if alt != "" && strings.Contains(alt, club) && strings.Contains(src, "/img/logos/equipas/") {
			crest = p.crestURL(src)
			return false
		}
		return true
	})
	return crest
}

// crestURL rewrites a crest URL from the listing's low-resolution icon
// convention to the CDN's image-bank convention.
func (p *Parser) crestURL(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	src = strings.Replace(src, "/img_icon/", "/img/", 1)
	if strings.Contains(src, ".png") && !strings.Contains(src, "_imgbank") {
		src = strings.Replace(src, ".png", "_imgbank.png", 1)
	}
	if !strings.HasPrefix(src, "http") {
		src = p.cdnBase + src
	}
	return src
}

func (p *Parser) siteURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	return p.siteBase + href
}

func ground(location string) domain.Ground {
	switch location {
	case "(C)":
		return domain.GroundHome
	case "(F)":
		return domain.GroundAway
	default:
		return domain.GroundNeutral
	}
}

func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
