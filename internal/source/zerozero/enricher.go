package zerozero

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractVenue pulls the stadium name out of a match detail page. The venue
// sits in a stadium link inside the match-info container; a trailing
// parenthetical country code ("(POR)", "(IT)") is stripped.
func extractVenue(doc *goquery.Document) string {
	link := doc.Find(`#match_data a[href*="/estadio.php"]`).First()
	if link.Length() == 0 {
		return ""
	}

	venue := strings.TrimSpace(link.Text())
	if idx := strings.Index(venue, "("); idx != -1 {
		venue = strings.TrimSpace(venue[:idx])
	}
	return venue
}
