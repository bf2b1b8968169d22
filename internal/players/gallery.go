package players

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoPlayers is returned when the squad page yields no portraits.
var ErrNoPlayers = errors.New("no player images available")

var backgroundURL = regexp.MustCompile(`url\("?([^")]+)"?\)`)

type Config struct {
	SquadURL  string
	UserAgent string
	Timeout   time.Duration
}

// Gallery holds the club's player portrait URLs. State is process-scoped:
// initialized empty, populated lazily on first request by scraping the squad
// page, never persisted.
type Gallery struct {
	httpClient *http.Client
	squadURL   string
	userAgent  string
	logger     *slog.Logger

	mu   sync.Mutex
	urls []string
}

func NewGallery(cfg Config, logger *slog.Logger) *Gallery {
	return &Gallery{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		squadURL:   cfg.SquadURL,
		userAgent:  cfg.UserAgent,
		logger:     logger.With("component", "players"),
	}
}

// Random returns one portrait URL chosen at random, populating the gallery
// on the first call.
func (g *Gallery) Random(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.urls) == 0 {
		urls, err := g.scrape(ctx)
		if err != nil {
			return "", err
		}
		if len(urls) == 0 {
			return "", ErrNoPlayers
		}
		g.urls = urls
		g.logger.Info("player gallery populated", "count", len(urls))
	}

	return g.urls[rand.Intn(len(g.urls))], nil
}

func (g *Gallery) scrape(ctx context.Context) ([]string, error) {
	doc, err := g.fetchDoc(ctx, g.squadURL)
	if err != nil {
		return nil, fmt.Errorf("fetch squad page: %w", err)
	}

	var pageURLs []string
	doc.Find(".plantelPosicoes .players__item a").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" || strings.Contains(href, "equipa-tecnica") {
			return
		}
		pageURLs = append(pageURLs, href)
	})

	var urls []string
	for _, pageURL := range pageURLs {
		playerDoc, err := g.fetchDoc(ctx, pageURL)
		if err != nil {
			g.logger.Warn("player page fetch failed", "url", pageURL, "error", err)
			continue
		}
		if imageURL := extractPortrait(playerDoc); imageURL != "" {
			urls = append(urls, imageURL)
		}
	}

	return urls, nil
}

// extractPortrait pulls the portrait URL out of the player photo's inline
// background-image style.
func extractPortrait(doc *goquery.Document) string {
	style := doc.Find("div.player__photo").First().AttrOr("style", "")
	if m := backgroundURL.FindStringSubmatch(style); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func (g *Gallery) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
