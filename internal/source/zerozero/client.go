package zerozero

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

const SourceID = "zerozero"

// Config holds source configuration.
type Config struct {
	BaseURL        string
	FixturesPath   string
	CDNBaseURL     string
	UserAgent      string
	Timeout        time.Duration
	RequestDelay   time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	ClubName        string
	HomeVenue       string
	DefaultCrestURL string
}

// Client fetches and parses the source site's fixture listing and match
// detail pages. The site serves ISO-8859-1, so every page is decoded before
// it reaches goquery.
type Client struct {
	httpClient     *http.Client
	cfg            Config
	parser         *Parser
	logger         *slog.Logger
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	mu         sync.Mutex
	lastDetail time.Time
}

// New creates a new zerozero client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:            cfg,
		parser:         NewParser(cfg.ClubName, cfg.BaseURL, cfg.CDNBaseURL, cfg.DefaultCrestURL, logger),
		logger:         logger.With("source", SourceID),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// FetchFixtures downloads the club's fixture listing and extracts the raw
// matches for the requested month and year. A failed page fetch is fatal to
// the ingestion run; the caller decides retry policy beyond the built-in
// backoff attempts.
func (c *Client) FetchFixtures(ctx context.Context, month, year int) (*domain.FixturePage, error) {
	doc, err := c.fetchDoc(ctx, c.cfg.BaseURL+c.cfg.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures page: %w", err)
	}
	return c.parser.Parse(doc, month, year), nil
}

// Venue follows a raw match's detail link and extracts the stadium name. The
// returned venue is always usable: on fetch or parse failure the fallback
// policy is applied (home fixtures default to the club's own ground, anything
// else stays TBD) and the error is returned only for diagnostics.
func (c *Client) Venue(ctx context.Context, raw *domain.RawMatch) (string, error) {
	fallback := domain.VenueTBD
	if raw.Ground == domain.GroundHome {
		fallback = c.cfg.HomeVenue
	}

	if err := c.throttle(ctx); err != nil {
		return fallback, err
	}

	doc, err := c.fetchDoc(ctx, raw.DetailURL)
	if err != nil {
		return fallback, fmt.Errorf("fetch match detail: %w", err)
	}

	if venue := extractVenue(doc); venue != "" {
		return venue, nil
	}
	return fallback, nil
}

// throttle enforces the politeness delay between successive detail fetches.
func (c *Client) throttle(ctx context.Context) error {
	c.mu.Lock()
	wait := time.Until(c.lastDetail.Add(c.cfg.RequestDelay))
	if wait < 0 {
		wait = 0
	}
	c.lastDetail = time.Now().Add(wait)
	c.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

func (c *Client) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	var doc *goquery.Document
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		doc, err = c.doRequest(ctx, url)
		if err == nil {
			return doc, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	decoded := transform.NewReader(resp.Body, charmap.ISO8859_1.NewDecoder())
	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return doc, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
