package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrAssetUnavailable is returned when every resolution tier has been
// exhausted. Callers proceed with an empty icon reference instead of failing
// the record.
var ErrAssetUnavailable = errors.New("asset unavailable")

// Kind selects the static fallback tier used when the supplied URL fails.
type Kind int

const (
	KindTeam Kind = iota
	KindLeague
)

const leaguePrefix = "league_"

type Config struct {
	Dir         string
	TeamBases   []string
	LeagueBases []string
	Timeout     time.Duration
}

// Resolver turns remote crest/badge URLs into locally stored files with
// deterministic names. Resolution for an already-stored asset never touches
// the network.
type Resolver struct {
	dir         string
	teamBases   []string
	leagueBases []string
	client      *http.Client
	logger      *slog.Logger
}

func NewResolver(cfg Config, logger *slog.Logger) (*Resolver, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create assets dir: %w", err)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Resolver{
		dir:         cfg.Dir,
		teamBases:   cfg.TeamBases,
		leagueBases: cfg.LeagueBases,
		client:      &http.Client{Timeout: timeout},
		logger:      logger.With("component", "assets"),
	}, nil
}

// Filename derives the stored filename for an entity. The derivation is
// deterministic so repeated runs for the same entity converge on one file:
// lowercase name, whitespace and slashes collapsed to underscores, league
// assets marked with the "league_" prefix, extension taken from the URL.
func Filename(canonicalName, remoteURL string, kind Kind) string {
	token := strings.ToLower(strings.TrimSpace(canonicalName))
	token = strings.Join(strings.FieldsFunc(token, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '/' || r == '\\'
	}), "_")

	ext := ".png"
	if u, err := url.Parse(remoteURL); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = e
		}
	}

	if kind == KindLeague {
		token = leaguePrefix + token
	}
	return token + ext
}

// Resolve fetches the asset behind remoteURL into the local store under the
// derived filename and returns that filename. Tier order: existing local file,
// the supplied URL, then the static bases for the kind. Only exhaustion of all
// tiers yields ErrAssetUnavailable.
func (r *Resolver) Resolve(ctx context.Context, remoteURL, canonicalName string, kind Kind) (string, error) {
	filename := Filename(canonicalName, remoteURL, kind)

	if r.exists(filename) {
		return filename, nil
	}

	if usableURL(remoteURL) {
		if err := r.download(ctx, remoteURL, filename); err == nil {
			return filename, nil
		} else {
			r.logger.Debug("primary asset fetch failed", "url", remoteURL, "error", err)
		}
	}

	if err := r.fetchStatic(ctx, filename, kind); err != nil {
		return "", fmt.Errorf("%s: %w", filename, ErrAssetUnavailable)
	}
	return filename, nil
}

// ResolveStored re-acquires a previously derived filename using the static
// tiers only. Used by the images endpoint when a cached record references a
// file that is missing on disk.
func (r *Resolver) ResolveStored(ctx context.Context, filename string) error {
	if r.exists(filename) {
		return nil
	}
	kind := KindTeam
	if strings.HasPrefix(filename, leaguePrefix) {
		kind = KindLeague
	}
	if err := r.fetchStatic(ctx, filename, kind); err != nil {
		return fmt.Errorf("%s: %w", filename, ErrAssetUnavailable)
	}
	return nil
}

// Open streams a stored asset.
func (r *Resolver) Open(filename string) (io.ReadCloser, error) {
	return os.Open(r.path(filename))
}

func (r *Resolver) Exists(filename string) bool {
	return r.exists(filename)
}

func (r *Resolver) fetchStatic(ctx context.Context, filename string, kind Kind) error {
	bases := r.teamBases
	if kind == KindLeague {
		bases = r.leagueBases
	}
	var lastErr error = ErrAssetUnavailable
	for _, base := range bases {
		if err := r.download(ctx, base+filename, filename); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return lastErr
}

func (r *Resolver) download(ctx context.Context, remoteURL, filename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(payload) == 0 {
		return fmt.Errorf("empty payload")
	}

	if err := os.WriteFile(r.path(filename), payload, 0o644); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}

	r.logger.Debug("stored asset", "filename", filename, "bytes", len(payload))
	return nil
}

func (r *Resolver) exists(filename string) bool {
	_, err := os.Stat(r.path(filename))
	return err == nil
}

func (r *Resolver) path(filename string) string {
	// filepath.Base guards against traversal in client-supplied names.
	return filepath.Join(r.dir, filepath.Base(filename))
}

func usableURL(remoteURL string) bool {
	u, err := url.Parse(strings.TrimSpace(remoteURL))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
