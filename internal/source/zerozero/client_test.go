package zerozero

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// latin1 re-encodes a UTF-8 fixture the way the source site serves pages.
func latin1(t *testing.T, s string) []byte {
	t.Helper()
	encoded, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return encoded
}

func newTestClient(baseURL string, delay time.Duration) *Client {
	return New(Config{
		BaseURL:         baseURL,
		FixturesPath:    "/equipa/sporting/jogos",
		CDNBaseURL:      testCDNBase,
		UserAgent:       "test-agent",
		Timeout:         5 * time.Second,
		RequestDelay:    delay,
		MaxAttempts:     2,
		InitialBackoff:  10 * time.Millisecond,
		MaxBackoff:      50 * time.Millisecond,
		ClubName:        "Sporting",
		HomeVenue:       "Estádio José de Alvalade",
		DefaultCrestURL: testDefaultCrest,
	}, testLogger())
}

func detailPage(stadium string) string {
	return fmt.Sprintf(`<html><body>
		<div id="match_data">
			<span class="icon location"></span>
			<a href="/estadio.php?id=42">%s</a>
		</div>
	</body></html>`, stadium)
}

func TestFetchFixtures_DecodesSourceCharset(t *testing.T) {
	page := fmt.Sprintf(`<html><body><table>%s</table></body></html>`, fixtureRow(rowSpec{
		date: "12 abril 2025", time: "20:30", location: "(F)",
		opponent: "Vitória SC", crest: "/img/logos/equipas/9_imgbank.png",
		result: "-", link: "/jogo/99", league: "Taça de Portugal", jornada: "",
	}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=ISO-8859-1")
		_, _ = w.Write(latin1(t, page))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)

	result, err := c.FetchFixtures(context.Background(), 4, 2025)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Vitória SC", result.Matches[0].Opponent)
	assert.Equal(t, "Taça de Portugal", result.Matches[0].LeagueName)
}

func TestFetchFixtures_RetriesThenFails(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)

	_, err := c.FetchFixtures(context.Background(), 4, 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.Equal(t, int32(2), hits.Load())
}

func TestVenue_ExtractsStadiumAndStripsCountryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(latin1(t, detailPage("Estádio José de Alvalade (POR)")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)
	raw := &domain.RawMatch{Ground: domain.GroundHome, DetailURL: srv.URL + "/jogo/1"}

	venue, err := c.Venue(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Estádio José de Alvalade", venue)
}

func TestVenue_HomeFallbackWhenMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><div id='match_data'></div></body></html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)
	raw := &domain.RawMatch{Ground: domain.GroundHome, DetailURL: srv.URL + "/jogo/1"}

	venue, err := c.Venue(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Estádio José de Alvalade", venue)
}

func TestVenue_AwayStaysTBDWhenMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body></body></html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)
	raw := &domain.RawMatch{Ground: domain.GroundAway, DetailURL: srv.URL + "/jogo/1"}

	venue, err := c.Venue(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, domain.VenueTBD, venue)
}

func TestVenue_FetchFailureAppliesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)

	home := &domain.RawMatch{Ground: domain.GroundHome, DetailURL: srv.URL + "/jogo/1"}
	venue, err := c.Venue(context.Background(), home)
	assert.Error(t, err)
	assert.Equal(t, "Estádio José de Alvalade", venue)

	away := &domain.RawMatch{Ground: domain.GroundAway, DetailURL: srv.URL + "/jogo/2"}
	venue, err = c.Venue(context.Background(), away)
	assert.Error(t, err)
	assert.Equal(t, domain.VenueTBD, venue)
}

func TestVenue_AppliesPolitenessDelay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(detailPage("Estádio da Luz")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 60*time.Millisecond)
	raw := &domain.RawMatch{Ground: domain.GroundAway, DetailURL: srv.URL + "/jogo/1"}

	start := time.Now()
	_, err := c.Venue(context.Background(), raw)
	require.NoError(t, err)
	_, err = c.Venue(context.Background(), raw)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}
