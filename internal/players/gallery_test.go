package players

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestGallery(squadURL string) *Gallery {
	return NewGallery(Config{
		SquadURL:  squadURL,
		UserAgent: "test-agent",
		Timeout:   5 * time.Second,
	}, testLogger())
}

func squadPage(base string, players ...string) string {
	items := ""
	for _, p := range players {
		items += fmt.Sprintf(`<div class="players__item"><a href="%s%s"></a></div>`, base, p)
	}
	return fmt.Sprintf(`<html><body><div class="plantelPosicoes">%s</div></body></html>`, items)
}

func playerPage(portraitURL string) string {
	return fmt.Sprintf(
		`<html><body><div class="player__photo" style="background-image: url(&quot;%s&quot;);"></div></body></html>`,
		portraitURL,
	)
}

func TestRandom_PopulatesOnceAndServesPortraits(t *testing.T) {
	var squadHits atomic.Int32

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/plantel", func(w http.ResponseWriter, r *http.Request) {
		squadHits.Add(1)
		_, _ = fmt.Fprint(w, squadPage(srv.URL, "/jogador/1", "/jogador/2"))
	})
	mux.HandleFunc("/jogador/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, playerPage("https://cdn.example.com/players/1.jpg"))
	})
	mux.HandleFunc("/jogador/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, playerPage("https://cdn.example.com/players/2.jpg"))
	})

	g := newTestGallery(srv.URL + "/plantel")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		url, err := g.Random(context.Background())
		require.NoError(t, err)
		seen[url] = true
	}

	for url := range seen {
		assert.Contains(t, []string{
			"https://cdn.example.com/players/1.jpg",
			"https://cdn.example.com/players/2.jpg",
		}, url)
	}
	assert.Equal(t, int32(1), squadHits.Load(), "squad page scraped once, then served from memory")
}

func TestRandom_SkipsCoachingStaff(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/plantel", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, squadPage(srv.URL, "/jogador/1", "/equipa-tecnica/treinador"))
	})
	mux.HandleFunc("/jogador/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, playerPage("https://cdn.example.com/players/1.jpg"))
	})
	mux.HandleFunc("/equipa-tecnica/treinador", func(w http.ResponseWriter, r *http.Request) {
		t.Error("coaching staff page should not be fetched")
	})

	g := newTestGallery(srv.URL + "/plantel")

	url, err := g.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/players/1.jpg", url)
}

func TestRandom_SkipsPlayersWithoutPortrait(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/plantel", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, squadPage(srv.URL, "/jogador/1", "/jogador/2"))
	})
	mux.HandleFunc("/jogador/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><div class="player__photo"></div></body></html>`)
	})
	mux.HandleFunc("/jogador/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, playerPage("https://cdn.example.com/players/2.jpg"))
	})

	g := newTestGallery(srv.URL + "/plantel")

	url, err := g.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/players/2.jpg", url)
}

func TestRandom_EmptySquadReturnsErrNoPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><div class="plantelPosicoes"></div></body></html>`)
	}))
	defer srv.Close()

	g := newTestGallery(srv.URL)

	_, err := g.Random(context.Background())
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestRandom_SquadFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGallery(srv.URL)

	_, err := g.Random(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch squad page")
}
