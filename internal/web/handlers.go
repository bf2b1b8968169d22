package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tehchosen1/sporting-calendar/internal/domain"
)

// FixtureService serves cached fixtures, ingesting on a cache miss.
type FixtureService interface {
	Fixtures(ctx context.Context, month, year int) ([]domain.MatchRecord, error)
	HasAsset(ctx context.Context, filename string) (bool, error)
}

// AssetStore streams locally resolved assets and can re-acquire missing ones.
type AssetStore interface {
	ResolveStored(ctx context.Context, filename string) error
	Open(filename string) (io.ReadCloser, error)
	Exists(filename string) bool
}

// PlayerGallery supplies random player portrait URLs.
type PlayerGallery interface {
	Random(ctx context.Context) (string, error)
}

type Handlers struct {
	fixtures FixtureService
	assets   AssetStore
	players  PlayerGallery
	logger   *slog.Logger
}

func NewHandlers(fixtures FixtureService, assets AssetStore, players PlayerGallery, logger *slog.Logger) *Handlers {
	return &Handlers{
		fixtures: fixtures,
		assets:   assets,
		players:  players,
		logger:   logger.With("component", "web"),
	}
}

func (h *Handlers) router() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/matches/{month:[0-9]+}/{year:[0-9]+}", h.handleMatches).Methods(http.MethodGet)
	api.HandleFunc("/images/{filename}", h.handleImage).Methods(http.MethodGet)
	api.HandleFunc("/player-image", h.handlePlayerImage).Methods(http.MethodGet)

	return router
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) handleMatches(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	month, monthErr := strconv.Atoi(vars["month"])
	year, yearErr := strconv.Atoi(vars["year"])
	if monthErr != nil || yearErr != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month or year")
		return
	}

	matches, err := h.fixtures.Fixtures(r.Context(), month, year)
	if err != nil {
		h.logger.Error("fetching matches failed", "month", month, "year", year, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}

	writeJSON(w, http.StatusOK, matches)
}

func (h *Handlers) handleImage(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(mux.Vars(r)["filename"])

	if !h.assets.Exists(filename) {
		// Re-resolve only assets some cached record actually references.
		referenced, err := h.fixtures.HasAsset(r.Context(), filename)
		if err != nil {
			h.logger.Error("asset lookup failed", "filename", filename, "error", err)
		}
		if referenced {
			if err := h.assets.ResolveStored(r.Context(), filename); err != nil {
				h.logger.Warn("asset re-resolution failed", "filename", filename, "error", err)
			}
		}
	}

	f, err := h.assets.Open(filename)
	if err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	defer f.Close()

	if ctype := mime.TypeByExtension(filepath.Ext(filename)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Warn("streaming image failed", "filename", filename, "error", err)
	}
}

func (h *Handlers) handlePlayerImage(w http.ResponseWriter, r *http.Request) {
	imageURL, err := h.players.Random(r.Context())
	if err != nil {
		h.logger.Error("fetching player images failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch player images")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": imageURL})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
