package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
)

const defaultSimulationAmount = 10_000.0

// UniverseSource supplies the universe snapshot and per-fund history series.
type UniverseSource interface {
	Universe() *domain.Universe
	AdvancedHistory(ticker string) []domain.HistoricalPoint
}

// Handler handles fund analytics HTTP requests
type Handler struct {
	source UniverseSource
	log    zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(source UniverseSource, log zerolog.Logger) *Handler {
	return &Handler{
		source: source,
		log:    log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleAnalytics returns rank/percentile per metric plus the segment
// comparison for one fund
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))
	u := h.source.Universe()

	ranks, ok := RankAll(u, ticker)
	if !ok {
		h.writeError(w, http.StatusNotFound, "fund not found: "+ticker)
		return
	}
	segment, _ := CompareToSegment(u, ticker)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ticker":   ticker,
		"rankings": ranks,
		"segment":  segment,
	})
}

// HandleRecommendation returns the scored recommendation for one fund
func (h *Handler) HandleRecommendation(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fund(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, Recommend(rec))
}

// HandleSimulation simulates investing a given amount in one fund
func (h *Handler) HandleSimulation(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fund(w, r)
	if !ok {
		return
	}

	amount := defaultSimulationAmount
	if raw := r.URL.Query().Get("amount"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			amount = v
		}
	}

	h.writeJSON(w, http.StatusOK, Simulate(rec, amount))
}

// HandleProjection returns the ten-year dividend projection for one fund
func (h *Handler) HandleProjection(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fund(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": rec.Ticker,
		"years":  Project10Years(rec),
	})
}

// HandleHistory returns the monthly history series with its trend analysis
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	points := h.source.AdvancedHistory(ticker)
	if points == nil {
		h.writeError(w, http.StatusNotFound, "fund not found: "+ticker)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ticker": ticker,
		"points": points,
		"trend":  AnalyzeHistory(points),
	})
}

func (h *Handler) fund(w http.ResponseWriter, r *http.Request) (domain.FundRecord, bool) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	rec, ok := h.source.Universe().Get(ticker)
	if !ok {
		h.writeError(w, http.StatusNotFound, "fund not found: "+ticker)
	}
	return rec, ok
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
