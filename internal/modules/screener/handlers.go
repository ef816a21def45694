package screener

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
)

const (
	defaultTopMaxPrice        = 100.0
	defaultTopLimit           = 10
	defaultOpportunitiesLimit = 5
	defaultListLimit          = 10
)

// UniverseProvider supplies the current fund universe snapshot.
type UniverseProvider interface {
	Universe() *domain.Universe
}

// Handler handles screener HTTP requests
type Handler struct {
	provider UniverseProvider
	log      zerolog.Logger
}

// NewHandler creates a new screener handler
func NewHandler(provider UniverseProvider, log zerolog.Logger) *Handler {
	return &Handler{
		provider: provider,
		log:      log.With().Str("handler", "screener").Logger(),
	}
}

// HandleList returns the universe, optionally filtered by query params
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := Filter{
		Segment:      q.Get("segment"),
		Ticker:       q.Get("ticker"),
		MinDY:        floatParam(q.Get("min_dy")),
		MaxPrice:     floatParam(q.Get("max_price")),
		MaxPVP:       floatParam(q.Get("max_pvp")),
		MinLiquidity: floatParam(q.Get("min_liquidity")),
	}

	u := h.provider.Universe()
	funds := filter.Apply(u)
	if funds == nil {
		funds = []domain.FundRecord{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":      len(funds),
		"total":      u.Len(),
		"source":     u.Source,
		"fetched_at": u.FetchedAt,
		"funds":      funds,
	})
}

// HandleTop returns the top-ranked funds under a price ceiling
func (h *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	maxPrice := floatParamOr(r.URL.Query().Get("max_price"), defaultTopMaxPrice)
	limit := intParamOr(r.URL.Query().Get("limit"), defaultTopLimit)

	h.writeJSON(w, http.StatusOK, RankTop(h.provider.Universe(), maxPrice, limit))
}

// HandleOpportunities returns the best-scored opportunity funds
func (h *Handler) HandleOpportunities(w http.ResponseWriter, r *http.Request) {
	limit := intParamOr(r.URL.Query().Get("limit"), defaultOpportunitiesLimit)

	h.writeJSON(w, http.StatusOK, BestOpportunities(h.provider.Universe(), limit))
}

// HandleHighYield returns funds with the highest dividend yield
func (h *Handler) HandleHighYield(w http.ResponseWriter, r *http.Request) {
	limit := intParamOr(r.URL.Query().Get("limit"), defaultListLimit)

	h.writeJSON(w, http.StatusOK, HighestYield(h.provider.Universe(), limit))
}

// HandleLowPVP returns funds with the lowest P/VP
func (h *Handler) HandleLowPVP(w http.ResponseWriter, r *http.Request) {
	limit := intParamOr(r.URL.Query().Get("limit"), defaultListLimit)

	h.writeJSON(w, http.StatusOK, LowestPVP(h.provider.Universe(), limit))
}

// HandleBelowFair returns funds trading below their fair price
func (h *Handler) HandleBelowFair(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, BelowFairPrice(h.provider.Universe()))
}

func floatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatParamOr(raw string, fallback float64) float64 {
	if p := floatParam(raw); p != nil {
		return *p
	}
	return fallback
}

func intParamOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
