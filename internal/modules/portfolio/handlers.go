package portfolio

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
)

// UniverseProvider supplies the current fund universe snapshot.
type UniverseProvider interface {
	Universe() *domain.Universe
}

// Handler handles portfolio HTTP requests
type Handler struct {
	service  *Service
	provider UniverseProvider
	log      zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *Service, provider UniverseProvider, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		provider: provider,
		log:      log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleGetPositions returns all positions with computed metrics
func (h *Handler) HandleGetPositions(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.Positions()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if metrics == nil {
		metrics = []PositionMetrics{}
	}

	h.writeJSON(w, http.StatusOK, metrics)
}

type addPositionRequest struct {
	Ticker   string  `json:"ticker"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// HandleAddPosition adds or merges a position. Rejected inputs are no-ops and
// still answer 200 with the unchanged portfolio.
func (h *Handler) HandleAddPosition(w http.ResponseWriter, r *http.Request) {
	var req addPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	positions, err := h.service.Add(req.Ticker, req.Quantity, req.Price, h.provider.Universe())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if positions == nil {
		positions = []Position{}
	}

	h.writeJSON(w, http.StatusOK, positions)
}

// HandleRemovePosition deletes a position by ticker
func (h *Handler) HandleRemovePosition(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	positions, err := h.service.Remove(ticker)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if positions == nil {
		positions = []Position{}
	}

	h.writeJSON(w, http.StatusOK, positions)
}

// HandleGetSummary returns totals plus the risk and diversification analysis
func (h *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(h.provider.Universe())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
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
