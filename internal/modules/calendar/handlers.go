package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
)

// UniverseProvider supplies the current fund universe snapshot.
type UniverseProvider interface {
	Universe() *domain.Universe
}

// Handler handles dividend calendar HTTP requests
type Handler struct {
	service  *Service
	provider UniverseProvider
	log      zerolog.Logger
}

// NewHandler creates a new calendar handler
func NewHandler(service *Service, provider UniverseProvider, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		provider: provider,
		log:      log.With().Str("handler", "calendar").Logger(),
	}
}

// HandleUpcoming returns upcoming cut and payment dates
func (h *Handler) HandleUpcoming(w http.ResponseWriter, r *http.Request) {
	events := h.service.Upcoming(h.provider.Universe(), time.Now())
	if events == nil {
		events = []Event{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(events),
		"events": events,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
