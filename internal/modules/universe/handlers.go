package universe

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
	"github.com/andrevms/fii-radar/internal/export"
)

// DetailClient scrapes a fund's detail page.
type DetailClient interface {
	FetchFundDetail(ticker string) (*statusinvest.FundDetail, error)
}

// Handler handles universe HTTP requests
type Handler struct {
	service *Service
	detail  DetailClient
	log     zerolog.Logger
}

// NewHandler creates a new universe handler
func NewHandler(service *Service, detail DetailClient, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		detail:  detail,
		log:     log.With().Str("handler", "universe").Logger(),
	}
}

// HandleRefresh forces a universe refresh regardless of staleness
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	u := h.service.ForceRefresh()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshed":  true,
		"fund_count": u.Len(),
		"source":     u.Source,
		"fetched_at": u.FetchedAt,
	})
}

// HandleGetFund returns a single fund record by ticker
func (h *Handler) HandleGetFund(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	rec, ok := h.service.Universe().Get(ticker)
	if !ok {
		h.writeError(w, http.StatusNotFound, "fund not found: "+ticker)
		return
	}

	h.writeJSON(w, http.StatusOK, rec)
}

// HandleGetFundDetail scrapes and returns the fund's detail page figures
func (h *Handler) HandleGetFundDetail(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	if _, ok := h.service.Universe().Get(ticker); !ok {
		h.writeError(w, http.StatusNotFound, "fund not found: "+ticker)
		return
	}

	detail, err := h.detail.FetchFundDetail(ticker)
	if err != nil {
		h.log.Warn().Err(err).Str("ticker", ticker).Msg("Fund detail fetch failed")
		h.writeError(w, http.StatusBadGateway, "detail page unavailable for "+ticker)
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

// HandleExportCSV streams the universe as a CSV download
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="funds.csv"`)

	if err := export.WriteUniverseCSV(w, h.service.Universe()); err != nil {
		h.log.Error().Err(err).Msg("Failed to write universe CSV")
	}
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
