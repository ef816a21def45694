package server

import (
	"encoding/json"
	"net/http"
	"runtime"

	"github.com/andrevms/fii-radar/internal/export"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "fii-radar",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := map[string]interface{}{
		"status": "running",
		"memory": map[string]interface{}{
			"alloc_mb":       m.Alloc / 1024 / 1024,
			"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
			"sys_mb":         m.Sys / 1024 / 1024,
			"num_gc":         m.NumGC,
		},
		"goroutines":    runtime.NumGoroutine(),
		"fund_count":    s.universeSvc.Universe().Len(),
		"last_refresh":  s.universeSvc.LastRefresh(),
		"universe_from": s.universeSvc.Universe().Source,
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handlePortfolioExport streams the stored positions as a CSV download
func (s *Server) handlePortfolioExport(w http.ResponseWriter, r *http.Request) {
	positions, err := s.portfolioSvc.All()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.csv"`)

	if err := export.WritePositionsCSV(w, positions); err != nil {
		s.log.Error().Err(err).Msg("Failed to write positions CSV")
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
