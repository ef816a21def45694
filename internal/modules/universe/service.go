package universe

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/clients/statusinvest"
	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/internal/events"
)

// FetchClient is the acquisition contract the service depends on.
type FetchClient interface {
	FetchFunds() ([]statusinvest.RawFund, error)
}

// Service owns the cached universe snapshot and its refresh cycle.
//
// The snapshot and its timestamp are a single-writer, multiple-reader value:
// readers always observe either the previous complete snapshot or the new
// one, and concurrent refresh triggers collapse into a single fetch.
type Service struct {
	client    FetchClient
	deriver   *Deriver
	generator *Generator
	events    *events.Manager
	log       zerolog.Logger

	refreshInterval time.Duration

	mu          sync.RWMutex // guards snapshot and lastRefresh
	refreshMu   sync.Mutex   // serializes refreshes
	snapshot    *domain.Universe
	lastRefresh time.Time
}

// ServiceConfig wires a universe service.
type ServiceConfig struct {
	Client          FetchClient
	Deriver         *Deriver
	Generator       *Generator
	Events          *events.Manager
	RefreshInterval time.Duration
	Log             zerolog.Logger
}

// NewService creates a universe service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		client:          cfg.Client,
		deriver:         cfg.Deriver,
		generator:       cfg.Generator,
		events:          cfg.Events,
		refreshInterval: cfg.RefreshInterval,
		log:             cfg.Log.With().Str("service", "universe").Logger(),
	}
}

// Universe returns the current snapshot, refreshing first when no snapshot
// exists yet or the configured interval has elapsed. It never returns nil or
// an empty universe.
func (s *Service) Universe() *domain.Universe {
	s.mu.RLock()
	snap, last := s.snapshot, s.lastRefresh
	s.mu.RUnlock()

	if snap != nil && time.Since(last) <= s.refreshInterval {
		return snap
	}
	return s.Refresh()
}

// Refresh fetches a new universe and swaps it in. On any acquisition or
// validation wipeout it falls back to the synthetic generator, so the result
// is always a complete, non-empty snapshot.
func (s *Service) Refresh() *domain.Universe {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// A concurrent trigger may have refreshed while this one waited.
	s.mu.RLock()
	snap, last := s.snapshot, s.lastRefresh
	s.mu.RUnlock()
	if snap != nil && time.Since(last) <= s.refreshInterval {
		return snap
	}

	newSnap := s.buildUniverse()

	s.mu.Lock()
	s.snapshot = newSnap
	s.lastRefresh = newSnap.FetchedAt
	s.mu.Unlock()

	s.events.Emit(events.UniverseRefreshed, "universe", map[string]interface{}{
		"funds":  newSnap.Len(),
		"source": newSnap.Source,
	})

	return newSnap
}

// ForceRefresh bypasses the staleness gate, used by the manual refresh
// endpoint.
func (s *Service) ForceRefresh() *domain.Universe {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	newSnap := s.buildUniverse()

	s.mu.Lock()
	s.snapshot = newSnap
	s.lastRefresh = newSnap.FetchedAt
	s.mu.Unlock()

	s.events.Emit(events.UniverseRefreshed, "universe", map[string]interface{}{
		"funds":  newSnap.Len(),
		"source": newSnap.Source,
		"forced": true,
	})

	return newSnap
}

// LastRefresh returns when the current snapshot was produced.
func (s *Service) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

// buildUniverse runs the full acquisition pipeline: fetch, normalize, derive.
// Invalid records are dropped; a failed or empty fetch falls back to
// synthetic data.
func (s *Service) buildUniverse() *domain.Universe {
	source := "statusinvest"

	raws, err := s.client.FetchFunds()
	if err != nil {
		s.log.Warn().Err(err).Msg("Acquisition failed, generating synthetic universe")
		s.events.Emit(events.SyntheticFallback, "universe", map[string]interface{}{
			"reason": err.Error(),
		})
		raws = s.generator.Generate()
		source = "synthetic"
	}

	records := s.normalizeAll(raws)
	if len(records) == 0 && source != "synthetic" {
		s.log.Warn().Msg("Every fetched record failed validation, generating synthetic universe")
		s.events.Emit(events.SyntheticFallback, "universe", map[string]interface{}{
			"reason": "no valid records in payload",
		})
		records = s.normalizeAll(s.generator.Generate())
		source = "synthetic"
	}

	return domain.NewUniverse(records, source, time.Now())
}

func (s *Service) normalizeAll(raws []statusinvest.RawFund) []domain.FundRecord {
	records := make([]domain.FundRecord, 0, len(raws))
	for _, raw := range raws {
		rec, err := Normalize(raw)
		if err != nil {
			s.log.Debug().Err(err).Str("ticker", raw.Ticker).Msg("Dropping invalid record")
			continue
		}
		records = append(records, s.deriver.Derive(rec))
	}
	return records
}
