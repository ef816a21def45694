package jobs

import (
	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/modules/universe"
)

// RefreshJob re-runs the universe refresh on a schedule. The service's own
// staleness gate still applies, so overlapping triggers are cheap.
type RefreshJob struct {
	service *universe.Service
	log     zerolog.Logger
}

// NewRefreshJob creates a scheduled universe refresh.
func NewRefreshJob(service *universe.Service, log zerolog.Logger) *RefreshJob {
	return &RefreshJob{
		service: service,
		log:     log.With().Str("job", "universe_refresh").Logger(),
	}
}

// Name implements scheduler.Job.
func (j *RefreshJob) Name() string {
	return "universe_refresh"
}

// Run implements scheduler.Job.
func (j *RefreshJob) Run() error {
	snap := j.service.Refresh()
	j.log.Info().
		Int("funds", snap.Len()).
		Str("source", snap.Source).
		Msg("Universe refreshed")
	return nil
}
