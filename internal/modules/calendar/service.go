package calendar

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
)

// Event types on the dividend calendar.
const (
	EventCutDate     = "Cut Date"
	EventPaymentDate = "Payment Date"
)

// Event is one upcoming dividend date for a fund.
type Event struct {
	Date   time.Time `json:"date"`
	Ticker string    `json:"ticker"`
	Type   string    `json:"type"`
	Value  float64   `json:"value,omitempty"` // payment events only
}

// Service produces the upcoming dividend calendar.
//
// No public source exposes FII corporate-action dates, so the schedule is a
// placeholder derived from the current universe: funds are spread over the
// next month, each with a cut date and a payment date ten days later, the
// payment valued at the fund's last dividend.
type Service struct {
	log zerolog.Logger
}

// NewService creates a calendar service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "calendar").Logger()}
}

// Upcoming returns events over the next 30 days, sorted by date.
func (s *Service) Upcoming(u *domain.Universe, now time.Time) []Event {
	funds := u.Funds()
	if len(funds) == 0 {
		return nil
	}

	var events []Event
	for day := 0; day < 30; day += 5 {
		fund := funds[(day/5)%len(funds)]
		cut := now.AddDate(0, 0, day)

		events = append(events,
			Event{
				Date:   cut,
				Ticker: fund.Ticker,
				Type:   EventCutDate,
			},
			Event{
				Date:   cut.AddDate(0, 0, 10),
				Ticker: fund.Ticker,
				Type:   EventPaymentDate,
				Value:  fund.LastDividend,
			},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events
}
