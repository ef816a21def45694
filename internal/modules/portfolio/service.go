package portfolio

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/internal/events"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// lowDiversificationPct is the advisory threshold for segment coverage.
const lowDiversificationPct = 50.0

// Service folds positions and the current universe into portfolio metrics.
type Service struct {
	repo   *Repository
	events *events.Manager
	log    zerolog.Logger
}

// NewService creates a portfolio service.
func NewService(repo *Repository, ev *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: ev,
		log:    log.With().Str("service", "portfolio").Logger(),
	}
}

// Add adds quantity shares of ticker at price to the portfolio, merging into
// an existing position by volume-weighted average. Invalid input (unknown
// ticker, non-positive quantity or price) is a no-op: the portfolio is
// returned unchanged and no error surfaces.
func (s *Service) Add(ticker string, quantity int64, price float64, u *domain.Universe) ([]Position, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	rec, known := u.Get(ticker)
	if !known || quantity <= 0 || price <= 0 {
		s.log.Warn().
			Str("ticker", ticker).
			Int64("quantity", quantity).
			Float64("price", price).
			Bool("known", known).
			Msg("Rejected position input")
		s.events.Emit(events.PositionRejected, "portfolio", map[string]interface{}{
			"ticker": ticker,
		})
		return s.repo.GetAll()
	}

	existing, err := s.repo.GetByTicker(ticker)
	if err != nil {
		return nil, err
	}

	var pos Position
	if existing != nil {
		totalQty := existing.Quantity + quantity
		pos = *existing
		pos.AvgPrice = (float64(existing.Quantity)*existing.AvgPrice + float64(quantity)*price) / float64(totalQty)
		pos.Quantity = totalQty
	} else {
		pos = Position{
			Ticker:       ticker,
			Quantity:     quantity,
			AvgPrice:     price,
			CurrentPrice: rec.Price,
			Segment:      rec.Segment,
			DYAnnual:     rec.DYAnnual,
			DYMonthly:    rec.DYMonthly,
			PVP:          rec.PVP,
		}
	}

	if err := s.repo.Upsert(pos); err != nil {
		return nil, err
	}

	s.events.Emit(events.PositionAdded, "portfolio", map[string]interface{}{
		"ticker":   ticker,
		"quantity": quantity,
		"price":    price,
	})

	return s.repo.GetAll()
}

// Remove deletes a position. Removing an unheld ticker is a no-op.
func (s *Service) Remove(ticker string) ([]Position, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	deleted, err := s.repo.Delete(ticker)
	if err != nil {
		return nil, err
	}
	if deleted {
		s.events.Emit(events.PositionRemoved, "portfolio", map[string]interface{}{
			"ticker": ticker,
		})
	}

	return s.repo.GetAll()
}

// SyncQuotes refreshes each position's market snapshot from the latest
// universe. Positions whose ticker left the universe keep their last
// snapshot; they are never auto-removed.
func (s *Service) SyncQuotes(u *domain.Universe) error {
	positions, err := s.repo.GetAll()
	if err != nil {
		return err
	}

	for _, pos := range positions {
		rec, ok := u.Get(pos.Ticker)
		if !ok {
			continue
		}
		pos.CurrentPrice = rec.Price
		pos.Segment = rec.Segment
		pos.DYAnnual = rec.DYAnnual
		pos.DYMonthly = rec.DYMonthly
		pos.PVP = rec.PVP
		if err := s.repo.Upsert(pos); err != nil {
			return err
		}
	}

	return nil
}

// All returns the stored positions without derived metrics.
func (s *Service) All() ([]Position, error) {
	return s.repo.GetAll()
}

// Positions returns all positions with their derived metrics.
func (s *Service) Positions() ([]PositionMetrics, error) {
	positions, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	metrics := make([]PositionMetrics, len(positions))
	for i, pos := range positions {
		metrics[i] = computeMetrics(pos)
	}
	return metrics, nil
}

// Summary aggregates the portfolio and compares it against the market
// universe. All ratio formulas guard their denominators and yield 0 instead
// of NaN.
func (s *Service) Summary(u *domain.Universe) (Summary, error) {
	metrics, err := s.Positions()
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	sum.Positions = metrics
	for _, m := range metrics {
		sum.TotalInvested += m.Invested
		sum.TotalCurrent += m.CurrentValue
		sum.TotalMonthlyDividends += m.MonthlyDividends
		sum.TotalAnnualDividends += m.AnnualDividends
	}
	if sum.TotalInvested > 0 {
		sum.TotalReturnPct = (sum.TotalCurrent/sum.TotalInvested - 1) * 100
	}

	sum.Risk = s.riskAnalysis(metrics, sum, u)

	return sum, nil
}

func computeMetrics(pos Position) PositionMetrics {
	m := PositionMetrics{Position: pos}
	m.Invested = float64(pos.Quantity) * pos.AvgPrice
	m.CurrentValue = float64(pos.Quantity) * pos.CurrentPrice
	if m.Invested > 0 {
		m.ReturnPct = (m.CurrentValue/m.Invested - 1) * 100
	}
	m.MonthlyDividends = m.CurrentValue * pos.DYMonthly / 100
	m.AnnualDividends = m.CurrentValue * pos.DYAnnual / 100
	if m.Invested > 0 {
		m.YieldOnCost = m.AnnualDividends / m.Invested * 100
	}
	return m
}

// riskAnalysis compares yield, valuation and segment coverage against the
// market. Each advisory condition is evaluated independently; one line per
// condition that holds.
func (s *Service) riskAnalysis(metrics []PositionMetrics, sum Summary, u *domain.Universe) RiskAnalysis {
	risk := RiskAnalysis{}

	if sum.TotalCurrent > 0 {
		risk.PortfolioDY = sum.TotalAnnualDividends / sum.TotalCurrent * 100
	}

	var marketDY, marketPVP []float64
	for _, rec := range u.Funds() {
		marketDY = append(marketDY, rec.DYAnnual)
		marketPVP = append(marketPVP, rec.PVP)
	}
	risk.MarketDY = formulas.Mean(marketDY)
	risk.MarketPVP = formulas.Mean(marketPVP)

	var positionPVP []float64
	segments := make(map[string]struct{})
	for _, m := range metrics {
		positionPVP = append(positionPVP, m.PVP)
		if m.Segment != "" {
			segments[m.Segment] = struct{}{}
		}
	}
	risk.PortfolioPVP = formulas.Mean(positionPVP)

	risk.SegmentCount = len(segments)
	risk.TotalSegments = u.DistinctSegments()
	if risk.TotalSegments > 0 {
		risk.Diversification = float64(risk.SegmentCount) / float64(risk.TotalSegments) * 100
	}

	if risk.Diversification < lowDiversificationPct {
		risk.Recommendations = append(risk.Recommendations, "Increase diversification across segments")
	}
	if risk.PortfolioDY < risk.MarketDY {
		risk.Recommendations = append(risk.Recommendations, "Consider funds with a higher dividend yield")
	}
	if risk.PortfolioPVP > risk.MarketPVP {
		risk.Recommendations = append(risk.Recommendations, "Look for funds trading at a lower P/VP")
	}
	if risk.PortfolioDY > risk.MarketDY {
		risk.Recommendations = append(risk.Recommendations, "Portfolio yield is above the market average")
	}
	if risk.PortfolioPVP < risk.MarketPVP && risk.PortfolioPVP > 0 {
		risk.Recommendations = append(risk.Recommendations, "Portfolio valuation is below the market average P/VP")
	}

	return risk
}
