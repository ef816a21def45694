package analytics

import (
	"github.com/andrevms/fii-radar/internal/domain"
	"github.com/andrevms/fii-radar/pkg/formulas"
)

// SegmentComparison holds a fund's metrics next to its segment averages.
type SegmentComparison struct {
	Segment       string  `json:"segment"`
	FundCount     int     `json:"fund_count"`
	DYAnnual      float64 `json:"dy_annual"`
	SegmentDY     float64 `json:"segment_dy"`
	PVP           float64 `json:"pvp"`
	SegmentPVP    float64 `json:"segment_pvp"`
	CapRate       float64 `json:"cap_rate"`
	SegmentCap    float64 `json:"segment_cap_rate"`
	Vacancy       float64 `json:"vacancy"`
	SegmentVacant float64 `json:"segment_vacancy"`
}

// CompareToSegment averages DY, P/VP, cap rate and vacancy over the fund's
// segment (including the fund itself) for the detail view.
func CompareToSegment(u *domain.Universe, ticker string) (SegmentComparison, bool) {
	rec, ok := u.Get(ticker)
	if !ok {
		return SegmentComparison{}, false
	}

	var dy, pvp, cap, vac []float64
	for _, other := range u.Funds() {
		if other.Segment != rec.Segment {
			continue
		}
		dy = append(dy, other.DYAnnual)
		pvp = append(pvp, other.PVP)
		cap = append(cap, other.CapRate)
		vac = append(vac, other.Vacancy)
	}

	return SegmentComparison{
		Segment:       rec.Segment,
		FundCount:     len(dy),
		DYAnnual:      rec.DYAnnual,
		SegmentDY:     formulas.Mean(dy),
		PVP:           rec.PVP,
		SegmentPVP:    formulas.Mean(pvp),
		CapRate:       rec.CapRate,
		SegmentCap:    formulas.Mean(cap),
		Vacancy:       rec.Vacancy,
		SegmentVacant: formulas.Mean(vac),
	}, true
}
