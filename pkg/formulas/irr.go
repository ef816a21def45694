package formulas

import "math"

const (
	irrMaxIterations = 200
	irrTolerance     = 1e-9
)

// NPV calculates the net present value of a cash-flow series at rate r
// (decimal, e.g. 0.08 for 8%). Flows are per-period, flows[0] at t=0.
func NPV(flows []float64, r float64) float64 {
	npv := 0.0
	for t, cf := range flows {
		npv += cf / math.Pow(1+r, float64(t))
	}
	return npv
}

// IRR solves sum(flows[t] / (1+r)^t) = 0 for r using bisection, for the
// usual shape of an initial outflow followed by inflows. The result is a
// decimal rate per period.
//
// Returns 0 when the series has no sign change (no real root exists for a
// conventional investment series) or when no root is bracketed in
// (-0.99, 10].
func IRR(flows []float64) float64 {
	if !hasSignChange(flows) {
		return 0
	}

	lo, hi := -0.99, 10.0
	fLo := NPV(flows, lo)
	fHi := NPV(flows, hi)
	if fLo*fHi > 0 {
		return 0
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(flows, mid)

		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid
		}

		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}

	return (lo + hi) / 2
}

// hasSignChange reports whether the series contains both a negative and a
// positive flow.
func hasSignChange(flows []float64) bool {
	var neg, pos bool
	for _, cf := range flows {
		if cf < 0 {
			neg = true
		}
		if cf > 0 {
			pos = true
		}
	}
	return neg && pos
}
