package formulas

// DividendYieldAnnual calculates the annualized dividend yield (percent) from
// a monthly dividend and the current price. Returns 0 when either input is
// non-positive.
func DividendYieldAnnual(price, monthlyDividend float64) float64 {
	if price <= 0 || monthlyDividend <= 0 {
		return 0
	}
	return (monthlyDividend * 12 / price) * 100
}

// FairPrice estimates the fair price from the current price and P/VP:
//
//	FairPrice = Price / PVP
//
// A non-positive P/VP means the book value is unusable, so the current price
// is returned unchanged.
func FairPrice(price, pvp float64) float64 {
	if pvp <= 0 {
		return price
	}
	return price / pvp
}

// SharpeRatio calculates the yield-based Sharpe proxy used for funds without
// a full return series:
//
//	Sharpe = (DY Annual - Risk-free Rate) / Annualized Volatility
//
// All three inputs are percentages. Returns 0 when volatility is non-positive.
func SharpeRatio(dyAnnual, riskFreeRate, volatility float64) float64 {
	if volatility <= 0 {
		return 0
	}
	return (dyAnnual - riskFreeRate) / volatility
}

// CapRate calculates net operating income over property value, as a percent.
// Returns 0 when the property value is non-positive.
func CapRate(annualIncome, propertyValue float64) float64 {
	if propertyValue <= 0 {
		return 0
	}
	return (annualIncome / propertyValue) * 100
}

// YieldOnCost calculates current annual income over the original acquisition
// price, as a percent. Returns 0 when the purchase price is non-positive.
func YieldOnCost(monthlyDividend, purchasePrice float64) float64 {
	if purchasePrice <= 0 {
		return 0
	}
	return (monthlyDividend * 12 / purchasePrice) * 100
}

// GordonFairPrice calculates a fair price from the Gordon growth model:
//
//	Fair = (Monthly Dividend * 12) / ((Discount Rate - Growth Rate) / 100)
//
// Discount and growth rates are percentages. Returns 0 when the discount rate
// does not exceed the growth rate (the model has no finite price there).
func GordonFairPrice(monthlyDividend, growthRate, discountRate float64) float64 {
	if discountRate <= growthRate {
		return 0
	}
	return monthlyDividend * 12 / ((discountRate - growthRate) / 100)
}
