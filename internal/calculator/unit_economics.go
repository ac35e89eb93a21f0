package calculator

import "saasval/internal/domain"

const (
	// maxLifetimeYears caps customer lifetime when logo churn is zero.
	maxLifetimeYears = 50.0

	// ratioSentinel stands in for "undefined, arbitrarily favorable"
	// wherever a denominator of zero would otherwise make the ratio
	// infinite, e.g. LTV:CAC with no acquisition cost.
	ratioSentinel = 999.0
)

// CalculateUnitEconomics derives per-customer lifetime value metrics.
// It never fails: degenerate inputs resolve to sentinels for the
// caller to interpret.
func CalculateUnitEconomics(p domain.CompanyProfile) domain.UnitEconomics {
	lifetime := maxLifetimeYears
	if p.LogoChurnPct > 0 {
		lifetime = 100 / p.LogoChurnPct
	}

	annualGrossProfit := p.ARPA * p.GrossMarginPct / 100
	ltv := annualGrossProfit * lifetime

	ltvToCac := ratioSentinel
	if p.CAC > 0 {
		ltvToCac = ltv / p.CAC
	}

	payback := ratioSentinel
	if p.CAC > 0 && annualGrossProfit > 0 {
		payback = p.CAC / (annualGrossProfit / 12)
	}

	return domain.UnitEconomics{
		LifetimeYears:     lifetime,
		AnnualGrossProfit: annualGrossProfit,
		LTV:               ltv,
		LTVToCAC:          ltvToCac,
		PaybackMonths:     payback,
	}
}
