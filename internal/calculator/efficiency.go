package calculator

import (
	"math"

	"saasval/internal/domain"
)

// CalculateEfficiency derives capital-efficiency metrics from growth,
// margin, and spend inputs. Ratios whose denominator is zero or
// negative resolve to 0; HasBurn distinguishes a genuinely computed
// burn multiple from the profitable-company sentinel.
func CalculateEfficiency(p domain.CompanyProfile) domain.EfficiencyMetrics {
	ruleOf40 := p.ARRGrowthPct + p.EBITDAMarginPct

	netNewARR := p.ARR * p.ARRGrowthPct / 100
	salesMktg := p.ARR * p.SalesMktgPct / 100

	magicNumber := 0.0
	salesEfficiency := 0.0
	if salesMktg > 0 {
		magicNumber = (netNewARR * p.GrossMarginPct / 100) / salesMktg
		salesEfficiency = netNewARR / salesMktg
	}

	netBurn := math.Max(0, -p.ARR*p.EBITDAMarginPct/100)

	burnMultiple := 0.0
	hasBurn := false
	if netNewARR > 0 && netBurn > 0 {
		burnMultiple = netBurn / netNewARR
		hasBurn = true
	}

	return domain.EfficiencyMetrics{
		RuleOf40:        ruleOf40,
		NetNewARR:       netNewARR,
		MagicNumber:     magicNumber,
		SalesEfficiency: salesEfficiency,
		NetBurn:         netBurn,
		BurnMultiple:    burnMultiple,
		HasBurn:         hasBurn,
	}
}
