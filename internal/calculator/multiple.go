package calculator

import (
	"saasval/internal/domain"
)

const (
	// multipleFloor and multipleCeiling clamp the built-up multiple so
	// degenerate slider input can't drive it negative or absurd.
	multipleFloor   = 0.8
	multipleCeiling = 50.0

	// growthSensitivity is multiple points gained per 100 points of
	// growth above the stage median (0.8 per 10 points).
	growthSensitivity = 8.0

	// ruleOf40Sensitivity is multiple points per 10 Rule-of-40 points
	// above the breakeven 40 mark.
	ruleOf40Sensitivity = 2.2

	BearFactor = 0.58
	BullFactor = 1.50
)

// CalculateMultipleBuildUp runs the ordered adjustment waterfall from
// the model/stage anchor to the base multiple. Steps 1-7 are additive,
// the size and technology steps are multiplicative; every step is
// recorded in order with its running total so the build-up can be
// audited factor by factor.
func CalculateMultipleBuildUp(
	p domain.CompanyProfile,
	efficiency domain.EfficiencyMetrics,
	unitEcon domain.UnitEconomics,
) domain.MultipleBuildUp {
	anchor := AnchorMultiple(p.BusinessModel, p.Stage)
	running := anchor
	steps := []domain.AdjustmentStep{}

	record := func(label string, delta float64) {
		running += delta
		steps = append(steps, domain.AdjustmentStep{
			Label:      label,
			Delta:      delta,
			Cumulative: running,
		})
	}

	record("growth_vs_stage_median",
		(p.ARRGrowthPct-stageGrowthMedian(p.Stage))/100*growthSensitivity)

	record("rule_of_40", (efficiency.RuleOf40-40)/10*ruleOf40Sensitivity)

	record("nrr_band",
		(nrrBandMultiple(p.NRRPct)-nrrAnchorBandMultiple)*privateMarketDiscount)

	record("grr", grrAdjustment(p.GRRPct))
	record("gross_margin", grossMarginAdjustment(p.GrossMarginPct))
	record("ltv_cac", ltvCacAdjustment(unitEcon.LTVToCAC))
	record("revenue_mix", revenueMixAdjustment(p.RecurringMixPct))

	// Size premium multiplies the running total; the recorded delta is
	// the additive equivalent, for display only.
	sized := running * sizeMultiplier(p.ARR)
	record("size_premium", sized-running)

	modified := running
	fired := false
	for _, m := range technologyModifiers {
		if m.Active(p) {
			modified *= m.Factor
			fired = true
		}
	}
	if fired {
		record("technology_modifiers", modified-running)
	}

	base := clamp(running, multipleFloor, multipleCeiling)

	baseEV := p.ARR * base
	return domain.MultipleBuildUp{
		Anchor:          anchor,
		Steps:           steps,
		BaseMultiple:    base,
		EVToEBITDA:      safeRatio(baseEV, p.EBITDADollars()),
		EVToGrossProfit: safeRatio(baseEV, p.ARR*p.GrossMarginPct/100),
		EVToNetNewARR:   safeRatio(baseEV, efficiency.NetNewARR),
	}
}

// DeriveScenarios prices bear/base/bull off the base multiple and nets
// debt against each enterprise value. The DCF scenario is filled in by
// the orchestrator.
func DeriveScenarios(p domain.CompanyProfile, baseMultiple float64) domain.Scenarios {
	scenario := func(multiple float64) domain.ScenarioResult {
		ev := p.ARR * multiple
		return domain.ScenarioResult{
			Multiple:        multiple,
			EnterpriseValue: ev,
			EquityValue:     ev - p.NetDebt(),
		}
	}
	return domain.Scenarios{
		Bear: scenario(baseMultiple * BearFactor),
		Base: scenario(baseMultiple),
		Bull: scenario(baseMultiple * BullFactor),
	}
}

func grrAdjustment(grr float64) float64 {
	switch {
	case grr >= 95:
		return 0.5
	case grr >= 88:
		return 0
	case grr < 85:
		return -1.2
	default:
		return -0.5
	}
}

func grossMarginAdjustment(gm float64) float64 {
	switch {
	case gm >= 80:
		return 0.8
	case gm >= 70:
		return 0
	case gm < 55:
		return -2.2
	case gm < 65:
		return -0.9
	default:
		return -0.3
	}
}

func ltvCacAdjustment(ltvCac float64) float64 {
	switch {
	case ltvCac >= 6:
		return 0.6
	case ltvCac >= 3.5:
		return 0
	case ltvCac < 1.5:
		return -1.8
	case ltvCac < 2.5:
		return -0.8
	default:
		return -0.3
	}
}

func revenueMixAdjustment(recurringPct float64) float64 {
	switch {
	case recurringPct >= 92:
		return 0.3
	case recurringPct < 60:
		return -1.2
	case recurringPct < 72:
		return -0.6
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// safeRatio returns nil rather than a misleading zero when the
// denominator is non-positive.
func safeRatio(numerator, denominator float64) *float64 {
	if denominator <= 0 {
		return nil
	}
	r := numerator / denominator
	return &r
}
