package calculator

import "saasval/internal/domain"

// ValuationHandler runs the full valuation against one profile. It
// holds no mutable state so a single handler is safe to share across
// goroutines and sensitivity sweeps.
type ValuationHandler struct {
	// NRRTolerance is the reconciliation drift allowed between stated
	// and bridge-derived NRR, in percent points.
	NRRTolerance float64
}

func NewValuationHandler() ValuationHandler {
	return ValuationHandler{NRRTolerance: DefaultNRRTolerance}
}

// ComputeValuation executes the seven calculators in dependency order
// and assembles their sub-results. Deterministic: identical profiles
// produce identical results.
func (h ValuationHandler) ComputeValuation(p domain.CompanyProfile) domain.ValuationResult {
	tolerance := h.NRRTolerance
	if tolerance <= 0 {
		tolerance = DefaultNRRTolerance
	}

	unitEcon := CalculateUnitEconomics(p)
	efficiency := CalculateEfficiency(p)
	bridge := CalculateARRBridge(p, tolerance)

	buildUp := CalculateMultipleBuildUp(p, efficiency, unitEcon)
	dcf := CalculateDCF(p)
	cohorts := CalculateCohorts(p)
	scores := CalculateQualityScores(p, unitEcon, efficiency)

	scenarios := DeriveScenarios(p, buildUp.BaseMultiple)
	dcfMultiple := 0.0
	if p.ARR > 0 {
		dcfMultiple = dcf.EnterpriseValue / p.ARR
	}
	scenarios.DCF = domain.ScenarioResult{
		Multiple:        dcfMultiple,
		EnterpriseValue: dcf.EnterpriseValue,
		EquityValue:     dcf.EnterpriseValue - p.NetDebt(),
	}

	return domain.ValuationResult{
		UnitEconomics: unitEcon,
		Efficiency:    efficiency,
		Bridge:        bridge,
		BuildUp:       buildUp,
		DCF:           dcf,
		Cohorts:       cohorts,
		Scores:        scores,
		Scenarios:     scenarios,
	}
}
