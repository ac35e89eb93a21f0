package calculator

import (
	"math"

	"saasval/internal/domain"
)

// DefaultNRRTolerance is the allowed drift, in percent points, between
// the NRR implied by the bridge components and the separately stated
// NRR input before the reconciliation flag trips.
const DefaultNRRTolerance = 5.0

// CalculateARRBridge walks opening ARR through new logos, expansion,
// contraction, and churn to a closing figure, and checks the implied
// NRR against the stated one.
func CalculateARRBridge(p domain.CompanyProfile, nrrTolerance float64) domain.ARRBridge {
	newLogo := p.ARR * p.NewLogoGrowthPct / 100
	expansion := p.ARR * p.ExpansionPct / 100
	contraction := p.ARR * p.ContractionPct / 100
	churned := p.ARR * (100 - p.GRRPct) / 100

	closing := p.ARR + newLogo + expansion - contraction - churned

	derivedNRR := 0.0
	if p.ARR != 0 {
		derivedNRR = (p.ARR - churned - contraction + expansion) / p.ARR * 100
	}

	return domain.ARRBridge{
		OpeningARR:     p.ARR,
		NewLogoARR:     newLogo,
		ExpansionARR:   expansion,
		ContractionARR: contraction,
		ChurnedARR:     churned,
		ClosingARR:     closing,
		DerivedNRRPct:  derivedNRR,
		NRRReconciles:  math.Abs(derivedNRR-p.NRRPct) <= nrrTolerance,
	}
}
