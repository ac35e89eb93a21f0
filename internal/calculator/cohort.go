package calculator

import (
	"fmt"
	"math"

	"saasval/internal/domain"
)

const (
	cohortCount = 5
	cohortYears = 8

	// vintageNRRStep back-dates each older vintage's entry NRR by this
	// many points per year of age, floored at GRR, on the view that
	// expansion motion matures over a company's life.
	vintageNRRStep = 2.0
)

// CalculateCohorts models net revenue retention curves for five
// acquisition vintages. Each curve combines logo survival at the
// stated churn rate with per-customer expansion implied by that
// vintage's entry NRR; index 0 is the entry year and is always 1.
func CalculateCohorts(p domain.CompanyProfile) []domain.CohortCurve {
	survivalRate := 1 - p.LogoChurnPct/100

	cohorts := make([]domain.CohortCurve, 0, cohortCount)
	for age := cohortCount - 1; age >= 0; age-- {
		entryNRR := p.NRRPct - vintageNRRStep*float64(age)
		if entryNRR < p.GRRPct {
			entryNRR = p.GRRPct
		}

		expansionRate := 0.0
		if survivalRate > 0 {
			expansionRate = (entryNRR / 100) / survivalRate
		}

		curve := domain.CohortCurve{
			Vintage:     fmt.Sprintf("FY-%d", age),
			EntryNRRPct: entryNRR,
		}
		for y := 0; y < cohortYears; y++ {
			survival := math.Pow(survivalRate, float64(y))
			curve.Retention[y] = survival * math.Pow(expansionRate, float64(y))
		}
		// entry year is unit revenue regardless of inputs
		curve.Retention[0] = 1.0

		cohorts = append(cohorts, curve)
	}
	return cohorts
}
