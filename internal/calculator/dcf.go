package calculator

import (
	"math"

	"saasval/internal/domain"
)

const (
	dcfTaxRate       = 0.25
	dcfCapexPct      = 0.02
	dcfDepAmortPct   = 0.03
	dcfStockCompPct  = 0.08
	dcfWorkingCapPct = 0.02

	// ebitdaMarginCeiling caps modeled margin expansion.
	ebitdaMarginCeiling = 35.0

	// growthEndurance decays the growth rate each projected year,
	// floored at growthFloorPct.
	growthEndurance = 0.65
	growthFloorPct  = 3.0

	// smEfficiencyGain and gaLeverageGain compound yearly: S&M spend
	// improves 4%/yr, G&A leverages 3%/yr.
	smEfficiencyGain = 0.96
	gaLeverageGain   = 0.97

	// exitCheckEBITDAMultiple prices the cross-check terminal value.
	exitCheckEBITDAMultiple = 18.0

	// terminalSpreadFloor keeps Gordon Growth defined when the input
	// WACC does not exceed terminal growth: effective terminal growth
	// is clamped to WACC minus this spread and the result is flagged.
	terminalSpreadFloor = 0.5
)

// CalculateDCF projects the income statement down to free cash flow
// over max(5, horizon) years, discounts each year at the input WACC,
// and capitalizes the final year with Gordon Growth.
func CalculateDCF(p domain.CompanyProfile) domain.DcfProjection {
	years := p.HorizonYears
	if years < 5 {
		years = 5
	}

	arr := p.ARR
	growth := p.ARRGrowthPct
	margin := p.EBITDAMarginPct

	rows := make([]domain.DcfYearRow, 0, years)
	sumPV := 0.0
	finalFCF := 0.0
	finalEBITDA := 0.0

	for i := 1; i <= years; i++ {
		arr *= 1 + growth/100
		// margin is the planned expansion path reported in the
		// schedule; EBITDA dollars come from the operating build below
		margin = math.Min(ebitdaMarginCeiling, margin+p.MarginExpansionPerYr)

		revenue := arr
		grossProfit := revenue * p.GrossMarginPct / 100

		rnd := revenue * p.RnDPct / 100
		sm := revenue * p.SalesMktgPct / 100 * math.Pow(smEfficiencyGain, float64(i))
		gna := revenue * p.GnAPct / 100 * math.Pow(gaLeverageGain, float64(i))

		ebitda := grossProfit - (rnd + sm + gna)
		depAmort := revenue * dcfDepAmortPct
		ebit := ebitda - depAmort
		nopat := ebit * (1 - dcfTaxRate)

		capex := revenue * dcfCapexPct
		workingCapBuild := revenue * dcfWorkingCapPct * growth / 100
		stockComp := revenue * dcfStockCompPct

		fcf := nopat + depAmort - capex - workingCapBuild + stockComp

		discount := math.Pow(1+p.WACCPct/100, float64(i))
		pv := fcf / discount
		sumPV += pv

		rows = append(rows, domain.DcfYearRow{
			Year:            i,
			ARR:             arr,
			GrowthPct:       growth,
			Revenue:         revenue,
			GrossProfit:     grossProfit,
			EBITDA:          ebitda,
			EBITDAMarginPct: margin,
			EBIT:            ebit,
			NOPAT:           nopat,
			FreeCashFlow:    fcf,
			DiscountFactor:  discount,
			PresentValue:    pv,
		})

		finalFCF = fcf
		finalEBITDA = ebitda

		growth = math.Max(growthFloorPct, growth*growthEndurance)
	}

	termGrowth := p.TerminalGrowthPct
	clamped := false
	if p.WACCPct <= termGrowth {
		termGrowth = p.WACCPct - terminalSpreadFloor
		clamped = true
	}

	terminalValue := finalFCF * (1 + termGrowth/100) / ((p.WACCPct - termGrowth) / 100)
	pvTerminal := terminalValue / math.Pow(1+p.WACCPct/100, float64(years))

	return domain.DcfProjection{
		Years:                 rows,
		SumPVFCF:              sumPV,
		TerminalValue:         terminalValue,
		PVTerminalValue:       pvTerminal,
		ExitCheckTV:           finalEBITDA * exitCheckEBITDAMultiple,
		EnterpriseValue:       sumPV + pvTerminal,
		TerminalGrowthClamped: clamped,
	}
}
