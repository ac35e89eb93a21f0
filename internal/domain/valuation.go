package domain

// AdjustmentStep is one entry in the multiple build-up audit trail.
// Delta is signed multiple points; for the multiplicative steps it is
// the additive-equivalent amount, for display only. Cumulative is the
// running total immediately after the step applied.
type AdjustmentStep struct {
	Label      string  `json:"label"`
	Delta      float64 `json:"delta"`
	Cumulative float64 `json:"cumulative"`
}

type ScenarioResult struct {
	Multiple        float64 `json:"multiple"`
	EnterpriseValue float64 `json:"enterpriseValue"`
	EquityValue     float64 `json:"equityValue"`
}

type Scenarios struct {
	Bear ScenarioResult `json:"bear"`
	Base ScenarioResult `json:"base"`
	Bull ScenarioResult `json:"bull"`
	DCF  ScenarioResult `json:"dcf"`
}

type UnitEconomics struct {
	LifetimeYears     float64 `json:"lifetimeYears"`
	AnnualGrossProfit float64 `json:"annualGrossProfitPerCustomer"`
	LTV               float64 `json:"ltv"`
	LTVToCAC          float64 `json:"ltvToCac"`
	PaybackMonths     float64 `json:"paybackMonths"`
}

// EfficiencyMetrics carries HasBurn alongside BurnMultiple because a
// burn multiple of 0 is also the sentinel for "profitable, no burn";
// callers that care about the difference check the flag.
type EfficiencyMetrics struct {
	RuleOf40        float64 `json:"ruleOf40"`
	NetNewARR       float64 `json:"netNewArr"`
	MagicNumber     float64 `json:"magicNumber"`
	SalesEfficiency float64 `json:"salesEfficiency"`
	NetBurn         float64 `json:"netBurn"`
	BurnMultiple    float64 `json:"burnMultiple"`
	HasBurn         bool    `json:"hasBurn"`
}

type ARRBridge struct {
	OpeningARR     float64 `json:"openingArr"`
	NewLogoARR     float64 `json:"newLogoArr"`
	ExpansionARR   float64 `json:"expansionArr"`
	ContractionARR float64 `json:"contractionArr"`
	ChurnedARR     float64 `json:"churnedArr"`
	ClosingARR     float64 `json:"closingArr"`
	DerivedNRRPct  float64 `json:"derivedNrrPct"`
	// NRRReconciles is false when the NRR implied by the bridge
	// components drifts from the stated NRR by more than the
	// configured tolerance.
	NRRReconciles bool `json:"nrrReconciles"`
}

// MultipleBuildUp retains the ordered audit trail of every factor
// applied on top of the anchor. Cross-check multiples are nil when
// their denominator is non-positive.
type MultipleBuildUp struct {
	Anchor          float64          `json:"anchor"`
	Steps           []AdjustmentStep `json:"steps"`
	BaseMultiple    float64          `json:"baseMultiple"`
	EVToEBITDA      *float64         `json:"evToEbitda"`
	EVToGrossProfit *float64         `json:"evToGrossProfit"`
	EVToNetNewARR   *float64         `json:"evToNetNewArr"`
}

type DcfYearRow struct {
	Year            int     `json:"year"`
	ARR             float64 `json:"arr"`
	GrowthPct       float64 `json:"growthPct"`
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"grossProfit"`
	EBITDA          float64 `json:"ebitda"`
	EBITDAMarginPct float64 `json:"ebitdaMarginPct"`
	EBIT            float64 `json:"ebit"`
	NOPAT           float64 `json:"nopat"`
	FreeCashFlow    float64 `json:"freeCashFlow"`
	DiscountFactor  float64 `json:"discountFactor"`
	PresentValue    float64 `json:"presentValue"`
}

type DcfProjection struct {
	Years           []DcfYearRow `json:"years"`
	SumPVFCF        float64      `json:"sumPvFcf"`
	TerminalValue   float64      `json:"terminalValue"`
	PVTerminalValue float64      `json:"pvTerminalValue"`
	// ExitCheckTV is the 18x final-year-EBITDA cross-check terminal
	// value; it is never part of EnterpriseValue.
	ExitCheckTV           float64 `json:"exitCheckTv"`
	EnterpriseValue       float64 `json:"enterpriseValue"`
	TerminalGrowthClamped bool    `json:"terminalGrowthClamped"`
}

// CohortCurve tracks one acquisition vintage's net revenue retention
// over eight years, indexed from the entry year. Retention[0] is
// always 1.
type CohortCurve struct {
	Vintage     string     `json:"vintage"`
	EntryNRRPct float64    `json:"entryNrrPct"`
	Retention   [8]float64 `json:"retention"`
}

type QualityScores struct {
	Retention  float64 `json:"retention"`
	Growth     float64 `json:"growth"`
	Efficiency float64 `json:"efficiency"`
	Composite  float64 `json:"composite"`
}

// ValuationResult is built fresh on every computation and never
// mutated after return.
type ValuationResult struct {
	UnitEconomics UnitEconomics     `json:"unitEconomics"`
	Efficiency    EfficiencyMetrics `json:"efficiency"`
	Bridge        ARRBridge         `json:"bridge"`
	BuildUp       MultipleBuildUp   `json:"buildUp"`
	DCF           DcfProjection     `json:"dcf"`
	Cohorts       []CohortCurve     `json:"cohorts"`
	Scores        QualityScores     `json:"scores"`
	Scenarios     Scenarios         `json:"scenarios"`
}
