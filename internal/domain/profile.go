package domain

import "fmt"

type BusinessModel string

const (
	BusinessModel_B2BEnterprise BusinessModel = "b2b_enterprise"
	BusinessModel_B2BMidMarket  BusinessModel = "b2b_mid_market"
	BusinessModel_B2BSMB        BusinessModel = "b2b_smb"
	BusinessModel_DevTool       BusinessModel = "dev_tool"
	BusinessModel_ConsumerSubs  BusinessModel = "consumer_subscription"
	BusinessModel_Marketplace   BusinessModel = "marketplace"
)

func BusinessModels() []BusinessModel {
	return []BusinessModel{
		BusinessModel_B2BEnterprise,
		BusinessModel_B2BMidMarket,
		BusinessModel_B2BSMB,
		BusinessModel_DevTool,
		BusinessModel_ConsumerSubs,
		BusinessModel_Marketplace,
	}
}

func ParseBusinessModel(s string) (BusinessModel, error) {
	for _, m := range BusinessModels() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown business model %q", s)
}

type Stage string

const (
	Stage_Seed   Stage = "seed"
	Stage_Early  Stage = "early"
	Stage_Growth Stage = "growth"
	Stage_Late   Stage = "late"
	Stage_Mature Stage = "mature"
)

func Stages() []Stage {
	return []Stage{Stage_Seed, Stage_Early, Stage_Growth, Stage_Late, Stage_Mature}
}

func ParseStage(s string) (Stage, error) {
	for _, st := range Stages() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q", s)
}

// CompanyProfile is the full set of operating metrics the engine
// values a company from. It is treated as immutable per invocation.
// Percentage fields carry percent points (nrr of 110 means 110%),
// dollar fields carry dollars, except ARR which the serving layers
// usually take in millions and convert.
type CompanyProfile struct {
	BusinessModel BusinessModel `json:"businessModel"`
	Stage         Stage         `json:"stage"`

	ARR             float64 `json:"arr"`
	ARRGrowthPct    float64 `json:"arrGrowthPct"`
	RecurringMixPct float64 `json:"recurringMixPct"`

	NewLogoGrowthPct float64 `json:"newLogoGrowthPct"`
	ExpansionPct     float64 `json:"expansionPct"`
	ContractionPct   float64 `json:"contractionPct"`

	NRRPct       float64 `json:"nrrPct"`
	GRRPct       float64 `json:"grrPct"`
	LogoChurnPct float64 `json:"logoChurnPct"`

	GrossMarginPct  float64 `json:"grossMarginPct"`
	EBITDAMarginPct float64 `json:"ebitdaMarginPct"`
	RnDPct          float64 `json:"rndPct"`
	SalesMktgPct    float64 `json:"salesMktgPct"`
	GnAPct          float64 `json:"gnaPct"`

	ARPA float64 `json:"arpa"`
	CAC  float64 `json:"cac"`

	Cash float64 `json:"cash"`
	Debt float64 `json:"debt"`

	AINative          bool `json:"aiNative"`
	VerticalFocus     bool `json:"verticalFocus"`
	NetworkEffects    bool `json:"networkEffects"`
	UsageBasedPricing bool `json:"usageBasedPricing"`
	PublicComps       bool `json:"publicComps"`

	HorizonYears         int     `json:"horizonYears"`
	MarginExpansionPerYr float64 `json:"marginExpansionPerYr"`
	WACCPct              float64 `json:"waccPct"`
	TerminalGrowthPct    float64 `json:"terminalGrowthPct"`
}

// NetDebt may be negative when the company holds more cash than debt.
func (p CompanyProfile) NetDebt() float64 {
	return p.Debt - p.Cash
}

// EBITDADollars is derived, not stored; margin may be negative.
func (p CompanyProfile) EBITDADollars() float64 {
	return p.ARR * p.EBITDAMarginPct / 100
}
