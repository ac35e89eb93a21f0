package api

import (
	"fmt"

	"saasval/internal/domain"
	"saasval/internal/util"

	"github.com/gin-gonic/gin"
)

// valuationRequest mirrors CompanyProfile with UI-friendly units: ARR
// arrives in millions, enums as strings validated on parse.
type valuationRequest struct {
	BusinessModel string `json:"businessModel"`
	Stage         string `json:"stage"`

	ARRMillions     float64 `json:"arrMillions"`
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

	CashMillions float64 `json:"cashMillions"`
	DebtMillions float64 `json:"debtMillions"`

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

func (r valuationRequest) toProfile() (domain.CompanyProfile, error) {
	model, err := domain.ParseBusinessModel(r.BusinessModel)
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	stage, err := domain.ParseStage(r.Stage)
	if err != nil {
		return domain.CompanyProfile{}, err
	}

	return domain.CompanyProfile{
		BusinessModel:        model,
		Stage:                stage,
		ARR:                  r.ARRMillions * 1e6,
		ARRGrowthPct:         r.ARRGrowthPct,
		RecurringMixPct:      r.RecurringMixPct,
		NewLogoGrowthPct:     r.NewLogoGrowthPct,
		ExpansionPct:         r.ExpansionPct,
		ContractionPct:       r.ContractionPct,
		NRRPct:               r.NRRPct,
		GRRPct:               r.GRRPct,
		LogoChurnPct:         r.LogoChurnPct,
		GrossMarginPct:       r.GrossMarginPct,
		EBITDAMarginPct:      r.EBITDAMarginPct,
		RnDPct:               r.RnDPct,
		SalesMktgPct:         r.SalesMktgPct,
		GnAPct:               r.GnAPct,
		ARPA:                 r.ARPA,
		CAC:                  r.CAC,
		Cash:                 r.CashMillions * 1e6,
		Debt:                 r.DebtMillions * 1e6,
		AINative:             r.AINative,
		VerticalFocus:        r.VerticalFocus,
		NetworkEffects:       r.NetworkEffects,
		UsageBasedPricing:    r.UsageBasedPricing,
		PublicComps:          r.PublicComps,
		HorizonYears:         r.HorizonYears,
		MarginExpansionPerYr: r.MarginExpansionPerYr,
		WACCPct:              r.WACCPct,
		TerminalGrowthPct:    r.TerminalGrowthPct,
	}, nil
}

type scenarioSummary struct {
	Multiple        float64 `json:"multiple"`
	EnterpriseValue float64 `json:"enterpriseValue"`
	EquityValue     float64 `json:"equityValue"`
}

type valuationResponse struct {
	Result  domain.ValuationResult     `json:"result"`
	Summary map[string]scenarioSummary `json:"summary"`
}

func (m ApiHandler) valuation(c *gin.Context) {
	var requestBody valuationRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	profile, err := requestBody.toProfile()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result := m.ValuationHandler.ComputeValuation(profile)

	c.JSON(200, valuationResponse{
		Result: result,
		Summary: map[string]scenarioSummary{
			"bear": summarize(result.Scenarios.Bear),
			"base": summarize(result.Scenarios.Base),
			"bull": summarize(result.Scenarios.Bull),
			"dcf":  summarize(result.Scenarios.DCF),
		},
	})
}

func summarize(s domain.ScenarioResult) scenarioSummary {
	return scenarioSummary{
		Multiple:        util.RoundTo(s.Multiple, 2),
		EnterpriseValue: util.RoundDollars(s.EnterpriseValue),
		EquityValue:     util.RoundDollars(s.EquityValue),
	}
}
