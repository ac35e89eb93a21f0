package calculator

import (
	"testing"

	"saasval/internal/domain"

	"github.com/stretchr/testify/require"
)

func growthStageProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		BusinessModel:   domain.BusinessModel_B2BEnterprise,
		Stage:           domain.Stage_Growth,
		ARR:             12_000_000,
		ARRGrowthPct:    40,
		RecurringMixPct: 95,
		NRRPct:          108,
		GRRPct:          91,
		LogoChurnPct:    7,
		GrossMarginPct:  76,
		EBITDAMarginPct: -12,
		SalesMktgPct:    33,
		ARPA:            48_000,
		CAC:             40_000,
	}
}

func buildUpFor(p domain.CompanyProfile) domain.MultipleBuildUp {
	return CalculateMultipleBuildUp(p, CalculateEfficiency(p), CalculateUnitEconomics(p))
}

func TestCalculateMultipleBuildUp(t *testing.T) {
	t.Run("growth stage enterprise walk", func(t *testing.T) {
		out := buildUpFor(growthStageProfile())

		require.Equal(t, 7.0, out.Anchor)

		labels := make([]string, 0, len(out.Steps))
		for _, s := range out.Steps {
			labels = append(labels, s.Label)
		}
		require.Equal(t, []string{
			"growth_vs_stage_median",
			"rule_of_40",
			"nrr_band",
			"grr",
			"gross_margin",
			"ltv_cac",
			"revenue_mix",
			"size_premium",
		}, labels)

		// anchor 7.0, +0.4 growth, -2.64 rule of 40, 0 nrr, 0 grr,
		// 0 gross margin, +0.6 ltv:cac, +0.3 mix, x1.05 size
		require.InDelta(t, 0.4, out.Steps[0].Delta, 1e-9)
		require.InDelta(t, -2.64, out.Steps[1].Delta, 1e-9)
		require.InDelta(t, 0.0, out.Steps[2].Delta, 1e-9)
		require.InDelta(t, 5.943, out.BaseMultiple, 1e-9)
	})

	t.Run("audit trail cumulative equals the running total", func(t *testing.T) {
		out := buildUpFor(growthStageProfile())

		running := out.Anchor
		for _, step := range out.Steps {
			running += step.Delta
			require.InDelta(t, running, step.Cumulative, 1e-9, "step %s", step.Label)
		}
		require.InDelta(t, running, out.BaseMultiple, 1e-9)
	})

	t.Run("technology modifiers fold into one trail entry", func(t *testing.T) {
		p := growthStageProfile()
		p.AINative = true
		p.NetworkEffects = true

		plain := buildUpFor(growthStageProfile())
		modified := buildUpFor(p)

		last := modified.Steps[len(modified.Steps)-1]
		require.Equal(t, "technology_modifiers", last.Label)
		require.InDelta(t, plain.BaseMultiple*1.20*1.10, modified.BaseMultiple, 1e-9)
	})

	t.Run("floor clamps degenerate input to exactly 0.8", func(t *testing.T) {
		p := domain.CompanyProfile{
			BusinessModel:   domain.BusinessModel_ConsumerSubs,
			Stage:           domain.Stage_Mature,
			ARR:             5_000_000,
			ARRGrowthPct:    -10,
			RecurringMixPct: 40,
			NRRPct:          55,
			GRRPct:          60,
			LogoChurnPct:    40,
			GrossMarginPct:  35,
			EBITDAMarginPct: -40,
			SalesMktgPct:    20,
			ARPA:            1_000,
			CAC:             9_000,
		}

		out := buildUpFor(p)
		require.Equal(t, 0.8, out.BaseMultiple)
	})

	t.Run("ceiling clamps runaway input to exactly 50", func(t *testing.T) {
		p := domain.CompanyProfile{
			BusinessModel:   domain.BusinessModel_DevTool,
			Stage:           domain.Stage_Mature,
			ARR:             150_000_000,
			ARRGrowthPct:    400,
			RecurringMixPct: 98,
			NRRPct:          145,
			GRRPct:          97,
			LogoChurnPct:    2,
			GrossMarginPct:  88,
			EBITDAMarginPct: 25,
			SalesMktgPct:    20,
			ARPA:            100_000,
			CAC:             10_000,
			AINative:        true,
			PublicComps:     true,
		}

		out := buildUpFor(p)
		require.Equal(t, 50.0, out.BaseMultiple)
	})

	t.Run("nrr band deltas are non-decreasing in NRR", func(t *testing.T) {
		prev := -1e9
		for _, nrr := range []float64{85, 95, 105, 115, 125} {
			delta := (nrrBandMultiple(nrr) - nrrAnchorBandMultiple) * privateMarketDiscount
			require.GreaterOrEqual(t, delta, prev, "nrr %v", nrr)
			prev = delta
		}
	})

	t.Run("cross-check multiples are nil when not meaningful", func(t *testing.T) {
		out := buildUpFor(growthStageProfile())

		require.Nil(t, out.EVToEBITDA, "negative EBITDA")
		require.NotNil(t, out.EVToGrossProfit)
		require.NotNil(t, out.EVToNetNewARR)
	})
}

func TestDeriveScenarios(t *testing.T) {
	p := growthStageProfile()
	p.Cash = 8_000_000
	p.Debt = 2_000_000

	out := DeriveScenarios(p, 6.0)

	t.Run("strict bear/base/bull ordering", func(t *testing.T) {
		require.Less(t, out.Bear.Multiple, out.Base.Multiple)
		require.Less(t, out.Base.Multiple, out.Bull.Multiple)
	})

	t.Run("equity nets debt against cash", func(t *testing.T) {
		require.Equal(t, 72_000_000.0, out.Base.EnterpriseValue)
		// net cash position adds to equity value
		require.Equal(t, 78_000_000.0, out.Base.EquityValue)
	})

	t.Run("scenario factors", func(t *testing.T) {
		require.InDelta(t, 6.0*BearFactor, out.Bear.Multiple, 1e-9)
		require.InDelta(t, 6.0*BullFactor, out.Bull.Multiple, 1e-9)
	})
}
