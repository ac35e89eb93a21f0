package calculator

import "saasval/internal/domain"

// CalculateQualityScores rolls retention, growth, and efficiency
// metrics into weighted 0-100 composites. Every component scores
// through a fixed bucket ladder rather than a continuous function so
// each point award is traceable to one threshold row.
func CalculateQualityScores(
	p domain.CompanyProfile,
	unitEcon domain.UnitEconomics,
	efficiency domain.EfficiencyMetrics,
) domain.QualityScores {
	retention := 0.40*ladderScore(nrrScoreLadder, p.NRRPct, false) +
		0.35*ladderScore(grrScoreLadder, p.GRRPct, false) +
		0.25*ladderScore(logoChurnScoreLadder, p.LogoChurnPct, true)

	growthRatio := p.ARRGrowthPct / stageGrowthMedian(p.Stage)

	burnScore := 100.0
	if efficiency.HasBurn {
		burnScore = ladderScore(burnMultipleScoreLadder, efficiency.BurnMultiple, true)
	}

	growth := 0.40*ladderScore(growthRatioScoreLadder, growthRatio, false) +
		0.30*ladderScore(magicNumberScoreLadder, efficiency.MagicNumber, false) +
		0.30*burnScore

	effScore := 0.35*ladderScore(ruleOf40ScoreLadder, efficiency.RuleOf40, false) +
		0.30*ladderScore(grossMarginScoreLadder, p.GrossMarginPct, false) +
		0.20*ladderScore(ltvCacScoreLadder, unitEcon.LTVToCAC, false) +
		0.15*ladderScore(cacPaybackScoreLadder, unitEcon.PaybackMonths, true)

	retention = clamp(retention, 0, 100)
	growth = clamp(growth, 0, 100)
	effScore = clamp(effScore, 0, 100)

	return domain.QualityScores{
		Retention:  retention,
		Growth:     growth,
		Efficiency: effScore,
		Composite:  clamp(0.35*retention+0.35*growth+0.30*effScore, 0, 100),
	}
}
