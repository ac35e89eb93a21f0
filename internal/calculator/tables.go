package calculator

import "saasval/internal/domain"

// anchorMultiples holds private-M&A-anchored median EV/ARR multiples
// by business model and stage. Represented as data so each row can be
// unit-tested and audited on its own.
var anchorMultiples = map[domain.BusinessModel]map[domain.Stage]float64{
	domain.BusinessModel_B2BEnterprise: {
		domain.Stage_Seed:   9.0,
		domain.Stage_Early:  8.0,
		domain.Stage_Growth: 7.0,
		domain.Stage_Late:   5.5,
		domain.Stage_Mature: 4.5,
	},
	domain.BusinessModel_B2BMidMarket: {
		domain.Stage_Seed:   8.5,
		domain.Stage_Early:  7.5,
		domain.Stage_Growth: 6.5,
		domain.Stage_Late:   5.0,
		domain.Stage_Mature: 4.0,
	},
	domain.BusinessModel_B2BSMB: {
		domain.Stage_Seed:   7.5,
		domain.Stage_Early:  6.5,
		domain.Stage_Growth: 5.5,
		domain.Stage_Late:   4.5,
		domain.Stage_Mature: 3.5,
	},
	domain.BusinessModel_DevTool: {
		domain.Stage_Seed:   10.0,
		domain.Stage_Early:  9.0,
		domain.Stage_Growth: 7.5,
		domain.Stage_Late:   6.0,
		domain.Stage_Mature: 4.8,
	},
	domain.BusinessModel_ConsumerSubs: {
		domain.Stage_Seed:   6.5,
		domain.Stage_Early:  5.5,
		domain.Stage_Growth: 4.5,
		domain.Stage_Late:   3.5,
		domain.Stage_Mature: 2.8,
	},
	domain.BusinessModel_Marketplace: {
		domain.Stage_Seed:   7.0,
		domain.Stage_Early:  6.0,
		domain.Stage_Growth: 5.0,
		domain.Stage_Late:   4.0,
		domain.Stage_Mature: 3.2,
	},
}

// stageGrowthMedians are the reference YoY ARR growth rates (percent)
// a company at each stage is measured against.
var stageGrowthMedians = map[domain.Stage]float64{
	domain.Stage_Seed:   150,
	domain.Stage_Early:  70,
	domain.Stage_Growth: 35,
	domain.Stage_Late:   25,
	domain.Stage_Mature: 18,
}

// nrrBand maps an NRR interval [Lo, Hi) to the median EV/ARR multiple
// public SaaS companies in that band trade at. Values at or above the
// last band's Lo use the last band.
type nrrBand struct {
	Lo, Hi         float64
	PublicMultiple float64
}

var nrrBands = []nrrBand{
	{0, 90, 4.0},
	{90, 100, 6.0},
	{100, 110, 8.0},
	{110, 120, 10.5},
	{120, 1000, 13.0},
}

// nrrAnchorBandMultiple is the 100-110 band, the reference point the
// NRR adjustment is measured from.
const nrrAnchorBandMultiple = 8.0

// privateMarketDiscount scales public-market NRR premium down to
// private transaction levels.
const privateMarketDiscount = 0.60

type sizeTier struct {
	MinARR     float64
	Multiplier float64
}

// sizeTiers are checked top-down; the sub-3M tier carries a scale
// discount rather than a premium.
var sizeTiers = []sizeTier{
	{100_000_000, 1.32},
	{50_000_000, 1.22},
	{25_000_000, 1.12},
	{10_000_000, 1.05},
	{3_000_000, 1.00},
	{0, 0.72},
}

type modifierFactor struct {
	Label  string
	Active func(domain.CompanyProfile) bool
	Factor float64
}

// technologyModifiers apply in this order, each multiplying the
// running total when its flag is set.
var technologyModifiers = []modifierFactor{
	{"ai_native", func(p domain.CompanyProfile) bool { return p.AINative }, 1.20},
	{"vertical_focus", func(p domain.CompanyProfile) bool { return p.VerticalFocus }, 1.08},
	{"network_effects", func(p domain.CompanyProfile) bool { return p.NetworkEffects }, 1.10},
	{"usage_based_pricing", func(p domain.CompanyProfile) bool { return p.UsageBasedPricing }, 1.04},
	{"public_comps", func(p domain.CompanyProfile) bool { return p.PublicComps }, 1.36},
}

// scoreBucket awards Points when the metric compares favorably against
// Threshold (>= for ascending ladders, <= for inverted ones).
type scoreBucket struct {
	Threshold float64
	Points    float64
}

// Ladders are ordered best-first; the first bucket that matches wins,
// and a miss on every bucket awards the final fallback entry.

var nrrScoreLadder = []scoreBucket{
	{125, 100}, {115, 85}, {105, 70}, {95, 50}, {0, 30},
}

var grrScoreLadder = []scoreBucket{
	{95, 100}, {90, 80}, {85, 60}, {80, 40}, {0, 20},
}

// logoChurnScoreLadder is inverted: lower churn scores higher.
var logoChurnScoreLadder = []scoreBucket{
	{3, 100}, {5, 85}, {8, 65}, {12, 45}, {1e9, 25},
}

// growthRatioScoreLadder buckets growth divided by the stage median.
var growthRatioScoreLadder = []scoreBucket{
	{1.5, 100}, {1.1, 85}, {0.8, 65}, {0.5, 45}, {-1e9, 25},
}

var magicNumberScoreLadder = []scoreBucket{
	{1.5, 100}, {1.0, 80}, {0.75, 60}, {0.5, 40}, {-1e9, 20},
}

// burnMultipleScoreLadder is inverted; the no-burn case is handled
// ahead of the ladder and scores 100.
var burnMultipleScoreLadder = []scoreBucket{
	{1.0, 90}, {1.5, 75}, {2.0, 55}, {3.0, 35}, {1e9, 15},
}

var ruleOf40ScoreLadder = []scoreBucket{
	{60, 100}, {40, 85}, {25, 65}, {10, 45}, {-1e9, 25},
}

var grossMarginScoreLadder = []scoreBucket{
	{80, 100}, {72, 80}, {65, 60}, {55, 40}, {-1e9, 20},
}

var ltvCacScoreLadder = []scoreBucket{
	{6, 100}, {4, 85}, {3, 65}, {2, 45}, {-1e9, 25},
}

// cacPaybackScoreLadder is inverted: fewer months score higher.
var cacPaybackScoreLadder = []scoreBucket{
	{12, 100}, {18, 80}, {24, 60}, {36, 40}, {1e9, 20},
}

// AnchorMultiple returns the base multiple for a model/stage pair.
// Unknown values fall back to the most conservative row so arbitrary
// caller input degrades rather than crashes.
func AnchorMultiple(model domain.BusinessModel, stage domain.Stage) float64 {
	row, ok := anchorMultiples[model]
	if !ok {
		row = anchorMultiples[domain.BusinessModel_ConsumerSubs]
	}
	anchor, ok := row[stage]
	if !ok {
		anchor = row[domain.Stage_Mature]
	}
	return anchor
}

// AnchorTable exposes a copy of the full anchor grid for callers that
// render it.
func AnchorTable() map[domain.BusinessModel]map[domain.Stage]float64 {
	out := make(map[domain.BusinessModel]map[domain.Stage]float64, len(anchorMultiples))
	for model, row := range anchorMultiples {
		cp := make(map[domain.Stage]float64, len(row))
		for stage, v := range row {
			cp[stage] = v
		}
		out[model] = cp
	}
	return out
}

func stageGrowthMedian(stage domain.Stage) float64 {
	if m, ok := stageGrowthMedians[stage]; ok {
		return m
	}
	return stageGrowthMedians[domain.Stage_Mature]
}

func nrrBandMultiple(nrr float64) float64 {
	last := nrrBands[len(nrrBands)-1]
	for _, b := range nrrBands {
		if nrr >= b.Lo && nrr < b.Hi {
			return b.PublicMultiple
		}
	}
	if nrr >= last.Lo {
		return last.PublicMultiple
	}
	return nrrBands[0].PublicMultiple
}

func sizeMultiplier(arr float64) float64 {
	for _, tier := range sizeTiers[:len(sizeTiers)-1] {
		if arr >= tier.MinARR {
			return tier.Multiplier
		}
	}
	return sizeTiers[len(sizeTiers)-1].Multiplier
}

func ladderScore(ladder []scoreBucket, value float64, inverted bool) float64 {
	for _, b := range ladder[:len(ladder)-1] {
		if inverted {
			if value <= b.Threshold {
				return b.Points
			}
		} else if value >= b.Threshold {
			return b.Points
		}
	}
	return ladder[len(ladder)-1].Points
}
