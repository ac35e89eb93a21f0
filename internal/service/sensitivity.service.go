package service

import (
	"fmt"

	"saasval/internal/calculator"
	"saasval/internal/domain"

	"github.com/montanaflynn/stats"
)

// GridAxis names a profile field a sensitivity sweep can vary.
type GridAxis string

const (
	GridAxis_ARRGrowth      GridAxis = "arr_growth"
	GridAxis_NRR            GridAxis = "nrr"
	GridAxis_GRR            GridAxis = "grr"
	GridAxis_GrossMargin    GridAxis = "gross_margin"
	GridAxis_EBITDAMargin   GridAxis = "ebitda_margin"
	GridAxis_WACC           GridAxis = "wacc"
	GridAxis_TerminalGrowth GridAxis = "terminal_growth"
	GridAxis_ARR            GridAxis = "arr"
)

// GridMetric names the output surfaced per cell.
type GridMetric string

const (
	GridMetric_BaseMultiple   GridMetric = "base_multiple"
	GridMetric_BaseEV         GridMetric = "base_ev"
	GridMetric_DCFEV          GridMetric = "dcf_ev"
	GridMetric_CompositeScore GridMetric = "composite_score"
)

// defaultMaxCells bounds a sweep; interactive grids run at most a few
// dozen cells and each cell is a full recompute.
const defaultMaxCells = 64

type AxisSpec struct {
	Axis  GridAxis `json:"axis"`
	Min   float64  `json:"min"`
	Max   float64  `json:"max"`
	Steps int      `json:"steps"`
}

type SensitivityInput struct {
	Profile domain.CompanyProfile `json:"profile"`
	Row     AxisSpec              `json:"row"`
	Col     AxisSpec              `json:"col"`
	Metric  GridMetric            `json:"metric"`
}

type GridStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
}

type SensitivityResult struct {
	Metric    GridMetric `json:"metric"`
	RowValues []float64  `json:"rowValues"`
	ColValues []float64  `json:"colValues"`
	// Cells is indexed [row][col].
	Cells [][]float64 `json:"cells"`
	Stats GridStats   `json:"stats"`
}

type SensitivityHandler struct {
	ValuationHandler calculator.ValuationHandler
	// MaxCells overrides defaultMaxCells when positive.
	MaxCells int
}

// ComputeGrid recomputes the full valuation for every (row, col)
// combination and surfaces one metric per cell with summary stats.
// The input profile is never mutated; each cell works on a copy.
func (h SensitivityHandler) ComputeGrid(in SensitivityInput) (*SensitivityResult, error) {
	if err := validateAxis(in.Row); err != nil {
		return nil, fmt.Errorf("invalid row axis: %w", err)
	}
	if err := validateAxis(in.Col); err != nil {
		return nil, fmt.Errorf("invalid col axis: %w", err)
	}
	if in.Row.Axis == in.Col.Axis {
		return nil, fmt.Errorf("row and col axes must differ, both are %q", in.Row.Axis)
	}
	extract, err := metricExtractor(in.Metric)
	if err != nil {
		return nil, err
	}

	maxCells := h.MaxCells
	if maxCells <= 0 {
		maxCells = defaultMaxCells
	}
	if in.Row.Steps*in.Col.Steps > maxCells {
		return nil, fmt.Errorf("grid of %dx%d exceeds the %d cell limit",
			in.Row.Steps, in.Col.Steps, maxCells)
	}

	rowValues := axisValues(in.Row)
	colValues := axisValues(in.Col)

	cells := make([][]float64, len(rowValues))
	flat := make([]float64, 0, len(rowValues)*len(colValues))
	for i, rv := range rowValues {
		cells[i] = make([]float64, len(colValues))
		for j, cv := range colValues {
			p := in.Profile
			applyAxis(&p, in.Row.Axis, rv)
			applyAxis(&p, in.Col.Axis, cv)

			result := h.ValuationHandler.ComputeValuation(p)
			cells[i][j] = extract(p, result)
			flat = append(flat, cells[i][j])
		}
	}

	gridStats, err := summarize(flat)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize grid: %w", err)
	}

	return &SensitivityResult{
		Metric:    in.Metric,
		RowValues: rowValues,
		ColValues: colValues,
		Cells:     cells,
		Stats:     *gridStats,
	}, nil
}

func validateAxis(spec AxisSpec) error {
	if _, err := axisSetter(spec.Axis); err != nil {
		return err
	}
	if spec.Steps < 2 {
		return fmt.Errorf("axis %q needs at least 2 steps, got %d", spec.Axis, spec.Steps)
	}
	if spec.Max <= spec.Min {
		return fmt.Errorf("axis %q max %v must exceed min %v", spec.Axis, spec.Max, spec.Min)
	}
	return nil
}

func axisValues(spec AxisSpec) []float64 {
	values := make([]float64, spec.Steps)
	stride := (spec.Max - spec.Min) / float64(spec.Steps-1)
	for i := range values {
		values[i] = spec.Min + stride*float64(i)
	}
	return values
}

func axisSetter(axis GridAxis) (func(*domain.CompanyProfile, float64), error) {
	switch axis {
	case GridAxis_ARRGrowth:
		return func(p *domain.CompanyProfile, v float64) { p.ARRGrowthPct = v }, nil
	case GridAxis_NRR:
		return func(p *domain.CompanyProfile, v float64) { p.NRRPct = v }, nil
	case GridAxis_GRR:
		return func(p *domain.CompanyProfile, v float64) { p.GRRPct = v }, nil
	case GridAxis_GrossMargin:
		return func(p *domain.CompanyProfile, v float64) { p.GrossMarginPct = v }, nil
	case GridAxis_EBITDAMargin:
		return func(p *domain.CompanyProfile, v float64) { p.EBITDAMarginPct = v }, nil
	case GridAxis_WACC:
		return func(p *domain.CompanyProfile, v float64) { p.WACCPct = v }, nil
	case GridAxis_TerminalGrowth:
		return func(p *domain.CompanyProfile, v float64) { p.TerminalGrowthPct = v }, nil
	case GridAxis_ARR:
		return func(p *domain.CompanyProfile, v float64) { p.ARR = v }, nil
	}
	return nil, fmt.Errorf("unknown grid axis %q", axis)
}

func applyAxis(p *domain.CompanyProfile, axis GridAxis, value float64) {
	setter, err := axisSetter(axis)
	if err != nil {
		// axes are validated before the sweep starts
		return
	}
	setter(p, value)
}

func metricExtractor(metric GridMetric) (func(domain.CompanyProfile, domain.ValuationResult) float64, error) {
	switch metric {
	case GridMetric_BaseMultiple:
		return func(_ domain.CompanyProfile, r domain.ValuationResult) float64 {
			return r.BuildUp.BaseMultiple
		}, nil
	case GridMetric_BaseEV:
		return func(_ domain.CompanyProfile, r domain.ValuationResult) float64 {
			return r.Scenarios.Base.EnterpriseValue
		}, nil
	case GridMetric_DCFEV:
		return func(_ domain.CompanyProfile, r domain.ValuationResult) float64 {
			return r.DCF.EnterpriseValue
		}, nil
	case GridMetric_CompositeScore:
		return func(_ domain.CompanyProfile, r domain.ValuationResult) float64 {
			return r.Scores.Composite
		}, nil
	}
	return nil, fmt.Errorf("unknown grid metric %q", metric)
}

func summarize(values []float64) (*GridStats, error) {
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil, err
	}
	return &GridStats{Min: min, Max: max, Mean: mean, Stdev: stdev}, nil
}
