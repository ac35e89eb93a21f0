package service

import (
	"testing"

	"saasval/internal/calculator"
	"saasval/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func gridProfile() domain.CompanyProfile {
	return domain.CompanyProfile{
		BusinessModel:     domain.BusinessModel_B2BMidMarket,
		Stage:             domain.Stage_Growth,
		ARR:               20_000_000,
		ARRGrowthPct:      45,
		RecurringMixPct:   90,
		NRRPct:            112,
		GRRPct:            92,
		LogoChurnPct:      6,
		GrossMarginPct:    78,
		EBITDAMarginPct:   -8,
		RnDPct:            18,
		SalesMktgPct:      30,
		GnAPct:            14,
		ARPA:              25_000,
		CAC:               18_000,
		HorizonYears:      5,
		WACCPct:           13,
		TerminalGrowthPct: 3,
	}
}

func newHandler() SensitivityHandler {
	return SensitivityHandler{ValuationHandler: calculator.NewValuationHandler()}
}

func TestSensitivityHandler_ComputeGrid(t *testing.T) {
	input := SensitivityInput{
		Profile: gridProfile(),
		Row:     AxisSpec{Axis: GridAxis_ARRGrowth, Min: 10, Max: 70, Steps: 7},
		Col:     AxisSpec{Axis: GridAxis_NRR, Min: 85, Max: 125, Steps: 5},
		Metric:  GridMetric_BaseMultiple,
	}

	t.Run("full recompute per cell", func(t *testing.T) {
		out, err := newHandler().ComputeGrid(input)
		require.NoError(t, err)

		require.Len(t, out.RowValues, 7)
		require.Len(t, out.ColValues, 5)
		require.Len(t, out.Cells, 7)
		for _, row := range out.Cells {
			require.Len(t, row, 5)
		}

		require.Equal(t, 10.0, out.RowValues[0])
		require.Equal(t, 70.0, out.RowValues[6])
		require.Equal(t, 85.0, out.ColValues[0])
		require.Equal(t, 125.0, out.ColValues[4])
	})

	t.Run("grid is deterministic", func(t *testing.T) {
		first, err := newHandler().ComputeGrid(input)
		require.NoError(t, err)
		second, err := newHandler().ComputeGrid(input)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("multiple rises with growth and NRR", func(t *testing.T) {
		out, err := newHandler().ComputeGrid(input)
		require.NoError(t, err)

		require.Greater(t, out.Cells[6][4], out.Cells[0][0])
		require.Equal(t, out.Stats.Max, out.Cells[6][4])
	})

	t.Run("stats summarize the flattened grid", func(t *testing.T) {
		out, err := newHandler().ComputeGrid(input)
		require.NoError(t, err)

		require.GreaterOrEqual(t, out.Stats.Max, out.Stats.Mean)
		require.GreaterOrEqual(t, out.Stats.Mean, out.Stats.Min)
		require.Greater(t, out.Stats.Stdev, 0.0)
	})

	t.Run("input profile is untouched", func(t *testing.T) {
		p := gridProfile()
		in := input
		in.Profile = p

		_, err := newHandler().ComputeGrid(in)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(gridProfile(), p))
	})

	t.Run("rejects oversized grids", func(t *testing.T) {
		in := input
		in.Row.Steps = 20
		in.Col.Steps = 20

		_, err := newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "cell limit")
	})

	t.Run("rejects duplicate axes", func(t *testing.T) {
		in := input
		in.Col = in.Row

		_, err := newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "must differ")
	})

	t.Run("rejects unknown axis and metric", func(t *testing.T) {
		in := input
		in.Row.Axis = "shoe_size"
		_, err := newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "unknown grid axis")

		in = input
		in.Metric = "sharpe"
		_, err = newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "unknown grid metric")
	})

	t.Run("rejects degenerate ranges", func(t *testing.T) {
		in := input
		in.Row.Min, in.Row.Max = 50, 50
		_, err := newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "must exceed")

		in = input
		in.Row.Steps = 1
		_, err = newHandler().ComputeGrid(in)
		require.ErrorContains(t, err, "at least 2 steps")
	})
}
