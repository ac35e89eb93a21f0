package calculator

import (
	"testing"

	"saasval/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCalculateCohorts(t *testing.T) {
	t.Run("five vintages of eight years each", func(t *testing.T) {
		out := CalculateCohorts(domain.CompanyProfile{
			NRRPct:       110,
			GRRPct:       92,
			LogoChurnPct: 8,
		})

		require.Len(t, out, 5)
		require.Equal(t, "FY-4", out[0].Vintage)
		require.Equal(t, "FY-0", out[4].Vintage)
	})

	t.Run("year zero is exactly one for any input", func(t *testing.T) {
		profiles := []domain.CompanyProfile{
			{NRRPct: 130, GRRPct: 95, LogoChurnPct: 2},
			{NRRPct: 70, GRRPct: 60, LogoChurnPct: 45},
			{NRRPct: 0, GRRPct: 0, LogoChurnPct: 100},
			{NRRPct: 110, GRRPct: 90, LogoChurnPct: 0},
		}
		for _, p := range profiles {
			for _, cohort := range CalculateCohorts(p) {
				require.Equal(t, 1.0, cohort.Retention[0], "vintage %s", cohort.Vintage)
			}
		}
	})

	t.Run("strong NRR compounds above one", func(t *testing.T) {
		out := CalculateCohorts(domain.CompanyProfile{
			NRRPct:       125,
			GRRPct:       95,
			LogoChurnPct: 5,
		})

		newest := out[len(out)-1]
		require.Greater(t, newest.Retention[7], 1.0)
		for y := 1; y < 8; y++ {
			require.Greater(t, newest.Retention[y], newest.Retention[y-1])
		}
	})

	t.Run("weak NRR decays toward zero", func(t *testing.T) {
		out := CalculateCohorts(domain.CompanyProfile{
			NRRPct:       80,
			GRRPct:       75,
			LogoChurnPct: 20,
		})

		newest := out[len(out)-1]
		require.Less(t, newest.Retention[7], 1.0)
		for y := 1; y < 8; y++ {
			require.Less(t, newest.Retention[y], newest.Retention[y-1])
		}
	})

	t.Run("older vintages entered with lower NRR floored at GRR", func(t *testing.T) {
		out := CalculateCohorts(domain.CompanyProfile{
			NRRPct:       112,
			GRRPct:       108,
			LogoChurnPct: 6,
		})

		require.Equal(t, 108.0, out[0].EntryNRRPct) // 112 - 8 floored
		require.Equal(t, 108.0, out[1].EntryNRRPct) // 112 - 6 floored
		require.Equal(t, 108.0, out[2].EntryNRRPct)
		require.Equal(t, 110.0, out[3].EntryNRRPct)
		require.Equal(t, 112.0, out[4].EntryNRRPct)
	})
}
