package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, 3009, cfg.Server.Port)
		require.Equal(t, "release", cfg.Server.GinMode)
		require.Equal(t, 5.0, cfg.Engine.NRRTolerancePts)
		require.Equal(t, 64, cfg.Grid.MaxCells)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SAASVAL_SERVER_PORT", "8080")
		t.Setenv("SAASVAL_ENGINE_NRR_TOLERANCE_PTS", "3")

		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 3.0, cfg.Engine.NRRTolerancePts)
	})
}
