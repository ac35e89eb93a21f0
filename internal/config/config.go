package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds serving-layer settings. The engine itself takes no
// configuration beyond the NRR tolerance, which is threaded into the
// valuation handler at wiring time.
type Config struct {
	Server struct {
		Port    int    `mapstructure:"port"`
		GinMode string `mapstructure:"gin_mode"`
	} `mapstructure:"server"`

	Engine struct {
		// NRRTolerancePts is the allowed drift between stated and
		// bridge-derived NRR before the reconciliation flag trips.
		NRRTolerancePts float64 `mapstructure:"nrr_tolerance_pts"`
	} `mapstructure:"engine"`

	Grid struct {
		MaxCells int `mapstructure:"max_cells"`
	} `mapstructure:"grid"`
}

// Load reads config.yaml from the working directory if present, then
// applies SAASVAL_-prefixed environment overrides on top of defaults.
// A missing file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3009)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("engine.nrr_tolerance_pts", 5.0)
	v.SetDefault("grid.max_cells", 64)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SAASVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
