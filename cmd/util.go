package cmd

import (
	"fmt"

	"saasval/api"
	"saasval/internal/calculator"
	"saasval/internal/config"
	"saasval/internal/service"

	"github.com/gin-gonic/gin"
)

// InitializeDependencies wires the engine, the sensitivity service,
// and the api handler from config. The engine is stateless, so one
// handler serves every request.
func InitializeDependencies() (*api.ApiHandler, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	valuationHandler := calculator.ValuationHandler{
		NRRTolerance: cfg.Engine.NRRTolerancePts,
	}

	apiHandler := &api.ApiHandler{
		ValuationHandler: valuationHandler,
		SensitivityHandler: service.SensitivityHandler{
			ValuationHandler: valuationHandler,
			MaxCells:         cfg.Grid.MaxCells,
		},
	}

	return apiHandler, cfg, nil
}
