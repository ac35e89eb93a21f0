package main

import (
	"log"

	"saasval/cmd"
	"saasval/internal/logger"
)

func main() {
	apiHandler, cfg, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("starting api on port %d", cfg.Server.Port)
	if err := apiHandler.StartApi(cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
