package main

import (
	"os"

	"github.com/espressoflow/pos-backend/internal/app"
	config "github.com/espressoflow/pos-backend/internal/cfg"
	"github.com/espressoflow/pos-backend/pkg/logger"
)

//	@title			Espresso Flow POS API
//	@version		1.0
//	@description	Бэкенд кофейни: касса, каталог, метрики и отчёты
//	@host			localhost:8080
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
