package main

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/shared/logger"
	"hotelops/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	worker := di.InitializeWorker()
	worker.Serve()
}
