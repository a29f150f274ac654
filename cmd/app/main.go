package main

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/helper"
	"hotelops/shared/logger"
	"hotelops/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Hotel Operations API
// @version 1.0
// @description Rooms, bookings, staff, kitchen and inventory for a single hotel.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
