package handler

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/shared/logger"
	"hotelops/shared/timezone"
	"net/http"
	"sync"
)

var (
	server     http.Handler
	serverOnce sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
