package main

import (
	"casa/config"
	"casa/di"
	"casa/shared/logger"
)

// @title Casa Property Rental API
// @version 1.0
// @description REST API for managing rental properties, guests, bookings, maintenance, expenses and guest messaging over WhatsApp.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
