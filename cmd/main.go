// Package main is the entry point for the cafe-service application.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/azurecafe/cafe-service/config"
	"github.com/azurecafe/cafe-service/internal/app"
)

func main() {
	cfg := config.Load()

	c, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	c.Run()
}
