package main

import (
	"os"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/logger"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/server"
)

// @title Kabale University AI & IndabaX Club API
// @version 1.0
// @description Content API for the Kabale University AI and IndabaX club website

// @contact.name AI Club Tech Team
// @contact.email aiclub@kab.ac.ug

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for the admin surface

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
