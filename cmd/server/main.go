package main

import (
	"fmt"

	"github.com/MKhiriev/hbnb-api/internal/app"
	"github.com/MKhiriev/hbnb-api/internal/config"
	"github.com/MKhiriev/hbnb-api/internal/handler"
	"github.com/MKhiriev/hbnb-api/internal/handler/http"
	"github.com/MKhiriev/hbnb-api/internal/logger"
	"github.com/MKhiriev/hbnb-api/internal/server"
	"github.com/MKhiriev/hbnb-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hbnb-api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	info := app.DefaultInfo
	info.Version = cfg.App.Version

	application, err := app.NewAssembler(config.NewResolver(), log, app.WithInfo(info)).
		Assemble(cfg.App.Profile, app.DefaultMounts(http.Namespaces()...))
	if err != nil {
		log.Fatal().Err(err).Msg("error assembling application")
	}

	profile := application.Profile()
	log = log.ForProfile(profile.Name, profile.Debug)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(application, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
