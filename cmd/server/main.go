package main

import (
	"fmt"
	"log"

	"harvester/internal/config"
	"harvester/internal/fetch"
	"harvester/internal/handler"
	"harvester/internal/oracle"
	"harvester/internal/oracle/gemini"
	"harvester/internal/oracle/openai"
	"harvester/internal/port"
	"harvester/internal/repository/postgres"
	"harvester/internal/router"
	"harvester/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	oracle.RegisterProvider("gemini", func(cfg *config.OracleProviderConfig) (port.SuggestionOracle, error) {
		return gemini.NewOracle(cfg), nil
	})
	oracle.RegisterProvider("openai", func(cfg *config.OracleProviderConfig) (port.SuggestionOracle, error) {
		return openai.NewOracle(cfg), nil
	})
}

func buildOracle(cfg *config.OracleConfig) (port.SuggestionOracle, error) {
	primary, err := oracle.NewOracle(&cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("failed to create primary oracle: %w", err)
	}

	oracles := []port.SuggestionOracle{primary}
	names := []string{cfg.Primary.Provider}

	if secondaryCfg := cfg.SecondaryConfig(); secondaryCfg != nil {
		secondary, err := oracle.NewOracle(secondaryCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create secondary oracle: %w", err)
		}
		oracles = append(oracles, secondary)
		names = append(names, secondaryCfg.Provider)
	}

	return oracle.NewFallbackOracle(oracles, names), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	scrapeRepo := postgres.NewScrapeRepo(db)

	fetcher := fetch.NewClient(cfg.Fetcher)

	registerProviders()
	suggester, err := buildOracle(&cfg.Oracle)
	if err != nil {
		return err
	}

	// Initialize services
	workspaceSvc := service.NewWorkspaceService(fetcher, suggester, scrapeRepo)
	activitySvc := service.NewActivityService(scrapeRepo, cfg.History.RecentLimit)

	// Initialize handlers
	workspaceH := handler.NewWorkspaceHandler(workspaceSvc)
	exportH := handler.NewExportHandler()
	activityH := handler.NewActivityHandler(activitySvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, workspaceH, exportH, activityH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
