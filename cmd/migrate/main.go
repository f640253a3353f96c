package main

import (
	"flag"

	"github.com/ProfStephanos/school-finance-management-system/app/config"
	"github.com/ProfStephanos/school-finance-management-system/app/database"
)

// Creates the ledger schema on the configured store and exits. Useful for
// provisioning a fresh database without starting the server.
func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	log := config.GetLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	defer cfg.DB.Close()

	if err := database.InitializeDatabase(cfg.DB); err != nil {
		log.WithError(err).Fatal("Failed to initialize database schema")
	}

	log.Info("Schema initialized")
}
