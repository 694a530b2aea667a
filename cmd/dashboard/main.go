package main

import (
	"fmt"
	"net/http"

	"f1-highlights-analytics/config"
	"f1-highlights-analytics/dashboard"
	"f1-highlights-analytics/storage"
	"f1-highlights-analytics/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== F1 Highlights Dashboard starting ===")

	records, err := storage.LoadCSV(cfg.CSVOutputPath)
	if err != nil {
		logger.Fatal("Cannot load table from %s: %v — run the collector first", cfg.CSVOutputPath, err)
	}
	logger.Info("Loaded %d records from %s", len(records), cfg.CSVOutputPath)

	srv := dashboard.New(records, logger)

	addr := fmt.Sprintf("%s:%d", cfg.DashboardHost, cfg.DashboardPort)
	logger.Info("Dashboard available at http://%s/", addr)

	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		logger.Fatal("Dashboard server failed: %v", err)
	}
}
