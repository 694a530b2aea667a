package main

import (
	"fmt"

	"f1-highlights-analytics/config"
	"f1-highlights-analytics/services"
	"f1-highlights-analytics/storage"
	"f1-highlights-analytics/utils"
	"f1-highlights-analytics/youtube"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== F1 Highlights Collector starting ===")

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Configuration error: %v", err)
	}

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Fatal("Failed to create CSV writer: %v", err)
	}
	defer csvWriter.Close()

	var pgWriter *storage.PostgresWriter
	if cfg.PostgresEnabled {
		pgWriter, err = storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL: %v", err)
		}
		defer pgWriter.Close()
	}

	client := youtube.New(cfg.YouTubeAPIKey, logger)

	items, err := client.ListPlaylistVideos(cfg.PlaylistID)
	if err != nil {
		logger.Fatal("Playlist listing failed: %v", err)
	}
	if len(items) == 0 {
		logger.Fatal("Playlist %s contains no videos. Exiting.", cfg.PlaylistID)
	}

	filter := services.NewFilter(logger)
	highlights := filter.Highlights(items)
	if len(highlights) == 0 {
		logger.Fatal("No highlight videos found in the playlist. Exiting.")
	}

	ids := make([]string, len(highlights))
	for i, it := range highlights {
		ids[i] = it.VideoID
	}

	stats, err := client.FetchStatistics(ids)
	if err != nil {
		logger.Fatal("Statistics fetch failed: %v", err)
	}

	records := filter.BuildRecords(highlights, stats)
	logger.Info("Built %d records — writing to CSV...", len(records))

	if err := csvWriter.Write(records); err != nil {
		logger.Fatal("CSV write failed: %v", err)
	}
	logger.Info("Table saved to %s", cfg.CSVOutputPath)

	if pgWriter != nil {
		if err := pgWriter.Write(records); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Table mirrored to PostgreSQL (table: videos)")
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(records)
	insightSvc.Print(report)

	fmt.Printf("  Done. Table → %s (%d highlight videos)\n\n", cfg.CSVOutputPath, len(records))
}
