// Package main provides the unified pipeline command that extracts the raw
// CSVs, normalizes them into a star schema, and loads the warehouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"reviewmart/internal/config"
	"reviewmart/internal/extract"
	"reviewmart/internal/formatter"
	"reviewmart/internal/loader"
	"reviewmart/internal/logger"
	"reviewmart/internal/normalizer"
	"reviewmart/pkg/metadata"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to pipeline YAML config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	runID := uuid.NewString()
	log = log.With("run_id", runID)

	log.Info("🚀 Starting warehouse pipeline", "config", cfg.String())

	startTime := time.Now()

	// 1. Extraction
	// -------------
	log.Info("Phase 1: Extraction...")

	products, err := extract.ReadProducts(cfg.Sources.Products)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Product extract failed: %v", err))
		os.Exit(1)
	}

	reviews, err := extract.ReadReviews(cfg.Sources.Reviews)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Review extract failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Read %d products, %d reviews in %v",
		len(products), len(reviews), time.Since(startTime)))

	// 2. Normalization
	// ----------------
	log.Info("Phase 2: Normalization...")

	processStart := time.Now()

	processor := normalizer.NewProcessor()

	warehouse, report, err := processor.Process(products, reviews)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Normalization failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Normalized in %v", time.Since(processStart)),
		"facts", report.FactRows,
		"products", report.ProductRows,
		"brands", report.BrandRows,
		"reviewers", report.ReviewerRows,
		"dates", report.DateRows,
		"dropped", report.TotalDropped())

	// 3. Loading
	// ----------
	log.Info("Phase 3: Loading...", "target", cfg.Target.DSN)

	loadStart := time.Now()

	ld, err := loader.Open(loader.Config{Driver: cfg.Target.Driver, DSN: cfg.Target.DSN})
	if err != nil {
		log.Error(fmt.Sprintf("❌ Loader open failed: %v", err))
		os.Exit(1)
	}
	defer ld.Close()

	if err := ld.Load(context.Background(), warehouse); err != nil {
		log.Error(fmt.Sprintf("❌ Load failed, batch rolled back: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded in %v", time.Since(loadStart)))

	// 4. Run report
	// -------------
	if cfg.Report.Path != "" {
		doc := formatter.FormatReport(report, warehouse)
		doc = metadata.Sign(doc, runID)

		if err := os.WriteFile(cfg.Report.Path, []byte(doc), 0644); err != nil {
			log.Error(fmt.Sprintf("❌ Report write failed: %v", err))
			os.Exit(1)
		}

		log.Info("✅ Report written", "path", cfg.Report.Path)
	}

	log.Info(fmt.Sprintf("🎉 Pipeline complete in %v", time.Since(startTime)))
}
