// Package main provides the normalizer command-line tool: it runs the
// transform without touching a database, writing the warehouse bundle and
// the run report as JSON for inspection.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"reviewmart/internal/extract"
	"reviewmart/internal/normalizer"
)

func main() {
	productsPath := flag.String("products", "", "Path to products CSV")
	reviewsPath := flag.String("reviews", "", "Path to reviews CSV")
	outputPath := flag.String("output", "", "Path to output JSON file")
	flag.Parse()

	if *productsPath == "" || *reviewsPath == "" || *outputPath == "" {
		fmt.Println("Usage: normalizer -products <products.csv> -reviews <reviews.csv> -output <warehouse.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	products, err := extract.ReadProducts(*productsPath)
	if err != nil {
		log.Fatalf("Error reading products: %v\n", err)
	}

	reviews, err := extract.ReadReviews(*reviewsPath)
	if err != nil {
		log.Fatalf("Error reading reviews: %v\n", err)
	}

	fmt.Printf("📂 Read: %d products, %d reviews\n", len(products), len(reviews))

	processor := normalizer.NewProcessor()

	warehouse, report, err := processor.Process(products, reviews)
	if err != nil {
		log.Fatalf("Error normalizing: %v\n", err)
	}

	fmt.Printf("📊 Normalized: %d facts, %d products, %d brands, %d reviewers, %d dates (%d rows dropped)\n",
		report.FactRows, report.ProductRows, report.BrandRows,
		report.ReviewerRows, report.DateRows, report.TotalDropped())

	output := map[string]any{
		"warehouse": warehouse,
		"report":    report,
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(*outputPath), 0755); mkdirErr != nil {
		log.Fatalf("Error creating directory: %v\n", mkdirErr)
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling JSON: %v\n", err)
	}

	if err := os.WriteFile(*outputPath, jsonData, 0644); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
