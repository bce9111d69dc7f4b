// Package main provides the verify command-line tool for checking a run
// report's stamp: it confirms the report has not been edited since the
// pipeline wrote it and prints the run it came from.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"reviewmart/pkg/metadata"
)

func main() {
	inputPath := flag.String("input", "", "Path to a stamped run report (e.g., report.md)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: verify -input <report.md>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	contentBytes, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Error reading file: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d bytes)\n", *inputPath, len(contentBytes))

	stamp, err := metadata.Verify(string(contentBytes))
	if err != nil {
		log.Fatalf("❌ Verification failed: %v\n", err)
	}

	fmt.Printf("✅ Report intact\n")
	fmt.Printf("   Run:       %s\n", stamp.RunID)
	fmt.Printf("   Generated: %s\n", stamp.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
}
