package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"english-drill/pkg/config"
	"english-drill/pkg/httpclient"
	"english-drill/pkg/metadata"
	"english-drill/pkg/store"
)

func main() {
	// Number of episodes to show
	maxEntries := 10

	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("Invalid count %q: %v", os.Args[1], err)
		}
		maxEntries = n
	}

	cfg := config.Default()
	layout := store.NewLayout(cfg.Storage.Root)
	if err := layout.EnsureLayout(); err != nil {
		log.Fatalf("Failed to prepare %s: %v", layout.Root, err)
	}

	scraper := metadata.NewScraper(httpclient.NewClient(httpclient.BrowserClient), cfg.Metadata.ListingURL)

	records, err := layout.LoadOrBuildCache(context.Background(), scraper.FetchMetadata)
	if err != nil {
		log.Fatalf("Failed to load episodes: %v", err)
	}

	if len(records) < maxEntries {
		maxEntries = len(records)
	}

	fmt.Printf("Found %d episodes. Showing first %d:\n\n", len(records), maxEntries)

	for i := 0; i < maxEntries; i++ {
		record := records[i]
		fmt.Printf("Episode %d:\n", i+1)
		fmt.Printf("  Title: %s\n", record.Title)
		if record.Episode != "" {
			fmt.Printf("  Label: %s\n", record.Episode)
		}
		fmt.Printf("  URL: %s\n", record.PageURL)
		fmt.Println()
	}
}
