package main

import (
	"fmt"

	"english-drill/pkg/domain"
	"english-drill/pkg/store"
	"github.com/spf13/cobra"
)

var (
	episodesLimit   int
	episodesOffline bool
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "List cached episodes, scraping the listing on first use",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}

		var records []domain.ContentRecord
		if episodesOffline {
			records, err = cachedRecords(d.layout)
		} else {
			records, err = scrapedRecords(cmd, d)
		}
		if err != nil {
			return err
		}

		total := len(records)
		if episodesLimit > 0 && total > episodesLimit {
			records = records[:episodesLimit]
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, records)
		}
		fmt.Fprintf(out, "%d episodes cached in %s\n", total, d.layout.CachePath)
		printRecords(out, records)
		return nil
	},
}

// scrapedRecords returns the cache, building it from the listing on first use.
func scrapedRecords(cmd *cobra.Command, d *deps) ([]domain.ContentRecord, error) {
	driver, err := d.driver(false)
	if err != nil {
		return nil, err
	}
	return driver.Records(cmd.Context())
}

// cachedRecords reads the cache without touching the network.
func cachedRecords(layout store.Layout) ([]domain.ContentRecord, error) {
	records, ok, err := layout.LoadCache()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no episode cache at %s; run without --offline to scrape the listing", layout.CachePath)
	}
	return records, nil
}

func init() {
	episodesCmd.Flags().IntVar(&episodesLimit, "limit", 0, "Show at most this many episodes (0 = all)")
	episodesCmd.Flags().BoolVar(&episodesOffline, "offline", false, "Only read the local cache, never scrape")
	rootCmd.AddCommand(episodesCmd)
}
