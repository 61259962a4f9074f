package main

import (
	"fmt"

	"english-drill/pkg/domain"
	"github.com/spf13/cobra"
)

var linksCategory string

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List TOEFL reading and listening practice links",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		scraper := d.practiceScraper()

		result := map[string][]domain.ContentRecord{}
		switch linksCategory {
		case "reading":
			result["reading"] = scraper.FetchReading(cmd.Context())
		case "listening":
			result["listening"] = scraper.FetchListening(cmd.Context())
		case "all":
			result["reading"] = scraper.FetchReading(cmd.Context())
			result["listening"] = scraper.FetchListening(cmd.Context())
		default:
			return fmt.Errorf("unknown category %q (want reading, listening or all)", linksCategory)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, result)
		}
		for _, name := range []string{"reading", "listening"} {
			records, ok := result[name]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "%s (%d)\n", name, len(records))
			printRecords(out, records)
		}
		return nil
	},
}

func init() {
	linksCmd.Flags().StringVar(&linksCategory, "category", "all", "Category to list: reading, listening or all")
	rootCmd.AddCommand(linksCmd)
}
