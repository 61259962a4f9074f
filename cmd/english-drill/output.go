package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"english-drill/pkg/domain"
	"github.com/dustin/go-humanize"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func printRecords(w io.Writer, records []domain.ContentRecord) {
	for i, r := range records {
		if r.Episode != "" {
			fmt.Fprintf(w, "%3d. [%s] %s\n     %s\n", i+1, r.Episode, r.Title, r.PageURL)
		} else {
			fmt.Fprintf(w, "%3d. %s\n     %s\n", i+1, r.Title, r.PageURL)
		}
	}
}

func printDownload(w io.Writer, result *domain.DownloadResult) {
	fmt.Fprintf(w, "%s (%s)\n", result.Record.Title, result.Record.Episode)
	fmt.Fprintf(w, "  audio: %s%s\n", result.AudioPath, fileSize(result.AudioPath))
	fmt.Fprintf(w, "  pdf:   %s%s\n", result.PDFPath, fileSize(result.PDFPath))
	if result.AudioDuration > 0 {
		fmt.Fprintf(w, "  length: %s\n", result.AudioDuration.Round(time.Second))
	}
	if result.PDFPages > 0 {
		fmt.Fprintf(w, "  pages: %d\n", result.PDFPages)
	}
}

// fileSize renders " (12 MB)" for path, or nothing when it cannot be read.
func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return " (" + humanize.Bytes(uint64(info.Size())) + ")"
}
