package content

import (
	"context"
	"fmt"
	"log"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"english-drill/pkg/sites"
	"english-drill/pkg/store"
	"github.com/dustin/go-humanize"
)

// ErrMissingElement reports a detail page without the expected download anchors.
var ErrMissingElement = sites.ErrMissingElement

// Fetcher downloads the audio and PDF of one episode into the local store.
type Fetcher struct {
	client *httpclient.HTTPClient
	layout store.Layout
}

// NewFetcher creates a fetcher writing into layout
func NewFetcher(client *httpclient.HTTPClient, layout store.Layout) *Fetcher {
	return &Fetcher{
		client: client,
		layout: layout,
	}
}

// FetchContent downloads record and reports success. Every failure is logged and
// reported as false so the caller can try another record.
func (f *Fetcher) FetchContent(ctx context.Context, record domain.ContentRecord) bool {
	_, err := f.Download(ctx, record)
	return err == nil
}

// Download fetches the detail page of record, downloads the audio and PDF it links to
// and writes them as <audio-dir>/<title>.mp3 and <pdf-dir>/<title>.pdf.
//
// Nothing is written unless both downloads succeed. The two writes are not atomic:
// a failure writing the PDF leaves the audio file in place.
func (f *Fetcher) Download(ctx context.Context, record domain.ContentRecord) (*domain.DownloadResult, error) {
	pageHTML, err := f.client.FetchString(ctx, record.PageURL)
	if err != nil {
		log.Printf("ContentFetcher: Failed to fetch page %s: %v", record.PageURL, err)
		return nil, err
	}

	links, err := sites.FindDownloadLinks(pageHTML)
	if err != nil {
		log.Printf("ContentFetcher: No download links on %s: %v", record.PageURL, err)
		return nil, err
	}

	audioURL := sites.ResolveURL(record.PageURL, links.Audio)
	pdfURL := sites.ResolveURL(record.PageURL, links.PDF)
	if audioURL == "" || pdfURL == "" {
		err := fmt.Errorf("%w: unresolvable download link on %s", ErrMissingElement, record.PageURL)
		log.Printf("ContentFetcher: %v", err)
		return nil, err
	}

	audio, err := f.client.Fetch(ctx, audioURL)
	if err != nil {
		log.Printf("ContentFetcher: Failed to fetch audio %s: %v", audioURL, err)
		return nil, err
	}

	pdfData, err := f.client.Fetch(ctx, pdfURL)
	if err != nil {
		log.Printf("ContentFetcher: Failed to fetch pdf %s: %v", pdfURL, err)
		return nil, err
	}

	audioPath := f.layout.AudioPath(record.Title)
	pdfPath := f.layout.PDFPath(record.Title)

	if err := store.WriteFile(audioPath, audio); err != nil {
		log.Printf("ContentFetcher: %v", err)
		return nil, err
	}
	if err := store.WriteFile(pdfPath, pdfData); err != nil {
		log.Printf("ContentFetcher: %v", err)
		return nil, err
	}

	log.Printf("ContentFetcher: Saved %s (%s) and %s (%s)",
		audioPath, humanize.Bytes(uint64(len(audio))), pdfPath, humanize.Bytes(uint64(len(pdfData))))

	info := ProbeAudio(audio)
	if info.Title != "" {
		log.Printf("ContentFetcher: Audio tagged as %q", info.Title)
	}

	pages, err := CountPDFPages(pdfData)
	if err != nil {
		log.Printf("ContentFetcher: Could not read pdf %s: %v", pdfPath, err)
		pages = 0
	}

	return &domain.DownloadResult{
		PageURL:       record.PageURL,
		AudioPath:     audioPath,
		PDFPath:       pdfPath,
		Record:        record,
		Summary:       ExtractSummary(pageHTML, record.PageURL),
		AudioDuration: info.Duration,
		PDFPages:      pages,
	}, nil
}
