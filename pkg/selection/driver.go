// Package selection picks a random cached episode and downloads it, retrying with
// another pick when a download fails.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"english-drill/pkg/domain"
	"english-drill/pkg/filter"
	"english-drill/pkg/metadata"
	"english-drill/pkg/store"
)

var (
	// ErrNoContent is returned when the cache holds no records to pick from.
	ErrNoContent = errors.New("no content records available")

	// ErrExhausted is returned when every allowed attempt failed.
	ErrExhausted = errors.New("download attempts exhausted")
)

// Rand is the source of random indexes.
type Rand interface {
	Intn(n int) int
}

// Downloader fetches one record into the local store.
type Downloader interface {
	Download(ctx context.Context, record domain.ContentRecord) (*domain.DownloadResult, error)
}

// Config wires the driver dependencies.
type Config struct {
	Layout     store.Layout
	Source     metadata.Source
	Downloader Downloader

	// Rand defaults to a time-seeded math/rand source.
	Rand Rand

	// MaxAttempts bounds the retry loop; zero or negative retries forever.
	MaxAttempts int

	// IncludeDownloaded disables the preference for episodes not yet on disk.
	IncludeDownloaded bool
}

// Driver orchestrates the local store, the metadata source and the content fetcher.
type Driver struct {
	layout            store.Layout
	source            metadata.Source
	downloader        Downloader
	rng               Rand
	maxAttempts       int
	includeDownloaded bool
}

// NewDriver creates a selection driver
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("metadata source is required")
	}
	if cfg.Downloader == nil {
		return nil, fmt.Errorf("downloader is required")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Driver{
		layout:            cfg.Layout,
		source:            cfg.Source,
		downloader:        cfg.Downloader,
		rng:               rng,
		maxAttempts:       cfg.MaxAttempts,
		includeDownloaded: cfg.IncludeDownloaded,
	}, nil
}

// Records ensures the store layout and returns the cached records, scraping and
// caching them on the first run.
func (d *Driver) Records(ctx context.Context) ([]domain.ContentRecord, error) {
	if err := d.layout.EnsureLayout(); err != nil {
		return nil, err
	}
	return d.layout.LoadOrBuildCache(ctx, d.source.FetchMetadata)
}

// SelectAndDownload picks random records until one downloads successfully and returns
// its local paths. Metadata and cache errors abort immediately.
func (d *Driver) SelectAndDownload(ctx context.Context) (*domain.DownloadResult, error) {
	records, err := d.Records(ctx)
	if err != nil {
		return nil, err
	}

	candidates := d.candidates(ctx, records)
	if len(candidates) == 0 {
		return nil, ErrNoContent
	}

	var lastErr error
	for attempt := 1; d.maxAttempts <= 0 || attempt <= d.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record := candidates[d.rng.Intn(len(candidates))]

		result, err := d.downloader.Download(ctx, record)
		if err != nil {
			lastErr = err
			log.Printf("SelectionDriver: Failed to download: %s (%s)", record.Title, record.Episode)
			log.Printf("SelectionDriver: Retrying...")
			continue
		}

		log.Printf("SelectionDriver: Successfully downloaded: %s (%s)", record.Title, record.Episode)
		result.PageURL = record.PageURL
		result.Record = record
		result.AudioPath = d.layout.AudioPath(record.Title)
		result.PDFPath = d.layout.PDFPath(record.Title)
		return result, nil
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, d.maxAttempts, lastErr)
}

// candidates drops records without a page URL and prefers records that are not fully
// downloaded yet. When every usable record is already on disk, or the check fails, all
// usable records stay eligible.
func (d *Driver) candidates(ctx context.Context, records []domain.ContentRecord) []domain.ContentRecord {
	usable, err := filter.Apply(ctx, records, filter.NewNonEmptyURLFilter())
	if err != nil {
		log.Printf("SelectionDriver: Could not check page URLs: %v", err)
		usable = records
	}
	if skipped := len(records) - len(usable); skipped > 0 {
		log.Printf("SelectionDriver: Skipping %d cached records without a page URL", skipped)
	}
	if d.includeDownloaded || len(usable) == 0 {
		return usable
	}

	fresh, err := filter.Apply(ctx, usable, filter.NewAlreadyDownloadedFilter(d.layout))
	if err != nil {
		log.Printf("SelectionDriver: Could not check downloaded episodes: %v", err)
		return usable
	}
	if len(fresh) == 0 {
		log.Printf("SelectionDriver: Every episode is already downloaded, picking from all %d", len(usable))
		return usable
	}
	return fresh
}
