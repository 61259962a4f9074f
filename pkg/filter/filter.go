package filter

import (
	"context"
	"fmt"
	"os"

	"english-drill/pkg/domain"
	"english-drill/pkg/store"
)

// Filter defines the interface for content record filtering
type Filter interface {
	ShouldKeep(ctx context.Context, record domain.ContentRecord) (bool, error)
}

// Apply applies all filters to a list of records, keeping order
func Apply(ctx context.Context, records []domain.ContentRecord, filters ...Filter) ([]domain.ContentRecord, error) {
	filtered := make([]domain.ContentRecord, 0, len(records))

	for _, record := range records {
		keep := true
		for _, f := range filters {
			shouldKeep, err := f.ShouldKeep(ctx, record)
			if err != nil {
				return nil, fmt.Errorf("filter error for %s: %w", record.PageURL, err)
			}
			if !shouldKeep {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}

// NonEmptyURLFilter filters out records without a page URL
type NonEmptyURLFilter struct{}

// NewNonEmptyURLFilter creates a new empty-URL filter
func NewNonEmptyURLFilter() *NonEmptyURLFilter {
	return &NonEmptyURLFilter{}
}

// ShouldKeep returns false if the record has no page URL
func (f *NonEmptyURLFilter) ShouldKeep(ctx context.Context, record domain.ContentRecord) (bool, error) {
	return record.PageURL != "", nil
}

// AlreadyDownloadedFilter filters out records whose audio and PDF both exist locally
type AlreadyDownloadedFilter struct {
	layout store.Layout
}

// NewAlreadyDownloadedFilter creates a new already-downloaded filter
func NewAlreadyDownloadedFilter(layout store.Layout) *AlreadyDownloadedFilter {
	return &AlreadyDownloadedFilter{
		layout: layout,
	}
}

// ShouldKeep returns false if both files of the record are already on disk
func (f *AlreadyDownloadedFilter) ShouldKeep(ctx context.Context, record domain.ContentRecord) (bool, error) {
	audio, err := exists(f.layout.AudioPath(record.Title))
	if err != nil {
		return false, err
	}
	pdf, err := exists(f.layout.PDFPath(record.Title))
	if err != nil {
		return false, err
	}
	return !(audio && pdf), nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
