package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"english-drill/pkg/domain"
	"github.com/gofrs/flock"
)

var (
	// ErrCorruptCache wraps JSON decoding failures of the cache file.
	ErrCorruptCache = errors.New("content cache is corrupt")
	errNilBuilder   = errors.New("cache builder is nil")
)

// Builder produces the record list when no cache file exists yet.
type Builder func(ctx context.Context) ([]domain.ContentRecord, error)

const lockRetryDelay = 200 * time.Millisecond

// LoadOrBuildCache returns the cached records, or builds, persists and returns them
// when the cache file is absent. The cache file is never refreshed once present.
func (l Layout) LoadOrBuildCache(ctx context.Context, build Builder) ([]domain.ContentRecord, error) {
	if records, ok, err := l.readCache(); ok || err != nil {
		return records, err
	}
	if build == nil {
		return nil, errNilBuilder
	}

	lock := flock.New(l.lockPath())
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if locked {
		defer func() {
			if err := lock.Unlock(); err != nil {
				log.Printf("Store: failed to release cache lock: %v", err)
			}
		}()
	}

	// Another process may have written the cache while we waited.
	if records, ok, err := l.readCache(); ok || err != nil {
		return records, err
	}

	records, err := build(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.writeCache(records); err != nil {
		return nil, err
	}

	log.Printf("Store: Cached %d records at %s", len(records), l.CachePath)
	return records, nil
}

// LoadCache reads the cache file. ok is false when the file does not exist.
func (l Layout) LoadCache() ([]domain.ContentRecord, bool, error) {
	return l.readCache()
}

func (l Layout) readCache() ([]domain.ContentRecord, bool, error) {
	data, err := os.ReadFile(l.CachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache: %w", err)
	}

	var records []domain.ContentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %v", ErrCorruptCache, l.CachePath, err)
	}
	return records, true, nil
}

func (l Layout) writeCache(records []domain.ContentRecord) error {
	if records == nil {
		records = []domain.ContentRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	return WriteFile(l.CachePath, data)
}
