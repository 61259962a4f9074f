package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"english-drill/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLayout(t *testing.T) Layout {
	t.Helper()
	layout := NewLayout(filepath.Join(t.TempDir(), ".bbccli"))
	require.NoError(t, layout.EnsureLayout())
	return layout
}

func TestNewLayout(t *testing.T) {
	layout := NewLayout("/home/u/.bbccli")

	assert.Equal(t, "/home/u/.bbccli/audio", layout.AudioDir)
	assert.Equal(t, "/home/u/.bbccli/pdf", layout.PDFDir)
	assert.Equal(t, "/home/u/.bbccli/cache", layout.CacheDir)
	assert.Equal(t, "/home/u/.bbccli/cache/content.json", layout.CachePath)
	assert.Equal(t, "/home/u/.bbccli/audio/A_B_C.mp3", layout.AudioPath("A/B:C"))
	assert.Equal(t, "/home/u/.bbccli/pdf/A_B_C.pdf", layout.PDFPath("A/B:C"))
}

func TestEnsureLayout_CreatesAllDirectories(t *testing.T) {
	layout := newTestLayout(t)

	for _, dir := range []string{layout.Root, layout.AudioDir, layout.PDFDir, layout.CacheDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "stat %s", dir)
		assert.True(t, info.IsDir())
	}

	// second call is a no-op
	require.NoError(t, layout.EnsureLayout())
}

func TestEnsureLayout_ExistingRootIsLeftAlone(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root)

	require.NoError(t, layout.EnsureLayout())

	_, err := os.Stat(layout.AudioDir)
	assert.True(t, os.IsNotExist(err), "subdirectories must not be created under an existing root")
}

func TestLoadOrBuildCache_CachePresent(t *testing.T) {
	layout := newTestLayout(t)
	cached := []domain.ContentRecord{
		{Episode: "E1", Title: "Weather", PageURL: "https://www.bbc.co.uk/ep1"},
		{Episode: "E2", Title: "Food", PageURL: "https://www.bbc.co.uk/ep2"},
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(layout.CachePath, data, 0o644))

	calls := 0
	records, err := layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		calls++
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, cached, records)
	assert.Zero(t, calls, "builder must not run when the cache exists")
}

func TestLoadOrBuildCache_CacheAbsent(t *testing.T) {
	layout := newTestLayout(t)
	built := []domain.ContentRecord{
		{Episode: "E1", Title: "Weather", PageURL: "https://www.bbc.co.uk/ep1"},
	}

	calls := 0
	records, err := layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		calls++
		return built, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, built, records)

	data, err := os.ReadFile(layout.CachePath)
	require.NoError(t, err)
	assert.Equal(t, `[
  {
    "episode": "E1",
    "title": "Weather",
    "pageUrl": "https://www.bbc.co.uk/ep1"
  }
]`, string(data))

	var roundTrip []domain.ContentRecord
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, built, roundTrip)

	// the next run reads the file instead of building again
	records, err = layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		calls++
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, built, records)
	assert.Equal(t, 1, calls)
}

func TestLoadOrBuildCache_BuilderError(t *testing.T) {
	layout := newTestLayout(t)
	buildErr := errors.New("listing unavailable")

	_, err := layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		return nil, buildErr
	})

	assert.ErrorIs(t, err, buildErr)
	_, statErr := os.Stat(layout.CachePath)
	assert.True(t, os.IsNotExist(statErr), "nothing is cached when the builder fails")
}

func TestLoadOrBuildCache_CorruptCache(t *testing.T) {
	layout := newTestLayout(t)
	require.NoError(t, os.WriteFile(layout.CachePath, []byte("{not json"), 0o644))

	calls := 0
	_, err := layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		calls++
		return nil, nil
	})

	assert.ErrorIs(t, err, ErrCorruptCache)
	assert.Zero(t, calls, "a corrupt cache must not fall back to scraping")
}

func TestLoadOrBuildCache_EmptyBuildWritesEmptyArray(t *testing.T) {
	layout := newTestLayout(t)

	records, err := layout.LoadOrBuildCache(context.Background(), func(ctx context.Context) ([]domain.ContentRecord, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, records)

	data, err := os.ReadFile(layout.CachePath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "episode.mp3")

	require.NoError(t, WriteFile(path, []byte("old")))
	require.NoError(t, WriteFile(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
