package note

import (
	"strings"
	"testing"
	"time"

	"english-drill/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNote() Note {
	return Note{
		Date: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Reading: []domain.ContentRecord{
			{Title: "Coral Reefs", PageURL: "https://test618.com/toefl/read/1"},
		},
		Listening: []domain.ContentRecord{
			{Title: "Lecture A", PageURL: "https://test618.com/toefl/listening/1"},
			{Title: "Lecture B", PageURL: "https://test618.com/toefl/listening/2"},
		},
		Download: domain.DownloadResult{
			PageURL:   "https://www.bbc.co.uk/ep1",
			AudioPath: "/home/u/.bbccli/audio/Weather.mp3",
			PDFPath:   "/home/u/.bbccli/pdf/Weather.pdf",
			Record:    domain.ContentRecord{Episode: "E1", Title: "Weather", PageURL: "https://www.bbc.co.uk/ep1"},
		},
	}
}

func TestRender(t *testing.T) {
	out, err := Render(testNote())
	require.NoError(t, err)

	assert.Equal(t, `---
title: TOEFL-実践演習-2024-05-01
created: 2024-05-01 09:30
---
## リーディング
- [Coral Reefs](https://test618.com/toefl/read/1)

## リスニング
- [Lecture A](https://test618.com/toefl/listening/1)
- [Lecture B](https://test618.com/toefl/listening/2)

### bbc english learning
[Weather](https://www.bbc.co.uk/ep1)
![[Weather.mp3]]
![[Weather.pdf]]

## ライティング

## スピーキング
`, out)
}

func TestRender_SummaryAndDuration(t *testing.T) {
	n := testNote()
	n.Download.Summary = "Neil and Beth talk about the weather."
	n.Download.AudioDuration = 6*time.Minute + 12*time.Second + 400*time.Millisecond

	out, err := Render(n)
	require.NoError(t, err)
	assert.Contains(t, out, "> Neil and Beth talk about the weather.\nDuration: 6m12s\n![[Weather.mp3]]")
}

func TestRender_EmptySections(t *testing.T) {
	n := testNote()
	n.Reading = nil
	n.Listening = nil

	out, err := Render(n)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "## リーディング\n\n## リスニング\n\n### bbc"))
}

func TestNote_Filename(t *testing.T) {
	assert.Equal(t, "TOEFL-実践演習-2024-05-01.md", testNote().Filename())
}

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

func TestPickReading(t *testing.T) {
	items := testNote().Listening

	got, ok := PickReading(fixedRand{n: 1}, items)
	require.True(t, ok)
	assert.Equal(t, "Lecture B", got.Title)

	_, ok = PickReading(fixedRand{}, nil)
	assert.False(t, ok)
}

func TestPickListening(t *testing.T) {
	items := []domain.ContentRecord{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}}

	got := PickListening(fixedRand{n: 1}, items, 2)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Title, got[1].Title)
	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(items), "input must not be reordered")

	assert.Len(t, PickListening(fixedRand{}, items[:1], 2), 1)
	assert.Empty(t, PickListening(fixedRand{}, nil, 2))
}

func titles(records []domain.ContentRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Title)
	}
	return out
}
