package content

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"
)

// AudioInfo is what could be learned from a downloaded mp3.
type AudioInfo struct {
	Title    string
	Duration time.Duration
}

// ProbeAudio reads the ID3 title and the total frame duration of an mp3 payload.
// Both are best effort: unreadable tags leave Title empty, undecodable frames leave
// Duration zero.
func ProbeAudio(data []byte) AudioInfo {
	var info AudioInfo

	if meta, err := tag.ReadFrom(bytes.NewReader(data)); err == nil {
		info.Title = strings.TrimSpace(meta.Title())
	}

	if d, err := mp3Duration(bytes.NewReader(data)); err == nil {
		info.Duration = d
	}

	return info
}

func mp3Duration(r io.Reader) (time.Duration, error) {
	decoder := mp3.NewDecoder(r)
	var frame mp3.Frame
	var skipped int
	var total time.Duration

	for {
		err := decoder.Decode(&frame, &skipped)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
	}

	return total, nil
}
