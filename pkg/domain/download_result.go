package domain

import "time"

// DownloadResult holds the local files produced for one successfully fetched episode.
// It is not persisted; the caller uses it to build the practice note.
type DownloadResult struct {
	// PageURL is the episode detail page the files were discovered on.
	PageURL string `json:"pageUrl"`

	AudioPath string `json:"audioPath"`
	PDFPath   string `json:"pdfPath"`

	Record ContentRecord `json:"record"`

	// Summary is the readable introduction of the detail page, when it could be extracted.
	Summary string `json:"summary,omitempty"`

	// AudioDuration is probed from the downloaded mp3; zero when unknown.
	AudioDuration time.Duration `json:"audioDuration,omitempty"`

	// PDFPages is zero when the PDF could not be parsed.
	PDFPages int `json:"pdfPages,omitempty"`
}
