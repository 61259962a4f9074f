// Package note renders the daily practice note that embeds the downloaded episode.
package note

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"english-drill/pkg/domain"
)

// TitlePrefix starts every note title and filename.
const TitlePrefix = "TOEFL-実践演習-"

// Note is everything the practice template needs.
type Note struct {
	Date      time.Time
	Reading   []domain.ContentRecord
	Listening []domain.ContentRecord
	Download  domain.DownloadResult
}

// Title is the note title, e.g. "TOEFL-実践演習-2024-05-01".
func (n Note) Title() string {
	return TitlePrefix + n.Date.Format("2006-01-02")
}

// Filename is the markdown filename of the note.
func (n Note) Filename() string {
	return n.Title() + ".md"
}

// Created is the creation stamp in the front matter, in UTC.
func (n Note) Created() string {
	return n.Date.UTC().Format("2006-01-02 15:04")
}

// AudioFile is the basename embedded for the audio attachment.
func (n Note) AudioFile() string {
	return filepath.Base(n.Download.AudioPath)
}

// PDFFile is the basename embedded for the PDF attachment.
func (n Note) PDFFile() string {
	return filepath.Base(n.Download.PDFPath)
}

// Duration is the rounded audio length, empty when unknown.
func (n Note) Duration() string {
	if n.Download.AudioDuration <= 0 {
		return ""
	}
	return n.Download.AudioDuration.Round(time.Second).String()
}

var funcs = template.FuncMap{
	"bullet": func(r domain.ContentRecord) string {
		return fmt.Sprintf("- [%s](%s)", r.Title, r.PageURL)
	},
	"quote": func(s string) string {
		return "> " + strings.ReplaceAll(s, "\n", "\n> ")
	},
}

var practiceTemplate = template.Must(template.New("practice").Funcs(funcs).Parse(`---
title: {{.Title}}
created: {{.Created}}
---
## リーディング
{{range .Reading}}{{bullet .}}
{{end}}
## リスニング
{{range .Listening}}{{bullet .}}
{{end}}
### bbc english learning
{{- if .Download.PageURL}}
[{{with .Download.Record.Title}}{{.}}{{else}}episode page{{end}}]({{.Download.PageURL}})
{{- end}}
{{- with .Download.Summary}}
{{quote .}}
{{- end}}
{{- with .Duration}}
Duration: {{.}}
{{- end}}
![[{{.AudioFile}}]]
![[{{.PDFFile}}]]

## ライティング

## スピーキング
`))

// Render executes the practice template.
func Render(n Note) (string, error) {
	var buf bytes.Buffer
	if err := practiceTemplate.Execute(&buf, n); err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}
	return buf.String(), nil
}
