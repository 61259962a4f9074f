// Package practiceservice assembles the daily TOEFL practice note around a freshly
// downloaded 6 Minute English episode.
package practiceservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"time"

	"english-drill/pkg/domain"
	"english-drill/pkg/host"
	"english-drill/pkg/note"
)

const (
	CommandID   = "bbccli"
	CommandName = "Download BBC content and embed in markdown"
)

// Selector downloads one episode into the local store.
type Selector interface {
	SelectAndDownload(ctx context.Context) (*domain.DownloadResult, error)
}

// LinkSource provides the supplementary practice links.
type LinkSource interface {
	FetchReading(ctx context.Context) []domain.ContentRecord
	FetchListening(ctx context.Context) []domain.ContentRecord
}

// Config holds configuration for the service
type Config struct {
	Host     host.Host
	Selector Selector
	Links    LinkSource

	// NoteFolder is the vault-relative folder receiving the note and attachments.
	NoteFolder string
	Listenings int

	Rand note.Rand
	Now  func() time.Time
}

// Service renders practice notes into a host.
type Service struct {
	host       host.Host
	selector   Selector
	links      LinkSource
	noteFolder string
	listenings int
	rng        note.Rand
	now        func() time.Time
}

// New creates the service and registers its command with the host.
func New(cfg Config) (*Service, error) {
	if cfg.Host == nil || cfg.Selector == nil || cfg.Links == nil {
		return nil, fmt.Errorf("host, selector and link source are required")
	}

	s := &Service{
		host:       cfg.Host,
		selector:   cfg.Selector,
		links:      cfg.Links,
		noteFolder: cfg.NoteFolder,
		listenings: cfg.Listenings,
		rng:        cfg.Rand,
		now:        cfg.Now,
	}
	if s.listenings <= 0 {
		s.listenings = note.ListeningCount
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.host.RegisterCommand(CommandID, CommandName, s.Run)
	return s, nil
}

// Run downloads an episode, copies its files into the note folder and writes the
// practice note. Failures are reported through the host and returned.
func (s *Service) Run(ctx context.Context) error {
	notePath, err := s.run(ctx)
	if err != nil {
		s.host.Notify("ファイル作成に失敗しました: " + err.Error())
		return err
	}
	s.host.Notify("Markdownファイルと添付ファイルを作成しました: " + notePath)
	return nil
}

func (s *Service) run(ctx context.Context) (string, error) {
	result, err := s.selector.SelectAndDownload(ctx)
	if err != nil {
		return "", fmt.Errorf("download episode: %w", err)
	}
	if out, err := json.Marshal(result); err == nil {
		s.host.Notify("Downloaded content: " + string(out))
	}

	date := s.now()

	reading := s.links.FetchReading(ctx)
	listening := s.links.FetchListening(ctx)

	n := note.Note{
		Date:      date,
		Listening: note.PickListening(s.rng, listening, s.listenings),
		Download:  *result,
	}
	if item, ok := note.PickReading(s.rng, reading); ok {
		n.Reading = []domain.ContentRecord{item}
	} else {
		log.Printf("PracticeService: No reading items available")
	}

	if err := s.copyAttachment(result.AudioPath); err != nil {
		return "", err
	}
	if err := s.copyAttachment(result.PDFPath); err != nil {
		return "", err
	}

	content, err := note.Render(n)
	if err != nil {
		return "", err
	}

	notePath := path.Join(s.noteFolder, n.Filename())
	if err := s.host.WriteText(notePath, content); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	log.Printf("PracticeService: Wrote %s", notePath)
	return notePath, nil
}

// copyAttachment copies a file from the local store into the note folder.
func (s *Service) copyAttachment(localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", localPath, err)
	}
	target := path.Join(s.noteFolder, filepath.Base(localPath))
	if err := s.host.WriteBinary(target, data); err != nil {
		return fmt.Errorf("write attachment: %w", err)
	}
	return nil
}
