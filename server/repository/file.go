package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ponyo877/karaokesh/server/domain"
)

type userRecord struct {
	Username string `json:"username"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Message  string `json:"message,omitempty"`
}

type queueRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title,omitempty"`
	Genre       string      `json:"genre,omitempty"`
	SubmittedBy *userRecord `json:"submittedBy,omitempty"`
}

type deviceRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

type businessRecord struct {
	BusinessName string `json:"businessName"`
	Slogan       string `json:"slogan,omitempty"`
	FlyerURL     string `json:"flyerUrl,omitempty"`
}

type sessionRecord struct {
	SessionID  string         `json:"sessionId"`
	Hostcode   string         `json:"hostcode"`
	Business   businessRecord `json:"business"`
	Devices    []deviceRecord `json:"devices"`
	Queue      []queueRecord  `json:"queue"`
	LastPlayed string         `json:"lastPlayed,omitempty"`
	Version    int64          `json:"version"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func toRecord(s domain.Session) sessionRecord {
	rec := sessionRecord{
		SessionID: s.ID,
		Hostcode:  s.Hostcode,
		Business: businessRecord{
			BusinessName: s.Business.BusinessName,
			Slogan:       s.Business.Slogan,
			FlyerURL:     s.Business.FlyerURL,
		},
		Devices:    make([]deviceRecord, len(s.Devices)),
		Queue:      make([]queueRecord, len(s.Queue)),
		LastPlayed: s.LastPlayed,
		Version:    s.Version,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	for i, d := range s.Devices {
		rec.Devices[i] = deviceRecord(d)
	}
	for i, item := range s.Queue {
		q := queueRecord{ID: item.ID, Title: item.Title, Genre: item.Genre}
		if u := item.SubmittedBy; u != nil {
			q.SubmittedBy = &userRecord{Username: u.Username, PhotoURL: u.PhotoURL, Message: u.Message}
		}
		rec.Queue[i] = q
	}
	return rec
}

func fromRecord(rec sessionRecord) domain.Session {
	s := domain.Session{
		ID:       rec.SessionID,
		Hostcode: rec.Hostcode,
		Business: domain.Business{
			BusinessName: rec.Business.BusinessName,
			Slogan:       rec.Business.Slogan,
			FlyerURL:     rec.Business.FlyerURL,
		},
		Devices:    make([]domain.Device, len(rec.Devices)),
		Queue:      make([]domain.QueueItem, len(rec.Queue)),
		LastPlayed: rec.LastPlayed,
		Version:    rec.Version,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	for i, d := range rec.Devices {
		s.Devices[i] = domain.Device(d)
	}
	for i, q := range rec.Queue {
		item := domain.QueueItem{ID: q.ID, Title: q.Title, Genre: q.Genre}
		if u := q.SubmittedBy; u != nil {
			item.SubmittedBy = &domain.UserMessage{Username: u.Username, PhotoURL: u.PhotoURL, Message: u.Message}
		}
		s.Queue[i] = item
	}
	return s
}

// FileRepository keeps the collection as one JSON document. Saves go to a
// temporary file in the same directory which then replaces the target.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Error reading %s: %v", r.path, err)
		}
		return []domain.Session{}, nil
	}
	if len(data) == 0 {
		return []domain.Session{}, nil
	}

	var records []sessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Error parsing %s, starting empty: %v", r.path, err)
		return []domain.Session{}, nil
	}
	sessions := make([]domain.Session, len(records))
	for i, rec := range records {
		sessions[i] = fromRecord(rec)
	}
	return sessions, nil
}

func (r *FileRepository) SaveAll(ctx context.Context, sessions []domain.Session) error {
	records := make([]sessionRecord, len(sessions))
	for i, s := range sessions {
		records[i] = toRecord(s)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write sessions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync sessions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}
