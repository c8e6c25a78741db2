package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/karaokesh/server/adaptor"
	"github.com/ponyo877/karaokesh/server/domain"
	"github.com/ponyo877/karaokesh/server/metrics"
)

var _ adaptor.Usecase = (*Usecase)(nil)

type Option func(*Usecase)

func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(u *Usecase) { u.newID = newID }
}

// WithRandom sets the source used to pick fallback videos; intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(u *Usecase) { u.intn = intn }
}

// Usecase is the session registry. Mutations are serialized by writeMu and
// applied to a copy of the collection, which is published only after the
// repository accepted it.
type Usecase struct {
	repo      Repository
	directory *domain.HostcodeDirectory
	pool      *domain.RandomPool

	now   func() time.Time
	newID func() string
	intn  func(n int) int

	writeMu  sync.Mutex
	mu       sync.RWMutex
	sessions []domain.Session
}

func NewUsecase(repo Repository, directory *domain.HostcodeDirectory, pool *domain.RandomPool, opts ...Option) *Usecase {
	u := &Usecase{
		repo:      repo,
		directory: directory,
		pool:      pool,
		now:       time.Now,
		newID:     func() string { return ulid.Make().String() },
		intn:      rand.IntN,
		sessions:  []domain.Session{},
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.directory == nil {
		u.directory = domain.NewHostcodeDirectory(nil)
	}
	if u.pool == nil {
		u.pool = domain.NewRandomPool(nil)
	}
	return u
}

// Open loads the persisted collection into memory.
func (u *Usecase) Open(ctx context.Context) error {
	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	sessions, err := u.repo.LoadAll(ctx)
	if err != nil {
		log.Printf("Error loading sessions, starting empty: %v", err)
		sessions = nil
	}
	loaded := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsValid() {
			log.Printf("Skipping invalid stored session %q", s.ID)
			continue
		}
		loaded = append(loaded, s.Clone())
	}

	u.mu.Lock()
	u.sessions = loaded
	u.mu.Unlock()
	metrics.SetActiveSessions(len(loaded))
	log.Printf("Loaded %d sessions", len(loaded))
	return nil
}

// Close writes the current collection one last time.
func (u *Usecase) Close(ctx context.Context) error {
	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	u.mu.RLock()
	snapshot := domain.CloneSessions(u.sessions)
	u.mu.RUnlock()
	return u.save(ctx, snapshot)
}

func (u *Usecase) VerifyHostcode(ctx context.Context, hostcode string) (domain.BusinessProfile, error) {
	return u.directory.Verify(hostcode)
}

func (u *Usecase) ListHostcodes(ctx context.Context) ([]domain.BusinessProfile, error) {
	return u.directory.Profiles(), nil
}

// GetOrCreateSession returns the live session for hostcode, creating it on
// the first verified request.
func (u *Usecase) GetOrCreateSession(ctx context.Context, hostcode string) (domain.Session, error) {
	code := strings.TrimSpace(hostcode)
	if code == "" {
		return domain.Session{}, domain.ErrHostcodeRequired
	}
	if s, ok := u.findByHostcode(code); ok {
		return s, nil
	}

	profile, err := u.directory.Verify(code)
	if err != nil {
		return domain.Session{}, err
	}

	var out domain.Session
	err = u.mutate(ctx, func(sessions []domain.Session) ([]domain.Session, bool, error) {
		// Another caller may have created it while we verified.
		if i := indexByHostcode(sessions, profile.Hostcode); i >= 0 {
			out = sessions[i].Clone()
			return sessions, false, nil
		}
		s := domain.NewSession(u.newID(), profile, u.now())
		out = s.Clone()
		log.Printf("Created session %s for %s", s.ID, s.Business.BusinessName)
		return append(sessions, s), true, nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

func (u *Usecase) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	return u.read(sessionID)
}

// EndSession removes a session with its devices and queue. Ending an
// unknown session reports false.
func (u *Usecase) EndSession(ctx context.Context, sessionID string) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, domain.ErrSessionIDRequired
	}
	ended := false
	err := u.mutate(ctx, func(sessions []domain.Session) ([]domain.Session, bool, error) {
		i := indexByID(sessions, sessionID)
		if i < 0 {
			return sessions, false, nil
		}
		ended = true
		return append(sessions[:i], sessions[i+1:]...), true, nil
	})
	if err != nil {
		return false, err
	}
	return ended, nil
}

func (u *Usecase) RegisterDevice(ctx context.Context, sessionID, name, userAgent string) (domain.Device, error) {
	var device domain.Device
	_, err := u.mutateSession(ctx, sessionID, func(s *domain.Session, now time.Time) (bool, error) {
		d, created, err := s.RegisterDevice(name, userAgent, now, u.newID)
		if err != nil {
			if errors.Is(err, domain.ErrCapacityExceeded) {
				metrics.IncCapacityRejection()
			}
			return false, err
		}
		if created {
			log.Printf("Registered device %s (%s) in session %s", d.ID, d.Name, s.ID)
		}
		device = d
		return true, nil
	})
	if err != nil {
		return domain.Device{}, err
	}
	return device, nil
}

// RemoveDevice reports whether the device was present. Nothing is written
// when it was not.
func (u *Usecase) RemoveDevice(ctx context.Context, sessionID, deviceID string) (bool, error) {
	if strings.TrimSpace(deviceID) == "" {
		return false, domain.ErrDeviceIDRequired
	}
	removed := false
	_, err := u.mutateSession(ctx, sessionID, func(s *domain.Session, _ time.Time) (bool, error) {
		removed = s.RemoveDevice(deviceID)
		return removed, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (u *Usecase) ListDevices(ctx context.Context, sessionID string) ([]domain.Device, error) {
	s, err := u.read(sessionID)
	if err != nil {
		return nil, err
	}
	return s.DeviceList(), nil
}

func (u *Usecase) SubmitVideo(ctx context.Context, sessionID string, item domain.QueueItem, user *domain.UserMessage) (domain.QueueItem, error) {
	var queued domain.QueueItem
	_, err := u.mutateSession(ctx, sessionID, func(s *domain.Session, _ time.Time) (bool, error) {
		q, err := s.SubmitVideo(item, user)
		if err != nil {
			return false, err
		}
		queued = q
		return true, nil
	})
	if err != nil {
		return domain.QueueItem{}, err
	}
	return queued, nil
}

// NextVideo advances playback: the queue head if any, otherwise a random
// pool entry.
func (u *Usecase) NextVideo(ctx context.Context, sessionID string) (domain.Playback, error) {
	var playback domain.Playback
	_, err := u.mutateSession(ctx, sessionID, func(s *domain.Session, _ time.Time) (bool, error) {
		p, err := s.NextVideo(func() (string, bool) { return u.pool.Pick(u.intn) })
		if err != nil {
			return false, err
		}
		playback = p
		return true, nil
	})
	if err != nil {
		return domain.Playback{}, err
	}
	metrics.IncPlayback(playback.Source.String())
	return playback, nil
}

func (u *Usecase) ListQueue(ctx context.Context, sessionID string) ([]domain.QueueItem, error) {
	s, err := u.read(sessionID)
	if err != nil {
		return nil, err
	}
	return s.QueueItems(), nil
}

func (u *Usecase) FilterQueue(ctx context.Context, sessionID, genre string) ([]domain.QueueItem, error) {
	if strings.TrimSpace(genre) == "" {
		return nil, domain.ErrGenreRequired
	}
	s, err := u.read(sessionID)
	if err != nil {
		return nil, err
	}
	return s.FilterByGenre(genre), nil
}

func (u *Usecase) BusinessConfig(ctx context.Context, sessionID string) (domain.Business, error) {
	s, err := u.read(sessionID)
	if err != nil {
		return domain.Business{}, err
	}
	return s.Business, nil
}

func (u *Usecase) read(sessionID string) (domain.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Session{}, domain.ErrSessionIDRequired
	}

	u.mu.RLock()
	defer u.mu.RUnlock()

	i := indexByID(u.sessions, sessionID)
	if i < 0 {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return u.sessions[i].Clone(), nil
}

func (u *Usecase) findByHostcode(code string) (domain.Session, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	i := indexByHostcode(u.sessions, code)
	if i < 0 {
		return domain.Session{}, false
	}
	return u.sessions[i].Clone(), true
}

// mutate applies fn to a private copy of the collection. The copy is saved
// and published only when fn reports a change and returns no error.
func (u *Usecase) mutate(ctx context.Context, fn func([]domain.Session) ([]domain.Session, bool, error)) error {
	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	u.mu.RLock()
	next := domain.CloneSessions(u.sessions)
	u.mu.RUnlock()

	next, changed, err := fn(next)
	if err != nil || !changed {
		return err
	}
	if err := u.save(ctx, next); err != nil {
		return err
	}

	u.mu.Lock()
	u.sessions = next
	u.mu.Unlock()
	metrics.SetActiveSessions(len(next))
	return nil
}

func (u *Usecase) mutateSession(ctx context.Context, sessionID string, fn func(s *domain.Session, now time.Time) (bool, error)) (domain.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Session{}, domain.ErrSessionIDRequired
	}
	var out domain.Session
	err := u.mutate(ctx, func(sessions []domain.Session) ([]domain.Session, bool, error) {
		i := indexByID(sessions, sessionID)
		if i < 0 {
			return sessions, false, domain.ErrSessionNotFound
		}
		now := u.now()
		changed, err := fn(&sessions[i], now)
		if err != nil {
			return sessions, false, err
		}
		if changed {
			sessions[i].Touch(now)
		}
		out = sessions[i].Clone()
		return sessions, changed, nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

func (u *Usecase) save(ctx context.Context, sessions []domain.Session) error {
	start := time.Now()
	err := u.repo.SaveAll(ctx, sessions)
	metrics.ObserveSave(err, time.Since(start))
	if err != nil {
		log.Printf("Error saving sessions: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func indexByID(sessions []domain.Session, id string) int {
	for i, s := range sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func indexByHostcode(sessions []domain.Session, code string) int {
	key := domain.LookupKey(code)
	for i, s := range sessions {
		if domain.LookupKey(s.Hostcode) == key {
			return i
		}
	}
	return -1
}
