package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ponyo877/karaokesh/server/domain"
)

type stubRepo struct {
	mu      sync.Mutex
	stored  []domain.Session
	saves   int
	saveErr error
	loadErr error
}

func (r *stubRepo) LoadAll(ctx context.Context) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return domain.CloneSessions(r.stored), nil
}

func (r *stubRepo) SaveAll(ctx context.Context, sessions []domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = domain.CloneSessions(sessions)
	r.saves++
	return nil
}

func (r *stubRepo) failWith(err error) {
	r.mu.Lock()
	r.saveErr = err
	r.mu.Unlock()
}

func (r *stubRepo) snapshot() ([]domain.Session, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CloneSessions(r.stored), r.saves
}

func testDirectory() *domain.HostcodeDirectory {
	return domain.NewHostcodeDirectory([]domain.BusinessProfile{
		domain.NewBusinessProfile("DEMO123", "Karaoke Palace", "Where Every Voice Shines!", ""),
		domain.NewBusinessProfile("919190", "Scret Lounge", "Exclusive Nights, Unforgettable Voices", ""),
		domain.NewBusinessProfile("SING456", "Melody Bar", "", ""),
	})
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestUsecase(t *testing.T, repo *stubRepo, pool []string) *Usecase {
	t.Helper()
	now := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)
	uc := NewUsecase(repo, testDirectory(), domain.NewRandomPool(pool),
		WithClock(func() time.Time { return now }),
		WithIDGenerator(sequentialIDs()),
		WithRandom(func(n int) int { return n - 1 }),
	)
	if err := uc.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	return uc
}

func TestScretLoungeScenario(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, err := uc.GetOrCreateSession(ctx, "919190")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if s.Business.BusinessName != "Scret Lounge" {
		t.Fatalf("business = %q", s.Business.BusinessName)
	}

	d, err := uc.RegisterDevice(ctx, s.ID, "", "Mozilla/5.0 (SmartTV)")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if d.Name != "TV" {
		t.Fatalf("device name = %q, want TV", d.Name)
	}
	for _, name := range []string{"Bar", "Stage"} {
		if _, err := uc.RegisterDevice(ctx, s.ID, name, "ua-"+name); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	_, err = uc.RegisterDevice(ctx, s.ID, "Patio", "ua-patio")
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	devices, err := uc.ListDevices(ctx, s.ID)
	if err != nil {
		t.Fatalf("list devices: %v", err)
	}
	if len(devices) != domain.MaxDevices {
		t.Fatalf("devices = %d, want %d", len(devices), domain.MaxDevices)
	}
}

func TestGetOrCreateSessionReusesSession(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	first, err := uc.GetOrCreateSession(ctx, "919190")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := uc.GetOrCreateSession(ctx, " 919190 ")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %s vs %s", first.ID, second.ID)
	}

	lower, err := uc.GetOrCreateSession(ctx, "demo123")
	if err != nil {
		t.Fatalf("lower: %v", err)
	}
	upper, err := uc.GetOrCreateSession(ctx, "DEMO123")
	if err != nil {
		t.Fatalf("upper: %v", err)
	}
	if lower.ID != upper.ID {
		t.Fatalf("case variants created two sessions: %s vs %s", lower.ID, upper.ID)
	}
	if upper.Hostcode != "DEMO123" {
		t.Fatalf("hostcode = %q, want canonical DEMO123", upper.Hostcode)
	}

	stored, saves := repo.snapshot()
	if len(stored) != 2 || saves != 2 {
		t.Fatalf("stored = %d sessions after %d saves, want 2 and 2", len(stored), saves)
	}
}

func TestGetOrCreateSessionRejectsBadCodes(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	if _, err := uc.GetOrCreateSession(ctx, "  "); !errors.Is(err, domain.ErrHostcodeRequired) {
		t.Fatalf("blank err = %v", err)
	}
	if _, err := uc.GetOrCreateSession(ctx, "NOPE"); !errors.Is(err, domain.ErrInvalidHostcode) {
		t.Fatalf("unknown err = %v", err)
	}
	if _, saves := repo.snapshot(); saves != 0 {
		t.Fatalf("saves = %d, want 0", saves)
	}
}

func TestConcurrentGetOrCreateCreatesOneSession(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	const workers = 32
	ids := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := uc.GetOrCreateSession(ctx, "SING456")
			ids[i], errs[i] = s.ID, err
		}(i)
	}
	wg.Wait()

	for i := range ids {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if ids[i] != ids[0] {
			t.Fatalf("worker %d got %s, want %s", i, ids[i], ids[0])
		}
	}
	if stored, _ := repo.snapshot(); len(stored) != 1 {
		t.Fatalf("stored sessions = %d, want 1", len(stored))
	}
}

func TestConcurrentSubmitsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	a, _ := uc.GetOrCreateSession(ctx, "919190")
	b, _ := uc.GetOrCreateSession(ctx, "DEMO123")

	const perSession = 25
	var wg sync.WaitGroup
	for _, id := range []string{a.ID, b.ID} {
		for i := 0; i < perSession; i++ {
			wg.Add(1)
			go func(sessionID string, i int) {
				defer wg.Done()
				item := domain.NewQueueItem(fmt.Sprintf("%s-v%d", sessionID, i), "", "")
				if _, err := uc.SubmitVideo(ctx, sessionID, item, nil); err != nil {
					t.Errorf("submit: %v", err)
				}
			}(id, i)
		}
	}
	wg.Wait()

	for _, id := range []string{a.ID, b.ID} {
		queue, err := uc.ListQueue(ctx, id)
		if err != nil {
			t.Fatalf("list queue: %v", err)
		}
		if len(queue) != perSession {
			t.Fatalf("session %s queue = %d, want %d", id, len(queue), perSession)
		}
	}

	stored, _ := repo.snapshot()
	total := 0
	for _, s := range stored {
		total += len(s.Queue)
	}
	if total != 2*perSession {
		t.Fatalf("persisted items = %d, want %d", total, 2*perSession)
	}
}

func TestFailedSaveLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	s, err := uc.GetOrCreateSession(ctx, "919190")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	diskFull := errors.New("disk full")
	repo.failWith(diskFull)

	_, err = uc.SubmitVideo(ctx, s.ID, domain.NewQueueItem("yt-1", "My Way", ""), nil)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("err = %v, want ErrPersistence", err)
	}
	if !errors.Is(err, diskFull) {
		t.Fatalf("err = %v, want wrapped cause", err)
	}
	var derr *domain.Error
	if !errors.As(err, &derr) || derr.Code != "PERSISTENCE_ERROR" {
		t.Fatalf("errors.As code = %+v", derr)
	}

	after, err := uc.GetSession(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(after.Queue) != 0 || after.Version != s.Version {
		t.Fatalf("state changed after failed save: queue=%d version=%d", len(after.Queue), after.Version)
	}

	if _, err := uc.GetOrCreateSession(ctx, "DEMO123"); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("create err = %v, want ErrPersistence", err)
	}
	repo.failWith(nil)
	if _, err := uc.GetOrCreateSession(ctx, "DEMO123"); err != nil {
		t.Fatalf("create after recovery: %v", err)
	}
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	if _, err := uc.RegisterDevice(ctx, s.ID, "TV", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	ended, err := uc.EndSession(ctx, s.ID)
	if err != nil || !ended {
		t.Fatalf("end = %v, %v", ended, err)
	}
	ended, err = uc.EndSession(ctx, s.ID)
	if err != nil || ended {
		t.Fatalf("second end = %v, %v", ended, err)
	}
	if _, err := uc.GetSession(ctx, s.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("get after end = %v", err)
	}
	if _, err := uc.EndSession(ctx, ""); !errors.Is(err, domain.ErrSessionIDRequired) {
		t.Fatalf("blank end = %v", err)
	}

	next, _ := uc.GetOrCreateSession(ctx, "919190")
	if next.ID == s.ID {
		t.Fatalf("ended session id reused")
	}
	if devices, _ := uc.ListDevices(ctx, next.ID); len(devices) != 0 {
		t.Fatalf("devices carried over: %+v", devices)
	}
}

func TestRemoveDevice(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	uc := newTestUsecase(t, repo, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	d, _ := uc.RegisterDevice(ctx, s.ID, "TV", "ua-1")
	_, savesBefore := repo.snapshot()

	removed, err := uc.RemoveDevice(ctx, s.ID, "missing")
	if err != nil || removed {
		t.Fatalf("remove missing = %v, %v", removed, err)
	}
	if _, saves := repo.snapshot(); saves != savesBefore {
		t.Fatalf("remove of missing device persisted")
	}

	if _, err := uc.RemoveDevice(ctx, s.ID, ""); !errors.Is(err, domain.ErrDeviceIDRequired) {
		t.Fatalf("blank device id err = %v", err)
	}
	if _, err := uc.RemoveDevice(ctx, "nope", d.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("unknown session err = %v", err)
	}

	removed, err = uc.RemoveDevice(ctx, s.ID, d.ID)
	if err != nil || !removed {
		t.Fatalf("remove = %v, %v", removed, err)
	}
	if devices, _ := uc.ListDevices(ctx, s.ID); len(devices) != 0 {
		t.Fatalf("devices = %+v", devices)
	}
}

func TestNextVideo(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, []string{"r1", "r2"})

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	for _, id := range []string{"A", "B"} {
		if _, err := uc.SubmitVideo(ctx, s.ID, domain.NewQueueItem(id, "", ""), nil); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	want := []struct {
		source domain.PlaybackSource
		id     string
	}{
		{domain.SourceQueue, "A"},
		{domain.SourceQueue, "B"},
		{domain.SourceRandom, "r2"},
		{domain.SourceRandom, "r2"},
	}
	for i, w := range want {
		p, err := uc.NextVideo(ctx, s.ID)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if p.Source != w.source || p.VideoID() != w.id {
			t.Fatalf("next %d = %s/%s, want %s/%s", i, p.Source, p.VideoID(), w.source, w.id)
		}
	}

	got, _ := uc.GetSession(ctx, s.ID)
	if got.LastPlayed != "r2" {
		t.Fatalf("lastPlayed = %q", got.LastPlayed)
	}
}

func TestNextVideoWithEmptyPool(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	if _, err := uc.NextVideo(ctx, s.ID); !errors.Is(err, domain.ErrNothingToPlay) {
		t.Fatalf("err = %v, want ErrNothingToPlay", err)
	}
	if got, _ := uc.GetSession(ctx, s.ID); got.Version != s.Version {
		t.Fatalf("version moved on failed next: %d -> %d", s.Version, got.Version)
	}
}

func TestMutationsBumpVersion(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	if _, err := uc.SubmitVideo(ctx, s.ID, domain.NewQueueItem("v", "", ""), nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := uc.RegisterDevice(ctx, s.ID, "TV", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, _ := uc.GetSession(ctx, s.ID)
	if got.Version != s.Version+2 {
		t.Fatalf("version = %d, want %d", got.Version, s.Version+2)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	user := &domain.UserMessage{Username: "Mike"}
	if _, err := uc.SubmitVideo(ctx, s.ID, domain.NewQueueItem("v", "", ""), user); err != nil {
		t.Fatalf("submit: %v", err)
	}

	queue, _ := uc.ListQueue(ctx, s.ID)
	queue[0].ID = "mutated"
	queue[0].SubmittedBy.Username = "mutated"

	again, _ := uc.ListQueue(ctx, s.ID)
	if again[0].ID != "v" || again[0].SubmittedBy.Username != "Mike" {
		t.Fatalf("registry state aliased: %+v %+v", again[0], again[0].SubmittedBy)
	}
}

func TestFilterQueue(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "919190")
	for _, item := range []domain.QueueItem{
		domain.NewQueueItem("1", "", "Enka"),
		domain.NewQueueItem("2", "", "Pop"),
		domain.NewQueueItem("3", "", "enka"),
	} {
		if _, err := uc.SubmitVideo(ctx, s.ID, item, nil); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	got, err := uc.FilterQueue(ctx, s.ID, "ENKA")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("filter = %+v", got)
	}
	if _, err := uc.FilterQueue(ctx, s.ID, ""); !errors.Is(err, domain.ErrGenreRequired) {
		t.Fatalf("blank genre err = %v", err)
	}
}

func TestBusinessConfig(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(t, &stubRepo{}, nil)

	s, _ := uc.GetOrCreateSession(ctx, "DEMO123")
	b, err := uc.BusinessConfig(ctx, s.ID)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if b.BusinessName != "Karaoke Palace" || b.Slogan != "Where Every Voice Shines!" {
		t.Fatalf("business = %+v", b)
	}
	if _, err := uc.BusinessConfig(ctx, ""); !errors.Is(err, domain.ErrSessionIDRequired) {
		t.Fatalf("blank id err = %v", err)
	}
	if _, err := uc.BusinessConfig(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("unknown id err = %v", err)
	}
}

func TestOpenLoadsAndCloseFlushes(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)
	existing := domain.NewSession("stored-1", domain.NewBusinessProfile("919190", "Scret Lounge", "", ""), now)
	repo := &stubRepo{stored: []domain.Session{existing, {ID: "", Hostcode: "broken"}}}

	uc := newTestUsecase(t, repo, nil)
	s, err := uc.GetOrCreateSession(ctx, "919190")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if s.ID != "stored-1" {
		t.Fatalf("id = %s, want stored-1", s.ID)
	}

	if err := uc.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	stored, saves := repo.snapshot()
	if saves != 1 || len(stored) != 1 || stored[0].ID != "stored-1" {
		t.Fatalf("flush stored %d sessions after %d saves", len(stored), saves)
	}
}

func TestOpenToleratesLoadError(t *testing.T) {
	uc := newTestUsecase(t, &stubRepo{loadErr: errors.New("corrupt")}, nil)
	if _, err := uc.GetSession(context.Background(), "anything"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("err = %v", err)
	}
}
