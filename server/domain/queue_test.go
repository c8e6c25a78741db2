package domain

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func noFallback() (string, bool) { return "", false }

func TestSubmitVideoRequiresID(t *testing.T) {
	s := testSession(time.Now())
	for _, id := range []string{"", "   "} {
		if _, err := s.SubmitVideo(QueueItem{ID: id, Title: "x"}, nil); !errors.Is(err, ErrVideoIDRequired) {
			t.Fatalf("SubmitVideo(%q) err = %v, want ErrVideoIDRequired", id, err)
		}
	}
	if len(s.Queue) != 0 {
		t.Fatalf("queue = %d, want 0", len(s.Queue))
	}
}

func TestSubmitVideoCopiesUser(t *testing.T) {
	s := testSession(time.Now())
	user := &UserMessage{Username: "SingingMike", Message: "for Sarah"}

	item, err := s.SubmitVideo(QueueItem{ID: "yt-1", Title: "My Way"}, user)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	user.Username = "changed"
	if item.SubmittedBy == nil || item.SubmittedBy.Username != "SingingMike" {
		t.Fatalf("returned item aliases caller user: %+v", item.SubmittedBy)
	}
	if s.Queue[0].SubmittedBy.Username != "SingingMike" {
		t.Fatalf("queued item aliases caller user: %+v", s.Queue[0].SubmittedBy)
	}
}

func TestNextVideoIsFIFO(t *testing.T) {
	s := testSession(time.Now())
	for _, id := range []string{"A", "B", "C"} {
		if _, err := s.SubmitVideo(QueueItem{ID: id}, nil); err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
	}

	for _, want := range []string{"A", "B", "C"} {
		p, err := s.NextVideo(noFallback)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if p.Source != SourceQueue || p.Item.ID != want {
			t.Fatalf("next = %s/%s, want queue/%s", p.Source, p.VideoID(), want)
		}
		if s.LastPlayed != want {
			t.Fatalf("lastPlayed = %q, want %q", s.LastPlayed, want)
		}
	}
	if len(s.Queue) != 0 {
		t.Fatalf("queue not drained: %d", len(s.Queue))
	}
}

func TestNextVideoFallsBackToRandomPool(t *testing.T) {
	s := testSession(time.Now())
	pool := NewRandomPool([]string{"r1", "r2", "r3"})
	rng := rand.New(rand.NewPCG(7, 7))
	fallback := func() (string, bool) { return pool.Pick(rng.IntN) }

	seen := map[string]int{}
	for i := 0; i < 50; i++ {
		p, err := s.NextVideo(fallback)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if p.Source != SourceRandom {
			t.Fatalf("source = %s, want random", p.Source)
		}
		if !pool.Contains(p.ID) {
			t.Fatalf("id %q not in pool", p.ID)
		}
		if s.LastPlayed != p.ID {
			t.Fatalf("lastPlayed = %q, want %q", s.LastPlayed, p.ID)
		}
		seen[p.ID]++
	}
	repeated := false
	for _, n := range seen {
		if n > 1 {
			repeated = true
		}
	}
	if !repeated {
		t.Fatalf("expected repeated random ids over 50 draws: %v", seen)
	}
	if len(s.Queue) != 0 {
		t.Fatalf("random fallback mutated queue")
	}
}

func TestNextVideoNothingToPlay(t *testing.T) {
	s := testSession(time.Now())
	s.LastPlayed = "prev"
	if _, err := s.NextVideo(noFallback); !errors.Is(err, ErrNothingToPlay) {
		t.Fatalf("err = %v, want ErrNothingToPlay", err)
	}
	if s.LastPlayed != "prev" {
		t.Fatalf("lastPlayed changed to %q", s.LastPlayed)
	}
}

func TestFilterByGenre(t *testing.T) {
	s := testSession(time.Now())
	items := []QueueItem{
		{ID: "1", Genre: "Rock"},
		{ID: "2", Genre: "Pop"},
		{ID: "3", Genre: "rock"},
		{ID: "4"},
	}
	for _, item := range items {
		if _, err := s.SubmitVideo(item, nil); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	got := s.FilterByGenre("Rock")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("FilterByGenre(Rock) = %+v", got)
	}
	if len(s.Queue) != 4 {
		t.Fatalf("filter mutated queue: %d", len(s.Queue))
	}
	if got := s.FilterByGenre("Jazz"); len(got) != 0 {
		t.Fatalf("FilterByGenre(Jazz) = %+v", got)
	}
}

func TestRandomPoolReplaceSkipsBlankIDs(t *testing.T) {
	pool := NewRandomPool([]string{" a ", "", "  ", "b"})
	ids := pool.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("ids = %v", ids)
	}
	if _, ok := NewRandomPool(nil).Pick(func(int) int { return 0 }); ok {
		t.Fatalf("empty pool returned an id")
	}
}
