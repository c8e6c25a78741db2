package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ponyo877/karaokesh/server/domain"
)

const testCatalog = `
businesses:
  - hostcode: "919190"
    business_name: Scret Lounge
    slogan: Exclusive Nights, Unforgettable Voices
  - hostcode: DEMO123
    business_name: Karaoke Palace
random_pool:
  - r1
  - r2
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(c.Businesses) != 2 || len(c.RandomPool) != 2 {
		t.Fatalf("catalog = %+v", c)
	}

	dir := domain.NewHostcodeDirectory(nil)
	pool := domain.NewRandomPool(nil)
	c.Apply(dir, pool)

	p, err := dir.Verify("919190")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if p.BusinessName != "Scret Lounge" {
		t.Fatalf("business = %q", p.BusinessName)
	}
	if !pool.Contains("r2") {
		t.Fatalf("pool = %v", pool.IDs())
	}
}

func TestParseCatalogRejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing hostcode", data: "businesses:\n  - business_name: X\n"},
		{name: "missing name", data: "businesses:\n  - hostcode: ABC\n"},
		{name: "not yaml", data: "businesses: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog([]byte(tt.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestCatalogWatcherReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dir := domain.NewHostcodeDirectory(nil)
	pool := domain.NewRandomPool(nil)
	w := NewCatalogWatcher(path, dir, pool)
	if err := w.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if err := os.WriteFile(path, []byte("businesses: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if len(dir.Profiles()) != 2 {
		t.Fatalf("directory replaced by broken catalog: %d", len(dir.Profiles()))
	}
}

func TestCatalogWatcherPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	dir := domain.NewHostcodeDirectory(nil)
	pool := domain.NewRandomPool(nil)
	w := NewCatalogWatcher(path, dir, pool)
	if err := w.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("run: %v", err)
		}
	}()

	updated := testCatalog + "  - r3\n"
	deadline := time.Now().Add(5 * time.Second)
	for !pool.Contains("r3") {
		if time.Now().After(deadline) {
			t.Fatalf("watcher never reloaded: %v", pool.IDs())
		}
		if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}
	if _, err := dir.Verify("demo123"); err != nil {
		t.Fatalf("verify after reload: %v", err)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}
