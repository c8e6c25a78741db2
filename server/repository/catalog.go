package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/ponyo877/karaokesh/server/domain"
	"github.com/ponyo877/karaokesh/server/metrics"
	"gopkg.in/yaml.v3"
)

type BusinessYAML struct {
	Hostcode     string `yaml:"hostcode"`
	BusinessName string `yaml:"business_name"`
	Slogan       string `yaml:"slogan"`
	FlyerURL     string `yaml:"flyer_url"`
}

// Catalog is the venue directory and the fallback video pool.
type Catalog struct {
	Businesses []BusinessYAML `yaml:"businesses"`
	RandomPool []string       `yaml:"random_pool"`
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Businesses) == 0 {
		return Catalog{}, errors.New("catalog has no businesses")
	}
	for i, b := range c.Businesses {
		if strings.TrimSpace(b.Hostcode) == "" {
			return Catalog{}, fmt.Errorf("businesses[%d]: hostcode is required", i)
		}
		if strings.TrimSpace(b.BusinessName) == "" {
			return Catalog{}, fmt.Errorf("businesses[%d]: business_name is required", i)
		}
	}
	return c, nil
}

func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

func (c Catalog) Profiles() []domain.BusinessProfile {
	profiles := make([]domain.BusinessProfile, len(c.Businesses))
	for i, b := range c.Businesses {
		profiles[i] = domain.NewBusinessProfile(b.Hostcode, b.BusinessName, b.Slogan, b.FlyerURL)
	}
	return profiles
}

// Apply swaps the catalog into the live directory and pool.
func (c Catalog) Apply(directory *domain.HostcodeDirectory, pool *domain.RandomPool) {
	directory.Replace(c.Profiles())
	pool.Replace(c.RandomPool)
}

// CatalogWatcher reloads the catalog file when it changes on disk. A reload
// that fails to parse keeps the previous contents.
type CatalogWatcher struct {
	path      string
	directory *domain.HostcodeDirectory
	pool      *domain.RandomPool
}

func NewCatalogWatcher(path string, directory *domain.HostcodeDirectory, pool *domain.RandomPool) *CatalogWatcher {
	return &CatalogWatcher{path: path, directory: directory, pool: pool}
}

func (w *CatalogWatcher) Reload() error {
	c, err := LoadCatalog(w.path)
	metrics.ObserveCatalogReload(err)
	if err != nil {
		return err
	}
	c.Apply(w.directory, w.pool)
	log.Printf("Catalog loaded: %d businesses, %d fallback videos", len(c.Businesses), len(c.RandomPool))
	return nil
}

// Run watches the catalog's directory until ctx is done. Editors often
// replace files by rename, so the parent directory is watched rather than
// the file itself.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch catalog dir: %w", err)
	}
	target := filepath.Clean(w.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if err := w.Reload(); err != nil {
					log.Printf("Catalog reload failed, keeping previous: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Catalog watcher error: %v", err)
		}
	}
}
