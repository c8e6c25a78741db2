package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func newConfig(t *testing.T, dir string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, ".karaokesh.yaml"))
	v.ReadInConfig()
	return v
}

func TestUserAgentDiffersAcrossInstalls(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	a := userAgent(newConfig(t, dirA))
	b := userAgent(newConfig(t, dirB))
	if a == b {
		t.Fatalf("two installs share user agent %q", a)
	}
	if !strings.HasPrefix(a, "karaokesh-cli/") {
		t.Fatalf("user agent = %q", a)
	}
}

func TestUserAgentStableForOneInstall(t *testing.T) {
	dir := t.TempDir()
	v := newConfig(t, dir)
	first := userAgent(v)
	if again := userAgent(v); again != first {
		t.Fatalf("user agent changed within a run: %q then %q", first, again)
	}
	// A later run reads the id back from the saved config.
	if reloaded := userAgent(newConfig(t, dir)); reloaded != first {
		t.Fatalf("user agent after reload = %q, want %q", reloaded, first)
	}
}
