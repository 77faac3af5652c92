package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trellis.toml")
	data := "[render]\nformat = \"dot\"\noutput = \"out.dot\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Format != "dot" {
		t.Errorf("format = %q, want dot", cfg.Render.Format)
	}
	if cfg.Render.Output != "out.dot" {
		t.Errorf("output = %q, want out.dot", cfg.Render.Output)
	}
}

func TestLoadConfigMissingDefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Format != formatText {
		t.Errorf("format = %q, want default %q", cfg.Render.Format, formatText)
	}
}

func TestLoadConfigExplicitMissingFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("load succeeded on missing explicit path, want error")
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trellis.toml")
	if err := os.WriteFile(path, []byte("[render]\noutput = \"x.svg\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Render.Format != formatText {
		t.Errorf("format = %q, want default %q", cfg.Render.Format, formatText)
	}
	if cfg.Render.Output != "x.svg" {
		t.Errorf("output = %q, want x.svg", cfg.Render.Output)
	}
}

func TestConfigPathPrefersXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := configPath()
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if want := filepath.Join(dir, "trellis.toml"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestCacheDirPrefersXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	path, err := cacheDir()
	if err != nil {
		t.Fatalf("cache dir: %v", err)
	}
	if want := filepath.Join(dir, "trellis"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
