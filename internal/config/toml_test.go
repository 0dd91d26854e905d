package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Generate.Count != nil || cfg.Generate.WordListDir != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesGenerateSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[generate]
count = 12
wordlist-dir = "/tmp/words"
suffixes = ["notes", "labs"]
show-names = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Generate.Count == nil || *cfg.Generate.Count != 12 {
		t.Fatalf("unexpected count: %v", cfg.Generate.Count)
	}
	if cfg.Generate.WordListDir == nil || *cfg.Generate.WordListDir != "/tmp/words" {
		t.Fatalf("unexpected wordlist-dir: %v", cfg.Generate.WordListDir)
	}
	if len(cfg.Generate.Suffixes) != 2 || cfg.Generate.Suffixes[1] != "labs" {
		t.Fatalf("unexpected suffixes: %v", cfg.Generate.Suffixes)
	}
	if cfg.Generate.ShowNames == nil || !*cfg.Generate.ShowNames {
		t.Fatalf("expected show-names to be true")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[generate]\ncolour = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "generate.colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsHonorXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := DefaultConfigPath(); got != filepath.Join(dir, "foldergen", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultWordListDir(); got != filepath.Join(dir, "foldergen", "wordlists") {
		t.Fatalf("unexpected wordlist dir: %s", got)
	}
}
