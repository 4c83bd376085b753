package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	cfg := &LoaderConfig{
		MaxThreads: 3,
		Batches: map[string]BatchConfig{
			"test": {Jobs: []string{"a", "b"}},
		},
	}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("config file was not created: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}

	var loaded LoaderConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("config file contains invalid JSON: %v", err)
	}
	if loaded.MaxThreads != 3 {
		t.Errorf("max_threads = %d, want 3", loaded.MaxThreads)
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "deep", "config.json")

	cfg := &LoaderConfig{MaxThreads: 1, Batches: map[string]BatchConfig{}}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("config file was not created: %s", path)
	}
	parentDir := filepath.Dir(path)
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		t.Fatalf("parent directory was not created: %s", parentDir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	cfg := &LoaderConfig{
		MaxThreads:      6,
		DefaultPriority: 2,
		Batches: map[string]BatchConfig{
			"bootstrap": {Jobs: []string{"load-schema", "load-tables"}, Priority: 1},
		},
	}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.MaxThreads != 6 {
		t.Errorf("max_threads = %d, want 6", loaded.MaxThreads)
	}
	batch, ok := loaded.Batches["bootstrap"]
	if !ok {
		t.Fatal("expected batch \"bootstrap\" not found")
	}
	if len(batch.Jobs) != 2 || batch.Jobs[0] != "load-schema" {
		t.Errorf("bootstrap jobs = %v, want [load-schema load-tables]", batch.Jobs)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")

	cfg1 := &LoaderConfig{MaxThreads: 1, Batches: map[string]BatchConfig{}}
	if err := Save(cfg1, path); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	cfg2 := &LoaderConfig{MaxThreads: 9, Batches: map[string]BatchConfig{}}
	if err := Save(cfg2, path); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	var loaded LoaderConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	if loaded.MaxThreads != 9 {
		t.Errorf("max_threads = %d, want 9", loaded.MaxThreads)
	}
}
