package zugzwang

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEngineConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	contents := "search_depth = 8\ntable_age_limit = 6\nbook_path = \"/tmp/book.bin\"\nlog_level = \"info\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEngineConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SearchDepth != 8 {
		t.Fatalf("expected search depth 8, got %d", cfg.SearchDepth)
	}
	if cfg.TableAgeLimit != 6 {
		t.Fatalf("expected table age limit 6, got %d", cfg.TableAgeLimit)
	}
	if cfg.BookPath != "/tmp/book.bin" {
		t.Fatalf("expected book path /tmp/book.bin, got %q", cfg.BookPath)
	}
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	if cfg.SearchDepth <= 0 {
		t.Fatalf("expected a positive default search depth")
	}
	if cfg.TableAgeLimit != 4 {
		t.Fatalf("expected the default table age limit to match the transposition table's eviction horizon")
	}
}

func TestLoadEngineConfigMissingFile(t *testing.T) {
	_, err := LoadEngineConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected an error loading a nonexistent config file")
	}
}
