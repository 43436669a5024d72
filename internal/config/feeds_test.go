package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEnsureFeedsFile(t *testing.T) {
	t.Run("creates template when absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rss.config")

		if err := EnsureFeedsFile(path); err != nil {
			t.Fatalf("EnsureFeedsFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read feeds file: %v", err)
		}
		if string(data) != defaultFeedsTemplate {
			t.Errorf("EnsureFeedsFile() content = %q, want template", string(data))
		}
	})

	t.Run("leaves existing file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rss.config")
		existing := "https://example.com/custom.rss\n"
		if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
			t.Fatalf("write feeds file: %v", err)
		}

		if err := EnsureFeedsFile(path); err != nil {
			t.Fatalf("EnsureFeedsFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read feeds file: %v", err)
		}
		if string(data) != existing {
			t.Errorf("EnsureFeedsFile() overwrote existing file: %q", string(data))
		}
	})
}

func TestLoadFeedURLs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rss.config")
	content := `# comment line
https://example.com/a.rss

https://example.com/b.rss
  # indented comment
https://example.com/a.rss
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write feeds file: %v", err)
	}

	urls, err := LoadFeedURLs(path)
	if err != nil {
		t.Fatalf("LoadFeedURLs() error = %v", err)
	}

	// Порядок и дубликаты сохраняются, комментарии и пустые строки выпадают.
	want := []string{
		"https://example.com/a.rss",
		"https://example.com/b.rss",
		"https://example.com/a.rss",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("LoadFeedURLs() = %v, want %v", urls, want)
	}
}

func TestLoadFeedURLs_MissingFile(t *testing.T) {
	if _, err := LoadFeedURLs(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("LoadFeedURLs() should fail on missing file")
	}
}
