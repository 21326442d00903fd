package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteExampleIfMissing(t *testing.T) {
	dir := t.TempDir()

	// First call should create depwave.yaml with embedded contents
	if err := WriteExampleIfMissing(dir); err != nil {
		t.Fatalf("WriteExampleIfMissing: %v", err)
	}
	p := filepath.Join(dir, "depwave.yaml")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty depwave.yaml written")
	}
	if string(b) != string(exampleManifest) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	if err := WriteExampleIfMissing(dir); err != nil {
		t.Fatalf("second call: %v", err)
	}
	b2, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read2: %v", err)
	}
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}
}
