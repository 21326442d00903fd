package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed example-manifest.yaml
var exampleManifest []byte

// WriteExampleIfMissing writes depwave.yaml to targetDir if it does not exist.
func WriteExampleIfMissing(targetDir string) error {
	if targetDir == "" {
		return errors.New("empty targetDir")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}
	p := filepath.Join(targetDir, "depwave.yaml")
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(p, exampleManifest, 0o644)
}
