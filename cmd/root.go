package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/depwave/depwave-cli/internal/config"
	"github.com/depwave/depwave-cli/internal/logging"
	"github.com/depwave/depwave-cli/internal/planner"
)

var manifestPaths []string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "depwave",
	Short: "Dependency leveling for batch processing",
	Long:  "depwave resolves a manifest of items with depends_on relations into levels: level 0 holds items with no dependencies, and every other item sits one level above its highest dependency. Items in a level can be processed in parallel.",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&manifestPaths, "manifest", "f", nil, "manifest file or directory holding *.yaml manifests (repeatable; default ./depwave.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps and commands")
	rootCmd.Version = version
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	logging.Init()
	logging.SetVerbose(verbose)
}

// loadManifest gathers manifest files from --manifest (or ./depwave.yaml),
// merges them, and validates the result against the embedded schema.
func loadManifest() (config.Manifest, error) {
	paths := manifestPaths
	if len(paths) == 0 {
		paths = []string{"depwave.yaml"}
	}
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return config.Manifest{}, fmt.Errorf("manifest error: %w", err)
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return config.Manifest{}, err
		}
		found := false
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			low := strings.ToLower(e.Name())
			if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
				files = append(files, filepath.Join(p, e.Name()))
				found = true
			}
		}
		if !found {
			return config.Manifest{}, fmt.Errorf("no YAML manifest files found in %s", p)
		}
	}
	man, err := config.LoadFromFiles(files)
	if err != nil {
		return config.Manifest{}, fmt.Errorf("manifest error: %w", err)
	}
	if err := config.ValidateAgainstSchema(man); err != nil {
		return config.Manifest{}, fmt.Errorf("schema error: %w", err)
	}
	return man, nil
}

func buildPlan() (*planner.Plan, error) {
	man, err := loadManifest()
	if err != nil {
		return nil, err
	}
	return planner.New(man).Plan()
}
