package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Manifest

func Get() Manifest { return current }

// LoadFromFiles reads and merges the given manifest files in sorted order.
// An item name appearing twice, within one file or across files, is an error
// naming the files involved.
func LoadFromFiles(files []string) (Manifest, error) {
	combined := Manifest{}
	seen := map[string]string{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Manifest{}, err
		}
		var part Manifest
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Manifest{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkItemDuplicates(seen, part, f); err != nil {
			return Manifest{}, err
		}
		combined.Items = append(combined.Items, part.Items...)
	}
	current = combined
	return combined, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func checkItemDuplicates(seen map[string]string, part Manifest, file string) error {
	local := map[string]struct{}{}
	for _, it := range part.Items {
		if _, ok := local[it.Name]; ok {
			return fmt.Errorf("duplicate item '%s' found in %s", it.Name, file)
		}
		local[it.Name] = struct{}{}
	}
	for _, it := range part.Items {
		if prev, ok := seen[it.Name]; ok {
			return fmt.Errorf("duplicate item '%s' found in %s and %s", it.Name, prev, file)
		}
	}
	for _, it := range part.Items {
		seen[it.Name] = file
	}
	return nil
}
