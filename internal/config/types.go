package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item is one manifest entry: a named unit, the names it depends on, and an
// optional shell command for `depwave run`.
type Item struct {
	Name      string   `yaml:"name" json:"name"`
	DependsOn []string `yaml:"depends_on" json:"depends_on,omitempty"`
	Run       Command  `yaml:"run" json:"run"`
}

// Manifest is the merged content of all loaded manifest files.
type Manifest struct {
	Items []Item `yaml:"items" json:"items,omitempty"`
}

type Command struct {
	Command string `yaml:"command" json:"command"`
	Dir     string `yaml:"dir" json:"dir,omitempty"`
}

// UnmarshalYAML accepts either a plain scalar command or a mapping with
// command and dir keys.
func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Command = value.Value
		c.Dir = ""
		return nil
	case yaml.MappingNode:
		var aux struct {
			Command string `yaml:"command"`
			Dir     string `yaml:"dir"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		c.Command = aux.Command
		c.Dir = aux.Dir
		return nil
	default:
		return fmt.Errorf("invalid command node kind: %d", value.Kind)
	}
}
