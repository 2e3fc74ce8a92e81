package config

import (
	"fmt"
	"os"

	"github.com/jinjor/desktop-synth/src/audio"
	"github.com/jinjor/desktop-synth/src/keymap"
	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration of the desktop process. Missing
// fields keep their defaults; a keys table replaces the default table.
type File struct {
	Engine audio.Config  `yaml:",inline"`
	Keymap keymap.Config `yaml:",inline"`
}

// Default ...
func Default() *File {
	return &File{
		Engine: *audio.DefaultConfig(),
		Keymap: *keymap.DefaultConfig(),
	}
}

// Load reads path. An empty path returns the defaults.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*File, error) {
	f := Default()
	defaultKeys := f.Keymap.Keys
	f.Keymap.Keys = nil
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if len(f.Keymap.Keys) == 0 {
		f.Keymap.Keys = defaultKeys
	}
	if err := f.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := keymap.New(&f.Keymap); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return f, nil
}
