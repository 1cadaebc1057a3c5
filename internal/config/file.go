// Package config holds the application constants and the optional YAML
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors config.yaml. Zero values mean "use the default".
type File struct {
	Mode        string            `yaml:"mode"`
	Show        string            `yaml:"show"`
	Size        int               `yaml:"size"`
	Delay       time.Duration     `yaml:"delay"`
	Background  string            `yaml:"bg_color"`
	BorderColor string            `yaml:"border_color"`
	Theme       string            `yaml:"theme"`
	DBPath      string            `yaml:"db"`
	Presets     map[string]string `yaml:"presets"`
}

// Load reads path. A missing file yields an empty File.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	if f.Size < 0 || f.Size > MaxSize {
		return f, fmt.Errorf("parse config %s: size %d out of range 1-%d", path, f.Size, MaxSize)
	}
	return f, nil
}
