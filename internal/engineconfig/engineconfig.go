package engineconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the config file, relative to the process working directory.
const EngineConfigPath = "config/tracer.yaml"

// Prefs holds tracer preferences. Persisted across runs.
type Prefs struct {
	Variant        string `yaml:"variant"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Supersample    int    `yaml:"supersample"`
	ShowFPS        bool   `yaml:"show_fps"`
	ShowMemAlloc   bool   `yaml:"show_memalloc"`
	ShowRenderTime bool   `yaml:"show_render_time"`
}

// Default returns the default preferences: deepseek at 320x320, overlays off.
func Default() Prefs {
	return Prefs{
		Variant:     "deepseek",
		Width:       320,
		Height:      320,
		Supersample: 1,
	}
}

// Load reads preferences from EngineConfigPath.
func Load() (Prefs, error) {
	return LoadFile(EngineConfigPath)
}

// LoadFile reads preferences from path and merges the set fields over Default().
// A missing file yields Default() and no error. An unparsable file yields Default()
// and the parse error so the caller can report it.
func LoadFile(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	var fromFile Prefs
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	p := Default()
	if err := copier.CopyWithOption(&p, &fromFile, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to EngineConfigPath.
func Save(p Prefs) error {
	return SaveFile(EngineConfigPath, p)
}

// SaveFile writes preferences to path, creating the directory if needed.
func SaveFile(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
