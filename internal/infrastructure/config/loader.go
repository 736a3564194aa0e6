package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/caarlos0/env/v11"
)

// Config holds all loaded configurations
type Config struct {
	Loop   *LoopConfig
	Preset *PresetConfig
}

// Loader loads loop configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadLoop loads loop.json
func (l *Loader) LoadLoop() (*LoopConfig, error) {
	var cfg LoopConfig
	if err := l.readJSON("loop.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadPreset loads a preset JSON file
func (l *Loader) LoadPreset(name string) (*PresetConfig, error) {
	var cfg PresetConfig
	if err := l.readJSON("presets/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return &cfg, nil
}

// ListPresets returns the names of all presets under presets/
func (l *Loader) ListPresets() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "presets/*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[len("presets/") : len(m)-len(".json")]
		names = append(names, name)
	}
	return names, nil
}

// LoadAll loads loop.json and the named preset
func (l *Loader) LoadAll(preset string) (*Config, error) {
	loop, err := l.LoadLoop()
	if err != nil {
		return nil, err
	}

	p, err := l.LoadPreset(preset)
	if err != nil {
		return nil, err
	}

	return &Config{
		Loop:   loop,
		Preset: p,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", l.describe(name), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", l.describe(name), err)
	}
	return nil
}

// describe names a config file relative to the loader's base path
func (l *Loader) describe(name string) string {
	if l.basePath == "" {
		return name
	}
	return path.Join(l.basePath, name)
}

// ApplyEnv overrides loaded values with SCREENS_* environment variables.
// Unset variables leave the loaded values untouched.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{})
}

// ApplyEnvFrom is ApplyEnv reading from the given map instead of the process environment
func ApplyEnvFrom(cfg *Config, environ map[string]string) error {
	return applyEnv(cfg, env.Options{Environment: environ})
}

func applyEnv(cfg *Config, opts env.Options) error {
	if cfg.Loop != nil {
		if err := env.ParseWithOptions(cfg.Loop, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	if cfg.Preset != nil {
		if err := env.ParseWithOptions(cfg.Preset, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	return nil
}
