// Package config loads shapecheck.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"

	"shapecheck/internal/trace"
)

// FileName is the configuration file looked up from the working directory
// upwards.
const FileName = "shapecheck.toml"

type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Types    TypesConfig    `toml:"types"`
	Cache    CacheConfig    `toml:"cache"`
	Trace    TraceConfig    `toml:"trace"`

	// Path is the file the configuration was read from, or "" for defaults.
	Path string `toml:"-"`
}

type AnalysisConfig struct {
	MaxIssues int  `toml:"max_issues"`
	Dedup     bool `toml:"dedup"`
}

type TypesConfig struct {
	// Annotations maps extra annotation spellings to built-in ones.
	Annotations map[string]string `toml:"annotations"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Output string `toml:"output"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{MaxIssues: 100, Dedup: true},
		Types:    TypesConfig{Annotations: map[string]string{}},
		Cache:    CacheConfig{Enabled: true},
		Trace:    TraceConfig{Level: "off", Mode: "stream", Output: "-"},
	}
}

// Find walks up from startDir to locate shapecheck.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest shapecheck.toml above startDir, falling back
// to Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Analysis.MaxIssues < 0 {
		return fmt.Errorf("[analysis].max_issues must not be negative, got %d", c.Analysis.MaxIssues)
	}
	if c.Analysis.MaxIssues == 0 {
		c.Analysis.MaxIssues = 100
	}
	fold := cases.Fold()
	folded := make(map[string]string, len(c.Types.Annotations))
	for from, to := range c.Types.Annotations {
		folded[fold.String(strings.TrimSpace(from))] = fold.String(strings.TrimSpace(to))
	}
	c.Types.Annotations = folded

	c.Trace.Level = strings.ToLower(strings.TrimSpace(c.Trace.Level))
	if c.Trace.Level == "" {
		c.Trace.Level = "off"
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if c.Trace.Mode == "" {
		c.Trace.Mode = "stream"
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if c.Cache.Dir != "" && !filepath.IsAbs(c.Cache.Dir) && c.Path != "" {
		c.Cache.Dir = filepath.Join(filepath.Dir(c.Path), c.Cache.Dir)
	}
	return nil
}

// AnnotationNames returns the configured extra spellings, sorted.
func (c Config) AnnotationNames() []string {
	names := make([]string, 0, len(c.Types.Annotations))
	for k := range c.Types.Annotations {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
