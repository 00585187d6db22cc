// Package config loads goracle settings from .env, a YAML or TOML file and the
// environment, in that order of precedence (last wins).
package config

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default values used when neither the config file nor the environment set them.
const (
	DefaultTool           = "oracle"
	DefaultHistorySize    = 50
	DefaultPanelMaxHeight = 25
	DefaultGlyph          = "▶"
	DefaultEditor         = "vi +{line} {path}"
)

// DefaultFiles lists the config files tried when no path is given.
var DefaultFiles = []string{"goracle.yaml", "goracle.yml", "goracle.toml"}

// ScopeRule suggests a scope for files matching a doublestar pattern.
type ScopeRule struct {
	Pattern string `yaml:"pattern" toml:"pattern"`
	Scope   string `yaml:"scope" toml:"scope"`
}

// Config holds all settings for a goracle session.
type Config struct {
	// Tool is the analysis tool executable.
	Tool string `yaml:"tool" toml:"tool"`
	// GOROOT and GOPATH are passed to the tool's environment.
	GOROOT string   `yaml:"goroot" toml:"goroot"`
	GOPATH []string `yaml:"gopath" toml:"gopath"`

	HistorySize    int         `yaml:"history_size" toml:"history_size"`
	PanelMaxHeight int         `yaml:"panel_max_height" toml:"panel_max_height"`
	Glyph          string      `yaml:"glyph" toml:"glyph"`
	Editor         string      `yaml:"editor" toml:"editor"`
	Hyperlinks     *bool       `yaml:"hyperlinks" toml:"hyperlinks"`
	ScopeRules     []ScopeRule `yaml:"scope_rules" toml:"scope_rules"`
}

// Default returns a Config populated from the Go build context. Editor is
// left empty and resolved by Load from $EDITOR or DefaultEditor.
func Default() *Config {
	return &Config{
		Tool:           DefaultTool,
		GOROOT:         build.Default.GOROOT,
		GOPATH:         filepath.SplitList(build.Default.GOPATH),
		HistorySize:    DefaultHistorySize,
		PanelMaxHeight: DefaultPanelMaxHeight,
		Glyph:          DefaultGlyph,
	}
}

// Load reads configuration. An empty path tries DefaultFiles in the working
// directory; a missing default file is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	file, explicit := path, path != ""
	if !explicit {
		file = findDefaultFile()
	}

	if file != "" {
		if err := cfg.decodeFile(file); err != nil {
			if !explicit && os.IsNotExist(err) {
				return cfg.withEnv(), nil
			}

			return nil, err
		}
	}

	return cfg.withEnv(), nil
}

func findDefaultFile() string {
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func (c *Config) decodeFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(content, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, c)
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return nil
}

func (c *Config) withEnv() *Config {
	if tool := os.Getenv("GORACLE_TOOL"); tool != "" {
		c.Tool = tool
	}

	if goroot := os.Getenv("GOROOT"); goroot != "" {
		c.GOROOT = goroot
	}

	if gopath := os.Getenv("GOPATH"); gopath != "" {
		c.GOPATH = filepath.SplitList(gopath)
	}

	// $EDITOR only fills in for an editor the file did not set.
	if c.Editor == "" {
		c.Editor = DefaultEditor
		if editor := os.Getenv("EDITOR"); editor != "" {
			c.Editor = editor + " +{line} {path}"
		}
	}

	if c.HistorySize <= 0 {
		c.HistorySize = DefaultHistorySize
	}

	if c.PanelMaxHeight <= 0 {
		c.PanelMaxHeight = DefaultPanelMaxHeight
	}

	if c.Glyph == "" {
		c.Glyph = DefaultGlyph
	}

	return c
}

// HyperlinksEnabled reports whether plain output should wrap navigation
// markers in terminal hyperlinks. fallback applies when the file is silent.
func (c *Config) HyperlinksEnabled(fallback bool) bool {
	if c.Hyperlinks == nil {
		return fallback
	}

	return *c.Hyperlinks
}

// ToolEnv returns the three environment overrides handed to the tool.
func (c *Config) ToolEnv() map[string]string {
	return map[string]string{
		"GOROOT":      c.GOROOT,
		"GOPATH":      strings.Join(c.GOPATH, ":"),
		"CGO_ENABLED": "0",
	}
}
