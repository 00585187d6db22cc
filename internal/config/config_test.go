package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"GORACLE_TOOL", "GOROOT", "GOPATH", "EDITOR"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "goracle.yaml", `
tool: /opt/bin/oracle
goroot: /usr/local/go
gopath:
  - /home/u/go
  - /work
history_size: 5
glyph: "*"
scope_rules:
  - pattern: "**/cmd/api/*.go"
    scope: example.com/cmd/api
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/bin/oracle", cfg.Tool)
	assert.Equal(t, "/usr/local/go", cfg.GOROOT)
	assert.Equal(t, []string{"/home/u/go", "/work"}, cfg.GOPATH)
	assert.Equal(t, 5, cfg.HistorySize)
	assert.Equal(t, DefaultPanelMaxHeight, cfg.PanelMaxHeight)
	assert.Equal(t, "*", cfg.Glyph)
	require.Len(t, cfg.ScopeRules, 1)
	assert.Equal(t, "example.com/cmd/api", cfg.ScopeRules[0].Scope)
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "goracle.toml", `
tool = "guru"
gopath = ["/a", "/b"]
panel_max_height = 10
hyperlinks = false

[[scope_rules]]
pattern = "internal/**"
scope = "example.com/internal/..."
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "guru", cfg.Tool)
	assert.Equal(t, []string{"/a", "/b"}, cfg.GOPATH)
	assert.Equal(t, 10, cfg.PanelMaxHeight)
	assert.False(t, cfg.HyperlinksEnabled(true))
	require.Len(t, cfg.ScopeRules, 1)
	assert.Equal(t, "internal/**", cfg.ScopeRules[0].Pattern)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GORACLE_TOOL", "/env/oracle")
	t.Setenv("GOPATH", "/x"+string(os.PathListSeparator)+"/y")
	t.Setenv("EDITOR", "emacsclient")

	path := writeConfig(t, "goracle.yaml", "tool: /file/oracle\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/oracle", cfg.Tool)
	assert.Equal(t, []string{"/x", "/y"}, cfg.GOPATH)
	assert.Equal(t, "emacsclient +{line} {path}", cfg.Editor)
}

func TestLoad_Editor(t *testing.T) {
	t.Run("file wins over EDITOR", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("EDITOR", "emacsclient")

		cfg, err := Load(writeConfig(t, "goracle.yaml", "editor: code --goto {path}:{line}:{col}\n"))
		require.NoError(t, err)
		assert.Equal(t, "code --goto {path}:{line}:{col}", cfg.Editor)
	})

	t.Run("default without EDITOR", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(writeConfig(t, "goracle.toml", "tool = \"/file/oracle\"\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultEditor, cfg.Editor)
	})
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeConfig(t, "goracle.json", "{}"))
		require.ErrorContains(t, err, "unsupported config format")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "goracle.yaml", "tool: [unterminated"))
		require.ErrorContains(t, err, "failed to parse config")
	})
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultTool, cfg.Tool)
	assert.Equal(t, DefaultHistorySize, cfg.HistorySize)
	assert.Equal(t, DefaultGlyph, cfg.Glyph)
	assert.True(t, cfg.HyperlinksEnabled(true))
}

func TestConfig_ToolEnv(t *testing.T) {
	cfg := &Config{GOROOT: "/go", GOPATH: []string{"/a", "/b"}}

	assert.Equal(t, map[string]string{
		"GOROOT":      "/go",
		"GOPATH":      "/a:/b",
		"CGO_ENABLED": "0",
	}, cfg.ToolEnv())
}
