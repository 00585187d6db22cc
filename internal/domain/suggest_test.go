package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockAdapter "github.com/mouse-blink/goracle/internal/adapter/mocks"
	"github.com/mouse-blink/goracle/internal/config"
	m "github.com/mouse-blink/goracle/internal/model"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("describe")
	require.NoError(t, err)
	assert.Equal(t, m.ModeDescribe, mode)

	_, err = ParseMode("calers")
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), `did you mean "callers"?`)

	_, err = ParseMode("zzzzzzzzzzzzzzzz")
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestScopeSuggester_RuleMatch(t *testing.T) {
	fs := mockAdapter.NewMockSourceFSAdapter(t)
	goFiles := mockAdapter.NewMockGoFileAdapter(t)

	rules := []config.ScopeRule{
		{Pattern: "[", Scope: "broken"},
		{Pattern: "/work/svc/**/*.go", Scope: "example.com/svc/cmd/server"},
		{Pattern: "/work/**", Scope: "example.com/..."},
	}

	suggester := NewScopeSuggester(rules, fs, goFiles)

	assert.Equal(t, "example.com/svc/cmd/server", suggester.Suggest("/work/svc/internal/db/db.go"))
	assert.Equal(t, "example.com/...", suggester.Suggest("/work/tools/gen.go"))
}

func TestScopeSuggester_PackageFiles(t *testing.T) {
	fs := mockAdapter.NewMockSourceFSAdapter(t)
	goFiles := mockAdapter.NewMockGoFileAdapter(t)

	sources := map[m.Path]string{
		"/src/p/a.go":   "package p",
		"/src/p/b.go":   "package p",
		"/src/p/gen.go": "package main",
	}

	for path, src := range sources {
		fs.EXPECT().ReadFile(path).Return([]byte(src), nil).Maybe()
		goFiles.EXPECT().PackageName(string(path), []byte(src)).Return(src[len("package "):], nil).Maybe()
	}

	fs.EXPECT().SiblingGoFiles(m.Path("/src/p/a.go")).Return([]m.Path{"/src/p/a.go", "/src/p/b.go", "/src/p/gen.go"}, nil)

	suggester := NewScopeSuggester(nil, fs, goFiles)

	assert.Equal(t, "/src/p/a.go /src/p/b.go", suggester.Suggest("/src/p/a.go"))
}

func TestScopeSuggester_NothingToSuggest(t *testing.T) {
	t.Run("not a go file", func(t *testing.T) {
		suggester := NewScopeSuggester(nil, mockAdapter.NewMockSourceFSAdapter(t), mockAdapter.NewMockGoFileAdapter(t))
		assert.Empty(t, suggester.Suggest("/src/README.md"))
	})

	t.Run("unreadable file", func(t *testing.T) {
		fs := mockAdapter.NewMockSourceFSAdapter(t)
		fs.EXPECT().ReadFile(m.Path("/src/p/a.go")).Return(nil, errors.New("permission denied"))

		suggester := NewScopeSuggester(nil, fs, mockAdapter.NewMockGoFileAdapter(t))
		assert.Empty(t, suggester.Suggest("/src/p/a.go"))
	})

	t.Run("no package clause", func(t *testing.T) {
		fs := mockAdapter.NewMockSourceFSAdapter(t)
		goFiles := mockAdapter.NewMockGoFileAdapter(t)

		fs.EXPECT().ReadFile(m.Path("/src/p/a.go")).Return([]byte("garbage"), nil)
		goFiles.EXPECT().PackageName("/src/p/a.go", []byte("garbage")).Return("", errors.New("expected 'package'"))

		suggester := NewScopeSuggester(nil, fs, goFiles)
		assert.Empty(t, suggester.Suggest("/src/p/a.go"))
	})
}
