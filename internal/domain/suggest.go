package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hbollon/go-edlib"

	"github.com/mouse-blink/goracle/internal/adapter"
	"github.com/mouse-blink/goracle/internal/config"
	m "github.com/mouse-blink/goracle/internal/model"
)

// minModeSimilarity is the Levenshtein similarity below which no "did you
// mean" hint is offered for an unknown mode.
const minModeSimilarity = 0.5

// ParseMode validates name, suggesting the closest supported mode when it is
// not one.
func ParseMode(name string) (m.Mode, error) {
	mode, err := m.ParseMode(name)
	if err == nil {
		return mode, nil
	}

	var (
		best      m.Mode
		bestScore float32
	)

	for _, candidate := range m.Modes {
		score, err := edlib.StringsSimilarity(strings.ToLower(name), string(candidate), edlib.Levenshtein)
		if err != nil {
			continue
		}

		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore >= minModeSimilarity {
		return "", fmt.Errorf("%w %q, did you mean %q?", ErrUnknownMode, name, best)
	}

	return "", fmt.Errorf("%w %q", ErrUnknownMode, name)
}

// ScopeSuggester proposes an initial value for the scope prompt. It never
// sets the scope itself; the user still confirms the suggestion.
type ScopeSuggester struct {
	rules     []config.ScopeRule
	fsAdapter adapter.SourceFSAdapter
	goAdapter adapter.GoFileAdapter
}

// NewScopeSuggester constructs a ScopeSuggester.
func NewScopeSuggester(rules []config.ScopeRule, fsAdapter adapter.SourceFSAdapter, goAdapter adapter.GoFileAdapter) *ScopeSuggester {
	return &ScopeSuggester{
		rules:     rules,
		fsAdapter: fsAdapter,
		goAdapter: goAdapter,
	}
}

// Suggest returns the scope of the first rule whose pattern matches path.
// Without a match it proposes the files of path's package in its directory,
// analyzed as one synthetic package. It returns "" when it has nothing.
func (s *ScopeSuggester) Suggest(path m.Path) string {
	slashed := filepath.ToSlash(string(path))

	for _, rule := range s.rules {
		matched, err := doublestar.Match(rule.Pattern, slashed)
		if err != nil {
			slog.Debug("ignoring bad scope rule", "pattern", rule.Pattern, "err", err)

			continue
		}

		if matched {
			return rule.Scope
		}
	}

	return s.packageFiles(path)
}

func (s *ScopeSuggester) packageFiles(path m.Path) string {
	if filepath.Ext(string(path)) != ".go" {
		return ""
	}

	pkg, err := s.packageName(path)
	if err != nil {
		return ""
	}

	siblings, err := s.fsAdapter.SiblingGoFiles(path)
	if err != nil {
		return ""
	}

	var files []string

	for _, sibling := range siblings {
		name, err := s.packageName(sibling)
		if err != nil || name != pkg {
			continue
		}

		files = append(files, string(sibling))
	}

	return strings.Join(files, " ")
}

func (s *ScopeSuggester) packageName(path m.Path) (string, error) {
	src, err := s.fsAdapter.ReadFile(path)
	if err != nil {
		return "", err
	}

	return s.goAdapter.PackageName(string(path), src)
}
