package domain

import (
	"strings"
)

// ScopeManager owns the current analysis scope and the history of values it
// held. The zero scope is the empty string, which forces a prompt before the
// first query.
type ScopeManager struct {
	current string
	history []string
	limit   int
}

// NewScopeManager creates a ScopeManager keeping at most historySize past
// scopes. A non-positive size keeps an unbounded history.
func NewScopeManager(historySize int) *ScopeManager {
	return &ScopeManager{limit: historySize}
}

// Scope returns the current scope.
func (s *ScopeManager) Scope() string {
	return s.current
}

// Tokens returns the current scope split on whitespace.
func (s *ScopeManager) Tokens() []string {
	return strings.Fields(s.current)
}

// SetScope commits candidate as the current scope and records it in the
// history, most recent first. Repeated values are kept.
func (s *ScopeManager) SetScope(candidate string) (string, error) {
	scope := strings.TrimSpace(candidate)
	if scope == "" {
		return "", ErrEmptyScope
	}

	s.current = scope
	s.history = append([]string{scope}, s.history...)

	if s.limit > 0 && len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}

	return scope, nil
}

// History returns a copy of past scopes, most recent first.
func (s *ScopeManager) History() []string {
	history := make([]string, len(s.history))
	copy(history, s.history)

	return history
}
