package domain

import (
	"maps"

	"github.com/mouse-blink/goracle/internal/config"
)

// Session is the state that lives as long as one host editor session: the
// scope with its history and the settings used to reach the analysis tool.
// It is created once and passed explicitly to every query.
type Session struct {
	Scopes *ScopeManager
	Tool   string
	env    map[string]string
}

// NewSession builds a Session from cfg.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		Scopes: NewScopeManager(cfg.HistorySize),
		Tool:   cfg.Tool,
		env:    cfg.ToolEnv(),
	}
}

// ToolEnv returns a copy of the environment overrides for the tool.
func (s *Session) ToolEnv() map[string]string {
	return maps.Clone(s.env)
}
