package model

import (
	"sort"
	"strings"
)

// Invocation fully determines one run of the analysis tool.
type Invocation struct {
	Mode     Mode
	Scope    string
	Position PositionDescriptor
	// ExtraEnv is added on top of the inherited environment of the child
	// process only.
	ExtraEnv map[string]string
}

// ScopeTokens splits the scope into its whitespace separated tokens.
func (inv Invocation) ScopeTokens() []string {
	return strings.Fields(inv.Scope)
}

// Args builds the argument vector, tool path first.
func (inv Invocation) Args(tool string) []string {
	args := []string{
		tool,
		"-pos=" + inv.Position.String(),
		"-mode=" + string(inv.Mode),
	}

	return append(args, inv.ScopeTokens()...)
}

// Env returns base followed by the ExtraEnv overrides as KEY=VALUE pairs in
// key order. Later entries win in os/exec, so the overrides take effect
// without editing base.
func (inv Invocation) Env(base []string) []string {
	keys := make([]string, 0, len(inv.ExtraEnv))
	for k := range inv.ExtraEnv {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)

	for _, k := range keys {
		env = append(env, k+"="+inv.ExtraEnv[k])
	}

	return env
}
