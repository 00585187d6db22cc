package model

import "fmt"

// Mode is the kind of query passed to the analysis tool via -mode.
type Mode string

// Query modes understood by the analysis tool.
const (
	ModeCallees    Mode = "callees"
	ModeCallers    Mode = "callers"
	ModeCallgraph  Mode = "callgraph"
	ModeCallstack  Mode = "callstack"
	ModeDescribe   Mode = "describe"
	ModeImplements Mode = "implements"
	ModeFreevars   Mode = "freevars"
	ModePeers      Mode = "peers"
)

// Modes lists every supported mode in the order they are offered to users.
var Modes = []Mode{
	ModeCallees,
	ModeCallers,
	ModeCallgraph,
	ModeCallstack,
	ModeDescribe,
	ModeImplements,
	ModeFreevars,
	ModePeers,
}

var modeSummaries = map[Mode]string{
	ModeCallees:    "possible targets of the selected function call",
	ModeCallers:    "possible callers of the selected function",
	ModeCallgraph:  "call graph of the whole program",
	ModeCallstack:  "path from the call graph root to the selected function",
	ModeDescribe:   "describe the selected syntax: kind, type, methods",
	ModeImplements: "implements relation for the selected type",
	ModeFreevars:   "free variables of the selection",
	ModePeers:      "send/receive peers of the selected channel operation",
}

// Summary returns a one-line description of the mode.
func (m Mode) Summary() string {
	return modeSummaries[m]
}

// ParseMode validates s against the supported modes.
func ParseMode(s string) (Mode, error) {
	for _, mode := range Modes {
		if string(mode) == s {
			return mode, nil
		}
	}

	return "", fmt.Errorf("unknown mode %q", s)
}
