package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvocation_Args(t *testing.T) {
	inv := Invocation{
		Mode:     ModeDescribe,
		Scope:    "main",
		Position: PositionDescriptor{Path: "/tmp/x.go", Start: 42},
	}

	assert.Equal(t, []string{"oracle", "-pos=/tmp/x.go:42", "-mode=describe", "main"}, inv.Args("oracle"))

	inv.Scope = "  a.go\tb.go  "
	inv.Position = PositionDescriptor{Path: "/tmp/x.go", Start: 3, End: 9, HasEnd: true}

	assert.Equal(t, []string{"oracle", "-pos=/tmp/x.go:3-9", "-mode=describe", "a.go", "b.go"}, inv.Args("oracle"))
}

func TestInvocation_Env(t *testing.T) {
	inv := Invocation{ExtraEnv: map[string]string{"GOROOT": "/go", "CGO_ENABLED": "0", "GOPATH": "/a:/b"}}
	base := []string{"HOME=/home/u", "CGO_ENABLED=1"}

	got := inv.Env(base)

	assert.Equal(t, []string{"HOME=/home/u", "CGO_ENABLED=1", "CGO_ENABLED=0", "GOPATH=/a:/b", "GOROOT=/go"}, got)
	assert.Equal(t, []string{"HOME=/home/u", "CGO_ENABLED=1"}, base, "base is not modified")
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes {
		got, err := ParseMode(string(mode))
		assert.NoError(t, err)
		assert.Equal(t, mode, got)
		assert.NotEmpty(t, mode.Summary())
	}

	_, err := ParseMode("Describe")
	assert.Error(t, err)
}
