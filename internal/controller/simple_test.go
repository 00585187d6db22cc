package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/goracle/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(input string) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(input))

	return cmd, &buf
}

func TestSimpleUI_Present_ReplacesPreviousContent(t *testing.T) {
	cmd, buf := newTestCmd("")
	ui := NewSimpleUI(cmd, Settings{})

	first := m.OutputDocument{Mode: m.ModeCallers, Lines: []m.Line{{Text: "first result"}}}
	second := m.OutputDocument{Mode: m.ModeCallees, Lines: []m.Line{{Text: "second result"}}}

	require.NoError(t, ui.Present(first))
	require.NoError(t, ui.Present(second))

	assert.Equal(t, "Go Oracle: callees\nsecond result\n", ui.panel.String())
	assert.NotContains(t, ui.panel.String(), "first result")
	assert.True(t, strings.HasSuffix(buf.String(), "Go Oracle: callees\nsecond result\n"))
}

func TestSimpleUI_PromptScope(t *testing.T) {
	history := []string{"example.com/b", "example.com/a"}

	tests := []struct {
		name    string
		input   string
		initial string
		want    string
		wantErr error
	}{
		{"typed answer", "pkg/foo\n", "", "pkg/foo", nil},
		{"answer without newline", "pkg/foo", "", "pkg/foo", nil},
		{"empty accepts suggestion", "\n", "a.go b.go", "a.go b.go", nil},
		{"history recall", "!2\n", "", "example.com/a", nil},
		{"eof cancels", "", "", "", ErrPromptCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCmd(tt.input)
			ui := NewSimpleUI(cmd, Settings{})

			got, err := ui.PromptScope(tt.initial, history)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, buf.String(), "Analysis scope")
		})
	}

	t.Run("bad history index asks again", func(t *testing.T) {
		cmd, buf := newTestCmd("!9\n!x\nmain\n")
		ui := NewSimpleUI(cmd, Settings{})

		for _, bad := range []string{"!9", "!x"} {
			got, err := ui.PromptScope("", history)
			require.NoError(t, err)
			assert.Empty(t, got)
			assert.Contains(t, buf.String(), "no history entry "+bad)
		}

		got, err := ui.PromptScope("", history)
		require.NoError(t, err)
		assert.Equal(t, "main", got)
	})
}

func TestSimpleUI_ReadLine_SharesReader(t *testing.T) {
	cmd, _ := newTestCmd("scope main\ndescribe x.go 3\n")
	ui := NewSimpleUI(cmd, Settings{})

	first, err := ui.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "scope main", first)

	second, err := ui.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "describe x.go 3", second)

	_, err = ui.ReadLine("> ")
	require.Error(t, err)
}

func TestSimpleUI_DisplayHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cmd, buf := newTestCmd("")
		require.NoError(t, NewSimpleUI(cmd, Settings{}).DisplayHistory("", nil))
		assert.Contains(t, buf.String(), "No scope set")
	})

	t.Run("table", func(t *testing.T) {
		cmd, buf := newTestCmd("")
		require.NoError(t, NewSimpleUI(cmd, Settings{}).DisplayHistory("pkg/b", []string{"pkg/b", "pkg/a"}))

		output := buf.String()
		for _, want := range []string{"pkg/a", "pkg/b", "current", "1", "2"} {
			assert.Contains(t, output, want)
		}
	})
}

func TestSimpleUI_DisplayModes(t *testing.T) {
	cmd, buf := newTestCmd("")
	require.NoError(t, NewSimpleUI(cmd, Settings{}).DisplayModes(m.Modes))

	for _, mode := range m.Modes {
		assert.Contains(t, buf.String(), string(mode))
	}
}

func TestSimpleUI_DisplayMessage(t *testing.T) {
	cmd, buf := newTestCmd("")
	NewSimpleUI(cmd, Settings{}).DisplayMessage("scope is %q", "main")

	assert.Equal(t, "scope is \"main\"\n", buf.String())
}
