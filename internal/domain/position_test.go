package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/goracle/internal/adapter"
	m "github.com/mouse-blink/goracle/internal/model"
)

func writeSource(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "x.go")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)

	return m.Path(resolved)
}

func TestByteOffset(t *testing.T) {
	ascii := []byte("package main\n")
	multi := []byte("// héllo wörld\nvar x = 1\n")

	tests := []struct {
		name    string
		content []byte
		pos     int
		want    int
	}{
		{"first character", ascii, 1, 0},
		{"ascii", ascii, 9, 8},
		{"ascii end", ascii, 14, 13},
		{"past end clamps", ascii, 500, 13},
		{"zero clamps", ascii, 0, 0},
		{"before multibyte", multi, 5, 4},
		{"after one multibyte", multi, 6, 6},
		{"next line", multi, 16, 17},
		{"empty content", nil, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ByteOffset(tt.content, tt.pos))
		})
	}
}

func TestDecode_InvertsByteOffset(t *testing.T) {
	content := []byte("ça 日本語 ok\n→ done\n")
	chars := len([]rune(string(content)))

	for pos := 1; pos <= chars+1; pos++ {
		assert.Equal(t, pos, Decode(content, ByteOffset(content, pos)), "position %d", pos)
	}

	assert.Equal(t, chars+1, Decode(content, len(content)+10), "offset past end clamps")
}

func TestPositionEncoder_Encode(t *testing.T) {
	path := writeSource(t, "// héllo\nfunc f() {}\n")
	encoder := NewPositionEncoder(adapter.NewLocalSourceFSAdapter())

	point, err := encoder.Encode(path, m.Selection{Start: 11})
	require.NoError(t, err)
	assert.Equal(t, m.PositionDescriptor{Path: path, Start: 11}, point)
	assert.Equal(t, string(path)+":11", point.String())

	rng, err := encoder.Encode(path, m.Selection{Start: 11, End: 15})
	require.NoError(t, err)
	assert.Equal(t, string(path)+":11-15", rng.String())

	same, err := encoder.Encode(path, m.Selection{Start: 4, End: 4})
	require.NoError(t, err)
	assert.False(t, same.HasEnd, "an empty range is a point")
}

func TestPositionEncoder_Encode_MissingFile(t *testing.T) {
	encoder := NewPositionEncoder(adapter.NewLocalSourceFSAdapter())

	_, err := encoder.Encode(m.Path(filepath.Join(t.TempDir(), "gone.go")), m.Selection{Start: 1})
	require.Error(t, err)
}

func TestEncodeContent_ASCIIMatchesCharacterCount(t *testing.T) {
	content := []byte("package main\n\nfunc main() {\n\tprintln(\"hello, world\")\n}\n")

	desc := EncodeContent("/tmp/x.go", content, m.Selection{Start: 43})
	assert.Equal(t, "/tmp/x.go:42", desc.String())
}

func TestPositionEncoder_PointAt(t *testing.T) {
	path := writeSource(t, "ab\nçd\nlast")
	encoder := NewPositionEncoder(adapter.NewLocalSourceFSAdapter())

	tests := []struct {
		name      string
		line, col int
		want      int
		wantErr   bool
	}{
		{name: "first", line: 1, col: 1, want: 1},
		{name: "second line", line: 2, col: 2, want: 5},
		{name: "column past line end", line: 1, col: 40, want: 3},
		{name: "zero column", line: 2, col: 0, want: 4},
		{name: "last line", line: 3, col: 2, want: 8},
		{name: "column past file end", line: 3, col: 99, want: 11},
		{name: "line out of range", line: 4, col: 1, wantErr: true},
		{name: "line zero", line: 0, col: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoder.PointAt(path, tt.line, tt.col)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionEncoder_PointAt_SeesRewrittenFile(t *testing.T) {
	path := writeSource(t, "a\nb\n")
	encoder := NewPositionEncoder(adapter.NewLocalSourceFSAdapter())

	got, err := encoder.PointAt(path, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	require.NoError(t, os.WriteFile(string(path), []byte("aaaa\nb\n"), 0o600))

	got, err = encoder.PointAt(path, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}
