package domain

import (
	"fmt"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mouse-blink/goracle/internal/adapter"
	m "github.com/mouse-blink/goracle/internal/model"
)

const lineTableCacheSize = 128

// PositionEncoder turns editor selections, counted in characters, into the
// byte offsets the analysis tool reads from the file on disk.
type PositionEncoder struct {
	fsAdapter adapter.SourceFSAdapter
	lines     *lru.Cache[lineTableKey, []int]
}

type lineTableKey struct {
	path m.Path
	hash uint64
}

// NewPositionEncoder constructs a PositionEncoder reading files through fsAdapter.
func NewPositionEncoder(fsAdapter adapter.SourceFSAdapter) *PositionEncoder {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[lineTableKey, []int](lineTableCacheSize)

	return &PositionEncoder{
		fsAdapter: fsAdapter,
		lines:     cache,
	}
}

// Encode resolves path and converts sel into a position descriptor over the
// file's current on-disk bytes.
func (e *PositionEncoder) Encode(path m.Path, sel m.Selection) (m.PositionDescriptor, error) {
	resolved, err := e.fsAdapter.ResolvePath(path)
	if err != nil {
		return m.PositionDescriptor{}, err
	}

	content, err := e.fsAdapter.ReadFile(resolved)
	if err != nil {
		return m.PositionDescriptor{}, fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	return EncodeContent(resolved, content, sel), nil
}

// EncodeContent converts sel into byte offsets over content. Both endpoints
// use the tool's convention of one less than the editor position, measured in
// bytes of the preceding characters.
func EncodeContent(path m.Path, content []byte, sel m.Selection) m.PositionDescriptor {
	desc := m.PositionDescriptor{
		Path:  path,
		Start: ByteOffset(content, sel.Start),
	}

	if !sel.IsPoint() {
		desc.End = ByteOffset(content, sel.End)
		desc.HasEnd = true
	}

	return desc
}

// ByteOffset returns the byte offset of the character at 1-based position
// pos, that is the encoded length of the pos-1 characters before it.
// Positions outside the content are clamped.
func ByteOffset(content []byte, pos int) int {
	offset := 0

	for chars := 1; chars < pos && offset < len(content); chars++ {
		_, size := utf8.DecodeRune(content[offset:])
		offset += size
	}

	return offset
}

// Decode maps a byte offset back to the 1-based character position it
// starts. It is the inverse of ByteOffset for offsets on rune boundaries.
func Decode(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}

	pos := 1

	for i := 0; i < offset; {
		_, size := utf8.DecodeRune(content[i:])
		i += size
		pos++
	}

	return pos
}

// PointAt converts a 1-based line and column, columns counted in characters,
// into a 1-based character position of the file. Columns past the end of the
// line stop at the line end.
func (e *PositionEncoder) PointAt(path m.Path, line, col int) (int, error) {
	resolved, err := e.fsAdapter.ResolvePath(path)
	if err != nil {
		return 0, err
	}

	content, err := e.fsAdapter.ReadFile(resolved)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	starts := e.lineStarts(resolved, content)

	if line < 1 || line > len(starts) {
		return 0, fmt.Errorf("line %d out of range 1-%d in %s", line, len(starts), resolved)
	}

	if col < 1 {
		col = 1
	}

	pos := starts[line-1] + col - 1

	if line < len(starts) && pos >= starts[line] {
		// last position of the line is its newline
		pos = starts[line] - 1
	}

	if last := Decode(content, len(content)); pos > last {
		pos = last
	}

	return pos, nil
}

// lineStarts returns the character position at which every line begins.
func (e *PositionEncoder) lineStarts(path m.Path, content []byte) []int {
	key := lineTableKey{path: path, hash: adapter.HashBytes(content)}
	if starts, ok := e.lines.Get(key); ok {
		return starts
	}

	starts := []int{1}
	pos := 1

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		i += size
		pos++

		if r == '\n' {
			starts = append(starts, pos)
		}
	}

	e.lines.Add(key, starts)

	return starts
}
