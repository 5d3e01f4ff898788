package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	src := "let x = 1;\nlet y = 2;\nlet z = 3;"

	line, col := Position(src, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	// Offset of 'y' on the second line.
	line, col = Position(src, strings.Index(src, "y"))
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, col)

	// Offsets past the end clamp.
	line, _ = Position(src, len(src)+10)
	assert.Equal(t, 3, line)
}

func TestSourceLine(t *testing.T) {
	src := "first\nsecond\nthird"
	assert.Equal(t, "first", SourceLine(src, 1))
	assert.Equal(t, "second", SourceLine(src, 2))
	assert.Equal(t, "third", SourceLine(src, 3))
	assert.Equal(t, "", SourceLine(src, 9))
}

func TestFormatParseError(t *testing.T) {
	var out bytes.Buffer
	src := "let x = 1;\nlet 2;"
	FormatParseError(&out, src, "expected identifier, found '2'", strings.LastIndex(src, "2"))

	text := out.String()
	assert.Contains(t, text, "Parse Error")
	assert.Contains(t, text, "line 2:5")
	assert.Contains(t, text, "let 2;")
	assert.Contains(t, text, "^")
}

func TestFormatRuntimeError(t *testing.T) {
	var out bytes.Buffer
	FormatRuntimeError(&out, "undefined variable 'x'")
	assert.Contains(t, out.String(), "Error: undefined variable 'x'")
}
