// Package diag renders interpreter diagnostics for the terminal: parse
// errors as a colored banner with the offending source line and a caret
// under the column, runtime errors as a single red line.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	bannerColor  = color.New(color.FgRed, color.Bold)
	contextColor = color.New(color.FgBlue)
	caretColor   = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed)
)

// Position derives a 1-indexed line and column from a byte offset by
// counting newlines up to the offset.
func Position(src string, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	line, col = 1, 1
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// SourceLine returns the text of the given 1-indexed line, without its
// trailing newline.
func SourceLine(src string, line int) string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatParseError writes a colored parse-error banner: the message, the
// location, the offending source line, and a caret pointing at the column.
func FormatParseError(w io.Writer, src, msg string, pos int) {
	line, col := Position(src, pos)
	bannerColor.Fprintf(w, "--- Parse Error ---\n")
	errorColor.Fprintf(w, "%s\n", msg)
	contextColor.Fprintf(w, "Error occurred at line %d:%d\n", line, col)
	text := SourceLine(src, line)
	fmt.Fprintf(w, "%s\n", text)
	caretColor.Fprintf(w, "%s^\n", strings.Repeat(" ", col-1))
}

// FormatRuntimeError writes a single-line runtime error.
func FormatRuntimeError(w io.Writer, msg string) {
	errorColor.Fprintf(w, "Error: %s\n", msg)
}
