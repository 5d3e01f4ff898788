// Package repl implements the interactive shell of the Pluto interpreter.
//
// Input lines accumulate until no brace or parenthesis is left open and
// the line does not end in a backslash; only
// then is the buffer submitted to the pipeline. Commands prefixed with ':'
// bypass the pipeline entirely. One evaluator lives for the whole session,
// so definitions persist between submissions; :reset rebuilds it with a
// fresh default environment.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mi66mc/pluto/diag"
	"github.com/mi66mc/pluto/eval"
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
)

var (
	bannerColor = color.New(color.FgGreen, color.Bold)
	infoColor   = color.New(color.FgCyan)
	resultColor = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

const (
	prompt         = "pluto> "
	continuePrompt = "   ... "
)

// Repl is one interactive session.
type Repl struct {
	Version string
}

// New creates a REPL instance.
func New(version string) *Repl {
	return &Repl{Version: version}
}

// Start runs the read-eval-print loop until :exit or EOF.
func (r *Repl) Start(writer io.Writer) error {
	bannerColor.Fprintf(writer, "Pluto %s\n", r.Version)
	infoColor.Fprintln(writer, "Type :help for help, :exit to quit.")

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	var buffer []string
	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt
			fmt.Fprintln(writer, "bye")
			return nil
		}

		if len(buffer) == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				if r.runCommand(trimmed, writer, evaluator) {
					return nil
				}
				continue
			}
		}

		buffer = append(buffer, strings.TrimSuffix(line, "\\"))
		source := strings.Join(buffer, "\n")
		if NeedsMoreInput(source) || strings.HasSuffix(line, "\\") {
			rl.SetPrompt(continuePrompt)
			continue
		}
		buffer = buffer[:0]
		rl.SetPrompt(prompt)
		rl.SaveHistory(source)

		r.execute(source, writer, evaluator)
	}
}

// NeedsMoreInput reports whether the accumulated buffer is still waiting
// for closing brackets: it does while more '{' than '}' or more '(' than
// ')' have been seen. An excess of closing brackets does not hold the
// buffer back; the parser reports it.
func NeedsMoreInput(source string) bool {
	braces, parens := 0, 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '{':
			braces++
		case '}':
			braces--
		case '(':
			parens++
		case ')':
			parens--
		}
	}
	return braces > 0 || parens > 0
}

// runCommand handles the ':' commands. It reports true when the session
// should end.
func (r *Repl) runCommand(cmd string, writer io.Writer, evaluator *eval.Evaluator) bool {
	switch cmd {
	case ":exit":
		fmt.Fprintln(writer, "bye")
		return true
	case ":help":
		infoColor.Fprintln(writer, ":help   show this help")
		infoColor.Fprintln(writer, ":clear  clear the screen")
		infoColor.Fprintln(writer, ":reset  reset the environment")
		infoColor.Fprintln(writer, ":exit   quit the repl")
	case ":clear":
		fmt.Fprint(writer, "\x1b[2J\x1b[H")
	case ":reset":
		evaluator.Reset()
		infoColor.Fprintln(writer, "environment reset")
	default:
		errColor.Fprintf(writer, "unknown command %s\n", cmd)
	}
	return false
}

// execute runs one balanced buffer through the pipeline, printing the
// result when it is non-empty. Errors are printed and the loop continues.
func (r *Repl) execute(source string, writer io.Writer, evaluator *eval.Evaluator) {
	program, err := parser.New(source).ParseProgram()
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			diag.FormatParseError(writer, source, pe.Msg, pe.Pos)
		} else {
			errColor.Fprintf(writer, "%s\n", err.Error())
		}
		return
	}

	result := evaluator.Eval(program)
	if object.IsError(result) {
		diag.FormatRuntimeError(writer, result.ToString())
		return
	}
	if result.GetType() == object.NullType {
		return
	}
	if s := result.ToString(); s != "" {
		resultColor.Fprintf(writer, "%s\n", s)
	}
}
