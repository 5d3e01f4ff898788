package object

import (
	"bufio"
	"io"
)

// Runtime is the evaluator surface builtins may call back into. It exists so
// builtins like `input` and the array `map` method can read host input and
// invoke user functions without the object package importing the evaluator.
type Runtime interface {
	// CallFunction invokes a Pluto function value (built-in or user-defined)
	// with positional arguments and returns its result.
	CallFunction(fn Object, args ...Object) Object
	// InputReader returns the buffered reader `input` reads lines from.
	InputReader() *bufio.Reader
}

// CallbackFunc is the native signature of built-in functions. Output goes to
// the writer so evaluation is testable against a buffer.
type CallbackFunc func(rt Runtime, w io.Writer, args ...Object) Object

// Builtin wraps a native function as a Pluto value.
type Builtin struct {
	Name string
	Fn   CallbackFunc
}

func (b *Builtin) GetType() Type    { return BuiltinType }
func (b *Builtin) ToString() string { return "<built-in function>" }
func (b *Builtin) ToObject() string { return "<built-in function " + b.Name + ">" }
