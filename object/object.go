// Package object defines the runtime value domain of the Pluto language.
// All values implement the Object interface, which provides a type tag,
// a display form, and a detailed inspection form. The package also carries
// the built-in function type and the Runtime interface builtins use to call
// back into the evaluator.
package object

import (
	"fmt"
	"strconv"
)

// Type tags a runtime value. The tag strings are exactly what the `type`
// builtin returns to user programs.
type Type string

const (
	NullType     Type = "Null"
	BoolType     Type = "Bool"
	NumberType   Type = "Number"
	FloatType    Type = "Float"
	StringType   Type = "String"
	ArrayType    Type = "Array"
	HashMapType  Type = "HashMap"
	ModuleType   Type = "Module"
	BuiltinType  Type = "BuiltInFunction"
	FunctionType Type = "UserFunction"

	// ErrorType and the signal types below never reach user programs; they
	// exist so evaluation results form a single sum the evaluator inspects.
	ErrorType    Type = "Error"
	ReturnType   Type = "Return"
	BreakType    Type = "Break"
	ContinueType Type = "Continue"
)

// Object is the interface all Pluto runtime values implement.
type Object interface {
	// GetType returns the value's type tag.
	GetType() Type
	// ToString returns the display form used by print and string coercion.
	ToString() string
	// ToObject returns a detailed form including type information,
	// used by print_raw and debugging output.
	ToObject() string
}

// Null represents the absent value.
type Null struct{}

func (n *Null) GetType() Type    { return NullType }
func (n *Null) ToString() string { return "null" }
func (n *Null) ToObject() string { return "<null>" }

// Bool represents a boolean value.
type Bool struct {
	Value bool
}

func (b *Bool) GetType() Type    { return BoolType }
func (b *Bool) ToString() string { return strconv.FormatBool(b.Value) }
func (b *Bool) ToObject() string { return fmt.Sprintf("<bool(%t)>", b.Value) }

// Number represents a signed 64-bit integer.
type Number struct {
	Value int64
}

func (n *Number) GetType() Type    { return NumberType }
func (n *Number) ToString() string { return strconv.FormatInt(n.Value, 10) }
func (n *Number) ToObject() string { return fmt.Sprintf("<number(%d)>", n.Value) }

// Float represents an IEEE-754 double.
// Its display form uses the shortest decimal that round-trips, so 1024.0
// prints as "1024" and 3.14 prints as "3.14".
type Float struct {
	Value float64
}

func (f *Float) GetType() Type    { return FloatType }
func (f *Float) ToString() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }
func (f *Float) ToObject() string { return fmt.Sprintf("<float(%s)>", f.ToString()) }

// String represents unicode text.
type String struct {
	Value string
}

func (s *String) GetType() Type    { return StringType }
func (s *String) ToString() string { return s.Value }
func (s *String) ToObject() string { return fmt.Sprintf("<string(%q)>", s.Value) }

// Error carries a runtime diagnostic message. Errors propagate unchanged up
// to the top-level driver; the interpreter does not recover mid-program.
type Error struct {
	Message string
}

func (e *Error) GetType() Type    { return ErrorType }
func (e *Error) ToString() string { return e.Message }
func (e *Error) ToObject() string { return fmt.Sprintf("<error(%s)>", e.Message) }

// Errorf creates an Error from a format string.
func Errorf(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// IsError reports whether obj is a runtime error.
func IsError(obj Object) bool {
	return obj != nil && obj.GetType() == ErrorType
}
