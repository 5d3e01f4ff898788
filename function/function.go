// Package function defines the user-function (closure) value. It lives in
// its own package so that object stays free of AST types while the closure
// can still carry its parameter list, body, and captured environment.
package function

import (
	"fmt"

	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
	"github.com/mi66mc/pluto/scope"
)

// Function is a user-defined function value: the declared parameters (with
// optional default expressions), the body AST, and a snapshot of the
// environment stack taken at the point of creation. The snapshot is
// immutable from the creator's perspective: pushes, pops, and assignments
// made afterwards by the creating evaluator are invisible to the closure.
type Function struct {
	Name   string // Declared name; empty for anonymous functions
	Params []parser.Param
	Body   parser.Node  // *parser.BlockStatement, or a bare expression for (x) -> expr
	Env    *scope.Stack // Captured environment snapshot
}

func (f *Function) GetType() object.Type { return object.FunctionType }

func (f *Function) ToString() string {
	if f.Name == "" {
		return "<anonymous fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

func (f *Function) ToObject() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	params := ""
	for i, param := range f.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Name
	}
	return fmt.Sprintf("<fn[%s(%s)]>", name, params)
}
