// Package eval implements the tree-walking evaluator of the Pluto language.
//
// The evaluator owns a mutable stack of environment frames initialized to
// the default environment. Evaluation results form a four-way sum — a plain
// value, Return, Break, or Continue — modeled as object variants that
// propagate up the recursion until a boundary consumes them. Runtime errors
// are object.Error values that short-circuit everything.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/mi66mc/pluto/function"
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
	"github.com/mi66mc/pluto/scope"
	"github.com/mi66mc/pluto/std"
)

// Evaluator is the execution engine. Writer and Reader default to the host
// process's stdio and are swappable so tests can run against buffers.
type Evaluator struct {
	Stack  *scope.Stack
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an evaluator over a fresh default environment.
func New() *Evaluator {
	return &Evaluator{
		Stack:  scope.NewStack(std.DefaultEnv()),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects builtin output (print and friends), e.g. to a buffer
// under test.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input builtin's line source.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// Reset rebuilds the environment stack from a fresh default environment.
// The REPL's :reset command calls this.
func (e *Evaluator) Reset() {
	e.Stack = scope.NewStack(std.DefaultEnv())
}

// InputReader implements object.Runtime.
func (e *Evaluator) InputReader() *bufio.Reader {
	return e.Reader
}

// CallFunction implements object.Runtime: it invokes a Pluto function value
// with pre-evaluated positional arguments. Builtins like the array map
// method use it to call back into user code.
func (e *Evaluator) CallFunction(fn object.Object, args ...object.Object) object.Object {
	switch f := fn.(type) {
	case *object.Builtin:
		return f.Fn(e, e.Writer, args...)
	case *function.Function:
		values := make([]argValue, len(args))
		for i, arg := range args {
			values[i] = argValue{value: arg}
		}
		return e.applyFunction(f, values)
	default:
		return object.Errorf("object is not a function")
	}
}

// Eval walks one AST node and returns its result.
func (e *Evaluator) Eval(node parser.Node) object.Object {
	switch n := node.(type) {
	// Roots and blocks
	case *parser.Program:
		return e.evalProgram(n)
	case *parser.BlockStatement:
		return e.evalBlock(n)

	// Literals
	case *parser.NumberLiteral:
		return &object.Number{Value: n.Value}
	case *parser.FloatLiteral:
		return &object.Float{Value: n.Value}
	case *parser.StringLiteral:
		return &object.String{Value: n.Value}
	case *parser.BooleanLiteral:
		return &object.Bool{Value: n.Value}
	case *parser.NullLiteral:
		return &object.Null{}
	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(n)
	case *parser.HashMapLiteral:
		return e.evalHashMapLiteral(n)
	case *parser.Identifier:
		return e.evalIdentifier(n)

	// Declarations
	case *parser.VariableDeclaration:
		return e.evalVariableDeclaration(n)
	case *parser.ConstDeclaration:
		return e.evalConstDeclaration(n)
	case *parser.FunctionDeclaration:
		return e.evalFunctionDeclaration(n)

	// Assignments
	case *parser.Assignment:
		return e.evalAssignment(n)
	case *parser.AssignmentOp:
		return e.evalAssignmentOp(n)
	case *parser.AssignmentIndex:
		return e.evalAssignmentIndex(n)
	case *parser.PostfixUnaryExpression:
		return e.evalPostfixUnary(n)

	// Expressions
	case *parser.BinaryExpression:
		return e.evalBinaryExpression(n)
	case *parser.UnaryExpression:
		return e.evalUnaryExpression(n)
	case *parser.TernaryExpression:
		return e.evalTernaryExpression(n)
	case *parser.RangeExpression:
		return e.evalRangeExpression(n)
	case *parser.MemberAccess:
		return e.evalMemberAccess(n)
	case *parser.MethodCall:
		return e.evalMethodCall(n)
	case *parser.IndexAccess:
		return e.evalIndexAccess(n)
	case *parser.MatchExpression:
		return e.evalMatchExpression(n)

	// Functions and calls
	case *parser.AnonymousFunction:
		return &function.Function{Params: n.Params, Body: n.Body, Env: e.Stack.Snapshot()}
	case *parser.FunctionCall:
		return e.evalFunctionCall(n)
	case *parser.ImmediateInvocation:
		return e.evalImmediateInvocation(n)

	// Control flow
	case *parser.IfStatement:
		return e.evalIfStatement(n)
	case *parser.WhileStatement:
		return e.evalWhileStatement(n)
	case *parser.ForStatement:
		return e.evalForStatement(n)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(n)
	case *parser.BreakStatement:
		return &object.Break{}
	case *parser.ContinueStatement:
		return &object.Continue{}
	}
	return object.Errorf("unsupported AST node")
}

// UnwrapReturnValue extracts the payload from a ReturnValue signal, leaving
// every other result untouched.
func UnwrapReturnValue(obj object.Object) object.Object {
	if ret, ok := obj.(*object.ReturnValue); ok {
		return ret.Value
	}
	return obj
}

// isAborting reports whether a result must stop the current statement
// sequence: an error or any control-flow signal.
func isAborting(obj object.Object) bool {
	switch obj.GetType() {
	case object.ErrorType, object.ReturnType, object.BreakType, object.ContinueType:
		return true
	}
	return false
}
