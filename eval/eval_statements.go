package eval

import (
	"github.com/mi66mc/pluto/function"
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
)

// evalProgram evaluates top-level statements in order. The program's value
// is the last statement's value. Control-flow signals reaching the top are
// errors: there is no loop or function boundary left to consume them.
func (e *Evaluator) evalProgram(program *parser.Program) object.Object {
	var last object.Object = &object.Null{}
	for _, stmt := range program.Statements {
		result := e.Eval(stmt)
		switch result.GetType() {
		case object.ErrorType:
			return result
		case object.ReturnType:
			return object.Errorf("'return' outside of a function")
		case object.BreakType:
			return object.Errorf("'break' outside of a loop")
		case object.ContinueType:
			return object.Errorf("'continue' outside of a loop")
		}
		last = result
	}
	return last
}

// evalBlock runs a braced block in a fresh frame. The first non-value
// result short-circuits; the frame is popped on every exit. Blocks are not
// expressions: a completed block yields null.
func (e *Evaluator) evalBlock(block *parser.BlockStatement) object.Object {
	e.Stack.Push()
	defer e.Stack.Pop()
	for _, stmt := range block.Statements {
		result := e.Eval(stmt)
		if isAborting(result) {
			return result
		}
	}
	return &object.Null{}
}

// evalVariableDeclaration binds a name in the current frame. Without an
// initializer the name is bound to null.
func (e *Evaluator) evalVariableDeclaration(n *parser.VariableDeclaration) object.Object {
	var value object.Object = &object.Null{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if object.IsError(value) {
			return value
		}
	}
	e.Stack.Declare(n.Name, value)
	return &object.Null{}
}

// evalConstDeclaration binds a constant. Redeclaring a name already bound
// in the current frame is an error; shadowing an outer frame is fine.
func (e *Evaluator) evalConstDeclaration(n *parser.ConstDeclaration) object.Object {
	var value object.Object = &object.Null{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if object.IsError(value) {
			return value
		}
	}
	if err := e.Stack.DeclareConst(n.Name, value); err != nil {
		return object.Errorf("%s", err.Error())
	}
	return &object.Null{}
}

// evalFunctionDeclaration creates the closure and binds it. The name is
// bound before the snapshot is taken so the captured environment contains
// the function itself, which is what makes recursion work.
func (e *Evaluator) evalFunctionDeclaration(n *parser.FunctionDeclaration) object.Object {
	fn := &function.Function{Name: n.Name, Params: n.Params, Body: n.Body}
	e.Stack.Declare(n.Name, fn)
	fn.Env = e.Stack.Snapshot()
	return &object.Null{}
}

// evalIfStatement evaluates the condition under truthiness and recurses
// into the chosen branch. An absent else yields null.
func (e *Evaluator) evalIfStatement(n *parser.IfStatement) object.Object {
	cond := e.Eval(n.Cond)
	if object.IsError(cond) {
		return cond
	}
	if isTruthy(cond) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return &object.Null{}
}

// evalReturnStatement wraps the operand (or null) in a Return signal.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatement) object.Object {
	var value object.Object = &object.Null{}
	if n.Value != nil {
		value = e.Eval(n.Value)
		if object.IsError(value) {
			return value
		}
	}
	return &object.ReturnValue{Value: value}
}
