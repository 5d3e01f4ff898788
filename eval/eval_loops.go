package eval

import (
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
)

// evalWhileStatement loops while the condition is truthy. Break ends the
// loop, Continue skips to the next iteration, Return and errors propagate.
func (e *Evaluator) evalWhileStatement(n *parser.WhileStatement) object.Object {
	for {
		cond := e.Eval(n.Cond)
		if object.IsError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			return &object.Null{}
		}
		result := e.Eval(n.Body)
		switch result.GetType() {
		case object.ErrorType, object.ReturnType:
			return result
		case object.BreakType:
			return &object.Null{}
		case object.ContinueType:
			// next iteration
		}
	}
}

// evalForStatement runs `for (init; cond; step) body`. The loop owns one
// frame for its entire duration, pushed before the initializer and popped
// on every exit. Unlike if/while, the condition must be a Bool strictly.
func (e *Evaluator) evalForStatement(n *parser.ForStatement) object.Object {
	e.Stack.Push()
	defer e.Stack.Pop()

	if n.Init != nil {
		if result := e.Eval(n.Init); object.IsError(result) {
			return result
		}
	}
	for {
		if n.Cond != nil {
			cond := e.Eval(n.Cond)
			if object.IsError(cond) {
				return cond
			}
			b, ok := cond.(*object.Bool)
			if !ok {
				return object.Errorf("for condition must be a Bool, got %s", cond.GetType())
			}
			if !b.Value {
				return &object.Null{}
			}
		}
		result := e.Eval(n.Body)
		switch result.GetType() {
		case object.ErrorType, object.ReturnType:
			return result
		case object.BreakType:
			return &object.Null{}
		}
		if n.Step != nil {
			if result := e.Eval(n.Step); object.IsError(result) {
				return result
			}
		}
	}
}
