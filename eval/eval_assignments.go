package eval

import (
	"strings"

	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
)

// evalAssignment rebinds an identifier in the first enclosing frame that
// binds it. The expression's value is the assigned value.
func (e *Evaluator) evalAssignment(n *parser.Assignment) object.Object {
	value := e.Eval(n.Value)
	if object.IsError(value) {
		return value
	}
	if err := e.Stack.Assign(n.Name, value); err != nil {
		return object.Errorf("%s", err.Error())
	}
	return value
}

// evalAssignmentOp implements x += v and the -=, *=, /= variants by
// applying the underlying binary operator to the current binding.
func (e *Evaluator) evalAssignmentOp(n *parser.AssignmentOp) object.Object {
	current, ok := e.Stack.Lookup(n.Name)
	if !ok {
		return object.Errorf("undefined variable '%s'", n.Name)
	}
	value := e.Eval(n.Value)
	if object.IsError(value) {
		return value
	}
	result := evalBinary(current, strings.TrimSuffix(n.Op, "="), value)
	if object.IsError(result) {
		return result
	}
	if err := e.Stack.Assign(n.Name, result); err != nil {
		return object.Errorf("%s", err.Error())
	}
	return result
}

// evalPostfixUnary implements i++ and i-- on a Number- or Float-bound
// identifier: the pre-mutation value is the expression's value and the
// mutated value is written back through the binding frame.
func (e *Evaluator) evalPostfixUnary(n *parser.PostfixUnaryExpression) object.Object {
	current, ok := e.Stack.Lookup(n.Name)
	if !ok {
		return object.Errorf("undefined variable '%s'", n.Name)
	}
	delta := int64(1)
	if n.Op == "--" {
		delta = -1
	}
	var next object.Object
	switch v := current.(type) {
	case *object.Number:
		next = &object.Number{Value: v.Value + delta}
	case *object.Float:
		next = &object.Float{Value: v.Value + float64(delta)}
	default:
		return object.Errorf("'%s' requires a Number or Float, got %s", n.Op, current.GetType())
	}
	if err := e.Stack.Assign(n.Name, next); err != nil {
		return object.Errorf("%s", err.Error())
	}
	return current
}

// evalAssignmentIndex implements name[index] = value against an Array
// (integer index) or HashMap (string key). The container is rebuilt and
// rebound rather than mutated in place, which keeps closure snapshots
// insulated from later writes.
func (e *Evaluator) evalAssignmentIndex(n *parser.AssignmentIndex) object.Object {
	ident, ok := n.Target.Object.(*parser.Identifier)
	if !ok {
		return object.Errorf("index assignment requires a bare identifier")
	}
	container, found := e.Stack.Lookup(ident.Name)
	if !found {
		return object.Errorf("undefined variable '%s'", ident.Name)
	}
	index := e.Eval(n.Target.Index)
	if object.IsError(index) {
		return index
	}
	value := e.Eval(n.Value)
	if object.IsError(value) {
		return value
	}

	switch c := container.(type) {
	case *object.Array:
		idx, ok := index.(*object.Number)
		if !ok {
			return object.Errorf("array index must be a Number, got %s", index.GetType())
		}
		if idx.Value < 0 || idx.Value >= int64(len(c.Elements)) {
			return object.Errorf("array index out of bounds")
		}
		out := c.Copy()
		out.Elements[idx.Value] = value
		if err := e.Stack.Assign(ident.Name, out); err != nil {
			return object.Errorf("%s", err.Error())
		}
		return out
	case *object.HashMap:
		key, ok := index.(*object.String)
		if !ok {
			return object.Errorf("hash-map key must be a String, got %s", index.GetType())
		}
		out := c.Copy()
		out.Pairs[key.Value] = value
		if err := e.Stack.Assign(ident.Name, out); err != nil {
			return object.Errorf("%s", err.Error())
		}
		return out
	default:
		return object.Errorf("index assignment is only legal on Array or HashMap, got %s", container.GetType())
	}
}
