package eval

import (
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
	"github.com/mi66mc/pluto/std"
)

// evalIdentifier resolves a name against the environment stack.
func (e *Evaluator) evalIdentifier(n *parser.Identifier) object.Object {
	if value, ok := e.Stack.Lookup(n.Name); ok {
		return value
	}
	return object.Errorf("undefined variable '%s'", n.Name)
}

// evalArrayLiteral evaluates elements left to right.
func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteral) object.Object {
	elements := make([]object.Object, 0, len(n.Elements))
	for _, el := range n.Elements {
		value := e.Eval(el)
		if object.IsError(value) {
			return value
		}
		elements = append(elements, value)
	}
	return &object.Array{Elements: elements}
}

// evalHashMapLiteral evaluates pair values in source order.
func (e *Evaluator) evalHashMapLiteral(n *parser.HashMapLiteral) object.Object {
	pairs := make(map[string]object.Object, len(n.Pairs))
	for _, pair := range n.Pairs {
		value := e.Eval(pair.Value)
		if object.IsError(value) {
			return value
		}
		pairs[pair.Key] = value
	}
	return &object.HashMap{Pairs: pairs}
}

// evalMemberAccess resolves obj.name. For a Module the member value is
// returned directly; for other receivers the name resolves against the
// typed method table and is invoked with no arguments, which is how
// "abc".len and [1,2].sum read.
func (e *Evaluator) evalMemberAccess(n *parser.MemberAccess) object.Object {
	obj := e.Eval(n.Object)
	if object.IsError(obj) {
		return obj
	}
	if module, ok := obj.(*object.Module); ok {
		if member, found := module.Members[n.Member]; found {
			return member
		}
		return object.Errorf("no such member '%s' in module %s", n.Member, module.Name)
	}
	if method, ok := std.LookupMethod(obj, n.Member); ok {
		return method(obj, e, nil)
	}
	return object.Errorf("no such member '%s' for %s", n.Member, obj.GetType())
}

// evalMethodCall resolves obj.name(args). Module members must be functions;
// other receivers dispatch through the typed method table.
func (e *Evaluator) evalMethodCall(n *parser.MethodCall) object.Object {
	obj := e.Eval(n.Object)
	if object.IsError(obj) {
		return obj
	}

	args := make([]object.Object, 0, len(n.Args))
	for _, arg := range n.Args {
		if arg.Name != "" {
			return object.Errorf("named arguments are not supported in method calls")
		}
		value := e.Eval(arg.Value)
		if object.IsError(value) {
			return value
		}
		args = append(args, value)
	}

	if module, ok := obj.(*object.Module); ok {
		member, found := module.Members[n.Method]
		if !found {
			return object.Errorf("no such method '%s' in module %s", n.Method, module.Name)
		}
		return e.CallFunction(member, args...)
	}

	if method, ok := std.LookupMethod(obj, n.Method); ok {
		return method(obj, e, args)
	}
	return object.Errorf("no such method '%s' for %s", n.Method, obj.GetType())
}

// evalIndexAccess reads arr[i] or map[key]. Float indices truncate toward
// zero; out-of-bounds and missing keys are errors.
func (e *Evaluator) evalIndexAccess(n *parser.IndexAccess) object.Object {
	obj := e.Eval(n.Object)
	if object.IsError(obj) {
		return obj
	}
	index := e.Eval(n.Index)
	if object.IsError(index) {
		return index
	}

	switch c := obj.(type) {
	case *object.Array:
		var idx int64
		switch i := index.(type) {
		case *object.Number:
			idx = i.Value
		case *object.Float:
			idx = int64(i.Value)
		default:
			return object.Errorf("array index must be a Number, got %s", index.GetType())
		}
		if idx < 0 || idx >= int64(len(c.Elements)) {
			return object.Errorf("array index out of bounds")
		}
		return c.Elements[idx]
	case *object.HashMap:
		key, ok := index.(*object.String)
		if !ok {
			return object.Errorf("hash-map key must be a String, got %s", index.GetType())
		}
		value, found := c.Pairs[key.Value]
		if !found {
			return object.Errorf("key not found: %q", key.Value)
		}
		return value
	default:
		return object.Errorf("indexing is only legal on Array or HashMap, got %s", obj.GetType())
	}
}

// evalMatchExpression tests arms in order; the first equal pattern wins, a
// `_` arm matches unconditionally, and with no match and no default the
// result is null.
func (e *Evaluator) evalMatchExpression(n *parser.MatchExpression) object.Object {
	scrutinee := e.Eval(n.Scrutinee)
	if object.IsError(scrutinee) {
		return scrutinee
	}
	for _, arm := range n.Arms {
		if arm.Pattern == nil {
			return e.Eval(arm.Body)
		}
		pattern := e.Eval(arm.Pattern)
		if object.IsError(pattern) {
			return pattern
		}
		if valuesEqual(scrutinee, pattern) {
			return e.Eval(arm.Body)
		}
	}
	return &object.Null{}
}
