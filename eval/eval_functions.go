package eval

import (
	"github.com/mi66mc/pluto/function"
	"github.com/mi66mc/pluto/object"
	"github.com/mi66mc/pluto/parser"
	"github.com/mi66mc/pluto/scope"
)

// argValue is one evaluated call-site argument; name is empty for
// positional arguments.
type argValue struct {
	name  string
	value object.Object
}

// evalFunctionCall resolves name(args) against the environment stack and
// dispatches to the builtin or user-function path.
func (e *Evaluator) evalFunctionCall(n *parser.FunctionCall) object.Object {
	callee, ok := e.Stack.Lookup(n.Name)
	if !ok {
		return object.Errorf("unknown function '%s'", n.Name)
	}
	return e.evalCall(callee, n.Args, n.Name)
}

// evalImmediateInvocation calls the result of a function-valued expression,
// e.g. ((x) -> x + 1)(3).
func (e *Evaluator) evalImmediateInvocation(n *parser.ImmediateInvocation) object.Object {
	callee := e.Eval(n.Function)
	if object.IsError(callee) {
		return callee
	}
	return e.evalCall(callee, n.Args, "")
}

// evalCall evaluates arguments in the caller's environment, in source
// order, then applies the callee.
func (e *Evaluator) evalCall(callee object.Object, callArgs []parser.Argument, name string) object.Object {
	args := make([]argValue, 0, len(callArgs))
	for _, arg := range callArgs {
		value := e.Eval(arg.Value)
		if object.IsError(value) {
			return value
		}
		args = append(args, argValue{name: arg.Name, value: value})
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		values := make([]object.Object, len(args))
		for i, arg := range args {
			if arg.name != "" {
				return object.Errorf("named arguments are not supported for built-in functions")
			}
			values[i] = arg.value
		}
		return fn.Fn(e, e.Writer, values...)
	case *function.Function:
		return e.applyFunction(fn, args)
	default:
		if name != "" {
			return object.Errorf("'%s' is not a function", name)
		}
		return object.Errorf("object is not a function, got %s", callee.GetType())
	}
}

// applyFunction binds arguments to parameter slots and runs the body.
//
// Binding order: named arguments claim their slots first (unknown names and
// duplicates are errors), positional arguments then fill the remaining
// slots in declaration order, and any slot still unbound takes its default
// expression, evaluated in the caller's context at call time. A slot with
// no binding and no default is an error, as is a positional surplus.
//
// The body runs under a new evaluator whose stack is the argument frame
// pushed onto a copy of the closure's captured snapshot, so a call can
// never mutate the creator's environment.
func (e *Evaluator) applyFunction(fn *function.Function, args []argValue) object.Object {
	bound := make([]object.Object, len(fn.Params))
	slots := make(map[string]int, len(fn.Params))
	for i, param := range fn.Params {
		slots[param.Name] = i
	}

	for _, arg := range args {
		if arg.name == "" {
			continue
		}
		idx, ok := slots[arg.name]
		if !ok {
			return object.Errorf("unknown named argument '%s'", arg.name)
		}
		if bound[idx] != nil {
			return object.Errorf("duplicate argument '%s'", arg.name)
		}
		bound[idx] = arg.value
	}

	next := 0
	for _, arg := range args {
		if arg.name != "" {
			continue
		}
		for next < len(bound) && bound[next] != nil {
			next++
		}
		if next >= len(bound) {
			return object.Errorf("too many arguments: expected %d", len(fn.Params))
		}
		bound[next] = arg.value
	}

	for i, param := range fn.Params {
		if bound[i] != nil {
			continue
		}
		if param.Default == nil {
			return object.Errorf("missing argument '%s'", param.Name)
		}
		value := e.Eval(param.Default)
		if object.IsError(value) {
			return value
		}
		bound[i] = value
	}

	stack := fn.Env.Snapshot()
	frame := scope.NewFrame()
	for i, param := range fn.Params {
		frame.Set(param.Name, bound[i], false)
	}
	stack.PushFrame(frame)

	sub := &Evaluator{Stack: stack, Writer: e.Writer, Reader: e.Reader}
	result := sub.Eval(fn.Body)

	switch result.GetType() {
	case object.ReturnType:
		return UnwrapReturnValue(result)
	case object.BreakType:
		return object.Errorf("'break' outside of a loop")
	case object.ContinueType:
		return object.Errorf("'continue' outside of a loop")
	}
	return result
}
