package std

import "github.com/mi66mc/pluto/object"

// Array methods are value-semantic: push, pop, and remove build and return
// a new array instead of mutating the receiver. In-place element mutation
// exists only through index assignment on an identifier.
var arrayMethods = map[string]MethodFunc{
	"len":    arrayLen,
	"push":   arrayPush,
	"pop":    arrayPop,
	"remove": arrayRemove,
	"sum":    arraySum,
	"map":    arrayMap,
}

func arrayLen(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.Number{Value: int64(len(recv.(*object.Array).Elements))}
}

func arrayPush(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	out := recv.(*object.Array).Copy()
	out.Elements = append(out.Elements, args...)
	return out
}

func arrayPop(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	arr := recv.(*object.Array)
	if len(arr.Elements) == 0 {
		return object.Errorf("pop on an empty array")
	}
	out := arr.Copy()
	out.Elements = out.Elements[:len(out.Elements)-1]
	return out
}

func arrayRemove(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	arr := recv.(*object.Array)
	if len(args) != 1 {
		return object.Errorf("remove expects 1 argument, got %d", len(args))
	}
	idx, ok := args[0].(*object.Number)
	if !ok {
		return object.Errorf("remove expects a Number index")
	}
	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return object.Errorf("index out of bounds")
	}
	out := arr.Copy()
	out.Elements = append(out.Elements[:idx.Value], out.Elements[idx.Value+1:]...)
	return out
}

// arraySum adds the numeric elements and always returns a Float.
// Non-numeric elements are skipped.
func arraySum(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	sum := 0.0
	for _, el := range recv.(*object.Array).Elements {
		switch v := el.(type) {
		case *object.Number:
			sum += float64(v.Value)
		case *object.Float:
			sum += v.Value
		}
	}
	return &object.Float{Value: sum}
}

// arrayMap applies a function to every element and returns the new array.
func arrayMap(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	if len(args) == 0 {
		return object.Errorf("map expects a function argument")
	}
	fn := args[0]
	switch fn.GetType() {
	case object.BuiltinType, object.FunctionType:
	default:
		return object.Errorf("map expects a function argument, got %s", fn.GetType())
	}
	arr := recv.(*object.Array)
	out := make([]object.Object, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		result := rt.CallFunction(fn, el)
		if object.IsError(result) {
			return result
		}
		out = append(out, result)
	}
	return &object.Array{Elements: out}
}
