package std

import "github.com/mi66mc/pluto/object"

var hashMapMethods = map[string]MethodFunc{
	"len": hashMapLen,
	"get": hashMapGet,
	"set": hashMapSet,
}

func hashMapLen(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.Number{Value: int64(len(recv.(*object.HashMap).Pairs))}
}

func hashMapGet(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	m := recv.(*object.HashMap)
	if len(args) != 1 {
		return object.Errorf("get expects 1 argument, got %d", len(args))
	}
	key, ok := args[0].(*object.String)
	if !ok {
		return object.Errorf("get expects a String key")
	}
	value, found := m.Pairs[key.Value]
	if !found {
		return object.Errorf("key not found: %q", key.Value)
	}
	return value
}

// hashMapSet returns a new map with the key bound to the value.
func hashMapSet(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	m := recv.(*object.HashMap)
	if len(args) != 2 {
		return object.Errorf("set expects 2 arguments, got %d", len(args))
	}
	key, ok := args[0].(*object.String)
	if !ok {
		return object.Errorf("set expects a String key")
	}
	out := m.Copy()
	out.Pairs[key.Value] = args[1]
	return out
}
