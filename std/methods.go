package std

import "github.com/mi66mc/pluto/object"

// MethodFunc is the signature of a typed method: it receives the receiver
// value, the runtime (so methods like map can call user functions), and the
// evaluated arguments.
type MethodFunc func(recv object.Object, rt object.Runtime, args []object.Object) object.Object

// LookupMethod resolves a method name against the receiver's typed method
// table. Modules are not handled here — module member calls resolve through
// the module's own member map.
func LookupMethod(recv object.Object, name string) (MethodFunc, bool) {
	switch recv.GetType() {
	case object.StringType:
		fn, ok := stringMethods[name]
		return fn, ok
	case object.NumberType:
		fn, ok := numberMethods[name]
		return fn, ok
	case object.FloatType:
		fn, ok := floatMethods[name]
		return fn, ok
	case object.ArrayType:
		fn, ok := arrayMethods[name]
		return fn, ok
	case object.HashMapType:
		fn, ok := hashMapMethods[name]
		return fn, ok
	default:
		return nil, false
	}
}
