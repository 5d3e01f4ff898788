package std

import "github.com/mi66mc/pluto/object"

var numberMethods = map[string]MethodFunc{
	"to_string": numberToString,
	"to_float":  numberToFloat,
}

var floatMethods = map[string]MethodFunc{
	"to_string": numberToString,
	"to_int":    floatToInt,
}

func numberToString(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.String{Value: recv.ToString()}
}

func numberToFloat(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.Float{Value: float64(recv.(*object.Number).Value)}
}

// floatToInt truncates toward zero.
func floatToInt(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.Number{Value: int64(recv.(*object.Float).Value)}
}
