package std

import (
	"strconv"
	"strings"

	"github.com/mi66mc/pluto/object"
)

var stringMethods = map[string]MethodFunc{
	"len":      stringLen,
	"to_int":   stringToInt,
	"to_float": stringToFloat,
	"to_upper": stringToUpper,
	"to_lower": stringToLower,
	"char_at":  stringCharAt,
}

// stringLen returns the length of the string in BYTES, not characters.
func stringLen(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	s := recv.(*object.String)
	return &object.Number{Value: int64(len(s.Value))}
}

func stringToInt(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	s := recv.(*object.String)
	n, err := strconv.ParseInt(strings.TrimSpace(s.Value), 10, 64)
	if err != nil {
		return object.Errorf("cannot convert %q to a number", s.Value)
	}
	return &object.Number{Value: n}
}

func stringToFloat(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	s := recv.(*object.String)
	f, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return object.Errorf("cannot convert %q to a float", s.Value)
	}
	return &object.Float{Value: f}
}

func stringToUpper(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.String{Value: strings.ToUpper(recv.(*object.String).Value)}
}

func stringToLower(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	return &object.String{Value: strings.ToLower(recv.(*object.String).Value)}
}

// stringCharAt returns the i-th character (by code point) as a one-rune
// string. Out-of-range indices are an error.
func stringCharAt(recv object.Object, rt object.Runtime, args []object.Object) object.Object {
	s := recv.(*object.String)
	if len(args) != 1 {
		return object.Errorf("char_at expects 1 argument, got %d", len(args))
	}
	idx, ok := args[0].(*object.Number)
	if !ok {
		return object.Errorf("char_at expects a Number index")
	}
	runes := []rune(s.Value)
	if idx.Value < 0 || idx.Value >= int64(len(runes)) {
		return object.Errorf("index out of bounds")
	}
	return &object.String{Value: string(runes[idx.Value])}
}
