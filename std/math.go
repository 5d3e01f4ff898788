package std

import (
	"io"
	"math"

	"github.com/mi66mc/pluto/object"
)

// mathModule builds the Math module: the pi constant plus pow and sqrt.
func mathModule() *object.Module {
	return &object.Module{
		Name: "Math",
		Members: map[string]object.Object{
			"pi":   &object.Float{Value: math.Pi},
			"pow":  &object.Builtin{Name: "pow", Fn: mathPow},
			"sqrt": &object.Builtin{Name: "sqrt", Fn: mathSqrt},
		},
	}
}

// mathPow raises a to the power b. The result stays a Number when both
// operands are Numbers and the exponent is non-negative; every other
// combination promotes to Float.
//
// Example:
//
//	Math.pow(2, 10);    -> 1024
//	Math.pow(2.0, 10);  -> 1024.0
func mathPow(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) != 2 {
		return object.Errorf("Math.pow expects 2 arguments, got %d", len(args))
	}
	a, aok := numeric(args[0])
	b, bok := numeric(args[1])
	if !aok || !bok {
		return object.Errorf("Math.pow expects numeric arguments")
	}

	an, aIsInt := args[0].(*object.Number)
	bn, bIsInt := args[1].(*object.Number)
	if aIsInt && bIsInt {
		if bn.Value >= 0 {
			result := int64(1)
			for i := int64(0); i < bn.Value; i++ {
				result *= an.Value
			}
			return &object.Number{Value: result}
		}
		return &object.Float{Value: math.Pow(float64(an.Value), float64(bn.Value))}
	}
	return &object.Float{Value: math.Pow(a, b)}
}

// mathSqrt returns the square root. A Number input truncates back to a
// Number; a Float input yields a Float.
func mathSqrt(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) != 1 {
		return object.Errorf("Math.sqrt expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.Number:
		return &object.Number{Value: int64(math.Sqrt(float64(v.Value)))}
	case *object.Float:
		return &object.Float{Value: math.Sqrt(v.Value)}
	default:
		return object.Errorf("Math.sqrt expects a numeric argument")
	}
}

// numeric widens a Number or Float to float64.
func numeric(obj object.Object) (float64, bool) {
	switch v := obj.(type) {
	case *object.Number:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	default:
		return 0, false
	}
}
