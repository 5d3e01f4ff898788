package std

import (
	"io"
	"math/bits"
	"time"

	"github.com/mi66mc/pluto/object"
)

// The Random module seeds a fresh generator from the wall clock on every
// call: splitmix64 expands the nanosecond timestamp into the 256-bit state
// of a xoshiro256** generator.

type xoshiro256 struct {
	s [4]uint64
}

func newXoshiro256(seed uint64) *xoshiro256 {
	var state [4]uint64
	splitmix := seed
	for i := 0; i < 4; i++ {
		splitmix += 0x9e3779b97f4a7c15
		z := splitmix
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		state[i] = z ^ (z >> 31)
	}
	return &xoshiro256{s: state}
}

func (x *xoshiro256) next() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9
	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t
	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// nextFloat returns a uniform float64 in [0, 1).
func (x *xoshiro256) nextFloat() float64 {
	return float64(x.next()>>11) / float64(uint64(1)<<53)
}

// nextRange returns a uniform int64 in [min, max].
func (x *xoshiro256) nextRange(min, max int64) int64 {
	span := uint64(max - min + 1)
	return min + int64(x.next()%span)
}

func clockRNG() *xoshiro256 {
	return newXoshiro256(uint64(time.Now().UnixNano()))
}

// randomModule builds the Random module.
func randomModule() *object.Module {
	return &object.Module{
		Name: "Random",
		Members: map[string]object.Object{
			"int":     &object.Builtin{Name: "int", Fn: randomInt},
			"float":   &object.Builtin{Name: "float", Fn: randomFloat},
			"bool":    &object.Builtin{Name: "bool", Fn: randomBool},
			"choice":  &object.Builtin{Name: "choice", Fn: randomChoice},
			"shuffle": &object.Builtin{Name: "shuffle", Fn: randomShuffle},
		},
	}
}

// randomInt returns a uniform Number in [min, max] inclusive.
// Defaults: min 0, max 100. When min > max the result is min.
func randomInt(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	min, max := int64(0), int64(100)
	if len(args) > 0 {
		if n, ok := args[0].(*object.Number); ok {
			min = n.Value
		}
	}
	if len(args) > 1 {
		if n, ok := args[1].(*object.Number); ok {
			max = n.Value
		}
	}
	if min > max {
		return &object.Number{Value: min}
	}
	return &object.Number{Value: clockRNG().nextRange(min, max)}
}

// randomFloat returns a uniform Float in [0, 1).
func randomFloat(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	return &object.Float{Value: clockRNG().nextFloat()}
}

// randomBool returns true with probability p (default 0.5).
func randomBool(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	probability := 0.5
	if len(args) > 0 {
		if p, ok := numeric(args[0]); ok {
			probability = p
		}
	}
	return &object.Bool{Value: clockRNG().nextFloat() < probability}
}

// randomChoice returns a uniformly chosen element of the array, or null for
// an empty array.
func randomChoice(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) == 0 {
		return &object.Null{}
	}
	arr, ok := args[0].(*object.Array)
	if !ok || len(arr.Elements) == 0 {
		return &object.Null{}
	}
	idx := int(clockRNG().next() % uint64(len(arr.Elements)))
	return arr.Elements[idx]
}

// randomShuffle returns a new array with the elements in Fisher-Yates
// shuffled order.
func randomShuffle(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) == 0 {
		return &object.Array{Elements: []object.Object{}}
	}
	arr, ok := args[0].(*object.Array)
	if !ok || len(arr.Elements) == 0 {
		return &object.Array{Elements: []object.Object{}}
	}
	out := arr.Copy()
	rng := clockRNG()
	for i := len(out.Elements) - 1; i >= 1; i-- {
		j := int(rng.next() % uint64(i+1))
		out.Elements[i], out.Elements[j] = out.Elements[j], out.Elements[i]
	}
	return out
}
