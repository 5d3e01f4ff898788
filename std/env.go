// Package std builds the default environment of the Pluto interpreter: the
// Math, Time, and Random modules, the global builtin functions, and the
// typed method tables for String, Number, Float, Array, and HashMap
// receivers. The modules and global functions are registered into the
// bottom frame of the environment stack as constant bindings; the method
// tables are not bound there and are reached through LookupMethod.
package std

import "github.com/mi66mc/pluto/scope"

// DefaultEnv builds the pre-populated global frame at the bottom of every
// evaluator's environment stack.
func DefaultEnv() *scope.Frame {
	frame := scope.NewFrame()

	frame.Set("Math", mathModule(), true)
	frame.Set("Time", timeModule(), true)
	frame.Set("Random", randomModule(), true)

	for _, builtin := range globals {
		frame.Set(builtin.Name, builtin, true)
	}
	return frame
}
