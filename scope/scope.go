// Package scope implements the lexical environment of the Pluto evaluator:
// a stack of frames, each mapping identifier names to a value and a const
// flag. Name lookup walks from the innermost frame to the global frame at
// the bottom. Closures capture a snapshot of the whole stack; a snapshot is
// a copy of every frame, so later mutations by the creating evaluator stay
// invisible to the closure and vice versa.
package scope

import (
	"fmt"

	"github.com/mi66mc/pluto/object"
)

type binding struct {
	value   object.Object
	isConst bool
}

// Frame is a single lexical scope: a mapping from identifier name to a
// (value, const-flag) binding.
type Frame struct {
	bindings map[string]binding
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{bindings: make(map[string]binding)}
}

// Get returns the value bound to name in this frame.
func (f *Frame) Get(name string) (object.Object, bool) {
	b, ok := f.bindings[name]
	if !ok {
		return nil, false
	}
	return b.value, true
}

// Has reports whether name is bound in this frame.
func (f *Frame) Has(name string) bool {
	_, ok := f.bindings[name]
	return ok
}

// Set binds name to value in this frame, overwriting any previous binding.
func (f *Frame) Set(name string, value object.Object, isConst bool) {
	f.bindings[name] = binding{value: value, isConst: isConst}
}

// Copy returns an independent copy of the frame. The binding map is fresh;
// the bound values are shared, which is safe because containers are rebuilt
// rather than mutated in place on assignment.
func (f *Frame) Copy() *Frame {
	bindings := make(map[string]binding, len(f.bindings))
	for k, v := range f.bindings {
		bindings[k] = v
	}
	return &Frame{bindings: bindings}
}

// Stack is an ordered sequence of frames. The bottom frame is the default
// environment; frames are pushed on block, function, and for-loop entry and
// popped on every exit, including non-local ones.
type Stack struct {
	frames []*Frame
}

// NewStack creates a stack whose bottom frame is global.
func NewStack(global *Frame) *Stack {
	return &Stack{frames: []*Frame{global}}
}

// Push appends a fresh innermost frame.
func (s *Stack) Push() {
	s.frames = append(s.frames, NewFrame())
}

// PushFrame appends an existing frame (used for call argument frames).
func (s *Stack) PushFrame(f *Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes the innermost frame. The global frame is never popped.
func (s *Stack) Pop() {
	if len(s.frames) > 1 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Lookup resolves name against the stack, innermost frame first.
func (s *Stack) Lookup(name string) (object.Object, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Declare binds name in the current (innermost) frame. A `let` declaration
// may shadow any binding from an outer frame and may rebind a name in the
// same frame.
func (s *Stack) Declare(name string, value object.Object) {
	s.frames[len(s.frames)-1].Set(name, value, false)
}

// DeclareConst binds name as a constant in the current frame. A fresh const
// may not shadow an existing binding in the same frame; shadowing an outer
// frame's binding is permitted.
func (s *Stack) DeclareConst(name string, value object.Object) error {
	top := s.frames[len(s.frames)-1]
	if top.Has(name) {
		return fmt.Errorf("cannot redeclare '%s' as constant in the same scope", name)
	}
	top.Set(name, value, true)
	return nil
}

// Assign rebinds name in the first enclosing frame that binds it, walking
// innermost to outermost. Assigning to a const binding or an undefined name
// is an error.
func (s *Stack) Assign(name string, value object.Object) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if b, ok := f.bindings[name]; ok {
			if b.isConst {
				return fmt.Errorf("cannot assign to constant '%s'", name)
			}
			f.bindings[name] = binding{value: value, isConst: false}
			return nil
		}
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// Snapshot returns a deep copy of the stack: every frame is copied, so the
// snapshot is insulated from subsequent pushes, pops, and assignments in
// the original. This is the closure capture operation.
func (s *Stack) Snapshot() *Stack {
	frames := make([]*Frame, len(s.frames))
	for i, f := range s.frames {
		frames[i] = f.Copy()
	}
	return &Stack{frames: frames}
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}
