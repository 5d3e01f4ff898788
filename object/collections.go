package object

import (
	"fmt"
	"sort"
	"strings"
)

// Array is an ordered sequence of values. Arrays are value-semantic: the
// mutation methods and index assignment produce fresh sequences rather than
// aliasing the receiver.
type Array struct {
	Elements []Object
}

func (a *Array) GetType() Type { return ArrayType }

func (a *Array) ToString() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) ToObject() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.ToObject()
	}
	return "<array[" + strings.Join(parts, ", ") + "]>"
}

// Copy returns a shallow copy of the array's element sequence.
func (a *Array) Copy() *Array {
	elements := make([]Object, len(a.Elements))
	copy(elements, a.Elements)
	return &Array{Elements: elements}
}

// HashMap maps string keys to values. Storage order is unspecified; the
// display form sorts keys so output is stable.
type HashMap struct {
	Pairs map[string]Object
}

func (h *HashMap) GetType() Type { return HashMapType }

func (h *HashMap) ToString() string {
	keys := make([]string, 0, len(h.Pairs))
	for k := range h.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, h.Pairs[k].ToString())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (h *HashMap) ToObject() string {
	return fmt.Sprintf("<hashmap(%d entries)>", len(h.Pairs))
}

// Copy returns a shallow copy of the map's entries.
func (h *HashMap) Copy() *HashMap {
	pairs := make(map[string]Object, len(h.Pairs))
	for k, v := range h.Pairs {
		pairs[k] = v
	}
	return &HashMap{Pairs: pairs}
}

// Module is a namespace of constants and built-in functions (Math, Time,
// Random). Member access resolves against Members; calling a member invokes
// it when it is a function.
type Module struct {
	Name    string
	Members map[string]Object
}

func (m *Module) GetType() Type    { return ModuleType }
func (m *Module) ToString() string { return "<module>" }
func (m *Module) ToObject() string { return fmt.Sprintf("<module(%s)>", m.Name) }
