package runtime

import (
	"fmt"
	"sort"
)

// UndefinedVariableError is returned by Get for a name with no binding.
type UndefinedVariableError struct {
	Name string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// Environment is the single global scope of a program run. Names are case
// sensitive and there is no shadowing.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Define binds name, overwriting any previous binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign binds name. With a single scope it behaves exactly like Define.
func (e *Environment) Assign(name string, value Value) {
	e.values[name] = value
}

// Get retrieves a binding.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	return nil, UndefinedVariableError{Name: name}
}

// Has reports whether name is bound.
func (e *Environment) Has(name string) bool {
	_, ok := e.values[name]
	return ok
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
