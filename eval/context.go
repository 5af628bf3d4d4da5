package eval

import "github.com/jvitoroc/wordy/ast"

// Values is a flat set of variable bindings.
type Values map[string]float64

func (v Values) Lookup(name string) (float64, bool) {
	value, ok := v[name]
	return value, ok
}

// Scope resolves names in its own bindings first and then in its parent.
type Scope struct {
	parent ast.Context
	values Values
}

func NewScope(parent ast.Context, values Values) *Scope {
	return &Scope{parent: parent, values: values}
}

func (s *Scope) Lookup(name string) (float64, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}

	if s.parent == nil {
		return 0, false
	}

	return s.parent.Lookup(name)
}
