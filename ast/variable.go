package ast

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/elliotchance/orderedmap/v2"
)

// Variable reads a named value from the evaluation context.
type Variable struct {
	name string
}

func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

func (v *Variable) Name() string {
	return v.name
}

func (v *Variable) Children() *orderedmap.OrderedMap[string, Node] {
	return orderedChildren()
}

func (v *Variable) Evaluate(ctx Context) (float64, error) {
	if ctx != nil {
		if value, ok := ctx.Lookup(v.name); ok {
			return value, nil
		}
	}

	return 0, fmt.Errorf("%w '%s'", ErrUndefinedVariable, v.name)
}

func (v *Variable) GenerateCode(em Emitter) error {
	return emit(em, v.name)
}

func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	if !ok || o == nil {
		return false
	}

	return v.name == o.name
}

func (v *Variable) Hash() uint64 {
	return hashNode(v)
}

func (v *Variable) writeHash(d *xxhash.Digest) {
	d.Write([]byte{variableTag})
	writeUint64(d, uint64(len(v.name)))
	d.WriteString(v.name)
}

func (v *Variable) Describe() string {
	return "Variable(name=" + v.name + ")"
}

func (v *Variable) String() string {
	return "Variable{name=" + v.name + "}"
}
