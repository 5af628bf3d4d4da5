package ast

import (
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/elliotchance/orderedmap/v2"
)

var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUndefinedVariable   = errors.New("undefined variable")
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// PowerFunction is the runtime function generated code calls for
// exponentiation, since the target language has no infix power operator.
const PowerFunction = "Math.pow"

// Context supplies variable values to Evaluate. It is never written to.
type Context interface {
	Lookup(name string) (float64, bool)
}

// Emitter is an append-only sink for generated code.
type Emitter interface {
	WriteString(s string) (int, error)
}

// Node is an expression in a Wordy syntax tree. The set of implementations is
// closed: Literal, Variable, UnaryExpression and BinaryExpression.
type Node interface {
	// Children maps role labels to child nodes in construction order.
	Children() *orderedmap.OrderedMap[string, Node]
	Evaluate(ctx Context) (float64, error)
	GenerateCode(em Emitter) error

	Equal(other Node) bool
	Hash() uint64
	// Describe returns the node kind and its own attributes, without children.
	Describe() string
	String() string

	writeHash(d *xxhash.Digest)
}

type child struct {
	label string
	node  Node
}

func orderedChildren(children ...child) *orderedmap.OrderedMap[string, Node] {
	m := orderedmap.NewOrderedMap[string, Node]()
	for _, c := range children {
		m.Set(c.label, c.node)
	}

	return m
}

func emit(em Emitter, parts ...string) error {
	for _, p := range parts {
		if _, err := em.WriteString(p); err != nil {
			return err
		}
	}

	return nil
}

func mustNotBeNil(role string, n Node) {
	if n == nil {
		panic("ast: nil " + role)
	}
}
