package ast

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/elliotchance/orderedmap/v2"
)

type UnaryExpression struct {
	operator UnaryOperator
	operand  Node
}

func NewUnaryExpression(operator UnaryOperator, operand Node) *UnaryExpression {
	mustNotBeNil("operand", operand)

	return &UnaryExpression{operator: operator, operand: operand}
}

func (u *UnaryExpression) Operator() UnaryOperator {
	return u.operator
}

func (u *UnaryExpression) Operand() Node {
	return u.operand
}

func (u *UnaryExpression) Children() *orderedmap.OrderedMap[string, Node] {
	return orderedChildren(child{"operand", u.operand})
}

func (u *UnaryExpression) Evaluate(ctx Context) (float64, error) {
	value, err := u.operand.Evaluate(ctx)
	if err != nil {
		return 0, err
	}

	switch u.operator {
	case Negation:
		return -value, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperator, u.operator)
	}
}

func (u *UnaryExpression) GenerateCode(em Emitter) error {
	switch u.operator {
	case Negation:
		if err := emit(em, "(-"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOperator, u.operator)
	}

	if err := u.operand.GenerateCode(em); err != nil {
		return err
	}

	return emit(em, ")")
}

func (u *UnaryExpression) Equal(other Node) bool {
	o, ok := other.(*UnaryExpression)
	if !ok || o == nil {
		return false
	}

	if u == o {
		return true
	}

	return u.operator == o.operator && u.operand.Equal(o.operand)
}

func (u *UnaryExpression) Hash() uint64 {
	return hashNode(u)
}

func (u *UnaryExpression) writeHash(d *xxhash.Digest) {
	d.Write([]byte{unaryTag, byte(u.operator)})
	u.operand.writeHash(d)
}

func (u *UnaryExpression) Describe() string {
	return "UnaryExpression(operator=" + u.operator.String() + ")"
}

func (u *UnaryExpression) String() string {
	return "UnaryExpression{operator=" + u.operator.String() + ", operand=" + u.operand.String() + "}"
}
