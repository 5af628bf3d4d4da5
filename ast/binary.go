package ast

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/elliotchance/orderedmap/v2"
)

// BinaryExpression joins two expressions with an operator, e.g. "x plus y".
type BinaryExpression struct {
	operator BinaryOperator
	lhs, rhs Node
}

func NewBinaryExpression(operator BinaryOperator, lhs, rhs Node) *BinaryExpression {
	mustNotBeNil("lhs", lhs)
	mustNotBeNil("rhs", rhs)

	return &BinaryExpression{operator: operator, lhs: lhs, rhs: rhs}
}

func (b *BinaryExpression) Operator() BinaryOperator {
	return b.operator
}

func (b *BinaryExpression) LHS() Node {
	return b.lhs
}

func (b *BinaryExpression) RHS() Node {
	return b.rhs
}

func (b *BinaryExpression) Children() *orderedmap.OrderedMap[string, Node] {
	return orderedChildren(
		child{"lhs", b.lhs},
		child{"rhs", b.rhs},
	)
}

// Evaluate evaluates lhs before rhs; an error on the left stops evaluation
// before the right side is touched.
func (b *BinaryExpression) Evaluate(ctx Context) (float64, error) {
	left, err := b.lhs.Evaluate(ctx)
	if err != nil {
		return 0, err
	}

	right, err := b.rhs.Evaluate(ctx)
	if err != nil {
		return 0, err
	}

	switch b.operator {
	case Addition:
		return evaluateAddition(left, right)
	case Subtraction:
		return evaluateSubtraction(left, right)
	case Multiplication:
		return evaluateMultiplication(left, right)
	case Division:
		return evaluateDivision(left, right)
	case Exponentiation:
		return evaluateExponentiation(left, right)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperator, b.operator)
	}
}

func (b *BinaryExpression) GenerateCode(em Emitter) error {
	if b.operator == Exponentiation {
		if err := emit(em, PowerFunction, "("); err != nil {
			return err
		}
		if err := b.lhs.GenerateCode(em); err != nil {
			return err
		}
		if err := emit(em, ", "); err != nil {
			return err
		}
		if err := b.rhs.GenerateCode(em); err != nil {
			return err
		}

		return emit(em, ")")
	}

	var symbol string
	switch b.operator {
	case Addition:
		symbol = " + "
	case Subtraction:
		symbol = " - "
	case Multiplication:
		symbol = " * "
	case Division:
		symbol = " / "
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOperator, b.operator)
	}

	if err := emit(em, "("); err != nil {
		return err
	}
	if err := b.lhs.GenerateCode(em); err != nil {
		return err
	}
	if err := emit(em, symbol); err != nil {
		return err
	}
	if err := b.rhs.GenerateCode(em); err != nil {
		return err
	}

	return emit(em, ")")
}

func (b *BinaryExpression) Equal(other Node) bool {
	o, ok := other.(*BinaryExpression)
	if !ok || o == nil {
		return false
	}

	if b == o {
		return true
	}

	return b.operator == o.operator &&
		b.lhs.Equal(o.lhs) &&
		b.rhs.Equal(o.rhs)
}

func (b *BinaryExpression) Hash() uint64 {
	return hashNode(b)
}

func (b *BinaryExpression) writeHash(d *xxhash.Digest) {
	d.Write([]byte{binaryTag, byte(b.operator)})
	b.lhs.writeHash(d)
	b.rhs.writeHash(d)
}

func (b *BinaryExpression) Describe() string {
	return "BinaryExpression(operator=" + b.operator.String() + ")"
}

func (b *BinaryExpression) String() string {
	return "BinaryExpression{" +
		"operator=" + b.operator.String() +
		", lhs=" + b.lhs.String() +
		", rhs=" + b.rhs.String() +
		"}"
}
