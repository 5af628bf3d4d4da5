package ast

import (
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/elliotchance/orderedmap/v2"
)

type Literal struct {
	value float64
}

func NewLiteral(value float64) *Literal {
	return &Literal{value: value}
}

func (l *Literal) Value() float64 {
	return l.value
}

func (l *Literal) Children() *orderedmap.OrderedMap[string, Node] {
	return orderedChildren()
}

func (l *Literal) Evaluate(Context) (float64, error) {
	return l.value, nil
}

func (l *Literal) GenerateCode(em Emitter) error {
	return emit(em, numberCode(l.value))
}

func (l *Literal) Equal(other Node) bool {
	o, ok := other.(*Literal)
	if !ok || o == nil {
		return false
	}

	if math.IsNaN(l.value) && math.IsNaN(o.value) {
		return true
	}

	return l.value == o.value
}

func (l *Literal) Hash() uint64 {
	return hashNode(l)
}

func (l *Literal) writeHash(d *xxhash.Digest) {
	d.Write([]byte{literalTag})
	writeUint64(d, canonicalBits(l.value))
}

func (l *Literal) Describe() string {
	return "Literal(value=" + formatNumber(l.value) + ")"
}

func (l *Literal) String() string {
	return "Literal{value=" + formatNumber(l.value) + "}"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// numberCode renders v as an expression that reads back as v in both Java and
// JavaScript. Negative values are wrapped so they never fuse with a
// preceding operator.
func numberCode(v float64) string {
	switch {
	case math.IsNaN(v):
		return "(0.0 / 0.0)"
	case math.IsInf(v, 1):
		return "(1.0 / 0.0)"
	case math.IsInf(v, -1):
		return "(-1.0 / 0.0)"
	case math.Signbit(v):
		return "(" + formatNumber(v) + ")"
	}

	return formatNumber(v)
}
