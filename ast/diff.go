package ast

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var diffOptions = []cmp.Option{
	cmp.AllowUnexported(Literal{}, Variable{}, UnaryExpression{}, BinaryExpression{}),
	cmpopts.EquateNaNs(),
}

// Diff reports the structural differences between two trees, or "" when they
// are Equal.
func Diff(want, got Node) string {
	if want != nil && want.Equal(got) {
		return ""
	}

	return cmp.Diff(want, got, diffOptions...)
}
