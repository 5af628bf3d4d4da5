package codegen

import (
	"github.com/valyala/bytebufferpool"

	"github.com/jvitoroc/wordy/ast"
)

// Compile returns the target-language text for expr.
func Compile(expr ast.Node) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := expr.GenerateCode(buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
