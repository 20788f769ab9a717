// Package function defines the runtime representation of a Monkey
// function value. It is split out from object so that object need not
// import ast, matching the teacher's objects/scope/function split.
package function

import (
	"bytes"
	"strings"

	"monkey/ast"
	"monkey/object"
)

// Function is a closure: its parameter list and body are the AST nodes
// it was declared with, and Env is the environment in which it was
// declared. Env is captured by reference — later mutations of that
// environment (e.g. a sibling `let` added after the closure was formed)
// are visible to calls made through this Function, matching the
// reference-capture semantics this language chose over value-snapshot.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *object.Environment
}

func (f *Function) Type() object.Type { return object.FunctionObj }

func (f *Function) Inspect() string {
	var out bytes.Buffer
	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn")
	out.WriteString(" (")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")
	return out.String()
}
