package evaluator

import "monkey/object"

// Builtins is the fixed table consulted on identifier-lookup miss (see
// evalIdentifier). It is not shadowable by indexing tricks — the only
// way to "override" an entry is a user `let` binding, which evalIdentifier
// checks first.
var Builtins = map[string]*object.Builtin{
	"len": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		switch arg := args[0].(type) {
		case *object.String:
			return &object.Integer{Value: int64(len(arg.Value))}
		case *object.Array:
			return &object.Integer{Value: int64(len(arg.Elements))}
		default:
			return newError("argument to len not supported got %s", args[0].Inspect())
		}
	}},

	"first": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*object.Array)
		if !ok {
			return newError("argument to 'first' must be array, got %s", args[0].Inspect())
		}
		if len(arr.Elements) == 0 {
			return NULL
		}
		return arr.Elements[0]
	}},

	"last": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*object.Array)
		if !ok {
			return newError("argument to 'last' must be array, got %s", args[0].Inspect())
		}
		if len(arr.Elements) == 0 {
			return NULL
		}
		return arr.Elements[len(arr.Elements)-1]
	}},

	"rest": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		arr, ok := args[0].(*object.Array)
		if !ok {
			return newError("argument to 'rest' must be array, got %s", args[0].Inspect())
		}
		length := len(arr.Elements)
		if length == 0 {
			return NULL
		}
		newElements := make([]object.Object, length-1)
		copy(newElements, arr.Elements[1:length])
		return &object.Array{Elements: newElements}
	}},

	"push": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 2 {
			return newError("wrong number of arguments. got=%d, want=2", len(args))
		}
		arr, ok := args[0].(*object.Array)
		if !ok {
			return newError("argument to 'push' must be array, got %s", args[0].Inspect())
		}
		length := len(arr.Elements)
		newElements := make([]object.Object, length+1)
		copy(newElements, arr.Elements)
		newElements[length] = args[1]
		return &object.Array{Elements: newElements}
	}},
}
