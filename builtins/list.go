/*
File    : caretlang/builtins/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/values"
)

func init() {
	register("APPEND", 2, builtinAppend)
	register("POP", 2, builtinPop)
	register("EXTEND", 2, builtinExtend)
	register("LEN", 1, builtinLen)
}

func typeError(v values.Value, expected string) *diag.Diagnostic {
	start, end := v.Pos()
	return diag.New(diag.RuntimeError, fmt.Sprintf("Argument must be %s", expected), start, end)
}

func builtinAppend(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	l, ok := args[0].(*values.List)
	if !ok {
		return nil, typeError(args[0], "list")
	}
	l.SetItems(append(l.Items(), args[1]))
	return values.Null, nil
}

func builtinPop(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	l, ok := args[0].(*values.List)
	if !ok {
		return nil, typeError(args[0], "list")
	}
	n, ok := args[1].(*values.Number)
	if !ok {
		return nil, typeError(args[1], "number")
	}
	idx := int(n.Val)
	items := l.Items()
	if idx < 0 || idx >= len(items) {
		start, end := args[1].Pos()
		return nil, diag.New(diag.RuntimeError, "Element at this index could not be removed from list because index is out of bounds", start, end)
	}
	popped := items[idx]
	remaining := make([]values.Value, 0, len(items)-1)
	remaining = append(remaining, items[:idx]...)
	remaining = append(remaining, items[idx+1:]...)
	l.SetItems(remaining)
	return popped, nil
}

func builtinExtend(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	a, ok := args[0].(*values.List)
	if !ok {
		return nil, typeError(args[0], "list")
	}
	b, ok := args[1].(*values.List)
	if !ok {
		return nil, typeError(args[1], "list")
	}
	a.SetItems(append(a.Items(), b.Items()...))
	return values.Null, nil
}

func builtinLen(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	l, ok := args[0].(*values.List)
	if !ok {
		return nil, typeError(args[0], "list")
	}
	return values.NewInt(len(l.Items())), nil
}
