/*
File    : caretlang/builtins/predicates.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/values"
)

func init() {
	register("IS_NUM", 1, isNum)
	register("IS_STR", 1, isStr)
	register("IS_LIST", 1, isList)
	register("IS_DEF", 1, isDef)
}

func boolResult(b bool) values.Value {
	if b {
		return values.NewInt(1)
	}
	return values.NewInt(0)
}

func isNum(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	_, ok := args[0].(*values.Number)
	return boolResult(ok), nil
}

func isStr(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	_, ok := args[0].(*values.String)
	return boolResult(ok), nil
}

func isList(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	_, ok := args[0].(*values.List)
	return boolResult(ok), nil
}

func isDef(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	switch args[0].(type) {
	case *values.UserFunction, *values.BuiltinFunction:
		return boolResult(true), nil
	default:
		return boolResult(false), nil
	}
}
