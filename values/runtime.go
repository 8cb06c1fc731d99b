/*
File    : caretlang/values/runtime.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import "github.com/akashmaji946/caretlang/diag"

// Runtime is the host-operation surface builtins and user-function calls
// need to reach back into the interpreter for: console IO, the RUN
// builtin's pipeline re-entry, and actually executing a UserFunction's
// body (which only the interpreter, holding the AST visitor, can do).
type Runtime interface {
	Write(s string) error
	ReadLine() (string, error)
	Clear() error
	RunFile(fileName string) (Value, *diag.Diagnostic)
	CallUserFunction(fn *UserFunction, args []Value) (Value, *diag.Diagnostic)
}
