/*
File    : caretlang/values/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/position"
)

// UserFunction is a closure: the parameter names, the AST body, whether
// it auto-returns, and the environment it closed over.
//
// DefiningEnv is declared as interface{} rather than *env.Environment to
// avoid a values->env->values import cycle (env.Environment stores
// Values in its table); the interpreter type-asserts it back when it
// creates the call frame.
type UserFunction struct {
	base
	Name        string
	ParamNames  []string
	Body        parser.Node
	AutoReturn  bool
	DefiningEnv interface{}
}

func NewUserFunction(name string, paramNames []string, body parser.Node, autoReturn bool, definingEnv interface{}) *UserFunction {
	return &UserFunction{Name: name, ParamNames: paramNames, Body: body, AutoReturn: autoReturn, DefiningEnv: definingEnv}
}

func (f *UserFunction) Type() string { return "UserFunction" }

func (f *UserFunction) String() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *UserFunction) Repr() string { return f.String() }
func (f *UserFunction) IsTrue() bool { return true }

func (f *UserFunction) SetPos(start, end position.Position) Value {
	c := *f
	c.start, c.end = start, end
	return &c
}

func (f *UserFunction) SetContext(ctx *Context) Value {
	c := *f
	c.ctx = ctx
	return &c
}

func (f *UserFunction) Copy() Value {
	c := *f
	return &c
}

// Call delegates to rt.CallUserFunction: only the interpreter, holding
// the AST visitor, can actually execute the body.
func (f *UserFunction) Call(args []Value, rt Runtime) (Value, *diag.Diagnostic) {
	return rt.CallUserFunction(f, args)
}

func (f *UserFunction) AddedTo(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(f, other) }
func (f *UserFunction) SubbedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) MultedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) DivedBy(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(f, other) }
func (f *UserFunction) PowedBy(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonEq(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonNe(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonLt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonGt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonLte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(f, other) }
func (f *UserFunction) ComparisonGte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(f, other) }
func (f *UserFunction) AndedBy(other Value) (Value, *diag.Diagnostic)      { return nil, illegalOperation(f, other) }
func (f *UserFunction) OredBy(other Value) (Value, *diag.Diagnostic)       { return nil, illegalOperation(f, other) }
func (f *UserFunction) Notted() (Value, *diag.Diagnostic)                  { return nil, illegalOperation(f, nil) }
