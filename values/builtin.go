/*
File    : caretlang/values/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

// CallbackFunc is a host-implemented builtin's body: given the calling
// Runtime and the already-evaluated arguments, produce a result or a
// runtime diagnostic, generalized to return an error alongside the value
// since this value model threads diag.Diagnostic explicitly rather than
// using a sentinel error value.
type CallbackFunc func(rt Runtime, args []Value) (Value, *diag.Diagnostic)

// BuiltinFunction is a named host operation with a declared arity;
// BuiltinFunction.Call checks arity before invoking Callback, matching
// UserFunction's own arity-checking discipline.
type BuiltinFunction struct {
	base
	Name     string
	Arity    int
	Callback CallbackFunc
}

func NewBuiltinFunction(name string, arity int, cb CallbackFunc) *BuiltinFunction {
	return &BuiltinFunction{Name: name, Arity: arity, Callback: cb}
}

func (b *BuiltinFunction) Type() string  { return "BuiltinFunction" }
func (b *BuiltinFunction) String() string { return fmt.Sprintf("<built-in function %s>", b.Name) }
func (b *BuiltinFunction) Repr() string   { return b.String() }
func (b *BuiltinFunction) IsTrue() bool   { return true }

func (b *BuiltinFunction) SetPos(start, end position.Position) Value {
	c := *b
	c.start, c.end = start, end
	return &c
}

func (b *BuiltinFunction) SetContext(ctx *Context) Value {
	c := *b
	c.ctx = ctx
	return &c
}

func (b *BuiltinFunction) Copy() Value {
	c := *b
	return &c
}

// Call checks arity exactly, then invokes the callback. Arity mismatches
// produce the same "too many"/"too few" phrasing UserFunction.Call uses.
func (b *BuiltinFunction) Call(args []Value, rt Runtime) (Value, *diag.Diagnostic) {
	if len(args) > b.Arity {
		start, end := b.Pos()
		return nil, diag.New(diag.RuntimeError,
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-b.Arity, b.Name), start, end)
	}
	if len(args) < b.Arity {
		start, end := b.Pos()
		return nil, diag.New(diag.RuntimeError,
			fmt.Sprintf("%d too few args passed into '%s'", b.Arity-len(args), b.Name), start, end)
	}
	return b.Callback(rt, args)
}

func (b *BuiltinFunction) AddedTo(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) SubbedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) MultedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) DivedBy(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) PowedBy(other Value) (Value, *diag.Diagnostic)   { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonEq(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonNe(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonLt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonGt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonLte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) ComparisonGte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) AndedBy(other Value) (Value, *diag.Diagnostic)      { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) OredBy(other Value) (Value, *diag.Diagnostic)       { return nil, illegalOperation(b, other) }
func (b *BuiltinFunction) Notted() (Value, *diag.Diagnostic)                  { return nil, illegalOperation(b, nil) }
