/*
File    : caretlang/values/number.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"
	"math"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

// Number holds either an integer or floating value; IsInt records which,
// so String() renders "3" rather than "3.0" for integral results.
type Number struct {
	base
	Val   float64
	IsInt bool
}

// NewInt builds an integer-valued Number with no position yet (callers
// synthesizing constants must SetPos before using it in a diagnostic).
func NewInt(v int) *Number { return &Number{Val: float64(v), IsInt: true} }

// NewFloat builds a floating-point Number.
func NewFloat(v float64) *Number { return &Number{Val: v, IsInt: false} }

// predefined singletons bound into every global environment.
var (
	Null  = NewInt(0)
	False = NewInt(0)
	True  = NewInt(1)
	Pi    = NewFloat(math.Pi)
)

func (n *Number) Type() string { return "Number" }

func (n *Number) String() string {
	if n.IsInt {
		return fmt.Sprintf("%d", int(n.Val))
	}
	return fmt.Sprintf("%g", n.Val)
}

func (n *Number) Repr() string { return n.String() }

func (n *Number) IsTrue() bool { return n.Val != 0 }

func (n *Number) SetPos(start, end position.Position) Value {
	c := *n
	c.start, c.end = start, end
	return &c
}

func (n *Number) SetContext(ctx *Context) Value {
	c := *n
	c.ctx = ctx
	return &c
}

func (n *Number) Copy() Value {
	c := *n
	return &c
}

func asNumber(v Value) (*Number, bool) {
	n, ok := v.(*Number)
	return n, ok
}

func (n *Number) combine(other Value, f func(a, b float64) float64) (*Number, bool) {
	o, ok := asNumber(other)
	if !ok {
		return nil, false
	}
	result := &Number{Val: f(n.Val, o.Val), IsInt: n.IsInt && o.IsInt}
	return result, true
}

func (n *Number) AddedTo(other Value) (Value, *diag.Diagnostic) {
	if r, ok := n.combine(other, func(a, b float64) float64 { return a + b }); ok {
		return r.SetContext(n.ctx), nil
	}
	return nil, illegalOperation(n, other)
}

func (n *Number) SubbedBy(other Value) (Value, *diag.Diagnostic) {
	if r, ok := n.combine(other, func(a, b float64) float64 { return a - b }); ok {
		return r.SetContext(n.ctx), nil
	}
	return nil, illegalOperation(n, other)
}

func (n *Number) MultedBy(other Value) (Value, *diag.Diagnostic) {
	if r, ok := n.combine(other, func(a, b float64) float64 { return a * b }); ok {
		return r.SetContext(n.ctx), nil
	}
	return nil, illegalOperation(n, other)
}

func (n *Number) DivedBy(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	if o.Val == 0 {
		start, _ := n.Pos()
		_, end := other.Pos()
		return nil, diag.New(diag.RuntimeError, "Division by zero", start, end)
	}
	result := &Number{Val: n.Val / o.Val, IsInt: n.IsInt && o.IsInt && math.Mod(n.Val, o.Val) == 0}
	return result.SetContext(n.ctx), nil
}

func (n *Number) PowedBy(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	result := &Number{Val: math.Pow(n.Val, o.Val), IsInt: n.IsInt && o.IsInt && o.Val >= 0}
	return result.SetContext(n.ctx), nil
}

func boolNumber(b bool) *Number {
	if b {
		return &Number{Val: 1, IsInt: true}
	}
	return &Number{Val: 0, IsInt: true}
}

func (n *Number) ComparisonEq(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return boolNumber(false).SetContext(n.ctx), nil
	}
	return boolNumber(n.Val == o.Val).SetContext(n.ctx), nil
}

func (n *Number) ComparisonNe(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return boolNumber(true).SetContext(n.ctx), nil
	}
	return boolNumber(n.Val != o.Val).SetContext(n.ctx), nil
}

func (n *Number) ComparisonLt(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.Val < o.Val).SetContext(n.ctx), nil
}

func (n *Number) ComparisonGt(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.Val > o.Val).SetContext(n.ctx), nil
}

func (n *Number) ComparisonLte(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.Val <= o.Val).SetContext(n.ctx), nil
}

func (n *Number) ComparisonGte(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.Val >= o.Val).SetContext(n.ctx), nil
}

func (n *Number) AndedBy(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.IsTrue() && o.IsTrue()).SetContext(n.ctx), nil
}

func (n *Number) OredBy(other Value) (Value, *diag.Diagnostic) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(n, other)
	}
	return boolNumber(n.IsTrue() || o.IsTrue()).SetContext(n.ctx), nil
}

func (n *Number) Notted() (Value, *diag.Diagnostic) {
	return boolNumber(n.Val == 0).SetContext(n.ctx), nil
}

func (n *Number) Call(args []Value, rt Runtime) (Value, *diag.Diagnostic) {
	return nil, illegalOperation(n, nil)
}
