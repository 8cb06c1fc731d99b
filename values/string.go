/*
File    : caretlang/values/string.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

// String is a raw (already escape-processed) text value.
type String struct {
	base
	Val string
}

func NewString(v string) *String { return &String{Val: v} }

func (s *String) Type() string  { return "String" }
func (s *String) String() string { return s.Val }
func (s *String) Repr() string  { return strconv.Quote(s.Val) }
func (s *String) IsTrue() bool  { return len(s.Val) > 0 }

func (s *String) SetPos(start, end position.Position) Value {
	c := *s
	c.start, c.end = start, end
	return &c
}

func (s *String) SetContext(ctx *Context) Value {
	c := *s
	c.ctx = ctx
	return &c
}

func (s *String) Copy() Value {
	c := *s
	return &c
}

// AddedTo concatenates two strings.
func (s *String) AddedTo(other Value) (Value, *diag.Diagnostic) {
	o, ok := other.(*String)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	return NewString(s.Val + o.Val).SetContext(s.ctx), nil
}

// MultedBy repeats the string n times (n is a Number).
func (s *String) MultedBy(other Value) (Value, *diag.Diagnostic) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(s, other)
	}
	count := int(n.Val)
	if count < 0 {
		count = 0
	}
	return NewString(strings.Repeat(s.Val, count)).SetContext(s.ctx), nil
}

func (s *String) SubbedBy(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(s, other) }
func (s *String) DivedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(s, other) }
func (s *String) PowedBy(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(s, other) }

func (s *String) ComparisonEq(other Value) (Value, *diag.Diagnostic) {
	o, ok := other.(*String)
	return boolNumber(ok && s.Val == o.Val).SetContext(s.ctx), nil
}
func (s *String) ComparisonNe(other Value) (Value, *diag.Diagnostic) {
	o, ok := other.(*String)
	return boolNumber(!ok || s.Val != o.Val).SetContext(s.ctx), nil
}
func (s *String) ComparisonLt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(s, other) }
func (s *String) ComparisonGt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(s, other) }
func (s *String) ComparisonLte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(s, other) }
func (s *String) ComparisonGte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(s, other) }
func (s *String) AndedBy(other Value) (Value, *diag.Diagnostic)      { return nil, illegalOperation(s, other) }
func (s *String) OredBy(other Value) (Value, *diag.Diagnostic)       { return nil, illegalOperation(s, other) }
func (s *String) Notted() (Value, *diag.Diagnostic)                  { return nil, illegalOperation(s, nil) }
func (s *String) Call(args []Value, rt Runtime) (Value, *diag.Diagnostic) {
	return nil, illegalOperation(s, nil)
}
