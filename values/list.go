/*
File    : caretlang/values/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"strings"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

// elements is the shared, mutable backing vector every copy of a List
// produced by closure capture or the list-producing binary operators
// points at. Sharing this pointer (rather than copying the slice header
// by value into every List) is what makes APPEND/POP/EXTEND observable
// through aliases — this is the language's list-aliasing invariant.
type elements struct {
	items []Value
}

// List is a heterogeneous, growable sequence. Two Lists alias the same
// elements when one was produced by copying or by closure capture of the
// other (see NewList vs Copy).
type List struct {
	base
	backing *elements
}

// NewList builds a List owning a fresh backing vector.
func NewList(items []Value) *List {
	return &List{backing: &elements{items: items}}
}

// Items returns the live backing slice (not a copy) — mutating builtins
// operate directly on this.
func (l *List) Items() []Value { return l.backing.items }

// SetItems replaces the backing slice in place, so aliases observe the
// mutation.
func (l *List) SetItems(items []Value) { l.backing.items = items }

func (l *List) Type() string { return "List" }

func (l *List) String() string {
	parts := make([]string, len(l.backing.items))
	for i, v := range l.backing.items {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func (l *List) Repr() string {
	parts := make([]string, len(l.backing.items))
	for i, v := range l.backing.items {
		parts[i] = v.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) IsTrue() bool { return len(l.backing.items) > 0 }

func (l *List) SetPos(start, end position.Position) Value {
	c := *l
	c.start, c.end = start, end
	return &c
}

func (l *List) SetContext(ctx *Context) Value {
	c := *l
	c.ctx = ctx
	return &c
}

// Copy returns a new List value that shares the same backing vector as
// the receiver, per the list-aliasing invariant.
func (l *List) Copy() Value {
	c := *l
	return &c
}

// AddedTo appends other to a *copy* of the list (still sharing the
// backing vector with the receiver — List '+' produces copies sharing
// the underlying element vector).
func (l *List) AddedTo(other Value) (Value, *diag.Diagnostic) {
	c := l.Copy().(*List)
	c.backing.items = append(c.backing.items, other)
	return c.SetContext(l.ctx), nil
}

// SubbedBy removes and discards the element at index `other`, returning
// the resulting list (a new List header over the same shared backing
// vector, with the element removed for every alias).
func (l *List) SubbedBy(other Value) (Value, *diag.Diagnostic) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	idx := int(n.Val)
	if idx < 0 || idx >= len(l.backing.items) {
		start, _ := l.Pos()
		_, end := other.Pos()
		return nil, diag.New(diag.RuntimeError, "Element at this index could not be removed from list because index is out of bounds", start, end)
	}
	c := l.Copy().(*List)
	items := make([]Value, 0, len(l.backing.items)-1)
	items = append(items, l.backing.items[:idx]...)
	items = append(items, l.backing.items[idx+1:]...)
	c.backing.items = items
	return c.SetContext(l.ctx), nil
}

// MultedBy concatenates another List's elements into a copy of this one.
func (l *List) MultedBy(other Value) (Value, *diag.Diagnostic) {
	o, ok := other.(*List)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	c := l.Copy().(*List)
	c.backing.items = append(append([]Value{}, l.backing.items...), o.backing.items...)
	return c.SetContext(l.ctx), nil
}

// DivedBy indexes into the list, returning the element at `other`.
func (l *List) DivedBy(other Value) (Value, *diag.Diagnostic) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOperation(l, other)
	}
	idx := int(n.Val)
	if idx < 0 || idx >= len(l.backing.items) {
		start, _ := l.Pos()
		_, end := other.Pos()
		return nil, diag.New(diag.RuntimeError, "Element at this index could not be retrieved from list because index is out of bounds", start, end)
	}
	return l.backing.items[idx], nil
}

func (l *List) PowedBy(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(l, other) }

func (l *List) ComparisonEq(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(l, other) }
func (l *List) ComparisonNe(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(l, other) }
func (l *List) ComparisonLt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(l, other) }
func (l *List) ComparisonGt(other Value) (Value, *diag.Diagnostic)  { return nil, illegalOperation(l, other) }
func (l *List) ComparisonLte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(l, other) }
func (l *List) ComparisonGte(other Value) (Value, *diag.Diagnostic) { return nil, illegalOperation(l, other) }
func (l *List) AndedBy(other Value) (Value, *diag.Diagnostic)      { return nil, illegalOperation(l, other) }
func (l *List) OredBy(other Value) (Value, *diag.Diagnostic)       { return nil, illegalOperation(l, other) }
func (l *List) Notted() (Value, *diag.Diagnostic)                  { return nil, illegalOperation(l, nil) }
func (l *List) Call(args []Value, rt Runtime) (Value, *diag.Diagnostic) {
	return nil, illegalOperation(l, nil)
}
