/*
File    : caretlang/values/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values is the language's value model: Number, String, List,
// UserFunction, and BuiltinFunction, each carrying a current Context
// (for runtime error tracebacks) and a source position. Every value
// implements the shared capability interface; unsupported operations
// return an Illegal operation diagnostic rather than panicking.
package values

import (
	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
)

// Value is the capability set every variant implements a (possibly
// partial) subset of. Operations not supported by a variant return
// (nil, illegalOperation(self, other)).
type Value interface {
	// Type returns the variant's human-readable tag, used in error text.
	Type() string
	// String renders the "str()" textual form (PRINT, concatenation...).
	String() string
	// Repr renders the "repr()" form used inside list display and error
	// detail strings.
	Repr() string
	// IsTrue reports this value's truthiness for IF/WHILE conditions.
	IsTrue() bool
	// Pos returns the value's current (start, end) span.
	Pos() (position.Position, position.Position)
	// SetPos returns a copy of the value with a new span attached.
	SetPos(start, end position.Position) Value
	// SetContext returns a copy of the value with a new owning Context.
	SetContext(ctx *Context) Value
	// Copy returns an independent value (same underlying data where the
	// language specifies sharing, e.g. List's backing slice).
	Copy() Value

	AddedTo(other Value) (Value, *diag.Diagnostic)
	SubbedBy(other Value) (Value, *diag.Diagnostic)
	MultedBy(other Value) (Value, *diag.Diagnostic)
	DivedBy(other Value) (Value, *diag.Diagnostic)
	PowedBy(other Value) (Value, *diag.Diagnostic)

	ComparisonEq(other Value) (Value, *diag.Diagnostic)
	ComparisonNe(other Value) (Value, *diag.Diagnostic)
	ComparisonLt(other Value) (Value, *diag.Diagnostic)
	ComparisonGt(other Value) (Value, *diag.Diagnostic)
	ComparisonLte(other Value) (Value, *diag.Diagnostic)
	ComparisonGte(other Value) (Value, *diag.Diagnostic)
	AndedBy(other Value) (Value, *diag.Diagnostic)
	OredBy(other Value) (Value, *diag.Diagnostic)
	Notted() (Value, *diag.Diagnostic)

	// Call invokes this value with args; rt gives builtins access to
	// host operations (print/input/run). Non-callable variants fail
	// with "Illegal operation".
	Call(args []Value, rt Runtime) (Value, *diag.Diagnostic)
}

// Context is a runtime call frame: a display name for tracebacks, the
// position at which the frame was entered, and a non-owning link to the
// caller's frame.
type Context struct {
	DisplayName string
	Parent      *Context
	ParentEntry position.Position
}

// NewContext builds a root or child Context.
func NewContext(displayName string, parent *Context, parentEntry position.Position) *Context {
	return &Context{DisplayName: displayName, Parent: parent, ParentEntry: parentEntry}
}

// Trace renders the context chain as a diag.Frame slice, innermost first,
// suitable for diag.NewRuntime.
func (c *Context) Trace(pos position.Position) []diag.Frame {
	var frames []diag.Frame
	ctx := c
	p := pos
	for ctx != nil {
		frames = append(frames, diag.Frame{DisplayName: ctx.DisplayName, EntryPos: p})
		p = ctx.ParentEntry
		ctx = ctx.Parent
	}
	return frames
}

// base holds the fields every value variant embeds: current span and
// owning context. It is not itself a Value.
type base struct {
	start position.Position
	end   position.Position
	ctx   *Context
}

func (b base) Pos() (position.Position, position.Position) { return b.start, b.end }

// illegalOperation builds the "Illegal operation" runtime diagnostic
// shared by every capability default, spanning self.start...other.end (or
// just self's own span when other is nil, e.g. unary NOT/negate).
func illegalOperation(self, other Value) *diag.Diagnostic {
	start, _ := self.Pos()
	end := start
	if other != nil {
		_, end = other.Pos()
	} else {
		_, end = self.Pos()
	}
	return diag.New(diag.RuntimeError, "Illegal operation", start, end)
}
