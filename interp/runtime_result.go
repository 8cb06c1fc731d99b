/*
File    : caretlang/interp/runtime_result.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/values"
)

// RuntimeResult is the visitor-to-visitor envelope: it carries exactly
// one logical outcome at a time (a value, an error, or one of the three
// non-local control signals) plus whichever value accompanies that
// signal. Grounded on original_source/miniLang.py's RTResult class.
type RuntimeResult struct {
	Value          values.Value
	Error          *diag.Diagnostic
	FuncReturnValue values.Value
	LoopShouldContinue bool
	LoopShouldBreak    bool

	funcReturnSet bool
}

// NewRuntimeResult returns a zero-valued envelope.
func NewRuntimeResult() *RuntimeResult {
	return &RuntimeResult{}
}

// Reset clears every signal, matching RTResult.reset() in the source.
func (r *RuntimeResult) Reset() {
	*r = RuntimeResult{}
}

// Register copies every non-value signal from other up into the receiver
// and returns other's value. Visitors MUST call Register (not read
// other.Value directly) before inspecting the value, so that a bubbling
// error/return/continue/break is never silently dropped — this is the
// invariant known as the "register-before-check pattern".
func (r *RuntimeResult) Register(other *RuntimeResult) values.Value {
	r.Error = other.Error
	r.FuncReturnValue = other.FuncReturnValue
	r.funcReturnSet = other.funcReturnSet
	r.LoopShouldContinue = other.LoopShouldContinue
	r.LoopShouldBreak = other.LoopShouldBreak
	return other.Value
}

// SuccessValue records a plain value outcome with no signals set.
func (r *RuntimeResult) SuccessValue(v values.Value) *RuntimeResult {
	r.Reset()
	r.Value = v
	return r
}

// SuccessReturn records a RETURN signal carrying v (the null singleton
// when RETURN had no expression).
func (r *RuntimeResult) SuccessReturn(v values.Value) *RuntimeResult {
	r.Reset()
	r.FuncReturnValue = v
	r.funcReturnSet = true
	return r
}

// SuccessContinue records a CONTINUE signal.
func (r *RuntimeResult) SuccessContinue() *RuntimeResult {
	r.Reset()
	r.LoopShouldContinue = true
	return r
}

// SuccessBreak records a BREAK signal.
func (r *RuntimeResult) SuccessBreak() *RuntimeResult {
	r.Reset()
	r.LoopShouldBreak = true
	return r
}

// Failure records an error outcome.
func (r *RuntimeResult) Failure(err *diag.Diagnostic) *RuntimeResult {
	r.Reset()
	r.Error = err
	return r
}

// ShouldReturn is true if any non-value signal is set — every visitor
// checks this immediately after each sub-visit and propagates upward
// instead of continuing.
func (r *RuntimeResult) ShouldReturn() bool {
	return r.Error != nil || r.funcReturnSet || r.LoopShouldContinue || r.LoopShouldBreak
}

// FuncReturnSet reports whether a RETURN signal is carried, distinguishing
// "RETURN with no expression" (FuncReturnValue nil, funcReturnSet true)
// from "no RETURN at all" — a loop body propagates the former but consumes
// LoopShouldContinue/LoopShouldBreak locally.
func (r *RuntimeResult) FuncReturnSet() bool {
	return r.funcReturnSet
}
