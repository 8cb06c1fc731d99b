/*
File    : caretlang/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/caretlang/diag"

// ParseResult is the speculative-backtracking accumulator every parse
// function returns. advanceCount tracks how many tokens the current
// attempt consumed; lastRegisteredAdvanceCount is used to keep the
// deepest-seen error instead of letting a later, shallower attempt
// overwrite it.
type ParseResult struct {
	Error                      *diag.Diagnostic
	Node                       Node
	advanceCount               int
	toReverseCount             int
	lastRegisteredAdvanceCount int
}

// NewParseResult returns a zero-valued accumulator ready to register
// sub-results.
func NewParseResult() *ParseResult {
	return &ParseResult{}
}

// RegisterAdvancement records that the caller consumed exactly one token
// (e.g. via Parser.Advance) outside of a nested Register/TryRegister call.
func (r *ParseResult) RegisterAdvancement() {
	r.advanceCount++
	r.lastRegisteredAdvanceCount = 1
}

// Register folds a sub-result's advancement count and node/error into the
// receiver, and returns the sub-result's node. If the sub-result failed,
// its error is copied into the receiver. Register also records the
// sub-result's advance count in lastRegisteredAdvanceCount, which Failure
// consults so that a later, shallower failure does not mask this error.
func (r *ParseResult) Register(other *ParseResult) Node {
	r.lastRegisteredAdvanceCount = other.advanceCount
	r.advanceCount += other.advanceCount
	if other.Error != nil {
		r.Error = other.Error
	}
	return other.Node
}

// TryRegister is Register's speculative sibling: if other failed, its
// advancement count is stashed in toReverseCount and nil is returned
// instead of propagating the error, so the caller can rewind the token
// cursor by that many positions and try a different production.
func (r *ParseResult) TryRegister(other *ParseResult) Node {
	if other.Error != nil {
		r.toReverseCount = other.advanceCount
		return nil
	}
	return r.Register(other)
}

// Success records a successful parse of node.
func (r *ParseResult) Success(node Node) *ParseResult {
	r.Node = node
	return r
}

// Failure records a parse failure, but keeps a prior deeper error instead
// of overwriting it with a shallower one, mirroring the source's
// `if not self.error or self.last_registered_advance_count == 0` rule.
func (r *ParseResult) Failure(err *diag.Diagnostic) *ParseResult {
	if r.Error == nil || r.lastRegisteredAdvanceCount == 0 {
		r.Error = err
	}
	return r
}
