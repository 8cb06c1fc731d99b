/*
File    : caretlang/interp/interp_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"math"

	"github.com/akashmaji946/caretlang/env"
	"github.com/akashmaji946/caretlang/parser"
	"github.com/akashmaji946/caretlang/values"
)

func numberFromFloat(v float64) *values.Number {
	if v == math.Trunc(v) {
		return values.NewInt(int(v))
	}
	return values.NewFloat(v)
}

func asFloat(v values.Value) (float64, bool) {
	n, ok := v.(*values.Number)
	if !ok {
		return 0, false
	}
	return n.Val, true
}

// visitForNode evaluates start, end, and the optional step (default 1)
// once, then iterates the loop variable from start toward end. The bound
// direction is strict `<` when step >= 0 and strict `>` when step < 0,
// making the range half-open regardless of direction — this is the
// distilled spec's documented strict-comparison behavior, not a `<=`
// inclusive bound. See DESIGN.md's open-question entry for For.
func (it *Interpreter) visitForNode(n *parser.ForNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()

	startVal := res.Register(it.visit(n.StartValue, environment))
	if res.ShouldReturn() {
		return res
	}
	endVal := res.Register(it.visit(n.EndValue, environment))
	if res.ShouldReturn() {
		return res
	}

	step := 1.0
	if n.StepValue != nil {
		stepVal := res.Register(it.visit(n.StepValue, environment))
		if res.ShouldReturn() {
			return res
		}
		f, ok := asFloat(stepVal)
		if !ok {
			return it.runtimeErrorf(n.StepValue.Start(), n.StepValue.End(), "Illegal operation")
		}
		step = f
	}

	start, ok := asFloat(startVal)
	if !ok {
		return it.runtimeErrorf(n.StartValue.Start(), n.StartValue.End(), "Illegal operation")
	}
	end, ok := asFloat(endVal)
	if !ok {
		return it.runtimeErrorf(n.EndValue.Start(), n.EndValue.End(), "Illegal operation")
	}

	condition := func(i float64) bool {
		if step >= 0 {
			return i < end
		}
		return i > end
	}

	var elements []values.Value
	for i := start; condition(i); i += step {
		environment.Set(n.VarName, numberFromFloat(i).SetContext(it.currentContext))

		bodyVal := res.Register(it.visit(n.Body, environment))
		if res.Error != nil || (res.FuncReturnSet()) {
			return res
		}
		if res.LoopShouldContinue {
			res.LoopShouldContinue = false
			continue
		}
		if res.LoopShouldBreak {
			res.LoopShouldBreak = false
			break
		}
		if !n.ReturnsUnit {
			elements = append(elements, bodyVal)
		}
	}

	if n.ReturnsUnit {
		return res.SuccessValue(values.Null)
	}
	return res.SuccessValue(values.NewList(elements).SetContext(it.currentContext).SetPos(n.Start(), n.End()))
}

// visitWhileNode applies the same collection/discard rule as For,
// terminating when Cond becomes falsy.
func (it *Interpreter) visitWhileNode(n *parser.WhileNode, environment *env.Environment) *RuntimeResult {
	res := NewRuntimeResult()
	var elements []values.Value

	for {
		cond := res.Register(it.visit(n.Cond, environment))
		if res.ShouldReturn() {
			return res
		}
		if !cond.IsTrue() {
			break
		}

		bodyVal := res.Register(it.visit(n.Body, environment))
		if res.Error != nil || res.FuncReturnSet() {
			return res
		}
		if res.LoopShouldContinue {
			res.LoopShouldContinue = false
			continue
		}
		if res.LoopShouldBreak {
			res.LoopShouldBreak = false
			break
		}
		if !n.ReturnsUnit {
			elements = append(elements, bodyVal)
		}
	}

	if n.ReturnsUnit {
		return res.SuccessValue(values.Null)
	}
	return res.SuccessValue(values.NewList(elements).SetContext(it.currentContext).SetPos(n.Start(), n.End()))
}
