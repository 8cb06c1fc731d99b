/*
File    : caretlang/builtins/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/values"
)

func init() {
	register("RUN", 1, builtinRun)
}

// builtinRun reads fileName as text and recursively re-enters the
// pipeline via rt.RunFile. An inner failure is not propagated as-is;
// instead the outer call fails with a runtime error whose detail embeds
// the inner diagnostic's fully rendered text, per the RUN nesting policy.
func builtinRun(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	s, ok := args[0].(*values.String)
	if !ok {
		return nil, typeError(args[0], "string")
	}

	result, innerErr := rt.RunFile(s.Val)
	if innerErr != nil {
		start, end := args[0].Pos()
		return nil, diag.New(diag.RuntimeError,
			fmt.Sprintf("Failed to finish executing script \"%s\"\n%s", s.Val, innerErr.Render()), start, end)
	}
	if result == nil {
		return values.Null, nil
	}
	return result, nil
}
