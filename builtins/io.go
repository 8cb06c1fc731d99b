/*
File    : caretlang/builtins/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/position"
	"github.com/akashmaji946/caretlang/values"
)

func init() {
	register("PRINT", 1, builtinPrint)
	register("PRINT_RET", 1, builtinPrintRet)
	register("INPUT", 0, builtinInput)
	register("INPUT_INT", 0, builtinInputInt)
	register("CLEAR", 0, builtinClear)
	register("CLS", 0, builtinClear)
}

func builtinPrint(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	if err := rt.Write(args[0].String() + "\n"); err != nil {
		return nil, ioError(err)
	}
	return values.Null, nil
}

func builtinPrintRet(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	return values.NewString(args[0].String()), nil
}

func builtinInput(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	line, err := rt.ReadLine()
	if err != nil {
		return nil, ioError(err)
	}
	return values.NewString(line), nil
}

// builtinInputInt rereads a line until it parses as a base-10 integer,
// printing a retry prompt each time it fails to.
func builtinInputInt(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	for {
		line, err := rt.ReadLine()
		if err != nil {
			return nil, ioError(err)
		}
		if n, convErr := strconv.Atoi(line); convErr == nil {
			return values.NewInt(n), nil
		}
		if werr := rt.Write(fmt.Sprintf("'%s' must be an integer. Try again!\n", line)); werr != nil {
			return nil, ioError(werr)
		}
	}
}

func builtinClear(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	if err := rt.Clear(); err != nil {
		return nil, ioError(err)
	}
	return values.Null, nil
}

func ioError(err error) *diag.Diagnostic {
	zero := position.Position{}
	return diag.New(diag.RuntimeError, err.Error(), zero, zero)
}
