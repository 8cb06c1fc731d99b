/*
File    : caretlang/builtins/domain.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// The supplemental builtins in this file are additive to the required
// library: HASH, TIME, MATCH, and JSON_STR, grounded respectively on the
// teacher repository's std/crypto.go, std/time.go, std/regex.go, and
// std/json.go.
package builtins

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/akashmaji946/caretlang/diag"
	"github.com/akashmaji946/caretlang/values"
)

func init() {
	register("HASH", 1, builtinHash)
	register("TIME", 0, builtinTime)
	register("MATCH", 2, builtinMatch)
	register("JSON_STR", 1, builtinJSONStr)
}

func builtinHash(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	s, ok := args[0].(*values.String)
	if !ok {
		return nil, typeError(args[0], "string")
	}
	sum := sha256.Sum256([]byte(s.Val))
	return values.NewString(hex.EncodeToString(sum[:])), nil
}

func builtinTime(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	return values.NewInt(int(time.Now().Unix())), nil
}

func builtinMatch(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	pattern, ok := args[0].(*values.String)
	if !ok {
		return nil, typeError(args[0], "string")
	}
	s, ok := args[1].(*values.String)
	if !ok {
		return nil, typeError(args[1], "string")
	}
	matched, err := regexp.MatchString(pattern.Val, s.Val)
	if err != nil {
		start, end := args[0].Pos()
		return nil, diag.New(diag.RuntimeError, fmt.Sprintf("Invalid regular expression: %s", err), start, end)
	}
	return boolResult(matched), nil
}

func builtinJSONStr(rt values.Runtime, args []values.Value) (values.Value, *diag.Diagnostic) {
	data, err := toJSONable(args[0])
	if err != nil {
		return nil, err
	}
	bytes, encErr := json.Marshal(data)
	if encErr != nil {
		start, end := args[0].Pos()
		return nil, diag.New(diag.RuntimeError, fmt.Sprintf("Failed to encode JSON: %s", encErr), start, end)
	}
	return values.NewString(string(bytes)), nil
}

// toJSONable converts a value into a plain Go data structure encoding/json
// can marshal; Number renders as int when integral and float otherwise, so
// a Number bound by a literal like `3` round-trips as `3`, not `3.0`.
func toJSONable(v values.Value) (interface{}, *diag.Diagnostic) {
	switch t := v.(type) {
	case *values.Number:
		if t.IsInt {
			return int64(t.Val), nil
		}
		return t.Val, nil
	case *values.String:
		return t.Val, nil
	case *values.List:
		items := t.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			converted, err := toJSONable(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, typeError(v, "a Number, String, or List")
	}
}
