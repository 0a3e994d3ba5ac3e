/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/scope"
)

func metaBuiltins() map[string]Value {
	return map[string]Value{
		"identity": &HostFn{Name: "identity", Fn: identityFn},
		"apply":    &HostFn{Name: "apply", Fn: applyFn},
	}
}

func identityFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "identity expects exactly 1 argument, got %d", len(args))
	}
	return args[0], nil
}

/*
applyFn implements "apply fn arr": invokes fn (a Macro or HostFn) with
arr's elements splatted as its arguments. A bare, non-Array second
argument is treated as a single-element splat rather than an
argument-error (spec.md §8 scenario 6 applies a 1-parameter lambda
with a plain Int second argument, not a 1-element array). Each
splatted value is wrapped as a synthetic literal AST node
(parser.NewLiteralNode) so it can flow through the same applyValue
dispatch evalForm uses for an ordinary call, without inventing source
text to re-lex.
*/
func applyFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, ev.argErr(nil, "apply expects exactly 2 arguments (fn, array), got %d", len(args))
	}
	var splat []Value
	if arr, ok := args[1].(Array); ok {
		splat = arr
	} else {
		splat = []Value{args[1]}
	}
	nodes := make([]*parser.ASTNode, len(splat))
	for i, v := range splat {
		nodes[i] = parser.NewLiteralNode(v)
	}
	return ev.applyValue(args[0], fr, nodes, nil)
}
