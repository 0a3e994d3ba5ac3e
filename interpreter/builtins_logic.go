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

import "github.com/arvosystems/rlisp/scope"

/*
logicBuiltins provides "not"/"!": unary boolean negation of a Value's
truthiness (spec.md §4.4). "and"/"or" are short-circuiting special
forms, not built-ins - see specialforms.go.
*/
func logicBuiltins() map[string]Value {
	not := &HostFn{Name: "not", Fn: notFn}
	return map[string]Value{
		"not": not,
		"!":   not,
	}
}

func notFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "not expects exactly 1 argument, got %d", len(args))
	}
	return Bool(!Truthy(args[0])), nil
}
