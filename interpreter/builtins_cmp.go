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

func cmpBuiltins() map[string]Value {
	return map[string]Value{
		"<":  &HostFn{Name: "<", Fn: cmpFn(func(c int) bool { return c < 0 })},
		"<=": &HostFn{Name: "<=", Fn: cmpFn(func(c int) bool { return c <= 0 })},
		">":  &HostFn{Name: ">", Fn: cmpFn(func(c int) bool { return c > 0 })},
		">=": &HostFn{Name: ">=", Fn: cmpFn(func(c int) bool { return c >= 0 })},
		"=":  &HostFn{Name: "=", Fn: cmpFn(func(c int) bool { return c == 0 })},
		"!=": &HostFn{Name: "!=", Fn: cmpFn(func(c int) bool { return c != 0 })},
	}
}

/*
cmpFn builds a binary comparison built-in from a predicate over
CompareValues' three-way result. Every comparison operator is binary
(spec.md §4.4); comparing across Kinds never fails, it follows the
total order documented in DESIGN.md.
*/
func cmpFn(pred func(c int) bool) HostFnImpl {
	return func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
		if len(args) != 2 {
			return nil, ev.argErr(nil, "comparison expects exactly 2 arguments, got %d", len(args))
		}
		return Bool(pred(CompareValues(args[0], args[1]))), nil
	}
}
