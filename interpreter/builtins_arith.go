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
	"strings"

	"github.com/arvosystems/rlisp/scope"
)

/*
numeric unwraps a Value known to be Int or Float into a float64 plus a
flag saying whether the original was exact (Int). Non-numeric values
fail argument-error.
*/
func numeric(ev *Evaluator, v Value) (f float64, isInt bool, err error) {
	switch t := v.(type) {
	case Int:
		return float64(t), true, nil
	case Float:
		return float64(t), false, nil
	}
	return 0, false, ev.argErr(nil, "expected a number, got %s", v.Kind())
}

func numberValue(f float64, isInt bool) Value {
	if isInt {
		return Int(int64(f))
	}
	return Float(f)
}

func arithBuiltins() map[string]Value {
	return map[string]Value{
		"+": &HostFn{Name: "+", Fn: addFn},
		"-": &HostFn{Name: "-", Fn: subFn},
		"*": &HostFn{Name: "*", Fn: mulFn},
		"/": &HostFn{Name: "/", Fn: divFn},
		"%": &HostFn{Name: "%", Fn: modFn},
	}
}

/*
addFn implements "+": a variadic sum, or - as soon as any operand is a
Str - a variadic string concatenation (spec.md §8 scenario 7 builds a
greeting with "+" over string literals and a bound name). With no
arguments it returns 0 (spec.md §9 Open Question, resolved in
DESIGN.md). The numeric result is a Float as soon as any operand is a
Float.
*/
func addFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) == 0 {
		return Int(0), nil
	}
	for _, a := range args {
		if _, ok := a.(Str); ok {
			var b strings.Builder
			for _, a2 := range args {
				b.WriteString(a2.String())
			}
			return Str(b.String()), nil
		}
	}

	var sum float64
	allInt := true
	for _, a := range args {
		f, isInt, err := numeric(ev, a)
		if err != nil {
			return nil, err
		}
		sum += f
		allInt = allInt && isInt
	}
	return numberValue(sum, allInt), nil
}

/*
subFn implements "-": a left-fold reduction over two or more
arguments, or unary negation for exactly one. Zero arguments is an
argument-error - unlike "+" there is no natural identity element.
*/
func subFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, ev.argErr(nil, "- expects at least 1 argument")
	}
	first, firstIsInt, err := numeric(ev, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return numberValue(-first, firstIsInt), nil
	}
	acc := first
	allInt := firstIsInt
	for _, a := range args[1:] {
		f, isInt, err := numeric(ev, a)
		if err != nil {
			return nil, err
		}
		acc -= f
		allInt = allInt && isInt
	}
	return numberValue(acc, allInt), nil
}

/*
mulFn implements "*": a variadic product. With no arguments it returns
1 (spec.md §9 Open Question, resolved in DESIGN.md).
*/
func mulFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	prod := 1.0
	allInt := true
	for _, a := range args {
		f, isInt, err := numeric(ev, a)
		if err != nil {
			return nil, err
		}
		prod *= f
		allInt = allInt && isInt
	}
	return numberValue(prod, allInt), nil
}

/*
divFn implements "/": strictly binary (spec.md §4.4). Division by zero
is an argument-error rather than a panic or an infinity.
*/
func divFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, ev.argErr(nil, "/ expects exactly 2 arguments, got %d", len(args))
	}
	a, aInt, err := numeric(ev, args[0])
	if err != nil {
		return nil, err
	}
	b, bInt, err := numeric(ev, args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, ev.argErr(nil, "division by zero")
	}
	if aInt && bInt {
		ai, bi := int64(a), int64(b)
		return Int(ai / bi), nil
	}
	return Float(a / b), nil
}

/*
modFn implements "%": strictly binary integer remainder (spec.md
§4.4). Both operands must be Int.
*/
func modFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, ev.argErr(nil, "%% expects exactly 2 arguments, got %d", len(args))
	}
	a, ok1 := args[0].(Int)
	b, ok2 := args[1].(Int)
	if !ok1 || !ok2 {
		return nil, ev.argErr(nil, "%% expects 2 integer arguments")
	}
	if b == 0 {
		return nil, ev.argErr(nil, "modulo by zero")
	}
	return Int(int64(a) % int64(b)), nil
}
