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

func arrayBuiltins() map[string]Value {
	return map[string]Value{
		"array":    &HostFn{Name: "array", Fn: arrayFn},
		"first":    &HostFn{Name: "first", Fn: firstFn},
		"last":     &HostFn{Name: "last", Fn: lastFn},
		"nth":      &HostFn{Name: "nth", Fn: nthFn},
		"length":   &HostFn{Name: "length", Fn: lengthFn},
		"max":      &HostFn{Name: "max", Fn: extremeFn(1)},
		"min":      &HostFn{Name: "min", Fn: extremeFn(-1)},
		"member?":  &HostFn{Name: "member?", Fn: memberFn},
	}
}

func arrayFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	out := make(Array, len(args))
	copy(out, args)
	return out, nil
}

func asArray(ev *Evaluator, v Value) (Array, error) {
	a, ok := v.(Array)
	if !ok {
		return nil, ev.argErr(nil, "expects an array argument, got %s", v.Kind())
	}
	return a, nil
}

func firstFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "first expects exactly 1 argument, got %d", len(args))
	}
	a, err := asArray(ev, args[0])
	if err != nil {
		return nil, err
	}
	if len(a) == 0 {
		return nil, ev.argErr(nil, "first: array is empty")
	}
	return a[0], nil
}

func lastFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "last expects exactly 1 argument, got %d", len(args))
	}
	a, err := asArray(ev, args[0])
	if err != nil {
		return nil, err
	}
	if len(a) == 0 {
		return nil, ev.argErr(nil, "last: array is empty")
	}
	return a[len(a)-1], nil
}

/*
nthFn implements "nth pos arr": 0-indexed element access (spec.md
§4.4). An out-of-range index is an argument-error, not Nil.
*/
func nthFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, ev.argErr(nil, "nth expects exactly 2 arguments (pos, array), got %d", len(args))
	}
	idx, ok := args[0].(Int)
	if !ok {
		return nil, ev.argErr(nil, "nth's first argument must be an int index")
	}
	a, err := asArray(ev, args[1])
	if err != nil {
		return nil, err
	}
	if int64(idx) < 0 || int64(idx) >= int64(len(a)) {
		return nil, ev.argErr(nil, "nth: index %d out of range for an array of length %d", idx, len(a))
	}
	return a[idx], nil
}

func lengthFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "length expects exactly 1 argument, got %d", len(args))
	}
	a, err := asArray(ev, args[0])
	if err != nil {
		return nil, err
	}
	return Int(len(a)), nil
}

/*
extremeFn builds "max"/"min": both take a single array argument and
fold CompareValues across its elements (sign selects which side of
the comparison wins).
*/
func extremeFn(sign int) HostFnImpl {
	return func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, ev.argErr(nil, "expects exactly 1 array argument, got %d", len(args))
		}
		a, err := asArray(ev, args[0])
		if err != nil {
			return nil, err
		}
		if len(a) == 0 {
			return nil, ev.argErr(nil, "array is empty")
		}
		best := a[0]
		for _, v := range a[1:] {
			if CompareValues(v, best)*sign > 0 {
				best = v
			}
		}
		return best, nil
	}
}

func memberFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, ev.argErr(nil, "member? expects exactly 2 arguments (value, array), got %d", len(args))
	}
	a, err := asArray(ev, args[1])
	if err != nil {
		return nil, err
	}
	for _, v := range a {
		if ValuesEqual(v, args[0]) {
			return Bool(true), nil
		}
	}
	return Bool(false), nil
}
