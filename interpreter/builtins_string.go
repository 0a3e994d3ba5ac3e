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
	"strconv"
	"strings"

	"github.com/arvosystems/rlisp/scope"
)

func stringBuiltins() map[string]Value {
	return map[string]Value{
		"str":     &HostFn{Name: "str", Fn: strFn},
		"upcase":  &HostFn{Name: "upcase", Fn: unaryStrFn(strings.ToUpper)},
		"downcase": &HostFn{Name: "downcase", Fn: unaryStrFn(strings.ToLower)},
		"strip":   &HostFn{Name: "strip", Fn: unaryStrFn(strings.TrimSpace)},
		"int":     &HostFn{Name: "int", Fn: intFn},
		"float":   &HostFn{Name: "float", Fn: floatFn},
		"time":    &HostFn{Name: "time", Fn: timeFn},
	}
}

/*
strFn implements "str": concatenates the string representation of
every argument, whatever its Kind (spec.md §4.4).
*/
func strFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.String())
	}
	return Str(b.String()), nil
}

func unaryStrFn(f func(string) string) HostFnImpl {
	return func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
		if len(args) != 1 {
			return nil, ev.argErr(nil, "expects exactly 1 argument, got %d", len(args))
		}
		s, ok := args[0].(Str)
		if !ok {
			return nil, ev.argErr(nil, "expects a string argument, got %s", args[0].Kind())
		}
		return Str(f(string(s))), nil
	}
}

/*
intFn implements "int": converts Float (truncating), Str (parsing
base-10) or Int (identity) to an Int.
*/
func intFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "int expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case Int:
		return v, nil
	case Float:
		return Int(int64(v)), nil
	case Str:
		i, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
		if err != nil {
			return nil, ev.argErr(nil, "cannot convert %q to int", string(v))
		}
		return Int(i), nil
	}
	return nil, ev.argErr(nil, "cannot convert a %s to int", args[0].Kind())
}

/*
floatFn implements "float": converts Int, Str or Float (identity) to
a Float.
*/
func floatFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "float expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case Float:
		return v, nil
	case Int:
		return Float(v), nil
	case Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return nil, ev.argErr(nil, "cannot convert %q to float", string(v))
		}
		return Float(f), nil
	}
	return nil, ev.argErr(nil, "cannot convert a %s to float", args[0].Kind())
}

/*
timeFn implements "time": parses a Str into an absolute instant
(spec.md §3). A Time argument passes through unchanged.
*/
func timeFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, ev.argErr(nil, "time expects exactly 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case Time:
		return v, nil
	case Str:
		t, ok := parseTimeText(string(v))
		if !ok {
			return nil, ev.argErr(nil, "cannot parse %q as a time value", string(v))
		}
		return Time{T: t}, nil
	}
	return nil, ev.argErr(nil, "cannot convert a %s to time", args[0].Kind())
}
