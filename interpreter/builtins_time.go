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
	"time"

	"github.com/arvosystems/rlisp/scope"
)

/*
secondsPerUnit gives the second count of each multiplier built-in.
"months" is a fixed 30 day approximation (spec.md §9 Open Question,
resolved in DESIGN.md) - this module never looks at a calendar.
*/
var secondsPerUnit = map[string]int64{
	"seconds": 1,
	"minutes": 60,
	"hours":   3600,
	"days":    86400,
	"months":  30 * 86400,
}

func timeBuiltins() map[string]Value {
	m := map[string]Value{
		"now":      &HostFn{Name: "now", Fn: nowFn},
		"rand":     &HostFn{Name: "rand", Fn: randFn},
		"ago":      &HostFn{Name: "ago", Fn: agoFn},
		"from-now": &HostFn{Name: "from-now", Fn: fromNowFn},
	}
	for name, secs := range secondsPerUnit {
		m[name] = &HostFn{Name: name, Fn: multiplierFn(secs)}
	}
	return m
}

func nowFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	if len(args) != 0 {
		return nil, ev.argErr(nil, "now expects no arguments, got %d", len(args))
	}
	return Time{T: time.Now()}, nil
}

/*
multiplierFn builds "seconds"/"minutes"/"hours"/"days"/"months": given
N, returns the integer number of seconds N of that unit spans. Called
with no arguments, N defaults to 1, so "(minutes)" reads as "one
minute, in seconds".
*/
func multiplierFn(secondsPer int64) HostFnImpl {
	return func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
		n := int64(1)
		switch len(args) {
		case 0:
		case 1:
			i, ok := args[0].(Int)
			if !ok {
				return nil, ev.argErr(nil, "expects an integer count, got %s", args[0].Kind())
			}
			n = int64(i)
		default:
			return nil, ev.argErr(nil, "expects 0 or 1 arguments, got %d", len(args))
		}
		return Int(n * secondsPer), nil
	}
}

/*
agoFn implements "ago": given a count of seconds, returns the instant
that many seconds before now.
*/
func agoFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	secs, err := secondsArg(ev, "ago", args)
	if err != nil {
		return nil, err
	}
	return Time{T: time.Now().Add(-time.Duration(secs) * time.Second)}, nil
}

/*
fromNowFn implements "from-now": given a count of seconds, returns the
instant that many seconds after now.
*/
func fromNowFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	secs, err := secondsArg(ev, "from-now", args)
	if err != nil {
		return nil, err
	}
	return Time{T: time.Now().Add(time.Duration(secs) * time.Second)}, nil
}

func secondsArg(ev *Evaluator, name string, args []Value) (int64, error) {
	if len(args) != 1 {
		return 0, ev.argErr(nil, "%s expects exactly 1 argument (a second count), got %d", name, len(args))
	}
	i, ok := args[0].(Int)
	if !ok {
		return 0, ev.argErr(nil, "%s expects an integer second count, got %s", name, args[0].Kind())
	}
	return int64(i), nil
}

/*
randFn implements "rand": with no arguments, a Float in [0, 1); with
one Int argument n, an Int in [0, n); with one Float argument n, a
Float in [0, n). Uses the Evaluator's private random source, not the
global math/rand default (spec.md §4.4 excludes rand from the
determinism requirement, but a per-Evaluator source still lets a host
seed a run for reproducible tests).
*/
func randFn(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
	switch len(args) {
	case 0:
		return Float(ev.rand.Float64()), nil
	case 1:
		switch n := args[0].(type) {
		case Int:
			if n <= 0 {
				return nil, ev.argErr(nil, "rand expects a positive bound, got %d", n)
			}
			return Int(ev.rand.Int63n(int64(n))), nil
		case Float:
			if n <= 0 {
				return nil, ev.argErr(nil, "rand expects a positive bound, got %g", float64(n))
			}
			return Float(ev.rand.Float64() * float64(n)), nil
		}
		return nil, ev.argErr(nil, "rand expects a numeric bound, got %s", args[0].Kind())
	}
	return nil, ev.argErr(nil, "rand expects 0 or 1 arguments, got %d", len(args))
}
