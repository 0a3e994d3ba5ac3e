/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter implements the tree-walking evaluator described in
spec.md §4.4: the Value model, the StackFrame-aware eval loop, the
special-form macros and the fixed built-in library, all gated by the
operation governor of spec.md §4.5.
*/
package interpreter

import (
	"fmt"
	"time"

	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/scope"
)

/*
Kind tags a Value's variant (spec.md §3's "tagged value union").
Built-in dispatch performs explicit Kind checks and fails with
argument-error on mismatch - no reflection is used on the hot path
(spec.md §9).
*/
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindTime
	KindArray
	KindHostFn
	KindMacro
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindTime:
		return "time"
	case KindArray:
		return "array"
	case KindHostFn:
		return "function"
	case KindMacro:
		return "macro"
	}
	return "unknown"
}

/*
Value is the dynamic value that flows through the evaluator (spec.md
§3). Nil, Bool, Int, Float, Str, Time and Array are value types;
*HostFn and *Macro are reference types (a HostFn/Macro is identified
by pointer, matching the teacher's closure-by-reference discipline in
interpreter/rt_func.go).
*/
type Value interface {
	Kind() Kind
	String() string
}

// Nil
// ===

/*
Nil is the sole empty value. An empty program and an unresolved cond
both evaluate to Nil (spec.md §4.2, §4.4).
*/
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }

// Bool
// ====

/*
Bool is the boolean value. false (and Nil) are the only falsy values
(spec.md §4.4).
*/
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int / Float
// ===========

/*
Int is a signed integer value.
*/
type Int int64

func (Int) Kind() Kind        { return KindInt }
func (i Int) String() string  { return fmt.Sprintf("%d", int64(i)) }

/*
Float is a floating-point value.
*/
type Float float64

func (Float) Kind() Kind       { return KindFloat }
func (f Float) String() string { return fmt.Sprintf("%g", float64(f)) }

// Str
// ===

/*
Str is a string value.
*/
type Str string

func (Str) Kind() Kind      { return KindStr }
func (s Str) String() string { return string(s) }

// Time
// ====

/*
Time is an absolute instant (spec.md §3).
*/
type Time struct {
	T time.Time
}

func (Time) Kind() Kind { return KindTime }
func (t Time) String() string {
	return t.T.UTC().Format(time.RFC3339)
}

// Array
// =====

/*
Array is an ordered, immutable-handle sequence of Values (spec.md §3:
"operations return new arrays unless noted"). Built-ins that appear to
mutate (none do at present) would have to copy first.
*/
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (a Array) String() string {
	s := "["
	for i, v := range a {
		if i > 0 {
			s += " "
		}
		s += v.String()
	}
	return s + "]"
}

// HostFn
// ======

/*
HostFnImpl is the Go function a HostFn wraps. It receives already
evaluated argument Values (spec.md §3) plus the evaluator and the
calling frame (most built-ins ignore the frame; it exists so a host
callable such as "apply" can re-enter the evaluator).
*/
type HostFnImpl func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error)

/*
HostFn is a callable bound in a frame which receives N already
evaluated Value arguments (spec.md §3, §4.4).
*/
type HostFn struct {
	Name string
	Doc  string
	Fn   HostFnImpl
}

func (*HostFn) Kind() Kind { return KindHostFn }
func (f *HostFn) String() string {
	return fmt.Sprintf("<function %s>", f.Name)
}

// Macro
// =====

/*
MacroImpl is the Go function a Macro wraps. It receives the raw,
un-evaluated argument AST nodes (spec.md §3) plus the calling frame,
and returns either a Value (used as-is) or an *parser.ASTNode to
re-evaluate exactly once (spec.md §4.4). Exactly one of the two
return values is non-nil when err is nil.
*/
type MacroImpl func(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error)

/*
Macro is a callable bound in a frame which receives un-evaluated
sub-expressions (spec.md §3, §4.4, §9). Every special form (if, cond,
and, or, let, lambda, defn, setglobal, expr) and every user-defined
lambda is a Macro - the evaluator never special-cases a name, it only
switches on the resolved head value's variant.
*/
type Macro struct {
	Name string
	Doc  string
	Fn   MacroImpl
}

func (*Macro) Kind() Kind { return KindMacro }
func (m *Macro) String() string {
	return fmt.Sprintf("<macro %s>", m.Name)
}

// Truthiness
// ==========

/*
Truthy implements spec.md §4.4: false and nil are falsy, everything
else - including 0, "", and an empty array - is truthy.
*/
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equality and ordering
// ======================

/*
kindRank gives the explicit total order used to compare Values of
different Kinds (spec.md §9 Open Question, resolved in DESIGN.md):
Nil < Bool < numeric < Str < Time < Array.
*/
func kindRank(v Value) int {
	switch v.(type) {
	case Nil:
		return 0
	case Bool:
		return 1
	case Int, Float:
		return 2
	case Str:
		return 3
	case Time:
		return 4
	case Array:
		return 5
	}
	return 6
}

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	}
	return 0, false
}

/*
CompareValues returns -1, 0 or 1 per the total order documented in
DESIGN.md. It never fails - cross-kind comparisons are resolved by
kindRank rather than raising argument-error, per spec.md §9.
*/
func CompareValues(a, b Value) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch av := a.(type) {
	case Nil:
		return 0
	case Bool:
		bv := b.(Bool)
		if av == bv {
			return 0
		}
		if !bool(av) {
			return -1
		}
		return 1
	case Int, Float:
		fa, _ := asFloat(a)
		fb, _ := asFloat(b)
		if fa < fb {
			return -1
		}
		if fa > fb {
			return 1
		}
		return 0
	case Str:
		bv := b.(Str)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case Time:
		bv := b.(Time)
		switch {
		case av.T.Before(bv.T):
			return -1
		case av.T.After(bv.T):
			return 1
		}
		return 0
	case Array:
		bv := b.(Array)
		for i := 0; i < len(av) && i < len(bv); i++ {
			if c := CompareValues(av[i], bv[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(av) < len(bv):
			return -1
		case len(av) > len(bv):
			return 1
		}
		return 0
	}
	return 0
}

/*
ValuesEqual reports whether a and b are "=" equal (spec.md §4.4's
built-in comparisons).
*/
func ValuesEqual(a, b Value) bool {
	return CompareValues(a, b) == 0
}

// Host interop
// ============

/*
ToPortable converts a Value into a plain Go value a host application
can consume without importing this package's types: nil, bool,
int64, float64, string, time.Time or []interface{} (SPEC_FULL §4).
*/
func ToPortable(v Value) interface{} {
	switch t := v.(type) {
	case Nil:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case Str:
		return string(t)
	case Time:
		return t.T
	case Array:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = ToPortable(e)
		}
		return out
	case *HostFn, *Macro:
		return t
	}
	return v
}

/*
FromPortable converts a plain Go value into a Value - the inverse of
ToPortable, used when a host supplies literal bindings (spec.md §6).
FromPortable never fails: a value of an unrecognized type becomes Nil.
*/
func FromPortable(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return Nil{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case float32:
		return Float(t)
	case string:
		return Str(t)
	case time.Time:
		return Time{T: t}
	case []interface{}:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = FromPortable(e)
		}
		return out
	case []Value:
		return Array(t)
	}
	return Nil{}
}
