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
	"fmt"
	"reflect"

	"github.com/arvosystems/rlisp/scope"
)

/*
NewHostFn wraps an arbitrary Go function as a *HostFn via reflection,
so a host embedding this package can expose its own functions as
callables without hand-writing a HostFnImpl for each one. fn's
arguments are converted from Value via ToPortable/FromPortable;
fn may optionally return a trailing error, which is surfaced as an
argument-error (grounded on the teacher's stdlib/adapter.go
ECALFunctionAdapter, generalized from ECAL's scalar/array model to
this package's Value kinds).
*/
func NewHostFn(name string, doc string, fn interface{}) *HostFn {
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		panic(fmt.Sprintf("NewHostFn(%q): fn must be a function, got %s", name, ft.Kind()))
	}

	hasErrOut := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == reflect.TypeOf((*error)(nil)).Elem()

	return &HostFn{
		Name: name,
		Doc:  doc,
		Fn: func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
			if ft.IsVariadic() {
				if len(args) < ft.NumIn()-1 {
					return nil, ev.argErr(nil, "%s expects at least %d argument(s), got %d", name, ft.NumIn()-1, len(args))
				}
			} else if len(args) != ft.NumIn() {
				return nil, ev.argErr(nil, "%s expects exactly %d argument(s), got %d", name, ft.NumIn(), len(args))
			}

			in := make([]reflect.Value, len(args))
			for i, a := range args {
				portable := ToPortable(a)
				pv := reflect.ValueOf(portable)

				expected := ft.In(i)
				if ft.IsVariadic() && i >= ft.NumIn()-1 {
					expected = ft.In(ft.NumIn() - 1).Elem()
				}

				if !pv.IsValid() {
					in[i] = reflect.Zero(expected)
					continue
				}
				if pv.Type().ConvertibleTo(expected) {
					in[i] = pv.Convert(expected)
					continue
				}
				return nil, ev.argErr(nil, "%s: argument %d should be of type %s but is %s", name, i+1, expected, pv.Type())
			}

			out := fv.Call(in)

			if hasErrOut {
				last := out[len(out)-1]
				out = out[:len(out)-1]
				if !last.IsNil() {
					return nil, ev.argErr(nil, "%s: %v", name, last.Interface().(error))
				}
			}

			switch len(out) {
			case 0:
				return Nil{}, nil
			case 1:
				return FromPortable(out[0].Interface()), nil
			default:
				vals := make(Array, len(out))
				for i, o := range out {
					vals[i] = FromPortable(o.Interface())
				}
				return vals, nil
			}
		},
	}
}
