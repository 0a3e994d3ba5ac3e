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
	"github.com/arvosystems/rlisp/util"
)

/*
DefaultBindings returns the full fixed library (spec.md §4.4): the
true/false/nil constants, the special forms and every built-in
function, as a plain map a caller merges into a root scope.Frame via
scope.NewWithBindings. The returned map is fresh on every call so a
caller is free to mutate it before installing it.
*/
func DefaultBindings() map[string]interface{} {
	m := map[string]interface{}{
		"true":  Bool(true),
		"false": Bool(false),
		"nil":   Nil{},
	}
	merge := func(src map[string]Value) {
		for k, v := range src {
			m[k] = v
		}
	}
	merge(specialForms())
	merge(arithBuiltins())
	merge(cmpBuiltins())
	merge(logicBuiltins())
	merge(stringBuiltins())
	merge(arrayBuiltins())
	merge(timeBuiltins())
	merge(metaBuiltins())
	return m
}

/*
WithLogger adds a "log" host callable backed by logger to bindings -
an ambient, non-core extra a host opts into (SPEC_FULL §2.2), not part
of DefaultBindings. "log" accepts any number of arguments and writes
their string representations, space-joined, at info level.
*/
func WithLogger(bindings map[string]interface{}, logger util.Logger) map[string]interface{} {
	bindings["log"] = &HostFn{Name: "log", Fn: func(ev *Evaluator, fr *scope.Frame, args []Value) (Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		logger.LogInfo(strings.Join(parts, " "))
		return Nil{}, nil
	}}
	return bindings
}
