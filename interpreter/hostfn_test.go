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
	"errors"
	"testing"
)

func TestNewHostFnBasic(t *testing.T) {
	double := NewHostFn("double", "doubles an integer", func(n int64) int64 {
		return n * 2
	})

	v, err := runWithBindings(t, "(double 21)", map[string]interface{}{"double": double})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Int(42) {
		t.Errorf("got %v, want 42", v)
	}
}

func TestNewHostFnErrorReturn(t *testing.T) {
	boom := NewHostFn("boom", "always fails", func(n int64) (int64, error) {
		return 0, errors.New("kaboom")
	})

	_, err := runWithBindings(t, "(boom 1)", map[string]interface{}{"boom": boom})
	if err == nil {
		t.Error("expected the wrapped function's error to surface as an argument-error")
	}
}

func TestNewHostFnVariadic(t *testing.T) {
	sum := NewHostFn("sum", "sums its arguments", func(ns ...int64) int64 {
		var total int64
		for _, n := range ns {
			total += n
		}
		return total
	})

	v, err := runWithBindings(t, "(sum 1 2 3 4)", map[string]interface{}{"sum": sum})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != Int(10) {
		t.Errorf("got %v, want 10", v)
	}
}
