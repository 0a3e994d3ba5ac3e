/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import "testing"

func TestGetWalksParentChain(t *testing.T) {
	root := NewWithBindings(GlobalScope, map[string]interface{}{"x": 1})
	child := root.NewChild("let")

	if v, ok := child.Get("x"); !ok || v != 1 {
		t.Errorf("expected to find 'x' in the parent chain, got %v, %v", v, ok)
	}

	if _, ok := child.Get("missing"); ok {
		t.Error("expected 'missing' to be undefined")
	}
}

func TestSetLocalDoesNotLeakUpward(t *testing.T) {
	root := New(GlobalScope)
	child := root.NewChild("let")

	child.SetLocal("y", 2)

	if _, ok := root.Get("y"); ok {
		t.Error("SetLocal leaked into the parent frame")
	}
	if v, ok := child.Get("y"); !ok || v != 2 {
		t.Errorf("expected child to see its own local binding, got %v, %v", v, ok)
	}
}

func TestSetRootWritesToChainRoot(t *testing.T) {
	root := New(GlobalScope)
	child := root.NewChild("let").NewChild("lambda")

	child.SetRoot("g", 42)

	if v, ok := root.Get("g"); !ok || v != 42 {
		t.Errorf("expected setglobal-style write to land on the root, got %v, %v", v, ok)
	}
}

func TestShadowing(t *testing.T) {
	root := NewWithBindings(GlobalScope, map[string]interface{}{"x": 1})
	child := root.NewChild("let")
	child.SetLocal("x", 2)

	if v, _ := child.Get("x"); v != 2 {
		t.Errorf("expected shadowed local binding, got %v", v)
	}
	if v, _ := root.Get("x"); v != 1 {
		t.Errorf("expected root binding unaffected by shadowing, got %v", v)
	}
}
