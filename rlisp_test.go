/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package rlisp

import (
	"errors"
	"testing"

	"github.com/arvosystems/rlisp/interpreter"
	"github.com/arvosystems/rlisp/util"
)

func TestRunOneShot(t *testing.T) {
	v, err := Run("(+ 1 2)", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != interpreter.Int(3) {
		t.Errorf("got %v, want 3", v)
	}
}

func TestRunWithPerCallBindings(t *testing.T) {
	v, err := Run("(> 51 custom_var)", map[string]interface{}{"custom_var": 10}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != interpreter.Bool(true) {
		t.Errorf("got %v, want true", v)
	}
}

func TestCompileFailsEagerlyOnSyntaxError(t *testing.T) {
	in := New()
	_, err := in.Compile("bad", "(+ 1 2")
	if err == nil || !errors.Is(err, util.ErrSyntaxError) {
		t.Errorf("expected a syntax-error, got %v", err)
	}
}

func TestCompileFailsEagerlyOnInvalidToken(t *testing.T) {
	in := New()
	_, err := in.Compile("bad", "(+ 1 @)")
	if err == nil || !errors.Is(err, util.ErrInvalidToken) {
		t.Errorf("expected an invalid-token error, got %v", err)
	}
}

func TestProgramCompileOnceRunManyTimes(t *testing.T) {
	in := New()
	p, err := in.Compile("prog", "(+ x 1)")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	v1, err := p.Run(map[string]interface{}{"x": 1}, -1)
	if err != nil {
		t.Fatalf("run 1 error: %v", err)
	}
	if v1 != interpreter.Int(2) {
		t.Errorf("got %v, want 2", v1)
	}

	v2, err := p.Run(map[string]interface{}{"x": 100}, -1)
	if err != nil {
		t.Fatalf("run 2 error: %v", err)
	}
	if v2 != interpreter.Int(101) {
		t.Errorf("got %v, want 101", v2)
	}
}

func TestInterpreterMaxOpsDefault(t *testing.T) {
	in := New(WithMaxOps(2))
	p, err := in.Compile("prog", "(+ (+ 1 1) (+ 2 2))")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if _, err := p.Run(nil, -1); err == nil {
		t.Error("expected ops-threshold-exceeded using the Interpreter's default ceiling")
	}
	if _, err := p.Run(nil, 100); err != nil {
		t.Errorf("expected the per-call override to succeed, got %v", err)
	}
}

func TestInterpreterWithLogger(t *testing.T) {
	logger := util.NewMemoryLogger(10)
	in := New(WithLogger(logger))
	if _, err := in.Run(`(log "hello")`, nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger.String() == "" {
		t.Error("expected the log built-in to write through to the logger")
	}
}

func TestWithRandSeedFixesReproducibility(t *testing.T) {
	a := New(WithRandSeed(42))
	b := New(WithRandSeed(42))

	va, err := a.Run("(rand 1000000)", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vb, err := b.Run("(rand 1000000)", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if va != vb {
		t.Errorf("expected the same fixed seed to reproduce the same draw, got %v and %v", va, vb)
	}
}

func TestWithRandSeedZeroReseedsFromEntropy(t *testing.T) {
	a := New(WithRandSeed(0))
	b := New(WithRandSeed(0))

	va, err := a.Run("(rand 1000000000)", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vb, err := b.Run("(rand 1000000000)", nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if va == vb {
		t.Error("expected seed 0 to reseed from entropy on each construction, not reuse a fixed value")
	}
}

func TestSessionPersistsStateAcrossEvalCalls(t *testing.T) {
	in := New()
	sess := in.NewSession(nil, -1)

	if _, err := sess.Eval("line1", "(setglobal counter 1)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := sess.Eval("line2", "counter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != interpreter.Int(1) {
		t.Errorf("got %v, want the binding set by a prior Eval call to persist", v)
	}
}

func TestStateDoesNotLeakAcrossRuns(t *testing.T) {
	in := New()
	p, err := in.Compile("prog", "(expr (setglobal counter 1) counter)")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if _, err := p.Run(nil, -1); err != nil {
		t.Fatalf("run 1 error: %v", err)
	}

	p2, err := in.Compile("prog2", "counter")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if _, err := p2.Run(nil, -1); err == nil {
		t.Error("expected setglobal from one Run to not leak into a later Run's frame chain")
	}
}
