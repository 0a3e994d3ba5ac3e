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
Package rlisp is the embedding surface described in spec.md §6:
Construct an Interpreter with host bindings and an operation ceiling,
Compile a source string once into a reusable Program, then Run it
any number of times with per-call bindings - or skip straight to the
one-shot Run convenience. Everything below this package (parser,
scope, interpreter) is usable on its own, but this is the door most
callers should come through.
*/
package rlisp

import (
	cryptorand "crypto/rand"
	"encoding/binary"

	"github.com/krotik/common/datautil"

	"github.com/arvosystems/rlisp/config"
	"github.com/arvosystems/rlisp/interpreter"
	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/scope"
	"github.com/arvosystems/rlisp/util"
)

/*
Value is a re-export of interpreter.Value so a caller only needs to
import this one package for the common embedding path.
*/
type Value = interpreter.Value

/*
Interpreter holds immutable configuration shared by every Compile/Run
call: the merged default bindings and the default operation ceiling
(spec.md §5: "the interpreter handle... holds only immutable
configuration... allocate evaluation state as a call-local value").
It is safe for concurrent use.
*/
type Interpreter struct {
	bindings map[string]interface{}
	maxOps   int
	seed     int64
}

/*
Option configures an Interpreter at construction time.
*/
type Option func(*Interpreter)

/*
WithBindings merges host-supplied bindings over the built-in library.
A binding value may be an interpreter.Value, a raw Go value accepted
by interpreter.FromPortable, or a *interpreter.HostFn/*interpreter.Macro.
*/
func WithBindings(bindings map[string]interface{}) Option {
	return func(in *Interpreter) {
		for k, v := range bindings {
			in.bindings[k] = toBindingValue(v)
		}
	}
}

/*
WithMaxOps sets the default operation ceiling (spec.md §4.5); 0 means
unbounded. Run/one-shot Run can override this per call.
*/
func WithMaxOps(n int) Option {
	return func(in *Interpreter) { in.maxOps = n }
}

/*
WithLogger wires a "log" host callable backed by logger (SPEC_FULL
§2.2's ambient logging story) - not part of spec.md's core built-in
library, opt-in only.
*/
func WithLogger(logger util.Logger) Option {
	return func(in *Interpreter) {
		interpreter.WithLogger(in.bindings, logger)
	}
}

/*
WithRandSeed fixes the seed of every Evaluator this Interpreter
produces - a convenience for reproducible tests of code that calls
rand, not a determinism guarantee (spec.md §8 explicitly excludes
rand/now/ago/from-now). seed == 0 means "reseed from crypto-quality
entropy now" (config.RandSeed's documented default), matching New's
own handling of an unset config.RandSeed.
*/
func WithRandSeed(seed int64) Option {
	return func(in *Interpreter) { in.seed = resolveSeed(seed) }
}

/*
resolveSeed implements config.RandSeed's "0 means seed from
crypto-quality entropy at interpreter construction" contract. A
non-zero seed is returned unchanged so WithRandSeed stays
reproducible for tests.
*/
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}

	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return 1
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}

func toBindingValue(v interface{}) interface{} {
	if val, ok := v.(interpreter.Value); ok {
		return val
	}
	return interpreter.FromPortable(v)
}

/*
New constructs an Interpreter seeded with the fixed built-in library
(interpreter.DefaultBindings) plus any options. Its rand seed defaults
to config.RandSeed (0 unless a host changed config.Config), resolved
through resolveSeed exactly as an explicit WithRandSeed would be.
*/
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		bindings: interpreter.DefaultBindings(),
		seed:     resolveSeed(int64(config.Int(config.RandSeed))),
	}
	for _, o := range opts {
		o(in)
	}
	return in
}

/*
Program is a compiled source: an immutable AST plus a reference to the
Interpreter it was compiled against (spec.md §5: "A compiled program
is an immutable AST plus an immutable default-bindings snapshot").
*/
type Program struct {
	name   string
	forms  []*parser.ASTNode
	interp *Interpreter
}

/*
Compile lexes and parses source, failing eagerly on any lex/parse
error (spec.md §6). The returned Program shares no mutable state with
other Programs or with concurrent Run calls against it.
*/
func (in *Interpreter) Compile(name string, source string) (*Program, error) {
	forms, err := parser.Parse(name, source)
	if err != nil {
		return nil, wrapParseError(name, err)
	}
	return &Program{name: name, forms: forms, interp: in}, nil
}

func wrapParseError(name string, err error) error {
	pe, ok := err.(*parser.ParseError)
	if !ok {
		return err
	}
	t := util.ErrSyntaxError
	if pe.InvalidToken {
		t = util.ErrInvalidToken
	}
	re := util.NewLexError(name, pe.Msg, pe.Line, pe.Col)
	re.Type = t
	return re
}

/*
Run evaluates the compiled Program against a fresh frame chain seeded
from the Interpreter's bindings merged with per-call bindings (spec.md
§3: "state does not leak across calls"). maxOps, if >= 0, overrides the
Interpreter's configured ceiling for this call only; pass -1 to use the
Interpreter's default.
*/
func (p *Program) Run(bindings map[string]interface{}, maxOps int) (Value, error) {
	callBindings := make(map[string]interface{}, len(bindings))
	for k, v := range bindings {
		callBindings[k] = toBindingValue(v)
	}
	merged := datautil.MergeMaps(p.interp.bindings, callBindings)

	if maxOps < 0 {
		maxOps = p.interp.maxOps
	}

	fr := scope.NewWithBindings(scope.GlobalScope, merged)
	ev := interpreter.NewEvaluator(p.name, maxOps, p.interp.seed)
	return ev.Run(p.forms, fr)
}

/*
Run is the one-shot convenience of spec.md §6: compile source and
invoke it exactly once with bindings, using maxOps (< 0 selects the
Interpreter's configured default).
*/
func (in *Interpreter) Run(source string, bindings map[string]interface{}, maxOps int) (Value, error) {
	p, err := in.Compile("run", source)
	if err != nil {
		return nil, err
	}
	return p.Run(bindings, maxOps)
}

/*
Run is the package-level convenience: construct a default Interpreter
and run source once. Most tests and simple scripts only need this.
*/
func Run(source string, bindings map[string]interface{}, maxOps int) (Value, error) {
	return New().Run(source, bindings, maxOps)
}

/*
Session is a persistent evaluation context. Unlike Program.Run, which
starts a fresh frame chain on every call (spec.md §3: "state does not
leak across calls"), a Session keeps its root frame alive across Eval
calls, so a setglobal or defn from one Eval is visible to the next -
the shape an interactive console needs (cmd/rlisp's "console" command
is built on this). Not part of spec.md's core embedding surface; it is
a convenience layered on top of it for long-lived hosts.
*/
type Session struct {
	interp *Interpreter
	frame  *scope.Frame
	maxOps int
}

/*
NewSession seeds a Session's root frame from the Interpreter's default
bindings merged with bindings, and fixes the operation ceiling every
Eval call on this Session will use (maxOps < 0 selects the
Interpreter's configured default).
*/
func (in *Interpreter) NewSession(bindings map[string]interface{}, maxOps int) *Session {
	callBindings := make(map[string]interface{}, len(bindings))
	for k, v := range bindings {
		callBindings[k] = toBindingValue(v)
	}
	merged := datautil.MergeMaps(in.bindings, callBindings)

	if maxOps < 0 {
		maxOps = in.maxOps
	}

	return &Session{
		interp: in,
		frame:  scope.NewWithBindings(scope.GlobalScope, merged),
		maxOps: maxOps,
	}
}

/*
Eval parses and evaluates source against this Session's persistent
frame chain. name identifies the source in error messages (e.g. a
file path, or "console input" for a REPL line).
*/
func (s *Session) Eval(name string, source string) (Value, error) {
	forms, err := parser.Parse(name, source)
	if err != nil {
		return nil, wrapParseError(name, err)
	}
	ev := interpreter.NewEvaluator(name, s.maxOps, s.interp.seed)
	return ev.Run(forms, s.frame)
}
