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
	"math/rand"

	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/scope"
	"github.com/arvosystems/rlisp/util"
)

/*
Evaluator carries the per-run state of a single Run/Compile
invocation: the operation governor's counter and ceiling (spec.md
§4.5), the source name used in error messages, and a private random
source used by the rand built-in. It is not safe to
share across concurrently running evaluations - construct one per
Run call.
*/
type Evaluator struct {
	Source string
	MaxOps int // 0 means unbounded

	ops  int
	rand *rand.Rand
}

/*
NewEvaluator builds an Evaluator. seed is used as-is to seed the
evaluator's random source, so the same seed (0 included) always
yields the same sequence; spec.md explicitly excludes rand/now/ago/
from-now from the determinism requirement, so this is only a
convenience for reproducible tests.
*/
func NewEvaluator(source string, maxOps int, seed int64) *Evaluator {
	return &Evaluator{
		Source: source,
		MaxOps: maxOps,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// step implements spec.md §4.5's operation governor: every entry into
// list-evaluation, and every macro re-evaluation of a returned AST
// node, increments the counter before dispatch continues.
func (ev *Evaluator) step(node *parser.ASTNode) error {
	ev.ops++
	if ev.MaxOps > 0 && ev.ops > ev.MaxOps {
		return util.NewRuntimeError(ev.Source, util.ErrOpsExceeded, "operation threshold exceeded", node)
	}
	return nil
}

/*
Ops reports the number of governor steps consumed so far - exposed so
a host can log how close a run came to its ceiling.
*/
func (ev *Evaluator) Ops() int {
	return ev.ops
}

func traced(err error, node *parser.ASTNode) error {
	if re, ok := err.(util.TraceableRuntimeError); ok {
		re.AddTrace(node)
		return re
	}
	return err
}

func (ev *Evaluator) argErr(node *parser.ASTNode, format string, a ...interface{}) error {
	return util.NewRuntimeError(ev.Source, util.ErrArgumentError, fmt.Sprintf(format, a...), node)
}

func (ev *Evaluator) undefinedVarErr(node *parser.ASTNode, name string) error {
	return util.NewRuntimeError(ev.Source, util.ErrUndefinedVar, name, node)
}

/*
Eval evaluates a single AST node in frame fr. It is the sole entry
point both the top-level Run loop and every macro/closure re-entry
goes through.
*/
func (ev *Evaluator) Eval(node *parser.ASTNode, fr *scope.Frame) (Value, error) {
	if node.Literal != nil {
		if v, ok := node.Literal.(Value); ok {
			return v, nil
		}
	}
	if node.IsAtom() {
		return ev.evalAtom(node, fr)
	}
	return ev.evalForm(node, fr)
}

func (ev *Evaluator) evalAtom(node *parser.ASTNode, fr *scope.Frame) (Value, error) {
	tok := node.Token
	switch tok.Kind {
	case parser.TokenNUM:
		return parseNumber(node)
	case parser.TokenSTR:
		return Str(tok.Val), nil
	case parser.TokenTIME:
		return parseTimeLiteral(node)
	case parser.TokenFN:
		return nil, util.NewRuntimeError(ev.Source, util.ErrArgumentError, "'fn' is reserved and cannot be evaluated as a value", node)
	case parser.TokenVAR:
		v, ok := fr.Get(tok.Val)
		if !ok {
			return nil, ev.undefinedVarErr(node, tok.Val)
		}
		val, ok := v.(Value)
		if !ok {
			return nil, ev.argErr(node, "binding '%s' does not hold a value", tok.Val)
		}
		return val, nil
	}
	return nil, util.NewRuntimeError(ev.Source, util.ErrSyntaxError, "unexpected token", node)
}

func (ev *Evaluator) evalForm(node *parser.ASTNode, fr *scope.Frame) (Value, error) {
	if len(node.Children) == 0 {
		return Nil{}, nil
	}
	if err := ev.step(node); err != nil {
		return nil, err
	}

	headVal, err := ev.Eval(node.Children[0], fr)
	if err != nil {
		return nil, traced(err, node)
	}

	v, err := ev.applyValue(headVal, fr, node.Children[1:], node)
	if err != nil {
		return nil, traced(err, node)
	}
	return v, nil
}

/*
applyValue dispatches a resolved head Value against argument AST
nodes. It is shared by evalForm's call-site dispatch and by built-ins
(apply) that need to invoke a Value programmatically.
*/
func (ev *Evaluator) applyValue(head Value, fr *scope.Frame, argNodes []*parser.ASTNode, node *parser.ASTNode) (Value, error) {
	switch h := head.(type) {
	case *Macro:
		val, rewritten, err := h.Fn(ev, fr, argNodes)
		if err != nil {
			return nil, err
		}
		if rewritten != nil {
			if err := ev.step(node); err != nil {
				return nil, err
			}
			return ev.Eval(rewritten, fr)
		}
		return val, nil
	case *HostFn:
		args := make([]Value, len(argNodes))
		for i, a := range argNodes {
			v, err := ev.Eval(a, fr)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return h.Fn(ev, fr, args)
	default:
		return nil, ev.argErr(node, "value in head position is not callable (%v)", head)
	}
}

/*
Run evaluates every top-level form in order and returns the last
form's value, or Nil if forms is empty (spec.md §4.2).
*/
func (ev *Evaluator) Run(forms []*parser.ASTNode, fr *scope.Frame) (Value, error) {
	var result Value = Nil{}
	for _, f := range forms {
		v, err := ev.Eval(f, fr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
