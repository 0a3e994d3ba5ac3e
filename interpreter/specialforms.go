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
	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/scope"
)

/*
specialForms returns the fixed set of Macro bindings that implement
spec.md §4.4's special forms. They are bound under their names in the
global frame exactly like any other Macro - the evaluator has no
notion of "special form" beyond a name resolving to a *Macro value.
*/
func specialForms() map[string]Value {
	return map[string]Value{
		"if":        &Macro{Name: "if", Fn: ifForm},
		"cond":      &Macro{Name: "cond", Fn: condForm},
		"and":       &Macro{Name: "and", Fn: andForm},
		"or":        &Macro{Name: "or", Fn: orForm},
		"let":       &Macro{Name: "let", Fn: letForm},
		"lambda":    &Macro{Name: "lambda", Fn: lambdaForm},
		"defn":      &Macro{Name: "defn", Fn: defnForm},
		"setglobal": &Macro{Name: "setglobal", Fn: setglobalForm},
		"expr":      &Macro{Name: "expr", Fn: exprForm},
	}
}

// if
// ==

func ifForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) != 3 {
		return nil, nil, ev.argErr(nil, "if expects exactly 3 arguments (predicate, then, else), got %d", len(args))
	}
	p, err := ev.Eval(args[0], fr)
	if err != nil {
		return nil, nil, err
	}
	if Truthy(p) {
		return nil, args[1], nil
	}
	return nil, args[2], nil
}

// cond
// ====

func condForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, nil, ev.argErr(nil, "cond expects an even, non-zero number of predicate/expression arguments, got %d", len(args))
	}
	for i := 0; i < len(args); i += 2 {
		p, err := ev.Eval(args[i], fr)
		if err != nil {
			return nil, nil, err
		}
		if Truthy(p) {
			return nil, args[i+1], nil
		}
	}
	return Nil{}, nil, nil
}

// and / or
// ========

func andForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) == 0 {
		return Bool(true), nil, nil
	}
	var last Value = Bool(true)
	for _, a := range args {
		v, err := ev.Eval(a, fr)
		if err != nil {
			return nil, nil, err
		}
		if !Truthy(v) {
			return Bool(false), nil, nil
		}
		last = v
	}
	return last, nil, nil
}

func orForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) == 0 {
		return Bool(false), nil, nil
	}
	for _, a := range args {
		v, err := ev.Eval(a, fr)
		if err != nil {
			return nil, nil, err
		}
		if Truthy(v) {
			return v, nil, nil
		}
	}
	return Bool(false), nil, nil
}

// let
// ===

func letForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) < 1 {
		return nil, nil, ev.argErr(nil, "let expects a binding list followed by a body")
	}
	bindings := args[0]
	if bindings.IsAtom() || len(bindings.Children)%2 != 0 {
		return nil, nil, ev.argErr(bindings, "let's binding list must hold an even number of name/value forms")
	}

	child := fr.NewChild("let")
	for i := 0; i < len(bindings.Children); i += 2 {
		nameNode := bindings.Children[i]
		if !nameNode.IsAtom() || nameNode.Token.Kind != parser.TokenVAR {
			return nil, nil, ev.argErr(nameNode, "let binding name must be a symbol")
		}
		v, err := ev.Eval(bindings.Children[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.SetLocal(nameNode.Token.Val, v)
	}

	var result Value = Nil{}
	for _, b := range args[1:] {
		v, err := ev.Eval(b, child)
		if err != nil {
			return nil, nil, err
		}
		result = v
	}
	return result, nil, nil
}

// lambda
// ======

func lambdaForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) < 1 {
		return nil, nil, ev.argErr(nil, "lambda expects a parameter list followed by a body")
	}
	paramList := args[0]
	if paramList.IsAtom() {
		return nil, nil, ev.argErr(paramList, "lambda's parameter list must be a form")
	}
	params := make([]string, len(paramList.Children))
	for i, p := range paramList.Children {
		if !p.IsAtom() || p.Token.Kind != parser.TokenVAR {
			return nil, nil, ev.argErr(p, "lambda parameter must be a symbol")
		}
		params[i] = p.Token.Val
	}
	body := args[1:]
	defFrame := fr
	return makeClosure(params, body, defFrame), nil, nil
}

/*
makeClosure builds the Macro a lambda form evaluates to: arguments are
evaluated in the caller's frame (the frame passed to Fn at call time),
then bound in a fresh child of defFrame - the frame captured at
definition time - and the body runs there (spec.md §4.4).
*/
func makeClosure(params []string, body []*parser.ASTNode, defFrame *scope.Frame) *Macro {
	return &Macro{
		Name: "lambda",
		Fn: func(ev *Evaluator, callerFr *scope.Frame, argNodes []*parser.ASTNode) (Value, *parser.ASTNode, error) {
			if len(argNodes) != len(params) {
				return nil, nil, ev.argErr(nil, "lambda expects %d argument(s), got %d", len(params), len(argNodes))
			}

			child := defFrame.NewChild("lambda")
			for i, p := range params {
				v, err := ev.Eval(argNodes[i], callerFr)
				if err != nil {
					return nil, nil, err
				}
				child.SetLocal(p, v)
			}

			var result Value = Nil{}
			for _, b := range body {
				v, err := ev.Eval(b, child)
				if err != nil {
					return nil, nil, err
				}
				result = v
			}
			return result, nil, nil
		},
	}
}

// defn
// ====

func defnForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) < 2 {
		return nil, nil, ev.argErr(nil, "defn expects a name, a parameter list and a body")
	}
	nameNode := args[0]
	if !nameNode.IsAtom() || nameNode.Token.Kind != parser.TokenVAR {
		return nil, nil, ev.argErr(nameNode, "defn's first argument must be a symbol")
	}
	closureVal, _, err := lambdaForm(ev, fr, args[1:])
	if err != nil {
		return nil, nil, err
	}
	fr.SetRoot(nameNode.Token.Val, closureVal)
	return closureVal, nil, nil
}

// setglobal
// =========

func setglobalForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) != 2 {
		return nil, nil, ev.argErr(nil, "setglobal expects exactly 2 arguments (name, value), got %d", len(args))
	}
	nameNode := args[0]
	if !nameNode.IsAtom() || nameNode.Token.Kind != parser.TokenVAR {
		return nil, nil, ev.argErr(nameNode, "setglobal's first argument must be a symbol")
	}
	v, err := ev.Eval(args[1], fr)
	if err != nil {
		return nil, nil, err
	}
	fr.SetRoot(nameNode.Token.Val, v)
	return v, nil, nil
}

// expr
// ====

/*
exprForm evaluates each of its arguments in sequence and returns the
last one's value (spec.md §4.4's sequencing form, used where a single
sub-expression slot - such as a lambda body passed as one form - needs
to run several statements).
*/
func exprForm(ev *Evaluator, fr *scope.Frame, args []*parser.ASTNode) (Value, *parser.ASTNode, error) {
	if len(args) == 0 {
		return Nil{}, nil, nil
	}
	for _, a := range args[:len(args)-1] {
		if _, err := ev.Eval(a, fr); err != nil {
			return nil, nil, err
		}
	}
	return nil, args[len(args)-1], nil
}
