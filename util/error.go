/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arvosystems/rlisp/parser"
)

/*
TraceableRuntimeError can record and show a stack trace.
*/
type TraceableRuntimeError interface {
	error

	/*
		AddTrace adds a trace step.
	*/
	AddTrace(*parser.ASTNode)

	/*
		GetTrace returns the current stacktrace.
	*/
	GetTrace() []*parser.ASTNode

	/*
		GetTraceString returns the current stacktrace as a string.
	*/
	GetTraceString() []string
}

/*
RuntimeError is an error produced by the lexer, parser or evaluator.
Every failure the sandboxed core can raise (spec.md §7) is represented
as one of these, tagged with one of the five sentinel Type values
below so that a host can switch on the failure category without
string-matching Detail.
*/
type RuntimeError struct {
	Source string          // Name of the source which was given to the parser
	Type   error           // Failure category (one of the Err* sentinels below)
	Detail string          // Human-readable detail
	Node   *parser.ASTNode // AST node where the error occurred (nil for lex errors)
	Line   int             // Line of the error
	Pos    int             // Column of the error
	Trace  []*parser.ASTNode
}

/*
Failure categories, one per spec.md §7 entry. Hosts should switch on
these with errors.Is, not on Error()'s formatted string.
*/
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrSyntaxError   = errors.New("syntax error")
	ErrUndefinedVar  = errors.New("undefined variable")
	ErrArgumentError = errors.New("argument error")
	ErrOpsExceeded   = errors.New("operation threshold exceeded")
)

/*
NewRuntimeError creates a new RuntimeError tied to an AST node.
*/
func NewRuntimeError(source string, t error, detail string, node *parser.ASTNode) *RuntimeError {
	if node != nil && node.Token != nil {
		return &RuntimeError{source, t, detail, node, node.Token.Line, node.Token.Col, nil}
	}
	return &RuntimeError{source, t, detail, node, 0, 0, nil}
}

/*
NewLexError creates a RuntimeError for a lexer failure which has no
AST node yet, only a position in the source.
*/
func NewLexError(source string, detail string, line int, col int) *RuntimeError {
	return &RuntimeError{source, ErrInvalidToken, detail, nil, line, col, nil}
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	ret := fmt.Sprintf("rlisp error in %s: %v (%v)", re.Source, re.Type, re.Detail)

	if re.Line != 0 {
		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, re.Line, re.Pos)
	}

	return ret
}

/*
Unwrap exposes the sentinel Type so that errors.Is(err, util.ErrArgumentError)
works on a *RuntimeError.
*/
func (re *RuntimeError) Unwrap() error {
	return re.Type
}

/*
AddTrace adds a trace step. The evaluator calls this once per eval
frame as a failing error unwinds, so the outermost caller sees the
full call chain without the interpreter needing to build it ahead of
time.
*/
func (re *RuntimeError) AddTrace(n *parser.ASTNode) {
	re.Trace = append(re.Trace, n)
}

/*
GetTrace returns the current stacktrace, innermost frame first.
*/
func (re *RuntimeError) GetTrace() []*parser.ASTNode {
	return re.Trace
}

/*
GetTraceString returns the current stacktrace as a list of
pretty-printed, one-line frames.
*/
func (re *RuntimeError) GetTraceString() []string {
	res := make([]string, 0, len(re.Trace))
	for _, n := range re.Trace {
		pp := parser.PrettyPrintCompact(n)
		line := 0
		if n.Token != nil {
			line = n.Token.Line
		}
		res = append(res, fmt.Sprintf("%v (line %v)", pp, line))
	}
	return res
}

/*
ToJSONObject returns this RuntimeError as a JSON-marshalable object.
*/
func (re *RuntimeError) ToJSONObject() map[string]interface{} {
	t := ""
	if re.Type != nil {
		t = re.Type.Error()
	}
	return map[string]interface{}{
		"source": re.Source,
		"type":   t,
		"detail": re.Detail,
		"line":   re.Line,
		"pos":    re.Pos,
		"trace":  re.GetTraceString(),
	}
}

/*
MarshalJSON serializes this RuntimeError into a JSON string.
*/
func (re *RuntimeError) MarshalJSON() ([]byte, error) {
	return json.Marshal(re.ToJSONObject())
}
