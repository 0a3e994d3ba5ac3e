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
	"strconv"
	"time"

	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/util"
)

// timeLayouts are tried in order when decoding a #t{...} literal or a
// string passed to the "time" built-in. RFC3339 covers the common
// case; the others accept a bare date or a space-separated timestamp
// without requiring a host to quote an offset.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimeText(text string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTimeLiteral(node *parser.ASTNode) (Value, error) {
	t, ok := parseTimeText(node.Token.Val)
	if !ok {
		return nil, util.NewRuntimeError("", util.ErrSyntaxError, "malformed time literal #t{"+node.Token.Val+"}", node)
	}
	return Time{T: t}, nil
}

func parseNumber(node *parser.ASTNode) (Value, error) {
	tok := node.Token
	if tok.Float {
		f, err := strconv.ParseFloat(tok.Val, 64)
		if err != nil {
			return nil, util.NewRuntimeError("", util.ErrSyntaxError, "malformed number literal "+tok.Val, node)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(tok.Val, 10, 64)
	if err != nil {
		return nil, util.NewRuntimeError("", util.ErrSyntaxError, "malformed number literal "+tok.Val, node)
	}
	return Int(i), nil
}
