/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"

	"github.com/krotik/common/stringutil"
)

/*
PrettyPrint renders an AST node as an indented, multi-line
S-expression - used by cmd/rlisp's -ast debug flag.
util.RuntimeError.GetTraceString uses PrettyPrintCompact instead.
*/
func PrettyPrint(n *ASTNode) string {
	var buf bytes.Buffer
	printLevel(n, 0, &buf)
	return buf.String()
}

/*
PrettyPrintCompact renders an AST node as a single line, used for
stack trace frames where one line per call is more readable than a
fully indented tree.
*/
func PrettyPrintCompact(n *ASTNode) string {
	if n == nil {
		return "<nil>"
	}
	if n.IsAtom() {
		return n.Token.String()
	}

	var buf bytes.Buffer
	buf.WriteString("(")
	for i, c := range n.Children {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(PrettyPrintCompact(c))
	}
	buf.WriteString(")")
	return buf.String()
}

func printLevel(n *ASTNode, indent int, buf *bytes.Buffer) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	if n == nil {
		buf.WriteString("<nil>\n")
		return
	}

	if n.IsAtom() {
		buf.WriteString(fmt.Sprintf("%v: %v\n", n.Token.Kind, n.Token.Val))
		return
	}

	buf.WriteString("(\n")
	for _, c := range n.Children {
		printLevel(c, indent+1, buf)
	}
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))
	buf.WriteString(")\n")
}
