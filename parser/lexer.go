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
Package parser implements the rlisp lexer and recursive-descent
parser described in spec.md §4.1-4.2: a longest-prefix regular
scanner feeding a flat token stream, and a parser building a tree of
Tokens and nested Lists (the AST).
*/
package parser

import (
	"fmt"
	"regexp"
	"strings"
)

/*
TokenKind identifies the kind of a lexer Token (spec.md §3).
*/
type TokenKind int

/*
Token kinds. SPC is never emitted on the token stream - it is
recognized and discarded by the lexer.
*/
const (
	TokenEOF TokenKind = iota
	TokenError
	TokenLPAR
	TokenRPAR
	TokenVAR
	TokenNUM
	TokenSTR
	TokenTIME
	TokenFN
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenLPAR:
		return "LPAR"
	case TokenRPAR:
		return "RPAR"
	case TokenVAR:
		return "VAR"
	case TokenNUM:
		return "NUM"
	case TokenSTR:
		return "STR"
	case TokenTIME:
		return "TIME"
	case TokenFN:
		return "FN"
	}
	return "UNKNOWN"
}

/*
Token is a single lexical unit produced by the lexer.
*/
type Token struct {
	Kind  TokenKind
	Val   string // literal text: symbol name / numeral text / decoded string contents / TIME inner text
	Float bool   // NUM only: true if the numeral contains a decimal point
	Pos   int    // byte offset of the token's first byte in the source
	Line  int    // 1-based line
	Col   int    // 1-based column within Line
}

/*
String returns a human-readable representation of a token, used by
the pretty printer and error messages.
*/
func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	if t.Kind == TokenError {
		return fmt.Sprintf("error: %s", t.Val)
	}
	if t.Kind == TokenSTR {
		return fmt.Sprintf("%q", t.Val)
	}
	return t.Val
}

// Lexer rules
// ===========

/*
lexRule is one anchored regular expression from the table in spec.md
§4.1. The lexer tries every rule at the current position and accepts
the longest match, breaking ties in the declared order below (this is
the "longest-prefix regular scanner" spec.md §2 describes; a strict
first-match-wins reading would steal the leading "-" of a negative
number literal into a VAR token, which spec.md §4.1 explicitly
forbids).
*/
type lexRule struct {
	kind TokenKind
	re   *regexp.Regexp
}

var lexRules = []lexRule{
	{TokenLPAR, regexp.MustCompile(`^\(`)},
	{TokenRPAR, regexp.MustCompile(`^\)`)},
	{TokenVAR, regexp.MustCompile(`^[A-Za-z_><+!=*/%?\-]+`)},
	{TokenNUM, regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?`)},
	{TokenTIME, regexp.MustCompile(`^#t\{([^{]+)\}`)},
	{TokenSTR, regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)},
	{TokenSTR, regexp.MustCompile(`^'(?:[^'\\]|\\.)*'`)},
}

var wsRule = regexp.MustCompile(`^[ \t\r\n]+`)

/*
keywords maps a matched VAR token's text to a reserved token kind.
Only "fn" exists today (spec.md §9 Open Questions: reserved for
future use, rejected in value position).
*/
var keywords = map[string]TokenKind{
	"fn": TokenFN,
}

var escapeReplacer = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\r`, "\r",
	`\"`, `"`,
	`\'`, "'",
	`\\`, `\`,
)

/*
Lex tokenizes input and streams the resulting Tokens on a channel, in
the style of a classic state-machine lexer: the caller ranges over the
channel until it receives a TokenEOF or TokenError. name is used only
to build position information in error messages.
*/
func Lex(name string, input string) chan Token {
	out := make(chan Token)
	go runLexer(name, input, out)
	return out
}

/*
LexToList runs the lexer to completion and returns the resulting
tokens as a flat slice (spec.md §4.1: "producing a flat token
stream"), or the first lex error encountered.
*/
func LexToList(name string, input string) ([]Token, error) {
	var toks []Token

	for tok := range Lex(name, input) {
		if tok.Kind == TokenError {
			return nil, &ParseError{
				Msg:          tok.Val,
				Line:         tok.Line,
				Col:          tok.Col,
				InvalidToken: true,
			}
		}

		toks = append(toks, tok)

		if tok.Kind == TokenEOF {
			break
		}
	}

	return toks, nil
}

func runLexer(name string, input string, out chan Token) {
	defer close(out)

	pos := 0
	line := 1
	col := 1

	advance := func(n int) {
		for _, r := range input[pos : pos+n] {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += n
	}

	for pos < len(input) {

		if loc := wsRule.FindStringIndex(input[pos:]); loc != nil && loc[0] == 0 {
			advance(loc[1])
			continue
		}

		bestLen := -1
		var bestKind TokenKind
		var bestMatch string

		for _, rule := range lexRules {
			if loc := rule.re.FindStringIndex(input[pos:]); loc != nil && loc[0] == 0 {
				if loc[1] > bestLen {
					bestLen = loc[1]
					bestKind = rule.kind
					bestMatch = input[pos : pos+loc[1]]
				}
			}
		}

		if bestLen <= 0 {
			out <- Token{
				Kind: TokenError,
				Val:  fmt.Sprintf("invalid token at %q", previewRemaining(input[pos:])),
				Line: line,
				Col:  col,
				Pos:  pos,
			}
			return
		}

		startLine, startCol, startPos := line, col, pos

		tok := Token{Pos: startPos, Line: startLine, Col: startCol}

		switch bestKind {
		case TokenLPAR, TokenRPAR:
			tok.Kind = bestKind
			tok.Val = bestMatch
		case TokenVAR:
			if kw, ok := keywords[bestMatch]; ok {
				tok.Kind = kw
			} else {
				tok.Kind = TokenVAR
			}
			tok.Val = bestMatch
		case TokenNUM:
			tok.Kind = TokenNUM
			tok.Val = bestMatch
			tok.Float = strings.Contains(bestMatch, ".")
		case TokenTIME:
			tok.Kind = TokenTIME
			tok.Val = bestMatch[3 : len(bestMatch)-1] // strip "#t{" ... "}"
		case TokenSTR:
			tok.Kind = TokenSTR
			tok.Val = decodeString(bestMatch[1 : len(bestMatch)-1])
		}

		advance(bestLen)
		out <- tok
	}

	out <- Token{Kind: TokenEOF, Line: line, Col: col, Pos: pos}
}

func decodeString(body string) string {
	return escapeReplacer.Replace(body)
}

func previewRemaining(s string) string {
	const max = 16
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
