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
	"fmt"
	"testing"
)

func tokenString(toks []Token) string {
	res := ""
	for _, t := range toks {
		if t.Kind == TokenEOF {
			continue
		}
		res += fmt.Sprintf("%v(%q) ", t.Kind, t.Val)
	}
	return res
}

func TestLexBasic(t *testing.T) {
	toks, err := LexToList("test", `(+ (* 2 2) (% 5 4))`)
	if err != nil {
		t.Error(err)
		return
	}

	expect := `LPAR("(") VAR("+") LPAR("(") VAR("*") NUM("2") NUM("2") RPAR(")") LPAR("(") VAR("%") NUM("5") NUM("4") RPAR(")") RPAR(")") `

	if res := tokenString(toks); res != expect {
		t.Errorf("unexpected tokens: %v", res)
	}
}

func TestLexNegativeNumberIsNotMinusOperator(t *testing.T) {
	toks, err := LexToList("test", `(+ 4 -3)`)
	if err != nil {
		t.Error(err)
		return
	}

	var nums []Token
	for _, tok := range toks {
		if tok.Kind == TokenNUM {
			nums = append(nums, tok)
		}
	}

	if len(nums) != 2 || nums[1].Val != "-3" {
		t.Errorf("expected a single NUM token '-3', got: %v", nums)
	}
}

func TestLexFloat(t *testing.T) {
	toks, err := LexToList("test", `3.14`)
	if err != nil {
		t.Error(err)
		return
	}

	if len(toks) != 2 || toks[0].Kind != TokenNUM || !toks[0].Float {
		t.Errorf("expected a single float NUM token, got: %v", toks)
	}
}

func TestLexStrings(t *testing.T) {
	toks, err := LexToList("test", `"hi there, " 'Justin' "line\nbreak"`)
	if err != nil {
		t.Error(err)
		return
	}

	if len(toks) != 4 {
		t.Fatalf("expected 3 STR tokens + EOF, got: %v", toks)
	}

	if toks[0].Val != "hi there, " || toks[1].Val != "Justin" || toks[2].Val != "line\nbreak" {
		t.Errorf("unexpected decoded string values: %q %q %q", toks[0].Val, toks[1].Val, toks[2].Val)
	}
}

func TestLexTime(t *testing.T) {
	toks, err := LexToList("test", `#t{2024-01-02T15:04:05Z}`)
	if err != nil {
		t.Error(err)
		return
	}

	if len(toks) != 2 || toks[0].Kind != TokenTIME || toks[0].Val != "2024-01-02T15:04:05Z" {
		t.Errorf("unexpected TIME token: %v", toks)
	}
}

func TestLexOperatorLikeNames(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "%", "<", ">", "<=", ">=", "=", "!=", "?"} {
		toks, err := LexToList("test", op)
		if err != nil {
			t.Errorf("%v: %v", op, err)
			continue
		}
		if len(toks) != 2 || toks[0].Kind != TokenVAR || toks[0].Val != op {
			t.Errorf("%v: expected single VAR token, got %v", op, toks)
		}
	}
}

func TestLexReservedFn(t *testing.T) {
	toks, err := LexToList("test", "fn")
	if err != nil {
		t.Error(err)
		return
	}
	if len(toks) != 2 || toks[0].Kind != TokenFN {
		t.Errorf("expected a single FN token, got: %v", toks)
	}
}

func TestLexInvalidToken(t *testing.T) {
	_, err := LexToList("test", "@@@")

	if err == nil {
		t.Error("expected a lex error")
		return
	}

	pe, ok := err.(*ParseError)
	if !ok || !pe.InvalidToken {
		t.Errorf("expected an invalid-token ParseError, got: %v", err)
	}
}

func TestLexEmpty(t *testing.T) {
	toks, err := LexToList("test", "")
	if err != nil {
		t.Error(err)
		return
	}
	if len(toks) != 1 || toks[0].Kind != TokenEOF {
		t.Errorf("expected only EOF, got: %v", toks)
	}
}
