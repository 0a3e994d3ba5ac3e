/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/krotik/common/termutil"
)

const testDir = "consoletest"

type testConsoleLineTerminal struct {
	in  []string
	out bytes.Buffer
}

func (t *testConsoleLineTerminal) StartTerm() error { return nil }

func (t *testConsoleLineTerminal) AddKeyHandler(handler termutil.KeyHandler) {}

func (t *testConsoleLineTerminal) NextLine() (string, error) {
	if len(t.in) > 0 {
		ret := t.in[0]
		t.in = t.in[1:]
		return ret, nil
	}
	return "", fmt.Errorf("input exhausted in testConsoleLineTerminal")
}

func (t *testConsoleLineTerminal) NextLinePrompt(prompt string, echo rune) (string, error) {
	return t.NextLine()
}

func (t *testConsoleLineTerminal) WriteString(s string) { t.out.WriteString(s) }

func (t *testConsoleLineTerminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t *testConsoleLineTerminal) StopTerm() {}

func newTestConsole() (*Console, *testConsoleLineTerminal, *bytes.Buffer) {
	wd, _ := os.Getwd()
	logLevel := "Info"
	logFile := ""
	maxOps := 0

	term := &testConsoleLineTerminal{}
	logOut := &bytes.Buffer{}

	c := &Console{
		Dir:      &wd,
		LogFile:  &logFile,
		LogLevel: &logLevel,
		MaxOps:   &maxOps,
		ShowAST:  new(bool),
		Term:     term,
		LogOut:   logOut,
	}

	return c, term, logOut
}

func TestConsoleEvalFileRunsOnceAndPrintsResult(t *testing.T) {
	if ok, _ := pathExists(testDir); ok {
		os.RemoveAll(testDir)
	}
	if err := os.Mkdir(testDir, 0770); err != nil {
		t.Fatalf("could not create test directory: %v", err)
	}
	defer os.RemoveAll(testDir)

	path := filepath.Join(testDir, "prog.rl")
	if err := ioutil.WriteFile(path, []byte("(+ 1 2)"), 0660); err != nil {
		t.Fatalf("could not write test file: %v", err)
	}

	c, _, logOut := newTestConsole()
	c.EntryFile = path
	if err := c.Run(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logOut.String(), "3") {
		t.Errorf("expected the evaluated result to be printed, got %q", logOut.String())
	}
}

func TestConsoleEvalFileMissingFile(t *testing.T) {
	c, _, _ := newTestConsole()
	c.EntryFile = filepath.Join(testDir, "does-not-exist.rl")

	if err := c.Run(false); err == nil {
		t.Error("expected an error for a missing entry file")
	}
}

func TestConsoleREPLPersistsStateAcrossLines(t *testing.T) {
	c, term, logOut := newTestConsole()
	term.in = []string{"(setglobal x 10)", "(+ x 5)", "quit"}

	if err := c.Run(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(term.out.String(), "15") {
		t.Errorf("expected the REPL to echo 15, got %q", term.out.String())
	}
	if logOut.String() == "" {
		t.Error("expected a welcome banner to be written to LogOut")
	}
}

func TestConsoleShowASTFlag(t *testing.T) {
	c, term, _ := newTestConsole()
	*c.ShowAST = true
	term.in = []string{"(+ 1 2)", "quit"}

	if err := c.Run(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if term.out.String() == "" {
		t.Error("expected the -ast flag to print a pretty-printed form instead of a result")
	}
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
