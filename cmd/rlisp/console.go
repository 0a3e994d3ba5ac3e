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
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/krotik/common/fileutil"
	"github.com/krotik/common/termutil"

	"github.com/arvosystems/rlisp"
	"github.com/arvosystems/rlisp/config"
	"github.com/arvosystems/rlisp/parser"
	"github.com/arvosystems/rlisp/util"
)

/*
Console is the commandline frontend of the rlisp embedding API
(spec.md §6), grounded on the teacher's cli/tool/interpret.go
CLIInterpreter. It owns the flags shared by both the "console" and
"run" subcommands and drives a rlisp.Session so that state set by one
line of console input (setglobal, defn) is visible to the next.
*/
type Console struct {
	Dir      *string
	LogFile  *string
	LogLevel *string
	MaxOps   *int
	ShowAST  *bool

	EntryFile string

	Term   termutil.ConsoleLineTerminal
	Logger util.Logger

	LogOut io.Writer
}

/*
NewConsole creates a Console ready to have ParseArgs called on it.
*/
func NewConsole() *Console {
	return &Console{LogOut: os.Stdout}
}

/*
ParseArgs parses the flags for the selected subcommand. Returns true
if the program should exit immediately (e.g. -help was given).
*/
func (c *Console) ParseArgs() bool {

	if c.Dir != nil && c.LogFile != nil && c.LogLevel != nil && c.MaxOps != nil {
		return false
	}

	wd, _ := os.Getwd()

	c.Dir = flag.String("dir", wd, "Root directory to resolve relative file arguments against")
	c.LogFile = flag.String("logfile", "", "Log to a file instead of stdout")
	c.LogLevel = flag.String("loglevel", "Info", "Logging level (Debug, Info, Error)")
	c.MaxOps = flag.Int("maxops", config.Int(config.MaxOps), "Operation ceiling per evaluation (0 means unbounded)")
	c.ShowAST = flag.Bool("ast", false, "Print the parsed AST of each form instead of evaluating it")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s %s [options] [file]", os.Args[0], os.Args[1]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(os.Args) >= 2 {
		flag.CommandLine.Parse(os.Args[2:])

		if cargs := flag.Args(); len(cargs) > 0 {
			c.EntryFile = flag.Arg(0)
		}
	}

	if *showHelp {
		flag.Usage()
	}

	return *showHelp
}

/*
buildLogger constructs the util.Logger the console's log built-in
writes through, rolling over to a new file once LogFile crosses a
megabyte (the same policy the teacher's CreateRuntimeProvider uses).
*/
func (c *Console) buildLogger() (util.Logger, error) {
	var logger util.Logger
	var err error

	if c.LogFile != nil && *c.LogFile != "" {
		var logWriter io.Writer

		rollover := fileutil.SizeBasedRolloverCondition(1000000)
		logWriter, err = fileutil.NewMultiFileBuffer(*c.LogFile, fileutil.ConsecutiveNumberIterator(10), rollover)
		if err != nil {
			return nil, err
		}
		logger = util.NewBufferLogger(logWriter)
	} else {
		logger = util.NewStdOutLogger()
	}

	if c.LogLevel != nil && *c.LogLevel != "" {
		logger, err = util.NewLogLevelLogger(logger, *c.LogLevel)
	}

	return logger, err
}

/*
Run starts the console. In interactive mode it drops into a
read-eval-print loop over a single persistent rlisp.Session; otherwise
it evaluates EntryFile once and exits.
*/
func (c *Console) Run(interactive bool) error {
	if c.ParseArgs() {
		return nil
	}

	logger, err := c.buildLogger()
	if err != nil {
		return err
	}
	c.Logger = logger

	interp := rlisp.New(
		rlisp.WithMaxOps(*c.MaxOps),
		rlisp.WithLogger(logger),
		rlisp.WithRandSeed(int64(config.Int(config.RandSeed))))
	sess := interp.NewSession(nil, -1)

	if interactive {
		fmt.Fprintln(c.LogOut, fmt.Sprintf("rlisp %v", config.ProductVersion))
		if lll, ok := logger.(*util.LogLevelLogger); ok {
			fmt.Fprint(c.LogOut, fmt.Sprintf("Log level: %v - ", lll.Level()))
		}
		fmt.Fprintln(c.LogOut, fmt.Sprintf("Root directory: %v", *c.Dir))
	}

	if c.EntryFile != "" {
		path := c.EntryFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(*c.Dir, path)
		}
		if err := c.evalFile(sess, path); err != nil {
			return err
		}
	}

	if !interactive {
		return nil
	}

	return c.runREPL(sess)
}

func (c *Console) evalFile(sess *rlisp.Session, path string) error {
	if ok, _ := fileutil.PathExists(path); !ok {
		return fmt.Errorf("no such file: %v", path)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	if *c.ShowAST {
		return printAST(c.LogOut, path, string(content))
	}

	v, err := sess.Eval(path, string(content))
	if err != nil {
		util.LogRuntimeError(c.Logger, err)
		return err
	}
	if v != nil {
		fmt.Fprintln(c.LogOut, v.String())
	}
	return nil
}

func printAST(w io.Writer, name string, source string) error {
	forms, err := parser.Parse(name, source)
	if err != nil {
		return err
	}
	for _, f := range forms {
		fmt.Fprintln(w, parser.PrettyPrint(f))
	}
	return nil
}

func (c *Console) runREPL(sess *rlisp.Session) error {
	var err error

	if c.Term == nil {
		c.Term, err = termutil.NewConsoleLineTerminal(os.Stdout)
		if err != nil {
			return err
		}
	}

	c.Term, err = termutil.AddHistoryMixin(c.Term, "", isExitLine)
	if err != nil {
		return err
	}

	if err := c.Term.StartTerm(); err != nil {
		return err
	}
	defer c.Term.StopTerm()

	fmt.Fprintln(c.LogOut, "Type 'q' or 'quit' to exit the shell")

	line, err := c.Term.NextLine()
	for err == nil && !isExitLine(line) {
		c.handleLine(sess, strings.TrimSpace(line))
		line, err = c.Term.NextLine()
	}

	return nil
}

func (c *Console) handleLine(sess *rlisp.Session, line string) {
	if line == "" {
		return
	}

	if *c.ShowAST {
		if err := printAST(c.Term, "console input", line); err != nil {
			c.Term.WriteString(fmt.Sprintln(err.Error()))
		}
		return
	}

	v, err := sess.Eval("console input", line)
	if err != nil {
		util.LogRuntimeError(c.Logger, err)
		c.Term.WriteString(fmt.Sprintln(err.Error()))
		return
	}
	if v != nil {
		c.Term.WriteString(fmt.Sprintln(v.String()))
	}
}

func isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}
