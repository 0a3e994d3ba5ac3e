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
	"os"

	"github.com/arvosystems/rlisp/config"
)

func main() {

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s <command>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("rlisp %v - sandboxed business rule evaluator", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    console   Interactive console (default)")
		fmt.Println("    run       Execute an rlisp source file")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[1:]); err == nil {
		console := NewConsole()

		if len(flag.Args()) > 0 {
			switch flag.Args()[0] {
			case "console":
				err = console.Run(true)
			case "run":
				err = console.Run(false)
			default:
				flag.Usage()
			}
		} else {
			err = console.Run(true)
		}

		if err != nil {
			fmt.Println(fmt.Sprintf("Error: %v", err))
			os.Exit(1)
		}
	}
}
