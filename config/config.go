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
Package config holds the default knobs an Interpreter is constructed
with when the embedder does not override them explicitly (spec.md
§6). None of these affect the language's semantics - only the
sandbox's default operation limit and the default seed of "rand".
*/
package config

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of rlisp.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options for rlisp.
*/
const (
	// MaxOps is the default operation cap (spec.md §4.5). 0 means
	// unbounded - callers that embed untrusted rule sources should
	// always override this per Interpreter or per Run.
	MaxOps = "MaxOps"

	// RandSeed seeds the "rand" built-in (spec.md §4.4). 0 means seed
	// from crypto-quality entropy at Interpreter construction
	// (rlisp.New/rlisp.resolveSeed); a non-zero value is used as-is,
	// which rlisp.WithRandSeed relies on for reproducible tests.
	RandSeed = "RandSeed"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	MaxOps:   0,
	RandSeed: 0,
}

/*
Config is the actual config which is used
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
