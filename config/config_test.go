/*
 * rlisp
 *
 * Copyright 2026 The rlisp Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(RandSeed); res != "0" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(RandSeed); res != 0 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Bool(MaxOps); res {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxOps); res != 0 {
		t.Error("Unexpected result:", res)
		return
	}
}
