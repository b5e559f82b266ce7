// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"math"
	"testing"
)

// aeq reports whether x and y are equal to 8 digits.
func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	const factor = 1 - 1e-7
	return x*factor <= y && y*factor <= x
}

// near reports whether x is within tol of y.
func near(x, y, tol float64) bool {
	return math.Abs(x-y) <= tol
}

func checkAeq(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !aeq(got, want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func checkNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if !near(got, want, tol) {
		t.Errorf("%s: got %v, want %v (±%v)", name, got, want, tol)
	}
}
