// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/vmplace/placeperf/placemath"
	"github.com/vmplace/placeperf/placestat"
)

func TestUsageExits(t *testing.T) {
	defer func(old func(int)) { exit = old }(exit)
	var code = -1
	exit = func(c int) { code = c }
	usage()
	if code != 2 {
		t.Errorf("usage() exited with %d, want 2", code)
	}
}

func TestTestNames(t *testing.T) {
	for name, want := range map[string]placestat.Test{
		"ttest":    placestat.TTest,
		"wilcoxon": placestat.Wilcoxon,
		"utest":    placestat.UTest,
	} {
		if got := testNames[name]; got != want {
			t.Errorf("testNames[%q] = %q, want %q", name, got, want)
		}
	}
	if _, ok := testNames["anova"]; ok {
		t.Errorf("testNames accepts %q", "anova")
	}
}

func TestCorrectionNames(t *testing.T) {
	for name, want := range map[string]placemath.Method{
		"":           "",
		"none":       "",
		"bonferroni": placemath.Bonferroni,
		"holm":       placemath.Holm,
		"bh":         placemath.BenjaminiHochberg,
		"fdr":        placemath.BenjaminiHochberg,
	} {
		got, ok := correctionNames[name]
		if !ok || got != want {
			t.Errorf("correctionNames[%q] = %q, %v, want %q", name, got, ok, want)
		}
	}
	if _, ok := correctionNames["sidak"]; ok {
		t.Errorf("correctionNames accepts %q", "sidak")
	}
}
