// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"errors"
	"testing"
)

func TestBonferroni(t *testing.T) {
	res, err := AdjustPValues([]float64{0.01, 0.04, 0.3}, []string{"a", "b", "c"}, Bonferroni)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.03, 0.12, 0.9}
	for i := range want {
		checkAeq(t, res.Labels[i], res.Adjusted[i], want[i])
		if res.Adjusted[i] < res.Original[i] {
			t.Errorf("%s: adjusted %v below original %v", res.Labels[i], res.Adjusted[i], res.Original[i])
		}
	}
	if !res.Significant[0] || res.Significant[1] || res.Significant[2] {
		t.Errorf("significance = %v, want [true false false]", res.Significant)
	}

	// With a single comparison Bonferroni is the identity.
	res, err = AdjustPValues([]float64{0.021}, nil, Bonferroni)
	if err != nil {
		t.Fatal(err)
	}
	checkAeq(t, "m=1", res.Adjusted[0], 0.021)

	// Adjusted values cap at 1.
	res, err = AdjustPValues([]float64{0.7, 0.8}, nil, Bonferroni)
	if err != nil {
		t.Fatal(err)
	}
	checkAeq(t, "cap[0]", res.Adjusted[0], 1)
	checkAeq(t, "cap[1]", res.Adjusted[1], 1)
}

func TestHolm(t *testing.T) {
	// Scaled by m-i in sorted order, then running max:
	// raw [0.05 0.08 0.09 0.08 0.05] -> [0.05 0.08 0.09 0.09 0.09].
	res, err := AdjustPValues([]float64{0.01, 0.02, 0.03, 0.04, 0.05}, nil, Holm)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.05, 0.08, 0.09, 0.09, 0.09}
	for i := range want {
		checkAeq(t, res.Labels[i], res.Adjusted[i], want[i])
	}
	// The smallest original is scaled by exactly m.
	checkAeq(t, "smallest", res.Adjusted[0], 0.01*5)

	// Original input order is preserved.
	res, err = AdjustPValues([]float64{0.03, 0.01, 0.04}, nil, Holm)
	if err != nil {
		t.Fatal(err)
	}
	want = []float64{0.06, 0.03, 0.06}
	for i := range want {
		checkAeq(t, res.Labels[i], res.Adjusted[i], want[i])
	}
}

func TestBenjaminiHochberg(t *testing.T) {
	// All raw adjustments equal 0.05; the running minimum keeps
	// them there.
	res, err := AdjustPValues([]float64{0.01, 0.02, 0.03, 0.04, 0.05}, nil, BenjaminiHochberg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range res.Adjusted {
		checkAeq(t, res.Labels[i], res.Adjusted[i], 0.05)
	}

	res, err = AdjustPValues([]float64{0.005, 0.04, 0.9}, nil, BenjaminiHochberg)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.015, 0.06, 0.9}
	for i := range want {
		checkAeq(t, res.Labels[i], res.Adjusted[i], want[i])
	}
	if !res.Significant[0] || res.Significant[1] || res.Significant[2] {
		t.Errorf("significance = %v, want [true false false]", res.Significant)
	}
}

func TestAdjustPValuesValidation(t *testing.T) {
	if _, err := AdjustPValues([]float64{0.01}, nil, Method("fdr-magic")); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("unknown method: err = %v, want ErrUnknownMethod", err)
	}
	if _, err := AdjustPValues([]float64{0.01, 0.02}, []string{"only one"}, Holm); !errors.Is(err, ErrMismatchedSamples) {
		t.Errorf("label mismatch: err = %v, want ErrMismatchedSamples", err)
	}
	if _, err := AdjustPValues([]float64{1.5}, nil, Bonferroni); !errors.Is(err, ErrPValueRange) {
		t.Errorf("p > 1: err = %v, want ErrPValueRange", err)
	}
	if _, err := AdjustPValues([]float64{-0.1}, nil, Bonferroni); !errors.Is(err, ErrPValueRange) {
		t.Errorf("p < 0: err = %v, want ErrPValueRange", err)
	}
}

func TestAdjustPValuesEmpty(t *testing.T) {
	res, err := AdjustPValues(nil, nil, Holm)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Adjusted) != 0 || len(res.Significant) != 0 {
		t.Errorf("empty input produced %d adjusted values", len(res.Adjusted))
	}
}
