// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"errors"
	"math"
	"testing"
)

func TestEffectSizes(t *testing.T) {
	// Means 10 and 8, both variances 2.5: d = 2/sqrt(2.5).
	x1 := []float64{8, 9, 10, 11, 12}
	x2 := []float64{6, 7, 8, 9, 10}
	res, err := EffectSizes(x1, x2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Valid {
		t.Fatal("result marked invalid")
	}
	d := 2 / math.Sqrt(2.5)
	checkAeq(t, "CohenD", res.CohenD, d)
	checkAeq(t, "HedgesG", res.HedgesG, d*(1-3.0/31))
	checkAeq(t, "GlassDelta", res.GlassDelta, d)
	checkAeq(t, "ProbSuperiority", res.ProbSuperiority, 19.0/25)
	if res.Magnitude != Large {
		t.Errorf("Magnitude = %q, want large", res.Magnitude)
	}
}

func TestEffectSizesZero(t *testing.T) {
	// Equal means with nonzero spread: all standardized measures 0.
	x1 := []float64{9, 10, 10, 10, 11}
	x2 := []float64{8, 10, 10, 10, 12}
	res, err := EffectSizes(x1, x2)
	if err != nil {
		t.Fatal(err)
	}
	checkAeq(t, "CohenD", res.CohenD+1, 1)
	checkAeq(t, "HedgesG", res.HedgesG+1, 1)
	if res.Magnitude != Negligible {
		t.Errorf("Magnitude = %q, want negligible", res.Magnitude)
	}
}

func TestEffectSizesDegenerate(t *testing.T) {
	c := []float64{5, 5, 5, 5, 5}
	res, err := EffectSizes(c, c)
	if err != nil {
		t.Fatal(err)
	}
	if res.Valid {
		t.Error("zero pooled variance not marked invalid")
	}
	if !math.IsNaN(res.CohenD) {
		t.Errorf("CohenD = %v, want NaN", res.CohenD)
	}
	// The rank-based surrogate is still defined.
	checkAeq(t, "ProbSuperiority", res.ProbSuperiority+1, 1)
}

func TestEffectSizesValidation(t *testing.T) {
	if _, err := EffectSizes([]float64{1, 2}, []float64{1, 2, 3, 4, 5}); !errors.Is(err, ErrSampleSize) {
		t.Errorf("short sample: err = %v, want ErrSampleSize", err)
	}
}

func TestInterpretEffect(t *testing.T) {
	for _, test := range []struct {
		d    float64
		want EffectMagnitude
	}{
		{0, Negligible},
		{0.19, Negligible},
		{-0.19, Negligible},
		{0.2, Small},
		{0.49, Small},
		{0.5, Medium},
		{-0.79, Medium},
		{0.8, Large},
		{-2.5, Large},
	} {
		if got := InterpretEffect(test.d); got != test.want {
			t.Errorf("InterpretEffect(%v) = %q, want %q", test.d, got, test.want)
		}
	}
}

func TestEtaSquaredFromF(t *testing.T) {
	checkAeq(t, "eta2", EtaSquaredFromF(2, 2, 12), 0.25)
	checkAeq(t, "eta2 zero F", EtaSquaredFromF(0, 2, 12)+1, 1)
}
