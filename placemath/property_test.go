// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRankProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("ranks sum to n(n+1)/2", prop.ForAll(
		func(xs []float64) bool {
			var sum float64
			for _, r := range Ranks(xs) {
				sum += r
			}
			n := float64(len(xs))
			return math.Abs(sum-n*(n+1)/2) < 1e-6
		},
		gen.SliceOf(gen.Float64Range(-1e6, 1e6)),
	))

	properties.Property("equal values share a rank", prop.ForAll(
		func(xs []float64) bool {
			ranks := Ranks(xs)
			for i := range xs {
				for j := range xs {
					if xs[i] == xs[j] && ranks[i] != ranks[j] {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(-5, 5).Map(math.Trunc)),
	))

	properties.TestingRun(t)
}

func TestCorrectionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	genPValues := gen.SliceOf(gen.Float64Range(0, 1))

	properties.Property("bonferroni never shrinks and caps at 1", prop.ForAll(
		func(ps []float64) bool {
			res, err := AdjustPValues(ps, nil, Bonferroni)
			if err != nil {
				return false
			}
			for i, adj := range res.Adjusted {
				if adj < ps[i] || adj > 1 {
					return false
				}
			}
			return true
		},
		genPValues,
	))

	properties.Property("holm is monotone in sorted order", prop.ForAll(
		func(ps []float64) bool {
			res, err := AdjustPValues(ps, nil, Holm)
			if err != nil {
				return false
			}
			return monotoneInSortedOrder(ps, res.Adjusted)
		},
		genPValues,
	))

	properties.Property("benjamini-hochberg is monotone in sorted order", prop.ForAll(
		func(ps []float64) bool {
			res, err := AdjustPValues(ps, nil, BenjaminiHochberg)
			if err != nil {
				return false
			}
			return monotoneInSortedOrder(ps, res.Adjusted)
		},
		genPValues,
	))

	properties.TestingRun(t)
}

// monotoneInSortedOrder checks that adjusted p-values never decrease
// when the comparisons are visited in ascending original-p order.
func monotoneInSortedOrder(ps, adjusted []float64) bool {
	order := ascendingOrder(ps)
	prev := 0.0
	for _, idx := range order {
		if adjusted[idx] < prev {
			return false
		}
		prev = adjusted[idx]
	}
	return true
}

func TestPowerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("power is non-decreasing in sample size", prop.ForAll(
		func(n1, n2 int, es float64) bool {
			if n1 > n2 {
				n1, n2 = n2, n1
			}
			lo, err := Power(n1, es, 0.05, PowerTTest)
			if err != nil {
				return false
			}
			hi, err := Power(n2, es, 0.05, PowerTTest)
			if err != nil {
				return false
			}
			return hi.Power >= lo.Power-1e-12
		},
		gen.IntRange(5, 500),
		gen.IntRange(5, 500),
		gen.Float64Range(0, 2),
	))

	properties.Property("minimum sample size meets its target", prop.ForAll(
		func(es float64) bool {
			n, err := MinSampleSize(0.8, es, 0.05, PowerTTest)
			if err != nil {
				return false
			}
			if n == maxPowerN {
				// Out of range for this effect size.
				return true
			}
			res, err := Power(n, es, 0.05, PowerTTest)
			return err == nil && res.Power >= 0.8
		},
		gen.Float64Range(0.1, 2),
	))

	properties.TestingRun(t)
}
