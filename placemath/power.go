// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A TestKind names the experimental design a power analysis is
// computed for.
type TestKind string

const (
	// PowerTTest is a two-sample t-test design; the effect size is
	// Cohen's d and n is the per-group sample size.
	PowerTTest TestKind = "t-test"

	// PowerANOVA is a one-way ANOVA design; the effect size is
	// Cohen's f and n is the total sample size.
	PowerANOVA TestKind = "anova"

	// PowerCorrelation is a correlation design; the effect size is
	// the correlation coefficient r, |r| < 1.
	PowerCorrelation TestKind = "correlation"
)

// Bounds of the sample-size search in MinSampleSize.
const (
	minPowerN = 5
	maxPowerN = 10000
)

// A PowerResult carries the computed power of a design together with
// the minimum sample sizes reaching the conventional 80% and 90%
// targets under the same effect size and significance level.
type PowerResult struct {
	N          int
	EffectSize float64
	Alpha      float64
	Kind       TestKind

	// Power is the probability of correctly rejecting a false null
	// hypothesis under this design.
	Power float64

	// MinN80 and MinN90 are the smallest sample sizes in
	// [5, 10000] whose power reaches 0.80 and 0.90. They are
	// capped at 10000 when no size in range suffices.
	MinN80, MinN90 int
}

// Power computes the statistical power of a design via a normal
// approximation to the appropriate non-central distribution: a shifted
// normal for the non-central t (t-test) and non-central chi-square
// (ANOVA), and the Fisher z-transform for correlation. These are
// approximations chosen for implementation simplicity; they are not
// the exact non-central distributions.
func Power(n int, effectSize, alpha float64, kind TestKind) (PowerResult, error) {
	if err := checkPowerArgs(n, effectSize, alpha, kind); err != nil {
		return PowerResult{}, err
	}
	res := PowerResult{
		N:          n,
		EffectSize: effectSize,
		Alpha:      alpha,
		Kind:       kind,
		Power:      powerAt(n, effectSize, alpha, kind),
	}
	res.MinN80 = searchMinN(0.80, effectSize, alpha, kind)
	res.MinN90 = searchMinN(0.90, effectSize, alpha, kind)
	return res, nil
}

// MinSampleSize returns the smallest sample size in [5, 10000] whose
// power reaches target, found by monotone binary search: power is
// non-decreasing in the sample size for a fixed effect size and
// significance level. The result is capped at 10000 when no size in
// range reaches the target.
func MinSampleSize(target, effectSize, alpha float64, kind TestKind) (int, error) {
	if err := checkPowerArgs(minPowerN, effectSize, alpha, kind); err != nil {
		return 0, err
	}
	if target <= 0 || target >= 1 {
		return 0, fmt.Errorf("%w: power target %v outside (0, 1)", ErrPValueRange, target)
	}
	return searchMinN(target, effectSize, alpha, kind), nil
}

func checkPowerArgs(n int, effectSize, alpha float64, kind TestKind) error {
	if n < minPowerN {
		return fmt.Errorf("%w: n = %d, need at least %d", ErrSampleSize, n, minPowerN)
	}
	if math.IsNaN(effectSize) || math.IsInf(effectSize, 0) {
		return fmt.Errorf("%w: effect size %v", ErrNonFinite, effectSize)
	}
	if alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: alpha %v outside (0, 1)", ErrPValueRange, alpha)
	}
	switch kind {
	case PowerTTest, PowerANOVA:
	case PowerCorrelation:
		if math.Abs(effectSize) >= 1 {
			return fmt.Errorf("%w: correlation %v not in (-1, 1)", ErrEffectSize, effectSize)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTestKind, kind)
	}
	return nil
}

// powerAt evaluates the normal-approximation power at sample size n.
// It is monotone non-decreasing in n for every kind, which is what
// justifies the binary search in searchMinN.
func powerAt(n int, effectSize, alpha float64, kind TestKind) float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	es := math.Abs(effectSize)
	switch kind {
	case PowerTTest:
		// Non-central t with ncp = d*sqrt(n/2), approximated by
		// a unit normal shifted by the ncp.
		ncp := es * math.Sqrt(float64(n)/2)
		crit := norm.Quantile(1 - alpha/2)
		return norm.CDF(ncp-crit) + norm.CDF(-ncp-crit)
	case PowerANOVA:
		// Non-central chi-square with ncp = f^2*n, approximated
		// by a unit normal shifted by sqrt(ncp). The chi-square
		// test is one-tailed.
		ncp := es * math.Sqrt(float64(n))
		crit := norm.Quantile(1 - alpha)
		return norm.CDF(ncp - crit)
	case PowerCorrelation:
		// Fisher z-transform: atanh(r) is approximately normal
		// with standard error 1/sqrt(n-3).
		z := math.Atanh(es)
		crit := norm.Quantile(1 - alpha/2)
		return norm.CDF(z*math.Sqrt(float64(n-3)) - crit)
	}
	return 0
}

// searchMinN finds the smallest n in [minPowerN, maxPowerN] with
// powerAt(n) >= target. The interval halves until it collapses; the
// whole search takes at most ~14 power evaluations.
func searchMinN(target, effectSize, alpha float64, kind TestKind) int {
	lo, hi := minPowerN, maxPowerN
	for lo < hi {
		mid := (lo + hi) / 2
		if powerAt(mid, effectSize, alpha, kind) >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
