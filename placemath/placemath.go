// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placemath provides the statistical machinery for comparing
// the experimental performance of competing VM-placement heuristics.
//
// It implements classical and robust hypothesis tests (Student's
// t-test, Wilcoxon signed-rank, Kruskal-Wallis, one-way ANOVA),
// effect-size measures, multiple-comparison correction procedures, and
// approximate power analysis. Every entry point is a pure function
// over immutable inputs: no component retains state across calls, so
// all of them are safe to use concurrently.
//
// Validation problems (samples too small, mismatched paired lengths,
// unknown method names) are reported as errors before any computation
// starts. Numerical degeneracies discovered during a computation
// (such as zero variance) mark the returned result invalid instead,
// so a batch analysis over many metrics can skip one bad metric
// without losing the rest.
package placemath

import (
	"errors"
	"fmt"
	"math"
)

// Minimum sample size accepted by the two-sample tests.
const minSampleSize = 5

// Errors reported by validation before computation begins.
var (
	ErrSampleSize        = errors.New("sample is too small")
	ErrMismatchedSamples = errors.New("paired samples have different lengths")
	ErrGroupCount        = errors.New("too few groups")
	ErrNonFinite         = errors.New("sample contains NaN or Inf")
	ErrPValueRange       = errors.New("p-value outside [0, 1]")
	ErrEffectSize        = errors.New("effect size out of range")
	ErrUnknownMethod     = errors.New("unknown correction method")
	ErrUnknownTestKind   = errors.New("unknown power test kind")
)

// A Thresholds configures the fixed cutoffs used by the tests in this
// package.
//
// This should be initialized from DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// Alpha is the significance level below which a test rejects
	// the null hypothesis. This is typically 0.05.
	Alpha float64

	// EqualVarianceRatio is the largest ratio of the bigger to the
	// smaller sample variance that the t-test's equal-variance
	// check accepts. This is a fixed heuristic, not an F-test.
	EqualVarianceRatio float64
}

// DefaultThresholds contains a reasonable set of defaults for Thresholds.
var DefaultThresholds = Thresholds{
	Alpha:              0.05,
	EqualVarianceRatio: 3.0,
}

// thresholdsOrDefault resolves a possibly-nil *Thresholds argument.
func thresholdsOrDefault(t *Thresholds) Thresholds {
	if t == nil {
		return DefaultThresholds
	}
	return *t
}

// checkSample validates that xs has at least min finite values.
func checkSample(xs []float64, min int) error {
	if len(xs) < min {
		return fmt.Errorf("%w: have %d values, need at least %d", ErrSampleSize, len(xs), min)
	}
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}
