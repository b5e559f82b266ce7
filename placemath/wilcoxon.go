// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// A WilcoxonResult is the result of a Wilcoxon signed-rank test.
type WilcoxonResult struct {
	// N is the number of pairs.
	N int

	// Median1 and Median2 are the sample medians.
	Median1, Median2 float64

	// W is the signed-rank statistic: the smaller of the rank sums
	// of the positive and negative differences. Zero differences
	// are dropped before ranking.
	W float64

	// Z and P come from the large-sample normal approximation of
	// the W distribution.
	Z float64
	P float64

	// EffectSize is |Z|/sqrt(n), a rank-based effect measure.
	EffectSize float64

	// Alpha is the significance level the test was run at, and
	// Significant reports whether P < Alpha.
	Alpha       float64
	Significant bool

	// CILo and CIHi are the order statistics of the paired
	// differences at the ceil(n*alpha/2) tail indexes, a coarse
	// confidence interval for the median difference.
	CILo, CIHi float64

	// Valid is false if every pair was tied, which leaves nothing
	// to rank.
	Valid bool
}

// WilcoxonSignedRank runs the Wilcoxon signed-rank test on the paired
// samples x1 and x2. The samples must have equal length of at least 5.
// A nil thr uses DefaultThresholds.
//
// The p-value uses the standard large-sample normal approximation of
// the signed-rank distribution; no exact tables are consulted.
func WilcoxonSignedRank(x1, x2 []float64, thr *Thresholds) (WilcoxonResult, error) {
	t := thresholdsOrDefault(thr)
	if err := checkSample(x1, minSampleSize); err != nil {
		return WilcoxonResult{}, fmt.Errorf("first sample: %w", err)
	}
	if err := checkSample(x2, minSampleSize); err != nil {
		return WilcoxonResult{}, fmt.Errorf("second sample: %w", err)
	}
	if len(x1) != len(x2) {
		return WilcoxonResult{}, ErrMismatchedSamples
	}

	n := len(x1)
	res := WilcoxonResult{
		N:       n,
		Median1: median(x1),
		Median2: median(x2),
		Alpha:   t.Alpha,
		Valid:   true,
	}

	diff := make([]float64, n)
	for i := range x1 {
		diff[i] = x1[i] - x2[i]
	}

	// Rank the magnitudes of the nonzero differences.
	var nz, abs []float64
	for _, d := range diff {
		if d != 0 {
			nz = append(nz, d)
			abs = append(abs, math.Abs(d))
		}
	}
	if len(nz) == 0 {
		// Every pair is tied; there is nothing to rank.
		res.Valid = false
		return res, nil
	}
	ranks := Ranks(abs)

	var wPlus, wMinus float64
	for i, d := range nz {
		if d > 0 {
			wPlus += ranks[i]
		} else {
			wMinus += ranks[i]
		}
	}
	res.W = math.Min(wPlus, wMinus)

	m := float64(len(nz))
	mu := m * (m + 1) / 4
	sigma := math.Sqrt(m * (m + 1) * (2*m + 1) / 24)
	res.Z = (res.W - mu) / sigma

	norm := distuv.Normal{Mu: 0, Sigma: 1}
	res.P = math.Min(1, 2*norm.Survival(math.Abs(res.Z)))
	res.EffectSize = math.Abs(res.Z) / math.Sqrt(float64(n))
	res.Significant = res.P < t.Alpha

	// Confidence interval for the median difference from the order
	// statistics of the differences.
	sorted := append([]float64(nil), diff...)
	sort.Float64s(sorted)
	k := int(math.Ceil(float64(n) * t.Alpha / 2))
	if k < 1 {
		k = 1
	}
	if k > n/2 {
		k = n / 2
	}
	res.CILo, res.CIHi = sorted[k-1], sorted[n-k]
	return res, nil
}
