// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A PostHocResult is one pairwise comparison from the Dunn-style
// follow-up of a significant Kruskal-Wallis test.
type PostHocResult struct {
	// U is the Mann-Whitney U statistic for the pair (the smaller
	// of the two possible values, counting ties as 0.5).
	U float64

	// P is the two-sided p-value of the pairwise comparison.
	P float64

	// Significant reports whether P < Alpha at the level the
	// parent test was run at. Post-hoc p-values are reported raw;
	// apply AdjustPValues to control the family-wise error rate.
	Significant bool
}

// A KruskalWallisResult is the result of a Kruskal-Wallis rank test
// across three or more groups.
type KruskalWallisResult struct {
	// Groups is the number of groups and N the total number of
	// values across all of them.
	Groups int
	N      int

	// Labels and Medians describe the groups in input order.
	Labels  []string
	Medians []float64

	// H is the Kruskal-Wallis statistic (no tie correction) and
	// DoF its degrees of freedom (groups-1). P comes from the
	// chi-square survival function.
	H   float64
	DoF float64
	P   float64

	// Alpha is the significance level the test was run at, and
	// Significant reports whether P < Alpha.
	Alpha       float64
	Significant bool

	// PostHoc holds the pairwise comparisons keyed "A vs B". It is
	// populated only when the test is significant.
	PostHoc map[string]PostHocResult

	// Valid is false if a numerical degeneracy prevented the
	// computation.
	Valid bool
}

// KruskalWallis tests whether at least one of three or more groups
// tends to yield larger values than the others. All groups are ranked
// jointly through Ranks, so ties across groups are averaged exactly as
// in the other rank-based tests. A nil labels slice generates
// "group1", "group2", ... ; a non-nil slice must match len(groups).
// A nil thr uses DefaultThresholds.
//
// When the test is significant, every pair of groups is compared with
// a Mann-Whitney rank-sum test and the results are keyed "A vs B" in
// PostHoc.
func KruskalWallis(groups [][]float64, labels []string, thr *Thresholds) (KruskalWallisResult, error) {
	t := thresholdsOrDefault(thr)
	if len(groups) < 3 {
		return KruskalWallisResult{}, fmt.Errorf("%w: have %d groups, need at least 3", ErrGroupCount, len(groups))
	}
	if labels == nil {
		labels = make([]string, len(groups))
		for i := range labels {
			labels[i] = fmt.Sprintf("group%d", i+1)
		}
	} else if len(labels) != len(groups) {
		return KruskalWallisResult{}, fmt.Errorf("%w: %d labels for %d groups", ErrMismatchedSamples, len(labels), len(groups))
	}
	total := 0
	for i, g := range groups {
		if err := checkSample(g, 2); err != nil {
			return KruskalWallisResult{}, fmt.Errorf("group %q: %w", labels[i], err)
		}
		total += len(g)
	}

	res := KruskalWallisResult{
		Groups:  len(groups),
		N:       total,
		Labels:  append([]string(nil), labels...),
		Medians: make([]float64, len(groups)),
		DoF:     float64(len(groups) - 1),
		Alpha:   t.Alpha,
		Valid:   true,
	}

	// Joint ranking of all values.
	all := make([]float64, 0, total)
	for _, g := range groups {
		all = append(all, g...)
	}
	ranks := Ranks(all)

	// H = 12/(N(N+1)) * sum(R_i^2/n_i) - 3(N+1)
	bigN := float64(total)
	var sum float64
	off := 0
	for i, g := range groups {
		res.Medians[i] = median(g)
		var ri float64
		for j := range g {
			ri += ranks[off+j]
		}
		off += len(g)
		sum += ri * ri / float64(len(g))
	}
	res.H = 12/(bigN*(bigN+1))*sum - 3*(bigN+1)
	if math.IsNaN(res.H) || math.IsInf(res.H, 0) {
		res.Valid = false
		return res, nil
	}
	// Rounding can push an all-tied H slightly negative.
	if res.H < 0 {
		res.H = 0
	}
	res.P = distuv.ChiSquared{K: res.DoF}.Survival(res.H)
	res.Significant = res.P < t.Alpha

	if res.Significant {
		res.PostHoc = postHocPairs(groups, labels, t.Alpha)
	}
	return res, nil
}

// postHocPairs runs a Mann-Whitney U-test for every pair of groups.
func postHocPairs(groups [][]float64, labels []string, alpha float64) map[string]PostHocResult {
	out := make(map[string]PostHocResult)
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			key := labels[i] + " vs " + labels[j]
			u, err := stats.MannWhitneyUTest(groups[i], groups[j], stats.LocationDiffers)
			if err != nil {
				// All values equal; no detectable difference.
				out[key] = PostHocResult{U: math.NaN(), P: 1}
				continue
			}
			out[key] = PostHocResult{U: u.U, P: u.P, Significant: u.P < alpha}
		}
	}
	return out
}
