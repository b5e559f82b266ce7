// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import "sort"

// Ranks assigns 1-based ranks to the values in xs, returned in the
// same order as the input. Tied values (compared exactly) receive the
// average of the ranks they would occupy if perturbed apart, so
// ranking [5, 5, 1] yields [2.5, 2.5, 1]. The input is not modified.
//
// The Wilcoxon signed-rank and Kruskal-Wallis tests both rank through
// this function so their tie handling is identical.
func Ranks(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		// Find the maximal run [i, j) of equal values in sorted
		// order and give every member the mean of ranks i+1..j.
		j := i + 1
		for j < len(idx) && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		r := float64(i+j+1) / 2
		for ; i < j; i++ {
			ranks[idx[i]] = r
		}
	}
	return ranks
}
