// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"
	"sort"
)

// A Method names a multiple-comparison correction procedure.
type Method string

const (
	// Bonferroni multiplies every p-value by the number of
	// comparisons. It controls the family-wise error rate and is
	// the most conservative of the three.
	Bonferroni Method = "bonferroni"

	// Holm is the step-down refinement of Bonferroni. It controls
	// the family-wise error rate with more power.
	Holm Method = "holm"

	// BenjaminiHochberg is the step-up procedure controlling the
	// false discovery rate.
	BenjaminiHochberg Method = "bh"
)

// correctionAlpha is the fixed significance threshold applied to
// adjusted p-values.
const correctionAlpha = 0.05

// A CorrectionResult carries adjusted p-values in the original input
// order together with the post-correction significance decisions.
type CorrectionResult struct {
	Method Method

	// Labels and Original are the comparison labels and raw
	// p-values as passed in.
	Labels   []string
	Original []float64

	// Adjusted are the corrected p-values, parallel to Original.
	Adjusted []float64

	// Significant reports, per comparison, whether the adjusted
	// p-value is below Alpha.
	Significant []bool

	// Alpha is the fixed post-correction threshold (0.05).
	Alpha float64
}

// AdjustPValues corrects the given p-values for multiple comparisons
// using the named method. Labels may be nil, in which case
// "comparison1", "comparison2", ... are generated; a non-nil slice
// must be parallel to pValues. An unknown method is a configuration
// error, never a silent fallback.
func AdjustPValues(pValues []float64, labels []string, method Method) (CorrectionResult, error) {
	if labels == nil {
		labels = make([]string, len(pValues))
		for i := range labels {
			labels[i] = fmt.Sprintf("comparison%d", i+1)
		}
	} else if len(labels) != len(pValues) {
		return CorrectionResult{}, fmt.Errorf("%w: %d labels for %d p-values", ErrMismatchedSamples, len(labels), len(pValues))
	}
	for i, p := range pValues {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return CorrectionResult{}, fmt.Errorf("%w: p[%d] = %v", ErrPValueRange, i, p)
		}
	}

	var adjusted []float64
	switch method {
	case Bonferroni:
		adjusted = bonferroni(pValues)
	case Holm:
		adjusted = holm(pValues)
	case BenjaminiHochberg:
		adjusted = benjaminiHochberg(pValues)
	default:
		return CorrectionResult{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	res := CorrectionResult{
		Method:      method,
		Labels:      append([]string(nil), labels...),
		Original:    append([]float64(nil), pValues...),
		Adjusted:    adjusted,
		Significant: make([]bool, len(pValues)),
		Alpha:       correctionAlpha,
	}
	for i, p := range adjusted {
		res.Significant[i] = p < correctionAlpha
	}
	return res, nil
}

func bonferroni(ps []float64) []float64 {
	m := float64(len(ps))
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = math.Min(p*m, 1)
	}
	return out
}

// ascendingOrder returns the indexes of ps sorted by ascending p-value.
func ascendingOrder(ps []float64) []int {
	order := make([]int, len(ps))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ps[order[a]] < ps[order[b]] })
	return order
}

// holm applies the step-down procedure: the i'th smallest p-value is
// scaled by m-i and the sequence is made monotone non-decreasing in
// sorted order with a running maximum.
func holm(ps []float64) []float64 {
	m := len(ps)
	order := ascendingOrder(ps)
	out := make([]float64, m)
	running := 0.0
	for i, idx := range order {
		adj := math.Min(ps[idx]*float64(m-i), 1)
		running = math.Max(running, adj)
		out[idx] = running
	}
	return out
}

// benjaminiHochberg applies the step-up procedure: the i'th smallest
// p-value is scaled by m/(i+1) and the sequence is made monotone with
// a running minimum from the largest rank downward.
func benjaminiHochberg(ps []float64) []float64 {
	m := len(ps)
	order := ascendingOrder(ps)
	out := make([]float64, m)
	running := 1.0
	for i := m - 1; i >= 0; i-- {
		idx := order[i]
		adj := math.Min(ps[idx]*float64(m)/float64(i+1), 1)
		running = math.Min(running, adj)
		out[idx] = running
	}
	return out
}
