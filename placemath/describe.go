// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// A Description summarizes the distribution of a single sample.
type Description struct {
	N int

	Mean     float64
	Variance float64 // unbiased (n-1) sample variance
	StdDev   float64

	Min    float64
	P25    float64
	Median float64
	P75    float64
	P95    float64
	Max    float64

	// Skewness and Kurtosis are the bias-corrected sample skewness
	// and excess kurtosis. They are zero when the sample is too
	// small for the corrected estimators (n < 3 and n < 4).
	Skewness float64
	Kurtosis float64
}

// Describe computes descriptive statistics for xs. The input is not
// modified. An empty sample yields a zero Description.
func Describe(xs []float64) Description {
	d := Description{N: len(xs)}
	if len(xs) == 0 {
		return d
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	d.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		d.Variance = stat.Variance(xs, nil)
		d.StdDev = math.Sqrt(d.Variance)
	}
	d.Min = sorted[0]
	d.Max = sorted[len(sorted)-1]
	d.P25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	d.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	d.P75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	d.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	if len(xs) > 2 {
		d.Skewness = stat.Skew(xs, nil)
	}
	if len(xs) > 3 {
		d.Kurtosis = stat.ExKurtosis(xs, nil)
	}
	return d
}

// median returns the empirical median of xs without modifying it.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
