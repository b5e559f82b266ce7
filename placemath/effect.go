// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// An EffectMagnitude is the categorical interpretation of a
// Cohen's-d-scale effect size.
type EffectMagnitude string

const (
	Negligible EffectMagnitude = "negligible"
	Small      EffectMagnitude = "small"
	Medium     EffectMagnitude = "medium"
	Large      EffectMagnitude = "large"
)

// Interpretation thresholds on |d| (Cohen's conventional values).
const (
	smallEffect  = 0.2
	mediumEffect = 0.5
	largeEffect  = 0.8
)

// An EffectSizeResult carries standardized, scale-free measures of the
// magnitude of difference between two samples.
type EffectSizeResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// CohenD is the difference of means over the pooled standard
	// deviation.
	CohenD float64

	// HedgesG is Cohen's d with a small-sample bias correction.
	HedgesG float64

	// GlassDelta standardizes by the second sample's standard
	// deviation only, for use when the variances are unequal.
	GlassDelta float64

	// ProbSuperiority is the fraction of all (v1, v2) cross-pairs
	// where v1 > v2, a non-parametric effect surrogate.
	ProbSuperiority float64

	// Magnitude interprets |CohenD| against the conventional
	// 0.2/0.5/0.8 thresholds.
	Magnitude EffectMagnitude

	// Valid is false if the pooled standard deviation is zero,
	// which leaves the standardized measures undefined.
	// ProbSuperiority is computed regardless.
	Valid bool
}

// EffectSizes computes Cohen's d, Hedges' g, Glass's delta, and the
// probability of superiority for two samples.
//
// The probability of superiority is computed over the full cross
// product, so its cost is O(n1*n2).
func EffectSizes(x1, x2 []float64) (EffectSizeResult, error) {
	if err := checkSample(x1, minSampleSize); err != nil {
		return EffectSizeResult{}, fmt.Errorf("first sample: %w", err)
	}
	if err := checkSample(x2, minSampleSize); err != nil {
		return EffectSizeResult{}, fmt.Errorf("second sample: %w", err)
	}

	n1, n2 := float64(len(x1)), float64(len(x2))
	m1, m2 := stats.Mean(x1), stats.Mean(x2)
	v1, v2 := stats.Variance(x1), stats.Variance(x2)

	res := EffectSizeResult{
		N1:              len(x1),
		N2:              len(x2),
		ProbSuperiority: probSuperiority(x1, x2),
		Valid:           true,
	}

	pooled := math.Sqrt(((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2))
	if pooled == 0 {
		res.CohenD = math.NaN()
		res.HedgesG = math.NaN()
		res.GlassDelta = math.NaN()
		res.Valid = false
		return res, nil
	}
	res.CohenD = (m1 - m2) / pooled
	res.HedgesG = res.CohenD * (1 - 3/(4*(n1+n2)-9))
	if v2 > 0 {
		res.GlassDelta = (m1 - m2) / math.Sqrt(v2)
	} else {
		res.GlassDelta = math.NaN()
	}
	res.Magnitude = InterpretEffect(res.CohenD)
	return res, nil
}

// InterpretEffect bands a Cohen's-d-scale effect size by its absolute
// value: negligible below 0.2, small below 0.5, medium below 0.8, and
// large otherwise.
func InterpretEffect(d float64) EffectMagnitude {
	switch a := math.Abs(d); {
	case a < smallEffect:
		return Negligible
	case a < mediumEffect:
		return Small
	case a < largeEffect:
		return Medium
	default:
		return Large
	}
}

// EtaSquaredFromF approximates eta-squared from an F-statistic as
// F*dfB / (F*dfB + dfW). This is cheaper than recomputing the sums of
// squares and gives consistent answers when only F is available.
func EtaSquaredFromF(f, dfBetween, dfWithin float64) float64 {
	denom := f*dfBetween + dfWithin
	if denom == 0 {
		return 0
	}
	return f * dfBetween / denom
}

// probSuperiority counts the cross-pairs where the first sample's
// value is strictly greater.
func probSuperiority(x1, x2 []float64) float64 {
	var wins int
	for _, a := range x1 {
		for _, b := range x2 {
			if a > b {
				wins++
			}
		}
	}
	return float64(wins) / float64(len(x1)*len(x2))
}
