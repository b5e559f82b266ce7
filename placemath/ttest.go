// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// A TTestResult is the result of a paired or unpaired Student's t-test.
type TTestResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// Mean1, Mean2, StdDev1, and StdDev2 summarize the two samples.
	Mean1, Mean2     float64
	StdDev1, StdDev2 float64

	// MeanDiff is the estimated difference of means (or the mean of
	// the paired differences).
	MeanDiff float64

	// T is the t-statistic and DoF its degrees of freedom:
	// n-1 for the paired test, n1+n2-2 for the pooled unpaired test.
	T   float64
	DoF float64

	// P is the two-sided p-value.
	P float64

	// Alpha is the significance level the test was run at, and
	// Significant reports whether P < Alpha.
	Alpha       float64
	Significant bool

	// CILo and CIHi bound the (1-Alpha) confidence interval for
	// MeanDiff, computed from the t-distribution's critical value.
	CILo, CIHi float64

	// NormalityOK and EqualVarianceOK are advisory assumption
	// checks, not errors. When they fail, callers may prefer a
	// non-parametric alternative such as WilcoxonSignedRank.
	NormalityOK     bool
	EqualVarianceOK bool

	// Paired records which variant of the test was run.
	Paired bool

	// Valid is false if a numerical degeneracy (such as zero
	// variance in both samples) prevented the computation.
	Valid bool
}

// TTest compares the locations of x1 and x2 with Student's t-test.
//
// In paired mode the samples must have equal length and the test is
// run on the pairwise differences with n-1 degrees of freedom. In
// unpaired mode the variance is pooled with n1+n2-2 degrees of
// freedom. A nil thr uses DefaultThresholds.
//
// Paired differences that are exactly constant make the closed-form
// statistic diverge; the result then reports T = ±Inf and P = 0
// rather than failing, unless the constant is zero, in which case the
// result is marked invalid.
func TTest(x1, x2 []float64, paired bool, thr *Thresholds) (TTestResult, error) {
	t := thresholdsOrDefault(thr)
	if err := checkSample(x1, minSampleSize); err != nil {
		return TTestResult{}, fmt.Errorf("first sample: %w", err)
	}
	if err := checkSample(x2, minSampleSize); err != nil {
		return TTestResult{}, fmt.Errorf("second sample: %w", err)
	}
	if paired && len(x1) != len(x2) {
		return TTestResult{}, ErrMismatchedSamples
	}

	s1 := stats.Sample{Xs: x1}
	s2 := stats.Sample{Xs: x2}
	res := TTestResult{
		N1:      len(x1),
		N2:      len(x2),
		Mean1:   s1.Mean(),
		Mean2:   s2.Mean(),
		StdDev1: s1.StdDev(),
		StdDev2: s2.StdDev(),
		Alpha:   t.Alpha,
		Paired:  paired,
		Valid:   true,
	}
	res.MeanDiff = res.Mean1 - res.Mean2
	res.NormalityOK = normalityOK(x1) && normalityOK(x2)
	res.EqualVarianceOK = varianceRatioOK(s1.Variance(), s2.Variance(), t.EqualVarianceRatio)

	if paired {
		pairedTTest(&res, x1, x2, t)
	} else {
		unpairedTTest(&res, s1, s2, t)
	}
	if res.Valid {
		res.Significant = res.P < t.Alpha
	}
	return res, nil
}

func pairedTTest(res *TTestResult, x1, x2 []float64, t Thresholds) {
	n := len(x1)
	diff := make([]float64, n)
	for i := range x1 {
		diff[i] = x1[i] - x2[i]
	}
	meanD := stats.Mean(diff)
	sd := math.Sqrt(stats.Variance(diff))
	res.MeanDiff = meanD
	res.DoF = float64(n - 1)

	switch {
	case sd == 0 && meanD == 0:
		// The samples are identical pairwise; 0/0 carries no
		// information.
		res.Valid = false
	case sd == 0:
		// Every pair differs by exactly meanD. The statistic
		// diverges, so report certainty instead of failing.
		res.T = math.Inf(1)
		if meanD < 0 {
			res.T = math.Inf(-1)
		}
		res.P = 0
		res.CILo, res.CIHi = meanD, meanD
	default:
		tt, err := stats.OneSampleTTest(stats.Sample{Xs: diff}, 0, stats.LocationDiffers)
		if err != nil {
			res.Valid = false
			return
		}
		res.T, res.P = tt.T, tt.P
		se := sd / math.Sqrt(float64(n))
		crit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: res.DoF}.Quantile(1 - t.Alpha/2)
		res.CILo, res.CIHi = meanD-crit*se, meanD+crit*se
	}
}

func unpairedTTest(res *TTestResult, s1, s2 stats.Sample, t Thresholds) {
	n1, n2 := float64(res.N1), float64(res.N2)
	res.DoF = n1 + n2 - 2

	tt, err := stats.TwoSampleTTest(s1, s2, stats.LocationDiffers)
	if err != nil {
		// Zero variance in both samples. Contain the failure in
		// the result so batch callers can skip this metric.
		res.Valid = false
		return
	}
	res.T, res.P = tt.T, tt.P

	pooled := ((n1-1)*s1.Variance() + (n2-1)*s2.Variance()) / res.DoF
	se := math.Sqrt(pooled * (1/n1 + 1/n2))
	crit := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: res.DoF}.Quantile(1 - t.Alpha/2)
	res.CILo, res.CIHi = res.MeanDiff-crit*se, res.MeanDiff+crit*se
}

// normalityCritical is the 5% critical value of a chi-square
// distribution with 2 degrees of freedom, used as the cutoff for the
// skewness/kurtosis goodness-of-fit statistic below.
const normalityCritical = 5.99

// normalityOK approximates a normality check by combining the sample
// skewness and excess kurtosis into a Jarque-Bera-style statistic and
// comparing it against normalityCritical.
func normalityOK(xs []float64) bool {
	n := float64(len(xs))
	skew := stat.Skew(xs, nil)
	kurt := stat.ExKurtosis(xs, nil)
	jb := n / 6 * (skew*skew + kurt*kurt/4)
	// A NaN statistic (constant sample) fails the check.
	return jb < normalityCritical
}

// varianceRatioOK reports whether the larger of v1 and v2 is within
// maxRatio of the smaller. This is a fixed heuristic, not an F-test.
func varianceRatioOK(v1, v2, maxRatio float64) bool {
	lo, hi := math.Min(v1, v2), math.Max(v1, v2)
	if lo == 0 {
		return hi == 0
	}
	return hi/lo < maxRatio
}
