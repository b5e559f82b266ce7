// Copyright 2026 The PlacePerf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placemath

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// An AnovaResult is the result of a one-way analysis of variance.
type AnovaResult struct {
	// Groups is the number of groups and N the total number of
	// values across all of them.
	Groups int
	N      int

	// GroupMeans are the per-group means in input order.
	GroupMeans []float64

	// F is the F-statistic with DFBetween and DFWithin degrees of
	// freedom. P comes from the F distribution's survival function.
	F                   float64
	DFBetween, DFWithin float64
	P                   float64

	// Alpha is the significance level the test was run at, and
	// Significant reports whether P < Alpha.
	Alpha       float64
	Significant bool

	// EtaSquared is the effect size, approximated from F (see
	// EtaSquaredFromF).
	EtaSquared float64

	// Valid is false if the within-group variance is zero, which
	// leaves the F-statistic undefined.
	Valid bool
}

// OneWayANOVA tests whether the means of two or more groups differ.
// Each group needs at least two finite values. A nil thr uses
// DefaultThresholds.
func OneWayANOVA(groups [][]float64, thr *Thresholds) (AnovaResult, error) {
	t := thresholdsOrDefault(thr)
	if len(groups) < 2 {
		return AnovaResult{}, fmt.Errorf("%w: have %d groups, need at least 2", ErrGroupCount, len(groups))
	}
	total := 0
	for i, g := range groups {
		if err := checkSample(g, 2); err != nil {
			return AnovaResult{}, fmt.Errorf("group %d: %w", i+1, err)
		}
		total += len(g)
	}

	res := AnovaResult{
		Groups:     len(groups),
		N:          total,
		GroupMeans: make([]float64, len(groups)),
		DFBetween:  float64(len(groups) - 1),
		DFWithin:   float64(total - len(groups)),
		Alpha:      t.Alpha,
		Valid:      true,
	}

	var grand float64
	for i, g := range groups {
		res.GroupMeans[i] = stats.Mean(g)
		grand += res.GroupMeans[i] * float64(len(g))
	}
	grand /= float64(total)

	var ssBetween, ssWithin float64
	for i, g := range groups {
		d := res.GroupMeans[i] - grand
		ssBetween += d * d * float64(len(g))
		for _, v := range g {
			e := v - res.GroupMeans[i]
			ssWithin += e * e
		}
	}

	if ssWithin == 0 {
		// Zero within-group variance leaves F undefined.
		res.Valid = false
		return res, nil
	}
	msBetween := ssBetween / res.DFBetween
	msWithin := ssWithin / res.DFWithin
	res.F = msBetween / msWithin
	res.P = distuv.F{D1: res.DFBetween, D2: res.DFWithin}.Survival(res.F)
	res.Significant = res.P < t.Alpha
	res.EtaSquared = EtaSquaredFromF(res.F, res.DFBetween, res.DFWithin)
	return res, nil
}
