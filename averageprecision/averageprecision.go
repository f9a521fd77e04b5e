//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package averageprecision computes per-class ranking-based average
// precision from continuous scores and binary relevance. The
// precision-recall curve is piecewise constant, so the summation is
// exact and involves no interpolation.
package averageprecision

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"trpc.group/trpc-go/trpc-clseval-go/label"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// eps guards the division by the positive count so a class without
// any true positives yields AP 0 instead of NaN. Same magnitude as
// the float32 machine epsilon.
const eps = 1.1920929e-07

// Calculate computes the average precision of each class.
//
// Target cells hold 1 (relevant), 0 (not relevant) or -1 (ignore:
// such sample/class pairs are dropped for that class only). Samples
// are ranked by predicted score descending with a stable sort; ties
// keep their incoming order and no stronger guarantee is made.
// Supported averaging modes are macro (mean AP ×100 as a scalar) and
// none (per-class AP vector ×100). Index-encoded labels are rejected.
func Calculate(pred, target label.Label, average metric.Average) (metric.Value, error) {
	if average != metric.AverageMacro && average != metric.AverageNone {
		return metric.Value{}, fmt.Errorf("%w: average %q is not supported for average precision, "+
			"choose from %q or %q", metric.ErrInvalidConfig, average, metric.AverageMacro, metric.AverageNone)
	}
	if pred.IsIndices() || target.IsIndices() {
		return metric.Value{}, fmt.Errorf("%w: average precision requires score matrices, "+
			"not index-encoded labels", metric.ErrUnsupportedLabel)
	}
	predM, err := pred.Normalize(0)
	if err != nil {
		return metric.Value{}, fmt.Errorf("normalize pred: %w", err)
	}
	targetM, err := target.Normalize(0)
	if err != nil {
		return metric.Value{}, fmt.Errorf("normalize target: %w", err)
	}
	pr, pc := predM.Dims()
	tr, tc := targetM.Dims()
	if pr != tr || pc != tc {
		return metric.Value{}, fmt.Errorf("%w: pred is (%d, %d), target is (%d, %d)",
			metric.ErrShapeMismatch, pr, pc, tr, tc)
	}

	ap := make([]float64, pc)
	for c := 0; c < pc; c++ {
		ap[c] = classAP(predM, targetM, c) * 100
	}
	if average == metric.AverageMacro {
		return metric.NewScalar(floats.Sum(ap) / float64(len(ap))), nil
	}
	return metric.NewClasswise(ap), nil
}

// classAP walks column c of the matrices in descending score order,
// accumulating precision at each rank whose sample is a true positive.
func classAP(pred, target *mat.Dense, c int) float64 {
	rows, _ := pred.Dims()

	// drop ignored samples for this class only
	valid := make([]int, 0, rows)
	for i := 0; i < rows; i++ {
		if target.At(i, c) > -1 {
			valid = append(valid, i)
		}
	}
	sort.SliceStable(valid, func(a, b int) bool {
		return pred.At(valid[a], c) > pred.At(valid[b], c)
	})

	cumTruePositives := 0.0
	precisionSum := 0.0
	for rank, i := range valid {
		if target.At(i, c) == 1 {
			cumTruePositives++
			precisionSum += cumTruePositives / float64(rank+1)
		}
	}
	return precisionSum / math.Max(cumTruePositives, eps)
}
