//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package confusion computes precision, recall, f1-score and support
// from binary decision masks and binary targets, with macro, micro or
// per-class averaging.
package confusion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"trpc.group/trpc-go/trpc-clseval-go/label"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

// Result holds the computed confusion-based metrics. Each value is a
// scalar percentage under macro/micro averaging or a per-class vector
// when averaging is none; Support is a raw count, never a ratio.
type Result struct {
	Precision metric.Value
	Recall    metric.Value
	F1Score   metric.Value
	Support   metric.Value
}

// Calculate computes precision, recall, f1-score and support from
// prediction and target labels.
//
// Labels are normalized to dense (N, C) matrices first. Continuous
// prediction scores become binary calls through the configured
// decision rule: a threshold takes precedence over top-k, and with
// neither configured a threshold of 0.5 applies. Target cells are
// truncated to integers and counted positive when equal to 1.
// Percentages are scaled to [0, 100]; zero denominators yield 0.
func Calculate(pred, target label.Label, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	if !o.average.Valid() {
		return nil, fmt.Errorf("%w: unknown average %q", metric.ErrInvalidConfig, o.average)
	}
	if (pred.IsIndices() || target.IsIndices()) && o.numClasses <= 0 {
		return nil, fmt.Errorf("%w: num_classes is required for index-encoded labels",
			metric.ErrInvalidConfig)
	}
	predM, err := pred.Normalize(o.numClasses)
	if err != nil {
		return nil, fmt.Errorf("normalize pred: %w", err)
	}
	targetM, err := target.Normalize(o.numClasses)
	if err != nil {
		return nil, fmt.Errorf("normalize target: %w", err)
	}
	pr, pc := predM.Dims()
	tr, tc := targetM.Dims()
	if pr != tr || pc != tc {
		return nil, fmt.Errorf("%w: pred is (%d, %d), target is (%d, %d)",
			metric.ErrShapeMismatch, pr, pc, tr, tc)
	}

	if o.topK < 0 {
		return nil, fmt.Errorf("%w: topk must be positive, got %d", metric.ErrInvalidConfig, o.topK)
	}
	threshold := o.threshold
	if threshold == nil && o.topK == 0 {
		thr := metric.DefaultThreshold
		threshold = &thr
	}

	mask := positiveMask(predM, threshold, o.topK)
	tp, fp, fn := countConfusion(mask, targetM)
	return averageCounts(tp, fp, fn, o.average), nil
}

// countConfusion tallies per-class true positives, false positives and
// false negatives from a binary decision mask and a binary target.
func countConfusion(mask, target *mat.Dense) (tp, fp, fn []float64) {
	rows, cols := mask.Dims()
	tp = make([]float64, cols)
	fp = make([]float64, cols)
	fn = make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			positive := mask.At(i, j) == 1
			truth := int(target.At(i, j)) == 1
			switch {
			case positive && truth:
				tp[j]++
			case positive:
				fp[j]++
			case truth:
				fn[j]++
			}
		}
	}
	return tp, fp, fn
}

func averageCounts(tp, fp, fn []float64, average metric.Average) *Result {
	cols := len(tp)
	precision := make([]float64, cols)
	recall := make([]float64, cols)
	f1 := make([]float64, cols)
	support := make([]float64, cols)
	for j := 0; j < cols; j++ {
		precision[j] = safeRatio(tp[j], tp[j]+fp[j]) * 100
		recall[j] = safeRatio(tp[j], tp[j]+fn[j]) * 100
		f1[j] = safeRatio(2*precision[j]*recall[j], precision[j]+recall[j])
		support[j] = tp[j] + fn[j]
	}

	switch average {
	case metric.AverageMicro:
		tpSum, fpSum, fnSum := floats.Sum(tp), floats.Sum(fp), floats.Sum(fn)
		p := safeRatio(tpSum, tpSum+fpSum) * 100
		r := safeRatio(tpSum, tpSum+fnSum) * 100
		return &Result{
			Precision: metric.NewScalar(p),
			Recall:    metric.NewScalar(r),
			F1Score:   metric.NewScalar(safeRatio(2*p*r, p+r)),
			Support:   metric.NewScalar(tpSum + fnSum),
		}
	case metric.AverageNone:
		return &Result{
			Precision: metric.NewClasswise(precision),
			Recall:    metric.NewClasswise(recall),
			F1Score:   metric.NewClasswise(f1),
			Support:   metric.NewClasswise(support),
		}
	default: // macro
		return &Result{
			Precision: metric.NewScalar(mean(precision)),
			Recall:    metric.NewScalar(mean(recall)),
			F1Score:   metric.NewScalar(mean(f1)),
			Support:   metric.NewScalar(floats.Sum(support)),
		}
	}
}

// safeRatio divides with an explicit zero default so per-class ratios
// never propagate NaN.
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return floats.Sum(vals) / float64(len(vals))
}
