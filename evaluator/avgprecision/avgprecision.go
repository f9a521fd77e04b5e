//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

// Package avgprecision provides the evaluator for class-wise average
// precision (mAP) of multi-label classification predictions.
package avgprecision

import (
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-clseval-go/averageprecision"
	"trpc.group/trpc-go/trpc-clseval-go/evalsample"
	"trpc.group/trpc-go/trpc-clseval-go/evaluator"
	"trpc.group/trpc-go/trpc-clseval-go/label"
	"trpc.group/trpc-go/trpc-clseval-go/metric"
)

type options struct {
	average metric.Average
	prefix  *string
}

// Option configures the average precision evaluator.
type Option func(*options)

// WithAverage sets the averaging mode, macro or none. Defaults to macro.
func WithAverage(a metric.Average) Option {
	return func(o *options) {
		o.average = a
	}
}

// WithPrefix overrides the default "multi-label" metric name prefix.
// An empty prefix disables prefixing.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = &prefix
	}
}

// Evaluator accumulates per-sample prediction scores and relevance
// targets, and computes per-class average precision at Compute time.
type Evaluator struct {
	average metric.Average
	prefix  string
	results []*evaluator.Result
}

// New creates an average precision evaluator.
func New(opts ...Option) (*Evaluator, error) {
	o := &options{average: metric.AverageMacro}
	for _, opt := range opts {
		opt(o)
	}
	if o.average != metric.AverageMacro && o.average != metric.AverageNone {
		return nil, fmt.Errorf("%w: average %q is not supported for average precision",
			metric.ErrInvalidConfig, o.average)
	}
	prefix := metric.DefaultMultiLabelPrefix
	if o.prefix != nil {
		prefix = *o.prefix
	}
	return &Evaluator{average: o.average, prefix: prefix}, nil
}

// Name returns the canonical metric name supported by this evaluator.
func (e *Evaluator) Name() string { return metric.MetricAveragePrecision }

// Description explains what the evaluator measures.
func (e *Evaluator) Description() string {
	return "Computes the average precision with respect of classes from ranked prediction scores"
}

// Process consumes one batch of data samples. Each sample must carry
// per-class prediction scores; index-encoded ground truth is expanded
// to one-hot rows of the prediction's width.
func (e *Evaluator) Process(samples []*evalsample.DataSample) error {
	for i, sample := range samples {
		if sample == nil {
			continue
		}
		if !sample.PredLabel.HasScore() {
			return fmt.Errorf("sample %d: %w: sample is missing pred_label.score",
				i, metric.ErrUnsupportedLabel)
		}
		res := &evaluator.Result{
			PredScore: append([]float64(nil), sample.PredLabel.Score...),
		}
		if sample.GTLabel.HasScore() {
			res.GTScore = append([]float64(nil), sample.GTLabel.Score...)
		} else {
			gtScore, err := oneHot(sample.GTLabel.Label, len(sample.PredLabel.Score))
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			res.GTScore = gtScore
		}
		e.results = append(e.results, res)
	}
	return nil
}

// Results returns the accumulated per-sample records.
func (e *Evaluator) Results() []*evaluator.Result { return e.results }

// Reset clears the accumulated records.
func (e *Evaluator) Reset() { e.results = nil }

// Compute stacks the given records and renders "mAP" (macro) or
// "AP_classwise" (per class), under the configured prefix.
func (e *Evaluator) Compute(results []*evaluator.Result) (metric.Values, error) {
	if len(results) == 0 {
		return nil, errors.New("no accumulated results to compute")
	}
	predRows := make([][]float64, 0, len(results))
	gtRows := make([][]float64, 0, len(results))
	for _, res := range results {
		predRows = append(predRows, res.PredScore)
		gtRows = append(gtRows, res.GTScore)
	}
	ap, err := averageprecision.Calculate(label.Scores(predRows), label.Scores(gtRows), e.average)
	if err != nil {
		return nil, err
	}
	if e.average == metric.AverageNone {
		return metric.Values{metric.Prefixed(e.prefix, "AP"+metric.ClasswiseSuffix): ap}, nil
	}
	return metric.Values{metric.Prefixed(e.prefix, "mAP"): ap}, nil
}

func oneHot(indices []int64, numClasses int) ([]float64, error) {
	ints := make([]int, len(indices))
	for i, v := range indices {
		ints[i] = int(v)
	}
	return label.OneHot(ints, numClasses)
}

// Ensure interface compliance.
var _ evaluator.Evaluator = (*Evaluator)(nil)
